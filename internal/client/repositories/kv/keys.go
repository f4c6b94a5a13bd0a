package kv

// Persisted keys. The names are shared with earlier client releases and must
// not change.
const (
	KeyToken           = "token"
	KeyUserInfo        = "userInfo"
	KeyLegacyUser      = "user"
	KeyUserID          = "userId"
	KeyUsername        = "username"
	KeyCurrentLanguage = "currentLanguage"
	KeyLearnSettings   = "learnSettings"
	KeyCurrentLexicon  = "currentLexicon"
	KeyUserProfile     = "user_info"
)

// SessionKeys are removed on sign-out. Device preferences (language and
// learning settings) survive it.
var SessionKeys = []string{
	KeyToken,
	KeyUserInfo,
	KeyLegacyUser,
	KeyUserID,
	KeyUsername,
	KeyUserProfile,
	KeyCurrentLexicon,
}
