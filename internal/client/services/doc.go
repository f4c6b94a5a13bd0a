// Package services contains the application services of the WordTrail client.
//
// Each service owns a slice of the local key-value store and is the only
// writer of its keys:
//
//   - SettingsService: learning preferences and the remote daily goal.
//   - IdentityResolver: who the current user is.
//   - SessionService: the selected language and lexicon.
//   - ProfileService: the cached display profile and the server account record.
//   - LexiconService: the server's wordbook catalogue.
//   - AuthService: sign-in, sign-out and reset of the local session.
//
// Local read failures never reach callers. They are logged and resolved to a
// default or nil. Remote failures are returned as values.
package services

// User-visible notification titles.
const (
	MsgLoginRequired     = "Please log in first"
	MsgLexiconSaved      = "Lexicon saved"
	MsgLexiconSaveFailed = "Failed to save lexicon"
)
