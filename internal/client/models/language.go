package models

// LanguageInfo describes a language the app can teach.
type LanguageInfo struct {
	Code           string `json:"code"`
	DisplayName    string `json:"displayName"`
	Icon           string `json:"icon"`
	Emoji          string `json:"emoji"`
	SuccessMessage string `json:"successMessage"`
}

// SupportedLanguages is the fixed language set. The first entry is the default.
var SupportedLanguages = []LanguageInfo{
	{
		Code:           "en",
		DisplayName:    "English",
		Icon:           "i-circle-flags:us",
		Emoji:          "🇺🇸",
		SuccessMessage: "Now learning English",
	},
	{
		Code:           "fr",
		DisplayName:    "Français",
		Icon:           "i-circle-flags:fr",
		Emoji:          "🇫🇷",
		SuccessMessage: "Maintenant en train d'apprendre le français",
	},
	{
		Code:           "de",
		DisplayName:    "Deutsch",
		Icon:           "i-circle-flags:de",
		Emoji:          "🇩🇪",
		SuccessMessage: "Jetzt Deutsch lernen",
	},
}

// DefaultLanguage returns the first supported language.
func DefaultLanguage() LanguageInfo {
	return SupportedLanguages[0]
}

// LookupLanguage finds a supported language by code.
func LookupLanguage(code string) (LanguageInfo, bool) {
	for _, l := range SupportedLanguages {
		if l.Code == code {
			return l, true
		}
	}
	return LanguageInfo{}, false
}
