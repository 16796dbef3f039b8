// Package common contains shared constants and sentinel errors used across
// UltraUpload client components.
package common

// Keys of the persisted key-value store.
const (
	UserKey     = "@user"
	TokenKey    = "@token"
	LanguageKey = "@language"
	ProfileKey  = "@profile"
)

// RequestIDHeaderName is the HTTP header carrying a per-call request id.
const RequestIDHeaderName = "X-Request-ID"

// DefaultLanguage is the language preference used until the user picks one.
const DefaultLanguage = "es"

// SupportedLanguages lists the language codes the client ships translations for.
var SupportedLanguages = []string{"es", "en"}

// IsSupportedLanguage reports whether code is one of SupportedLanguages.
func IsSupportedLanguage(code string) bool {
	for _, l := range SupportedLanguages {
		if l == code {
			return true
		}
	}
	return false
}
