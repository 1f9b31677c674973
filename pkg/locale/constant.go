package locale

// Supported languages
const (
	EN = "en" // English
	SW = "sw" // Swahili
)

// DefaultLang is the default language used when no valid locale is provided.
const DefaultLang = EN

// LangList contains all supported language codes.
var LangList = []string{EN, SW}
