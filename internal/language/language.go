package language

// Language is a transcription language supported by the whisper model
// family.
type Language struct {
	Code string // ISO 639-1 code (e.g. "en", "es", "zh")
	Name string // English display name (e.g. "English", "Spanish")
}

// AutoCode is the sentinel stored in configuration when the model should
// detect the spoken language itself.
const AutoCode = "auto"

// Auto is the auto-detection pseudo-language.
var Auto = Language{Code: AutoCode, Name: "Auto-detect"}

// English is the only language exposed for single-language (.en) models.
var English = Language{Code: "en", Name: "English"}

// languages is the master list, derived from the languages whisper.cpp
// reports for multilingual models.
var languages = []Language{
	{Code: "af", Name: "Afrikaans"},
	{Code: "ar", Name: "Arabic"},
	{Code: "hy", Name: "Armenian"},
	{Code: "az", Name: "Azerbaijani"},
	{Code: "be", Name: "Belarusian"},
	{Code: "bs", Name: "Bosnian"},
	{Code: "bg", Name: "Bulgarian"},
	{Code: "ca", Name: "Catalan"},
	{Code: "zh", Name: "Chinese"},
	{Code: "hr", Name: "Croatian"},
	{Code: "cs", Name: "Czech"},
	{Code: "da", Name: "Danish"},
	{Code: "nl", Name: "Dutch"},
	{Code: "en", Name: "English"},
	{Code: "et", Name: "Estonian"},
	{Code: "fi", Name: "Finnish"},
	{Code: "fr", Name: "French"},
	{Code: "gl", Name: "Galician"},
	{Code: "de", Name: "German"},
	{Code: "el", Name: "Greek"},
	{Code: "he", Name: "Hebrew"},
	{Code: "hi", Name: "Hindi"},
	{Code: "hu", Name: "Hungarian"},
	{Code: "is", Name: "Icelandic"},
	{Code: "id", Name: "Indonesian"},
	{Code: "it", Name: "Italian"},
	{Code: "ja", Name: "Japanese"},
	{Code: "kn", Name: "Kannada"},
	{Code: "kk", Name: "Kazakh"},
	{Code: "ko", Name: "Korean"},
	{Code: "lv", Name: "Latvian"},
	{Code: "lt", Name: "Lithuanian"},
	{Code: "mk", Name: "Macedonian"},
	{Code: "ms", Name: "Malay"},
	{Code: "mr", Name: "Marathi"},
	{Code: "mi", Name: "Maori"},
	{Code: "ne", Name: "Nepali"},
	{Code: "no", Name: "Norwegian"},
	{Code: "fa", Name: "Persian"},
	{Code: "pl", Name: "Polish"},
	{Code: "pt", Name: "Portuguese"},
	{Code: "ro", Name: "Romanian"},
	{Code: "ru", Name: "Russian"},
	{Code: "sr", Name: "Serbian"},
	{Code: "sk", Name: "Slovak"},
	{Code: "sl", Name: "Slovenian"},
	{Code: "es", Name: "Spanish"},
	{Code: "sw", Name: "Swahili"},
	{Code: "sv", Name: "Swedish"},
	{Code: "tl", Name: "Tagalog"},
	{Code: "ta", Name: "Tamil"},
	{Code: "th", Name: "Thai"},
	{Code: "tr", Name: "Turkish"},
	{Code: "uk", Name: "Ukrainian"},
	{Code: "ur", Name: "Urdu"},
	{Code: "vi", Name: "Vietnamese"},
	{Code: "cy", Name: "Welsh"},
}

var codeIndex map[string]Language

func init() {
	codeIndex = make(map[string]Language, len(languages)+1)
	codeIndex[AutoCode] = Auto
	for _, lang := range languages {
		codeIndex[lang.Code] = lang
	}
}

// FromCode returns the Language for the given code and whether the code
// is known.
func FromCode(code string) (Language, bool) {
	lang, ok := codeIndex[code]
	return lang, ok
}

// IsValidCode reports whether code is "auto" or a supported language.
func IsValidCode(code string) bool {
	_, ok := codeIndex[code]
	return ok
}

// DisplayName renders a code for humans: "auto" becomes "Auto-detect",
// known codes their English name, unknown codes pass through unchanged.
func DisplayName(code string) string {
	if lang, ok := codeIndex[code]; ok {
		return lang.Name
	}
	return code
}

// List returns all supported languages, excluding Auto.
func List() []Language {
	result := make([]Language, len(languages))
	copy(result, languages)
	return result
}
