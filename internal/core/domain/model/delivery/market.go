package delivery

// DefaultLanguage is used for markets missing from the language table.
const DefaultLanguage = "en_US"

func getMarketLanguages() map[string]string {
	return map[string]string{
		"HK": "en_HK",
		"SG": "en_SG",
		"TH": "th_TH",
		"PH": "en_PH",
		"TW": "zh_TW",
		"MY": "ms_MY",
		"VN": "vi_VN",
	}
}

// LanguageFor returns the aggregator language tag for a market code.
func LanguageFor(market string) string {
	if lang, ok := getMarketLanguages()[market]; ok {
		return lang
	}
	return DefaultLanguage
}
