package chatbot

import (
	"agriassist/agriassist/sources/psql/models"
	"strings"
)

type Language string

const (
	English   Language = "en"
	Hindi     Language = "hi"
	Telugu    Language = "te"
	Kannada   Language = "kn"
	Malayalam Language = "ml"
)

var supported = map[Language]bool{
	English: true, Hindi: true, Telugu: true, Kannada: true, Malayalam: true,
}

// NormalizeLanguage maps any unsupported code to English.
func NormalizeLanguage(code string) Language {
	lang := Language(strings.ToLower(strings.TrimSpace(code)))
	if supported[lang] {
		return lang
	}
	return English
}

// Pick returns the entry for l, or the English entry when l has none.
func (l Language) Pick(table map[Language]string) string {
	if s, ok := table[l]; ok && s != "" {
		return s
	}
	return table[English]
}

var relatedConnective = map[Language]string{
	English:   "\n\nAdditionally, you might find this relevant: ",
	Hindi:     "\n\nइसके अलावा, यह भी प्रासंगिक हो सकता है: ",
	Telugu:    "\n\nఅదనంగా, మీరు దీన్ని సంబంధితంగా కనుగొనవచ్చు: ",
	Kannada:   "\n\nಇದಲ್ಲದೆ, ಇದು ನಿಮಗೆ ಸಂಬಂಧಿಸಿದ್ದಾಗಿರಬಹುದು: ",
	Malayalam: "\n\nകൂടാതെ, ഇതും പ്രസക്തമായി കണ്ടേക്കാം: ",
}

var noResultsMessage = map[Language]string{
	English:   "I couldn't find specific information about that topic. Could you please rephrase your question about agriculture or farming?",
	Hindi:     "मुझे इस विषय के बारे में विशिष्ट जानकारी नहीं मिली। क्या आप कृपया कृषि के बारे में अपना प्रश्न दोबारा पूछ सकते हैं?",
	Telugu:    "నాకు ఆ విషయం గురించి నిర్దిష్ట సమాచారం దొరకలేదు. దయచేసి వ్యవసాయం గురించి మీ ప్రశ్నను మళ్ళీ అడగగలరా?",
	Kannada:   "ನನಗೆ ಆ ವಿಷಯದ ಬಗ್ಗೆ ನಿರ್ದಿಷ್ಟ ಮಾಹಿತಿ ಸಿಗಲಿಲ್ಲ. ದಯವಿಟ್ಟು ಕೃಷಿಯ ಬಗ್ಗೆ ನಿಮ್ಮ ಪ್ರಶ್ನೆಯನ್ನು ಮತ್ತೊಮ್ಮೆ ಕೇಳಬಹುದೇ?",
	Malayalam: "എനിക്ക് ആ വിഷയത്തെക്കുറിച്ച് പ്രത്യേക വിവരങ്ങൾ കണ്ടെത്താൻ കഴിഞ്ഞില്ല. കൃഷിയെക്കുറിച്ചുള്ള നിങ്ങളുടെ ചോദ്യം വീണ്ടും ചോദിക്കാമോ?",
}

var searchFailedMessage = map[Language]string{
	English:   "I'm having trouble searching for information right now. Please try again later or ask a different question about farming.",
	Hindi:     "मुझे अभी जानकारी खोजने में परेशानी हो रही है। कृपया बाद में पुनः प्रयास करें या कृषि के बारे में कोई अलग प्रश्न पूछें।",
	Telugu:    "నేను ప్రస్తుతం సమాచారాన్ని శోధించడంలో ఇబ్బంది పడుతున్నాను. దయచేసి తర్వాత మళ్ళీ ప్రయత్నించండి లేదా వ్యవసాయం గురించి వేరే ప్రశ్న అడగండి.",
	Kannada:   "ನಾನು ಈಗ ಮಾಹಿತಿಯನ್ನು ಹುಡುಕುವಲ್ಲಿ ತೊಂದರೆ ಅನುಭವಿಸುತ್ತಿದ್ದೇನೆ. ದಯವಿಟ್ಟು ನಂತರ ಮತ್ತೆ ಪ್ರಯತ್ನಿಸಿ ಅಥವಾ ಕೃಷಿಯ ಬಗ್ಗೆ ಬೇರೆ ಪ್ರಶ್ನೆಯನ್ನು ಕೇಳಿ.",
	Malayalam: "എനിക്ക് ഇപ്പോൾ വിവരങ്ങൾ തിരയുന്നതിൽ ബുദ്ധിമുട്ടുണ്ട്. ദയവായി പിന്നീട് വീണ്ടും ശ്രമിക്കുക അല്ലെങ്കിൽ കൃഷിയെക്കുറിച്ച് മറ്റൊരു ചോദ്യം ചോദിക്കുക.",
}

// ResponseFor returns the record's text in lang, falling back to response_en
// when that column is null or blank.
func ResponseFor(rec models.KnowledgeRecord, lang Language) string {
	var field *string
	switch lang {
	case Hindi:
		field = rec.ResponseHI
	case Telugu:
		field = rec.ResponseTE
	case Kannada:
		field = rec.ResponseKN
	case Malayalam:
		field = rec.ResponseML
	}
	if field != nil && strings.TrimSpace(*field) != "" {
		return *field
	}
	return rec.ResponseEN
}
