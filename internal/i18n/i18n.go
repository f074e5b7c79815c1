package i18n

import "strings"

type Language string

const (
	LanguageLT Language = "lt"
	LanguageEN Language = "en"

	DefaultLanguage = LanguageLT
)

func (l Language) IsValid() bool {
	return l == LanguageLT || l == LanguageEN
}

// Lookup falls back to the English table, then to the raw key, so a missing
// translation never breaks a flow.
var tables = map[Language]map[string]string{
	LanguageLT: {
		"inquiryFromInTouch": "Užklausa iš InTouch",
		"inquirySentSubject": "Užklausa išsiųsta - InTouch",
		"inquirySentBody": "Jūsų žinutė buvo išsiųsta specialistui. Jis susisieks su jumis tiesiogiai.",
		"newInquirySubject": "Nauja užklausa iš {name} - InTouch",
		"newInquiryGreeting": "Gavote naują užklausą!",
		"newInquiryFrom": "Nuo: {name}",
		"newInquiryReplyHint": "Galite atsakyti tiesiogiai į šį el. laišką.",
		"pleaseEnterMessage": "Įveskite žinutę",
		"pleaseSelectRecipients": "Pasirinkite bent vieną gavėją",
		"errorFetchingSpecialists": "Nepavyko gauti specialistų sąrašo",
		"somethingWentWrong": "Kažkas nepavyko. Bandykite dar kartą.",
		"allLithuania": "Visa Lietuva",
		"physicalPerson": "Fizinis asmuo",
		"legalEntity": "Juridinis asmuo",
	},
	LanguageEN: {
		"inquiryFromInTouch": "Inquiry from InTouch",
		"inquirySentSubject": "Inquiry sent - InTouch",
		"inquirySentBody": "Your message was sent to the specialist. They will contact you directly.",
		"newInquirySubject": "New inquiry from {name} - InTouch",
		"newInquiryGreeting": "You have received a new inquiry!",
		"newInquiryFrom": "From: {name}",
		"newInquiryReplyHint": "You can reply directly to this email.",
		"pleaseEnterMessage": "Please enter a message",
		"pleaseSelectRecipients": "Please select at least one recipient",
		"errorFetchingSpecialists": "Failed to fetch specialists",
		"somethingWentWrong": "Something went wrong. Please try again.",
		"allLithuania": "All Lithuania",
		"physicalPerson": "Individual",
		"legalEntity": "Legal entity",
	},
}

// Translate resolves key in the given language with {param} interpolation,
// falling back to English and finally to the key itself.
func Translate(lang Language, key string, params map[string]string) string {
	msg, ok := tables[lang][key]
	if !ok {
		msg, ok = tables[LanguageEN][key]
	}
	if !ok {
		msg = key
	}
	for name, value := range params {
		msg = strings.ReplaceAll(msg, "{"+name+"}", value)
	}
	return msg
}

// Table returns the full table for a language so clients can load UI strings
// in one request. Unknown languages resolve to the default.
func Table(lang Language) map[string]string {
	if t, ok := tables[lang]; ok {
		return t
	}
	return tables[DefaultLanguage]
}
