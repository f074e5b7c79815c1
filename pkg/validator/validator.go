package validator

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{8,15}$`)
	// Lithuanian company codes are 9 digits (7 for older registrations).
	companyCodeRegex = regexp.MustCompile(`^[0-9]{7}$|^[0-9]{9}$`)
)

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func ValidatePhone(phone string) bool {
	cleanPhone := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) || r == '+' {
			return r
		}
		return -1
	}, phone)

	return phoneRegex.MatchString(cleanPhone)
}

func ValidateCompanyCode(code string) bool {
	return companyCodeRegex.MatchString(code)
}

func ValidateNamePart(name string) bool {
	if len(name) < 2 {
		return false
	}

	for _, r := range name {
		if !unicode.IsLetter(r) && r != '-' && r != ' ' && r != '\'' {
			return false
		}
	}

	return true
}

// FormatPhone normalizes a phone number to +370... form. A leading 8 is the
// legacy national prefix and maps to +370.
func FormatPhone(phone string) string {
	cleanPhone := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) || r == '+' {
			return r
		}
		return -1
	}, phone)

	if !strings.HasPrefix(cleanPhone, "+") {
		switch {
		case strings.HasPrefix(cleanPhone, "8"):
			cleanPhone = "+370" + cleanPhone[1:]
		case strings.HasPrefix(cleanPhone, "370"):
			cleanPhone = "+" + cleanPhone
		default:
			cleanPhone = "+370" + cleanPhone
		}
	}

	return cleanPhone
}

func SanitizeString(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '<' || r == '>' || r == '&' || r == '"' || r == '\'' || r == '`' || r == ';' {
			return -1
		}
		return r
	}, s)
}
