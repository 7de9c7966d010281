package kernel

import "strings"

// PhoneCountryCode is the country calling code assumed for local numbers.
const PhoneCountryCode = "63"

// NormalizePhone converts a local ("0917..."), bare subscriber ("917...") or
// already international ("63917...", "+63917...") number to E.164 with the
// +63 country code. Non-digits are stripped first; an input without any digit
// is returned unchanged. Other leading digits get +63 prepended without any
// numbering-plan validation. NormalizePhone is idempotent.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case digits == "":
		return phone
	case strings.HasPrefix(digits, PhoneCountryCode):
		return "+" + digits
	case strings.HasPrefix(digits, "0"):
		return "+" + PhoneCountryCode + digits[1:]
	default:
		return "+" + PhoneCountryCode + digits
	}
}
