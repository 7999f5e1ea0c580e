package extraction

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-ats/internal/types"
)

const minPhoneDigits = 10

func (e *Extractor) extractContact(text string, f *types.FactModel) {
	var emails []string
	for _, m := range e.re.Email.FindAllStringSubmatch(text, -1) {
		if candidate := group(m); validEmail(candidate) {
			emails = append(emails, candidate)
		}
	}
	if len(emails) > 0 {
		email := emails[0]
		f.Email = &email
	}
	f.EmailCount = len(emails)

	// Every pattern is applied to the whole text, so one number may be
	// reported by more than one pattern.
	for _, re := range e.re.Phones {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if phone, ok := cleanPhone(group(m)); ok {
				f.PhoneNumbers = append(f.PhoneNumbers, phone)
			}
		}
	}
	if len(f.PhoneNumbers) > 0 {
		phone := f.PhoneNumbers[0]
		f.Phone = &phone
	}
	f.PhoneCount = len(f.PhoneNumbers)
}

func validEmail(email string) bool {
	return strings.Count(email, "@") == 1 && strings.Contains(email, ".")
}

// cleanPhone strips everything but digits, keeping a leading '+', and rejects
// numbers with fewer than ten digits.
func cleanPhone(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)

	var sb strings.Builder
	digits := 0
	if strings.HasPrefix(raw, "+") {
		sb.WriteByte('+')
	}
	for _, r := range raw {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			sb.WriteRune(r)
			digits++
		}
	}

	if digits < minPhoneDigits {
		return "", false
	}
	return sb.String(), true
}
