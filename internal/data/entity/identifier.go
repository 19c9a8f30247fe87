package entity

import (
	"regexp"
	"strings"
)

type IdentifierKind string

const (
	IdentifierEmail   IdentifierKind = "email"
	IdentifierPhone   IdentifierKind = "phone"
	IdentifierInvalid IdentifierKind = "invalid"
)

// CountryCode is implicit for every phone identifier. Phones are stored and
// sent upstream as bare 10-digit strings and displayed with the prefix.
const CountryCode = "91"

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigitPattern = regexp.MustCompile(`\D`)
)

// Identifier is the single value a customer types to begin authentication,
// classified as an email or a normalized 10-digit phone number.
type Identifier struct {
	Kind  IdentifierKind `json:"kind"`
	Value string         `json:"value"`
}

// Classify decides whether raw is an email, a phone number, or neither.
// It never fails and is idempotent: re-classifying Value (or Display output)
// yields the same identifier.
func Classify(raw string) Identifier {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Identifier{Kind: IdentifierInvalid, Value: trimmed}
	}

	if strings.Contains(trimmed, "@") {
		if emailPattern.MatchString(trimmed) {
			return Identifier{Kind: IdentifierEmail, Value: strings.ToLower(trimmed)}
		}
		return Identifier{Kind: IdentifierInvalid, Value: trimmed}
	}

	digits := nonDigitPattern.ReplaceAllString(trimmed, "")
	switch {
	case len(digits) == 12 && strings.HasPrefix(digits, CountryCode):
		digits = digits[2:]
	case len(digits) == 11 && strings.HasPrefix(digits, "0"):
		digits = digits[1:]
	}

	if len(digits) == 10 {
		return Identifier{Kind: IdentifierPhone, Value: digits}
	}

	return Identifier{Kind: IdentifierInvalid, Value: trimmed}
}

func (i Identifier) IsEmail() bool { return i.Kind == IdentifierEmail }

func (i Identifier) IsPhone() bool { return i.Kind == IdentifierPhone }

func (i Identifier) Valid() bool { return i.Kind == IdentifierEmail || i.Kind == IdentifierPhone }

// Display returns the user-facing form: emails as-is, phones with the
// country-code prefix.
func (i Identifier) Display() string {
	if i.Kind == IdentifierPhone {
		return "+" + CountryCode + " " + i.Value
	}
	return i.Value
}
