package validator

import "regexp"

const (
	// MinPhoneDigits and MaxPhoneDigits bound the digit count of a phone number.
	MinPhoneDigits = 8
	MaxPhoneDigits = 15

	// MinCodeDigits and MaxCodeDigits bound the length of a verification code.
	MinCodeDigits = 6
	MaxCodeDigits = 8
)

var (
	// local@domain.tld with no whitespace or '@' in any part.
	emailRegex = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

	// Digits, '+', '-', parentheses and spaces only.
	phoneCharsRegex = regexp.MustCompile(`^[0-9+\-() ]+$`)

	numericStringRegex = regexp.MustCompile(`^[0-9]+$`)
)

// countDigits returns the number of ASCII digits in s.
func countDigits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			n++
		}
	}
	return n
}

// IsEmailOrPhone reports whether value is email-shaped or consists only of
// phone characters. The phone branch does not bound the digit count, so a
// lone "-" is accepted.
func IsEmailOrPhone(value string) bool {
	return emailRegex.MatchString(value) || phoneCharsRegex.MatchString(value)
}

// IsPhoneNumber reports whether value has 8..15 digits and contains nothing
// but phone characters.
func IsPhoneNumber(value string) bool {
	digits := countDigits(value)
	if digits < MinPhoneDigits || digits > MaxPhoneDigits {
		return false
	}
	return phoneCharsRegex.MatchString(value)
}

// IsVerificationCode reports whether value is 6..8 digits and nothing else.
func IsVerificationCode(value string) bool {
	digits := countDigits(value)
	return digits >= MinCodeDigits && digits <= MaxCodeDigits &&
		numericStringRegex.MatchString(value)
}

// ValidEmailOrPhone validates that a string looks like an email address or a phone number.
func ValidEmailOrPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsEmailOrPhone(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address or phone number",
		},
	}
}

// ValidPhoneNumber validates that a string is a phone number with 8 to 15 digits.
// Formatting characters such as "+1 (555) 123-4567" are allowed.
func ValidPhoneNumber(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsPhoneNumber(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid phone number",
		},
	}
}

// ValidVerificationCode validates that a string is a 6 to 8 digit code.
func ValidVerificationCode(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsVerificationCode(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a 6 to 8 digit code",
		},
	}
}
