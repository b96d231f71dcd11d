package validator

import (
	"strings"
	"unicode"
)

// isFormSpace reports whether r is white space as browsers trim it: the
// ASCII controls \t \n \v \f \r, Unicode space separators, the line and
// paragraph separators and U+FEFF. U+0085 is not included.
func isFormSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// IsBlank reports whether value is empty after trimming surrounding whitespace.
func IsBlank(value string) bool {
	return strings.TrimFunc(value, isFormSpace) == ""
}

// RequiredString validates that a string is not empty after trimming whitespace.
// The value itself is never modified.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !IsBlank(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: ErrFieldRequired.Error(),
		},
	}
}
