package validator

import "regexp"

var usDateRegex = regexp.MustCompile(`^(0[1-9]|1[0-2])/(0[1-9]|[12][0-9]|3[01])/[0-9]{4}$`)

// IsUSDate reports whether value has the exact MM/DD/YYYY shape.
// Only the ranges of each part are checked: 02/30/2024 passes because month
// length and leap years are not considered.
func IsUSDate(value string) bool {
	return usDateRegex.MatchString(value)
}

// ValidUSDate validates that a string is a zero-padded MM/DD/YYYY date.
func ValidUSDate(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsUSDate(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a date in MM/DD/YYYY format",
		},
	}
}
