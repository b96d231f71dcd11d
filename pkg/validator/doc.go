// Package validator provides small, composable validation rules and the
// string-shape predicates used by form inputs: contact identifiers (email or
// phone), phone numbers, MM/DD/YYYY dates and numeric verification codes.
//
// Every predicate is a pure function that is total over all strings. Rule
// constructors wrap a predicate together with field-scoped error metadata so
// several checks can be evaluated at once with Apply, or in order with
// ApplyFirst which stops at the first failure.
//
// # Usage
//
//	err := validator.ApplyFirst(
//	    validator.RequiredString("phone", phone),
//	    validator.ValidPhoneNumber("phone", phone),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Get("phone")
//	}
//
// The predicates are intentionally faithful to the shapes a browser form
// accepts, not to the relevant RFCs. In particular IsEmailOrPhone treats any
// run of phone characters as phone-shaped regardless of digit count, while
// IsPhoneNumber bounds the digit count to 8..15.
//
// The package holds no mutable state and is safe for concurrent use.
package validator
