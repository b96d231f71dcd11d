package form

import (
	"fmt"

	"github.com/dmitrymomot/formcheck/pkg/validator"
)

// Messages shown for invalid or blank values.
const (
	MsgInvalidContactIdentifier = "Invalid email or phone number"
	MsgInvalidPassword          = "Invalid password"
	MsgInvalidPageName          = "Invalid page name"
	MsgInvalidDisplayName       = "Invalid name"
	MsgInvalidPhoneNumber       = "Invalid phone number"
	MsgInvalidBirthday          = "Invalid birthday"
	MsgInvalidVerificationCode  = "Invalid code"
)

// FieldValidator maps a raw value to an error message, "" meaning valid.
type FieldValidator func(value string) string

// fieldRule pairs a field's user-facing message with the rules it checks.
// Rules run in order and stop at the first failure; every field starts with
// a presence check.
type fieldRule struct {
	message string
	format  func(field, value string) validator.Rule
}

var fieldRules = [...]fieldRule{
	ContactIdentifier: {MsgInvalidContactIdentifier, validator.ValidEmailOrPhone},
	Password:          {MsgInvalidPassword, nil},
	PageName:          {MsgInvalidPageName, nil},
	DisplayName:       {MsgInvalidDisplayName, nil},
	PhoneNumber:       {MsgInvalidPhoneNumber, validator.ValidPhoneNumber},
	Birthday:          {MsgInvalidBirthday, validator.ValidUSDate},
	VerificationCode:  {MsgInvalidVerificationCode, validator.ValidVerificationCode},
}

// evaluate returns the user-facing message for value together with the
// failed rule, if any. field must be valid.
func evaluate(field Field, value string) (string, *validator.ValidationError) {
	fr := fieldRules[field]
	name := field.String()

	rules := []validator.Rule{validator.RequiredString(name, value)}
	if fr.format != nil {
		rules = append(rules, fr.format(name, value))
	}

	verrs := validator.ExtractValidationErrors(validator.ApplyFirst(rules...))
	if verrs.IsEmpty() {
		return "", nil
	}
	return fr.message, &verrs[0]
}

// Validate runs the validator of field against value.
func Validate(field Field, value string) (string, error) {
	if !field.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	msg, _ := evaluate(field, value)
	return msg, nil
}

// ValidateContactIdentifier requires an email address or a phone-shaped value.
func ValidateContactIdentifier(value string) string {
	msg, _ := evaluate(ContactIdentifier, value)
	return msg
}

// ValidatePassword only requires a non-blank value.
func ValidatePassword(value string) string {
	msg, _ := evaluate(Password, value)
	return msg
}

// ValidatePageName only requires a non-blank value.
func ValidatePageName(value string) string {
	msg, _ := evaluate(PageName, value)
	return msg
}

// ValidateDisplayName only requires a non-blank value.
func ValidateDisplayName(value string) string {
	msg, _ := evaluate(DisplayName, value)
	return msg
}

// ValidatePhoneNumber requires 8 to 15 digits and only phone characters.
func ValidatePhoneNumber(value string) string {
	msg, _ := evaluate(PhoneNumber, value)
	return msg
}

// ValidateBirthday requires a zero-padded MM/DD/YYYY date. Calendar validity
// is not checked.
func ValidateBirthday(value string) string {
	msg, _ := evaluate(Birthday, value)
	return msg
}

// ValidateVerificationCode requires 6 to 8 digits and nothing else.
func ValidateVerificationCode(value string) string {
	msg, _ := evaluate(VerificationCode, value)
	return msg
}
