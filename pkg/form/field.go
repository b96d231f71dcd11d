package form

import (
	"fmt"
	"strconv"
)

// Field identifies a form input. The zero value is not a valid field.
type Field uint8

const (
	ContactIdentifier Field = iota + 1
	Password
	PageName
	DisplayName
	PhoneNumber
	Birthday
	VerificationCode

	firstField = ContactIdentifier
	lastField  = VerificationCode
)

var fieldNames = [...]string{
	ContactIdentifier: "contact_identifier",
	Password:          "password",
	PageName:          "page_name",
	DisplayName:       "display_name",
	PhoneNumber:       "phone_number",
	Birthday:          "birthday",
	VerificationCode:  "verification_code",
}

// Identifiers used by the web client for the same inputs.
var fieldAliases = map[string]Field{
	"emailOrPhone": ContactIdentifier,
	"pageName":     PageName,
	"name":         DisplayName,
	"phoneNumber":  PhoneNumber,
	"code":         VerificationCode,
}

// AllFields returns every field in declaration order.
func AllFields() []Field {
	fields := make([]Field, 0, lastField-firstField+1)
	for f := firstField; f <= lastField; f++ {
		fields = append(fields, f)
	}
	return fields
}

// IsValid reports whether f belongs to the closed set of fields.
func (f Field) IsValid() bool {
	return f >= firstField && f <= lastField
}

// String returns the canonical snake_case name, or "Field(n)" for invalid values.
func (f Field) String() string {
	if !f.IsValid() {
		return "Field(" + strconv.Itoa(int(f)) + ")"
	}
	return fieldNames[f]
}

// ParseField resolves a canonical snake_case name or a client alias such as
// "emailOrPhone" to a Field.
func ParseField(name string) (Field, error) {
	for f := firstField; f <= lastField; f++ {
		if fieldNames[f] == name {
			return f, nil
		}
	}
	if f, ok := fieldAliases[name]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// MarshalText encodes f as its canonical name; invalid fields are an error.
func (f Field) MarshalText() ([]byte, error) {
	if !f.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownField, uint8(f))
	}
	return []byte(fieldNames[f]), nil
}

// UnmarshalText accepts anything ParseField accepts.
func (f *Field) UnmarshalText(text []byte) error {
	parsed, err := ParseField(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
