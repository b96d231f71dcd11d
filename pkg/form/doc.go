// Package form validates the inputs of a sign-up style form and keeps the
// current error message of every field for one editing session.
//
// The set of fields is closed: ContactIdentifier, Password, PageName,
// DisplayName, PhoneNumber, Birthday and VerificationCode. Each has a pure
// validator returning a user-facing message, or "" when the value is
// acceptable. A blank value (empty after trimming whitespace) always yields
// the field's message before any format check runs. Values are never
// normalized.
//
// A Form owns the error map of one session:
//
//	f, validate := form.CreateValidator()
//	_ = validate(form.PhoneNumber, "+1 (555) 123-4567")
//	_ = validate(form.Birthday, "13/01/2020")
//	f.Errors().Get(form.Birthday) // "Invalid birthday"
//
// ValidateInput replaces exactly one entry per call and publishes the new
// map atomically, so Errors never returns a partially updated snapshot even
// when called concurrently with writers. Fields that were never validated are
// absent from the map and read as "".
//
// Passing a Field outside the closed set is a caller bug: ValidateInput and
// Validate return an error wrapping ErrUnknownField and the map is left
// unchanged.
package form
