package form

import "maps"

// Errors maps a field to its latest error message. A missing key and an
// empty message both mean the field has no error.
type Errors map[Field]string

// Get returns the message for field, or "" when there is none.
func (e Errors) Get(field Field) string {
	return e[field]
}

// Has reports whether field currently has a non-empty message.
func (e Errors) Has(field Field) bool {
	return e[field] != ""
}

// Valid reports whether no field has a non-empty message.
func (e Errors) Valid() bool {
	for _, msg := range e {
		if msg != "" {
			return false
		}
	}
	return true
}

// Fields returns the fields with a non-empty message in declaration order.
func (e Errors) Fields() []Field {
	var fields []Field
	for _, f := range AllFields() {
		if e.Has(f) {
			fields = append(fields, f)
		}
	}
	return fields
}

// with returns a copy of e with field set to msg.
func (e Errors) with(field Field, msg string) Errors {
	next := make(Errors, len(e)+1)
	maps.Copy(next, e)
	next[field] = msg
	return next
}
