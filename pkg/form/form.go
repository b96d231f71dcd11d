package form

import (
	"fmt"
	"log/slog"
	"maps"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formcheck/pkg/logger"
)

// ValidateFunc validates one field and records the result.
type ValidateFunc func(field Field, value string) error

// Form holds the error state of a single form-editing session.
// It is safe for concurrent use.
type Form struct {
	id   uuid.UUID
	log  *slog.Logger
	errs atomic.Pointer[Errors]
}

// New creates a session with an empty error map.
func New(opts ...Option) *Form {
	o := &options{
		id:  uuid.New(),
		log: logger.Discard(),
	}
	for _, opt := range opts {
		opt(o)
	}

	f := &Form{
		id:  o.id,
		log: o.log.With(logger.Component("form"), logger.SessionID(o.id.String())),
	}
	empty := Errors{}
	f.errs.Store(&empty)
	return f
}

// CreateValidator creates a session and returns it together with its bound
// ValidateInput.
func CreateValidator(opts ...Option) (*Form, ValidateFunc) {
	f := New(opts...)
	return f, f.ValidateInput
}

// ID returns the session identifier used in log records.
func (f *Form) ID() uuid.UUID {
	return f.id
}

// ValidateInput validates value for field and replaces that field's entry in
// the error map. Other entries are preserved. It returns an error only for a
// field outside the closed set, in which case the map is not modified.
func (f *Form) ValidateInput(field Field, value string) error {
	if !field.IsValid() {
		err := fmt.Errorf("%w: %s", ErrUnknownField, field)
		f.log.Warn("validation requested for unknown field",
			logger.Field(field.String()),
			logger.Error(err),
		)
		return err
	}
	msg, failed := evaluate(field, value)

	for {
		prev := f.errs.Load()
		next := prev.with(field, msg)
		if f.errs.CompareAndSwap(prev, &next) {
			break
		}
	}

	attrs := []any{logger.Field(field.String()), logger.Valid(msg == "")}
	if failed != nil {
		attrs = append(attrs, logger.Reason(failed.Message))
	}
	f.log.Debug("field validated", attrs...)
	return nil
}

// Errors returns a snapshot of the error map. The snapshot is a copy and is
// not affected by later calls to ValidateInput.
func (f *Form) Errors() Errors {
	return maps.Clone(*f.errs.Load())
}

// Error returns the current message for field, or "" when there is none.
func (f *Form) Error(field Field) string {
	return (*f.errs.Load()).Get(field)
}

// Valid reports whether no validated field currently has an error.
func (f *Form) Valid() bool {
	return (*f.errs.Load()).Valid()
}
