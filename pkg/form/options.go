package form

import (
	"log/slog"

	"github.com/google/uuid"
)

// Option configures a Form.
type Option func(*options)

type options struct {
	id  uuid.UUID
	log *slog.Logger
}

// WithLogger sets the logger. Nil loggers are ignored and the form stays silent.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithSessionID overrides the generated session identifier, e.g. to reuse
// the host UI session's ID in logs. uuid.Nil is ignored.
func WithSessionID(id uuid.UUID) Option {
	return func(o *options) {
		if id != uuid.Nil {
			o.id = id
		}
	}
}
