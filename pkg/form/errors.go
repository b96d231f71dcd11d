package form

import "errors"

var (
	// ErrUnknownField is returned for a field identifier outside the closed set.
	ErrUnknownField = errors.New("unknown form field")

	// ErrInvalidConfig is returned when the environment configuration cannot be used.
	ErrInvalidConfig = errors.New("invalid form configuration")
)
