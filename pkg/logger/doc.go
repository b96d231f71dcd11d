// Package logger builds *slog.Logger values from functional options.
//
// New picks a JSON or text handler, applies a minimum level and attaches
// static attributes to every record. Discard returns a logger that drops all
// output and is the default for library components that accept an optional
// logger. Attribute helpers in attr.go keep key names consistent.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "signup-form"),
//	    logger.WithOutput(os.Stderr),
//	)
//	log.Debug("field validated", logger.Field("birthday"), logger.Valid(true))
package logger
