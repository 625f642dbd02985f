// Package logger builds configured log/slog loggers with text or JSON
// output, level control, static attributes and development/production
// presets. Services in this module accept a *slog.Logger through their
// WithLogger options; this package is where those loggers come from.
package logger
