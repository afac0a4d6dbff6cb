// Package logger configures log/slog for commands and hands out loggers
// that carry the subsystem name and per-context key/values.
package logger
