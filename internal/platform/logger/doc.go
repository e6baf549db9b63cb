// Package logger configures the process-wide structured logger and carries
// request-scoped loggers through context.Context.
//
// It utilizes Go's standard library log/slog package to implement structured
// JSON logging with configurable log levels.
package logger
