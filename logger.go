package bitvec

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitvec-specific context.
// This provides structured logging with consistent field names.
//
// WithLength and the Log* helpers are safe on a nil *Logger; they log nothing.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithLength adds a length field to the logger.
func (l *Logger) WithLength(length int) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{
		Logger: l.Logger.With("length", length),
	}
}

// LogConstruct logs the outcome of building a vector.
func (l *Logger) LogConstruct(how string, length int, err error) {
	if l == nil {
		return
	}
	if err != nil {
		l.Debug("construct failed",
			"how", how,
			"length", length,
			"kind", KindOf(err).String(),
			"error", err,
		)
		return
	}
	l.Debug("construct completed",
		"how", how,
		"length", length,
	)
}

// LogRejected logs an operation that failed validation before touching any block.
func (l *Logger) LogRejected(op string, err error) {
	if l == nil || err == nil {
		return
	}
	l.Debug("operation rejected",
		"op", op,
		"kind", KindOf(err).String(),
		"error", err,
	)
}
