package dynlist

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with dynlist-specific context.
// This provides structured logging with consistent field names.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithName adds a list name field to the logger (useful when a process
// holds several lists).
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("list", name),
	}
}

// WithOp adds an op field to the logger.
func (l *Logger) WithOp(op Op) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op.String()),
	}
}

// LogAdd logs an add operation.
func (l *Logger) LogAdd(index int, typ string, newSegment bool, err error) {
	if err != nil {
		l.Warn("add rejected",
			"error", err,
		)
		return
	}
	l.Debug("add completed",
		"index", index,
		"type", typ,
		"new_segment", newSegment,
	)
}

// LogRebuild logs a mutation that rebuilt the segment storage.
func (l *Logger) LogRebuild(op Op, index, length, segments int, err error) {
	if err != nil {
		l.Warn("rebuild rejected",
			"op", op.String(),
			"index", index,
			"length", length,
			"error", err,
		)
		return
	}
	l.Debug("rebuild completed",
		"op", op.String(),
		"index", index,
		"length", length,
		"segments", segments,
	)
}

// LogClear logs a clear operation.
func (l *Logger) LogClear(dropped int) {
	l.Debug("list cleared",
		"dropped", dropped,
	)
}

// LogUnsupported logs a call to a deliberately unsupported operation.
func (l *Logger) LogUnsupported(op string) {
	l.Warn("unsupported operation",
		"op", op,
		"error", ErrNotSupported,
	)
}
