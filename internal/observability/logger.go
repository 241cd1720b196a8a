package observability

import (
	"context"
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger struct {
	slog *slog.Logger
	file *lumberjack.Logger
}

// NewLogger writes to a rotating file at logPath, or to stderr when logPath
// is empty.
func NewLogger(logPath, logLevel string) *Logger {
	var (
		out  io.Writer = os.Stderr
		file *lumberjack.Logger
	)
	if logPath != "" {
		file = &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		out = file
	}

	return newLogger(out, file, logLevel)
}

// NewWriterLogger logs to w. Used by tests and by callers that manage their
// own output.
func NewWriterLogger(w io.Writer, logLevel string) *Logger {
	return newLogger(w, nil, logLevel)
}

// Nop discards everything.
func Nop() *Logger {
	return newLogger(io.Discard, nil, "error")
}

func newLogger(w io.Writer, file *lumberjack.Logger, logLevel string) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(logLevel)})
	return &Logger{slog: slog.New(handler), file: file}
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) Debug(msg string, fields ...any) {
	l.slog.Debug(msg, fields...)
}

func (l *Logger) Info(msg string, fields ...any) {
	l.slog.Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...any) {
	l.slog.Warn(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...any) {
	l.slog.Error(msg, fields...)
}

// DebugEnabled reports whether Debug calls are written, so callers can skip
// building expensive debug fields.
func (l *Logger) DebugEnabled() bool {
	return l.slog.Enabled(context.Background(), slog.LevelDebug)
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
