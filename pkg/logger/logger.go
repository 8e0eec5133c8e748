package logger

import (
	"log/slog"
	"strings"
)

func New(level string, handler func(level slog.Level) slog.Handler) *slog.Logger {
	return slog.New(handler(ParseLevel(level)))
}

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
