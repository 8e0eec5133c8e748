package logger

import (
	"log/slog"
	"os"
)

// NewConsoleHandler is used by the CLI so diagnostics go to stderr and
// never mix with rendered output on stdout.
func NewConsoleHandler(level slog.Level) slog.Handler {
	return slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
}
