package logger

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// ToContext returns a copy of ctx carrying log.
func ToContext(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// FromContext returns the logger stored in ctx, or slog.Default when there
// is none. It never returns nil.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
			return log
		}
	}
	return slog.Default()
}

// With adds attributes to the context logger and stores the result back:
//
//	log, ctx := logger.With(ctx, "expenseId", id)
func With(ctx context.Context, args ...any) (*slog.Logger, context.Context) {
	log := FromContext(ctx).With(args...)
	return log, ToContext(ctx, log)
}

// IsDebugEnabled reports whether the context logger emits debug records.
// Guard request and response dumps with it.
func IsDebugEnabled(ctx context.Context) bool {
	if ctx == nil {
		ctx = context.Background()
	}
	return FromContext(ctx).Enabled(ctx, slog.LevelDebug)
}
