package logger

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

// StructuredHandler writes one JSON object per record:
// {"severity", "message", "time", "data"}.
type StructuredHandler struct {
	level slog.Level
	out   io.Writer
	mu    *sync.Mutex
	attrs []slog.Attr
}

// NewStructuredHandler logs to stdout. It matches the handler factory
// signature expected by New.
func NewStructuredHandler(level slog.Level) slog.Handler {
	return NewStructuredHandlerTo(os.Stdout, level)
}

func NewStructuredHandlerTo(out io.Writer, level slog.Level) *StructuredHandler {
	return &StructuredHandler{level: level, out: out, mu: new(sync.Mutex)}
}

func (h *StructuredHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level
}

func (h *StructuredHandler) Handle(_ context.Context, r slog.Record) error {
	event := map[string]any{
		"severity": severity(r.Level),
		"message":  r.Message,
		"time":     r.Time.Format(time.RFC3339Nano),
	}

	if len(h.attrs) > 0 || r.NumAttrs() > 0 {
		data := make(map[string]any, len(h.attrs)+r.NumAttrs())
		for _, a := range h.attrs {
			data[a.Key] = attrValue(a.Value)
		}
		r.Attrs(func(a slog.Attr) bool {
			data[a.Key] = attrValue(a.Value)
			return true
		})
		event["data"] = data
	}

	b, err := json.Marshal(event)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.out.Write(append(b, '\n'))
	return err
}

func (h *StructuredHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &next
}

// WithGroup is a no-op; the output format is flat.
func (h *StructuredHandler) WithGroup(_ string) slog.Handler {
	return h
}

func severity(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARNING"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}

// errors marshal to {} through encoding/json, so flatten them to text.
func attrValue(v slog.Value) any {
	v = v.Resolve()
	if err, ok := v.Any().(error); ok {
		return err.Error()
	}
	return v.Any()
}
