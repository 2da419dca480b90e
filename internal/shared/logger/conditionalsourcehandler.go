package logger

import (
	"context"
	"log/slog"
	"runtime"
)

type conditionalSourceHandler struct {
	inner    slog.Handler
	sourceAt map[slog.Level]bool
}

// NewConditionalSourceHandler wraps a handler so that source location
// is attached only for the given levels. The wrapped handler must be
// built with AddSource: false; this wrapper adds the attribute itself.
func NewConditionalSourceHandler(inner slog.Handler, levels ...slog.Level) slog.Handler {
	sourceAt := make(map[slog.Level]bool, len(levels))
	for _, level := range levels {
		sourceAt[level] = true
	}
	return &conditionalSourceHandler{
		inner:    inner,
		sourceAt: sourceAt,
	}
}

func (h *conditionalSourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.sourceAt[r.Level] {
		// Skip this frame plus the slog internal frame.
		var pcs [1]uintptr
		runtime.Callers(3, pcs[:])
		fs := runtime.CallersFrames(pcs[:])
		f, _ := fs.Next()

		r.AddAttrs(slog.Attr{
			Key: slog.SourceKey,
			Value: slog.AnyValue(&slog.Source{
				Function: f.Function,
				File:     f.File,
				Line:     f.Line,
			}),
		})
	}

	return h.inner.Handle(ctx, r)
}

func (h *conditionalSourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &conditionalSourceHandler{
		inner:    h.inner.WithAttrs(attrs),
		sourceAt: h.sourceAt,
	}
}

func (h *conditionalSourceHandler) WithGroup(name string) slog.Handler {
	return &conditionalSourceHandler{
		inner:    h.inner.WithGroup(name),
		sourceAt: h.sourceAt,
	}
}

func (h *conditionalSourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}
