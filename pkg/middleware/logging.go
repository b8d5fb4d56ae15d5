package middleware

import (
	"context"
	"log/slog"
)

// Logging logs every instruction at debug level. A nil logger uses
// slog.Default().
func Logging(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return Observe(func(in Instruction) {
		if !logger.Enabled(context.Background(), slog.LevelDebug) {
			return
		}
		attrs := []slog.Attr{slog.String("kind", in.Kind)}
		if in.Sequence >= 0 {
			attrs = append(attrs, slog.Int("seq", in.Sequence))
		}
		if in.Name != "" {
			attrs = append(attrs, slog.String("name", in.Name))
		}
		logger.LogAttrs(context.Background(), slog.LevelDebug, "builder instruction", attrs...)
	})
}
