// Package middleware provides treeseq.Builder decorators for logging,
// Prometheus metrics and OpenTelemetry tracing.
//
// A Middleware wraps a Builder and forwards every instruction unchanged,
// observing it on the way through. Decorators never alter sequence
// numbers, names or values.
//
// # Usage
//
//	b := middleware.Chain(hostBuilder,
//	    middleware.Logging(logger),
//	    middleware.Prometheus(middleware.WithNamespace("myapp")),
//	)
//	seq = treeseq.AddIcon(b, seq, "gg-play-list-add")
//
// Trace wraps one whole render pass in a span:
//
//	err := middleware.Trace(ctx, "Toolbar", b, func(ctx context.Context, b treeseq.Builder) error {
//	    _, err := treeseq.OnMouse(b, 0, events.Click, onClick)
//	    return err
//	})
package middleware
