package middleware

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/treeseq/pkg/treeseq"
)

// Default tracer name.
const defaultTracerName = "treeseq"

// TraceConfig configures Trace.
type TraceConfig struct {
	// TracerName is the name of the tracer (default: "treeseq").
	TracerName string

	// Attributes are added to every span.
	Attributes []attribute.KeyValue

	// InstructionEvents adds a span event per open instruction.
	// Disabled by default.
	InstructionEvents bool

	// Tracer overrides the tracer resolved from the global provider.
	Tracer trace.Tracer
}

// TraceOption configures Trace.
type TraceOption func(*TraceConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TraceOption {
	return func(c *TraceConfig) {
		c.TracerName = name
	}
}

// WithAttributes adds attributes to the span.
func WithAttributes(attrs ...attribute.KeyValue) TraceOption {
	return func(c *TraceConfig) {
		c.Attributes = append(c.Attributes, attrs...)
	}
}

// WithInstructionEvents records a span event for every open instruction.
func WithInstructionEvents(enabled bool) TraceOption {
	return func(c *TraceConfig) {
		c.InstructionEvents = enabled
	}
}

// WithTracer sets the tracer explicitly.
func WithTracer(tracer trace.Tracer) TraceOption {
	return func(c *TraceConfig) {
		c.Tracer = tracer
	}
}

// Trace runs render inside a span named "treeseq <name>". The span records
// the instruction count, the highest sequence number consumed and the
// error returned by render, which Trace passes through.
func Trace(ctx context.Context, name string, b treeseq.Builder, render func(ctx context.Context, b treeseq.Builder) error, opts ...TraceOption) error {
	config := TraceConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	tracer := config.Tracer
	if tracer == nil {
		tracer = otel.Tracer(config.TracerName)
	}

	attrs := append([]attribute.KeyValue{attribute.String("treeseq.root", name)}, config.Attributes...)
	ctx, span := tracer.Start(ctx, fmt.Sprintf("treeseq %s", name),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
	defer span.End()

	count, maxSeq := 0, -1
	counted := Observe(func(in Instruction) {
		count++
		if in.Sequence > maxSeq {
			maxSeq = in.Sequence
		}
		if config.InstructionEvents && (in.Kind == KindElement || in.Kind == KindComponent) {
			span.AddEvent("open", trace.WithAttributes(
				attribute.String("treeseq.kind", in.Kind),
				attribute.String("treeseq.name", in.Name),
				attribute.Int("treeseq.seq", in.Sequence),
			))
		}
	})(b)

	err := render(ctx, counted)

	span.SetAttributes(
		attribute.Int("treeseq.instruction_count", count),
		attribute.Int("treeseq.max_sequence", maxSeq),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	return err
}
