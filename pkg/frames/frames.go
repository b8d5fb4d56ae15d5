package frames

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/vango-dev/treeseq/internal/errors"
	"github.com/vango-dev/treeseq/pkg/treeseq"
)

// Kind is the frame type discriminator.
type Kind uint8

const (
	KindElement   Kind = iota // OpenElement
	KindComponent             // OpenComponent
	KindAttribute             // AddAttribute
	KindClose                 // Close
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindComponent:
		return "Component"
	case KindAttribute:
		return "Attribute"
	case KindClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// Frame is one recorded builder instruction.
type Frame struct {
	Kind     Kind
	Sequence int    // -1 for KindClose
	Name     string // tag, component type name, attribute name, or closed scope name
	Value    any    // attribute value; the reflect.Type for components
	Depth    int    // scope depth the instruction was issued at
}

// Consumes reports whether the frame consumed a sequence number.
func (f Frame) Consumes() bool {
	return f.Kind != KindClose
}

// Recorder is a treeseq.Builder that records frames. Not safe for
// concurrent use.
type Recorder struct {
	frames []Frame
	open   []string
	err    *errors.Error
}

var _ treeseq.Builder = (*Recorder)(nil)

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record runs fragment against a fresh Recorder and returns it.
func Record(fragment treeseq.RenderFragment) *Recorder {
	r := NewRecorder()
	if fragment != nil {
		fragment(r)
	}
	return r
}

// OpenElement implements treeseq.Builder.
func (r *Recorder) OpenElement(sequence int, tag string) {
	r.push(Frame{Kind: KindElement, Sequence: sequence, Name: tag})
}

// OpenComponent implements treeseq.Builder.
func (r *Recorder) OpenComponent(sequence int, componentType reflect.Type) {
	r.push(Frame{Kind: KindComponent, Sequence: sequence, Name: typeName(componentType), Value: componentType})
}

func (r *Recorder) push(f Frame) {
	f.Depth = len(r.open)
	r.frames = append(r.frames, f)
	r.open = append(r.open, f.Name)
}

// AddAttribute implements treeseq.Builder.
func (r *Recorder) AddAttribute(sequence int, name string, value any) {
	r.frames = append(r.frames, Frame{
		Kind:     KindAttribute,
		Sequence: sequence,
		Name:     name,
		Value:    value,
		Depth:    len(r.open),
	})
}

// Close implements treeseq.Builder. A Close with no open scope is recorded
// and reported by Validate.
func (r *Recorder) Close() {
	if len(r.open) == 0 {
		if r.err == nil {
			r.err = errors.New(errors.CodeUnbalancedScope).
				WithDetailf("close at frame %d has no matching open", len(r.frames))
		}
		r.frames = append(r.frames, Frame{Kind: KindClose, Sequence: -1})
		return
	}
	name := r.open[len(r.open)-1]
	r.open = r.open[:len(r.open)-1]
	r.frames = append(r.frames, Frame{Kind: KindClose, Sequence: -1, Name: name, Depth: len(r.open)})
}

// Frames returns a copy of the recorded frames.
func (r *Recorder) Frames() []Frame {
	out := make([]Frame, len(r.frames))
	copy(out, r.frames)
	return out
}

// Len returns the number of recorded frames.
func (r *Recorder) Len() int {
	return len(r.frames)
}

// Sequences returns the consumed sequence numbers in emission order.
func (r *Recorder) Sequences() []int {
	var seqs []int
	for _, f := range r.frames {
		if f.Consumes() {
			seqs = append(seqs, f.Sequence)
		}
	}
	return seqs
}

// Attributes returns the attribute frames in emission order.
func (r *Recorder) Attributes() []Frame {
	var attrs []Frame
	for _, f := range r.frames {
		if f.Kind == KindAttribute {
			attrs = append(attrs, f)
		}
	}
	return attrs
}

// Attribute returns the first attribute frame named name.
func (r *Recorder) Attribute(name string) (Frame, bool) {
	for _, f := range r.frames {
		if f.Kind == KindAttribute && f.Name == name {
			return f, true
		}
	}
	return Frame{}, false
}

// Depth returns the number of currently open scopes.
func (r *Recorder) Depth() int {
	return len(r.open)
}

// Validate checks that every scope was closed and that consumed sequence
// numbers strictly increase across the recorded pass.
func (r *Recorder) Validate() error {
	if r.err != nil {
		return r.err
	}
	if len(r.open) > 0 {
		return errors.New(errors.CodeUnbalancedScope).
			WithDetailf("%d scope(s) left open: %s", len(r.open), strings.Join(r.open, " > "))
	}
	last, seen := 0, false
	for i, f := range r.frames {
		if !f.Consumes() {
			continue
		}
		if seen && f.Sequence <= last {
			return errors.New(errors.CodeNonMonotonic).
				WithDetailf("frame %d (%s %s) has sequence %d after %d", i, f.Kind, f.Name, f.Sequence, last)
		}
		last, seen = f.Sequence, true
	}
	return nil
}

// Reset clears all recorded state.
func (r *Recorder) Reset() {
	r.frames = r.frames[:0]
	r.open = r.open[:0]
	r.err = nil
}

// String returns an indented trace of the recorded frames.
func (r *Recorder) String() string {
	var b strings.Builder
	for _, f := range r.frames {
		b.WriteString(f.String())
		b.WriteString("\n")
	}
	return b.String()
}

// String formats the frame as one trace line.
func (f Frame) String() string {
	indent := strings.Repeat("  ", f.Depth)
	switch f.Kind {
	case KindElement:
		return fmt.Sprintf("%4d %s<%s>", f.Sequence, indent, f.Name)
	case KindComponent:
		return fmt.Sprintf("%4d %s<%s component>", f.Sequence, indent, f.Name)
	case KindAttribute:
		return fmt.Sprintf("%4d %s%s=%s", f.Sequence, indent, f.Name, formatValue(f.Value))
	case KindClose:
		return fmt.Sprintf("     %s</%s>", indent, f.Name)
	default:
		return fmt.Sprintf("%4d %s?", f.Sequence, indent)
	}
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return fmt.Sprintf("%q", val)
	case treeseq.RenderFragment:
		return "<fragment>"
	}
	if reflect.TypeOf(v).Kind() == reflect.Func {
		return "<func>"
	}
	return fmt.Sprint(v)
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}
