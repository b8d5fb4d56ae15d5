package middleware

import (
	"reflect"

	"github.com/vango-dev/treeseq/pkg/treeseq"
)

// Middleware decorates a Builder.
type Middleware func(next treeseq.Builder) treeseq.Builder

// Chain applies mws to b. The first middleware is outermost and sees each
// instruction first.
func Chain(b treeseq.Builder, mws ...Middleware) treeseq.Builder {
	for i := len(mws) - 1; i >= 0; i-- {
		if mws[i] != nil {
			b = mws[i](b)
		}
	}
	return b
}

// Instruction kinds reported by the observers.
const (
	KindElement   = "element"
	KindComponent = "component"
	KindAttribute = "attribute"
	KindClose     = "close"
)

// Instruction describes one builder call as seen by an observer.
type Instruction struct {
	Kind     string
	Sequence int // -1 for close
	Name     string
}

// observer forwards every call to next after reporting it to observe.
type observer struct {
	next    treeseq.Builder
	observe func(Instruction)
}

// Observe returns a Middleware that calls fn for every instruction before
// forwarding it.
func Observe(fn func(Instruction)) Middleware {
	return func(next treeseq.Builder) treeseq.Builder {
		return &observer{next: next, observe: fn}
	}
}

func (o *observer) OpenElement(sequence int, tag string) {
	o.observe(Instruction{Kind: KindElement, Sequence: sequence, Name: tag})
	o.next.OpenElement(sequence, tag)
}

func (o *observer) OpenComponent(sequence int, componentType reflect.Type) {
	name := "<nil>"
	if componentType != nil {
		name = componentType.String()
	}
	o.observe(Instruction{Kind: KindComponent, Sequence: sequence, Name: name})
	o.next.OpenComponent(sequence, componentType)
}

func (o *observer) AddAttribute(sequence int, name string, value any) {
	o.observe(Instruction{Kind: KindAttribute, Sequence: sequence, Name: name})
	o.next.AddAttribute(sequence, name, value)
}

func (o *observer) Close() {
	o.observe(Instruction{Kind: KindClose, Sequence: -1})
	o.next.Close()
}
