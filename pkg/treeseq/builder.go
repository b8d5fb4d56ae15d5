package treeseq

import "reflect"

// Builder is the subset of the host render tree builder the helpers drive.
type Builder interface {
	// OpenElement starts an element scope with the given tag.
	OpenElement(sequence int, tag string)

	// OpenComponent starts a component scope for the given component type.
	OpenComponent(sequence int, componentType reflect.Type)

	// AddAttribute adds an attribute to the current scope.
	AddAttribute(sequence int, name string, value any)

	// Close ends the current element or component scope.
	Close()
}

// Content emits nested instructions starting at seq and returns the next
// unused sequence number.
type Content func(seq int) int

// RenderFragment is deferred markup. The builder invokes it when it
// renders the slot it was attached to.
type RenderFragment func(b Builder)

// Fragment adapts a cursor-threaded body into a RenderFragment. Each
// invocation starts its own cursor at zero.
func Fragment(body func(b Builder, seq int) int) RenderFragment {
	return func(b Builder) {
		body(b, 0)
	}
}
