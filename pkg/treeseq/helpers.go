package treeseq

import (
	"reflect"
	"strings"

	"github.com/vango-dev/treeseq/pkg/events"
)

const (
	// AttrClass is the attribute that carries CSS classes.
	AttrClass = "class"

	// ChildContent is the framework's default content slot.
	ChildContent = "ChildContent"
)

// OpenElement opens tag at seq, runs content with the advanced cursor and
// closes the element. A nil content emits nothing between open and close.
func OpenElement(b Builder, seq int, tag string, content Content) int {
	b.OpenElement(seq, tag)
	seq = run(content, seq+1)
	b.Close()
	return seq
}

// OpenComponent is OpenElement for a component scope.
func OpenComponent(b Builder, seq int, componentType reflect.Type, content Content) int {
	b.OpenComponent(seq, componentType)
	seq = run(content, seq+1)
	b.Close()
	return seq
}

// OpenComponentOf opens a component scope for T.
func OpenComponentOf[T any](b Builder, seq int, content Content) int {
	return OpenComponent(b, seq, reflect.TypeOf((*T)(nil)).Elem(), content)
}

func run(content Content, seq int) int {
	if content == nil {
		return seq
	}
	return content(seq)
}

// AddClass adds a class attribute with classes joined by a single space.
// With no classes nothing is emitted and seq is returned unchanged; an
// empty class attribute is not the same as an absent one.
func AddClass(b Builder, seq int, classes ...string) int {
	if len(classes) == 0 {
		return seq
	}
	b.AddAttribute(seq, AttrClass, strings.Join(classes, " "))
	return seq + 1
}

// AddString concatenates fragments, trims the result and adds it as name.
// Nothing is emitted when the trimmed value is empty.
func AddString(b Builder, seq int, name string, fragments ...string) int {
	value := strings.TrimSpace(strings.Join(fragments, ""))
	if value == "" {
		return seq
	}
	b.AddAttribute(seq, name, value)
	return seq + 1
}

// AddContent attaches fragment to the ChildContent slot without invoking it.
func AddContent(b Builder, seq int, fragment RenderFragment) int {
	return AddNamedContent(b, seq, ChildContent, fragment)
}

// AddNamedContent attaches fragment to the named slot without invoking it.
func AddNamedContent(b Builder, seq int, slot string, fragment RenderFragment) int {
	b.AddAttribute(seq, slot, fragment)
	return seq + 1
}

// OnMouse binds handler to the attribute for event. An undeclared event
// returns an Unmapped Enum Value error, emits nothing and leaves seq as is.
func OnMouse(b Builder, seq int, event events.MouseEvent, handler any) (int, error) {
	name, err := event.Name()
	if err != nil {
		return seq, err
	}
	b.AddAttribute(seq, name, handler)
	return seq + 1, nil
}

// OnTouch binds handler to the attribute for event.
func OnTouch(b Builder, seq int, event events.TouchEvent, handler any) (int, error) {
	name, err := event.Name()
	if err != nil {
		return seq, err
	}
	b.AddAttribute(seq, name, handler)
	return seq + 1, nil
}

// OnFocus binds handler to the attribute for event.
func OnFocus(b Builder, seq int, event events.FocusEvent, handler any) (int, error) {
	name, err := event.Name()
	if err != nil {
		return seq, err
	}
	b.AddAttribute(seq, name, handler)
	return seq + 1, nil
}

// MustOnMouse is OnMouse for call sites that treat an undeclared event as fatal.
func MustOnMouse(b Builder, seq int, event events.MouseEvent, handler any) int {
	b.AddAttribute(seq, event.MustName(), handler)
	return seq + 1
}

// MustOnTouch is OnTouch that panics on an undeclared event.
func MustOnTouch(b Builder, seq int, event events.TouchEvent, handler any) int {
	b.AddAttribute(seq, event.MustName(), handler)
	return seq + 1
}

// MustOnFocus is OnFocus that panics on an undeclared event.
func MustOnFocus(b Builder, seq int, event events.FocusEvent, handler any) int {
	b.AddAttribute(seq, event.MustName(), handler)
	return seq + 1
}

// AddIcon emits <span class="icon"><i class="{iconClass}"></i></span>.
func AddIcon(b Builder, seq int, iconClass string) int {
	return OpenElement(b, seq, "span", func(seq int) int {
		seq = AddClass(b, seq, "icon")
		return OpenElement(b, seq, "i", func(seq int) int {
			return AddClass(b, seq, iconClass)
		})
	})
}
