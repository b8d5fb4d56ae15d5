package events

import (
	"fmt"
	"strings"

	"github.com/vango-dev/treeseq/internal/errors"
)

// attrPrefix is prepended to a DOM event name to form its attribute name.
const attrPrefix = "on"

// MouseEvent enumerates pointer, click and drag events.
type MouseEvent int

const (
	Click MouseEvent = iota
	ContextMenu
	DblClick
	MouseDown
	MouseEnter
	MouseLeave
	MouseMove
	MouseOut
	MouseOver
	MouseUp
	Drag
	DragEnd
	DragEnter
	DragLeave
	DragOver
	DragStart
	Drop
)

// TouchEvent enumerates touch events.
type TouchEvent int

const (
	TouchStart TouchEvent = iota
	TouchEnd
	TouchMove
	TouchCancel
)

// FocusEvent enumerates focus events.
type FocusEvent int

const (
	Focus FocusEvent = iota
	FocusIn
	FocusOut
)

var mouseNames = map[MouseEvent]string{
	Click:       "onclick",
	ContextMenu: "oncontextmenu",
	DblClick:    "ondblclick",
	MouseDown:   "onmousedown",
	MouseEnter:  "onmouseenter",
	MouseLeave:  "onmouseleave",
	MouseMove:   "onmousemove",
	MouseOut:    "onmouseout",
	MouseOver:   "onmouseover",
	MouseUp:     "onmouseup",
	Drag:        "ondrag",
	DragEnd:     "ondragend",
	DragEnter:   "ondragenter",
	DragLeave:   "ondragleave",
	DragOver:    "ondragover",
	DragStart:   "ondragstart",
	Drop:        "ondrop",
}

var touchNames = map[TouchEvent]string{
	TouchStart:  "ontouchstart",
	TouchEnd:    "ontouchend",
	TouchMove:   "ontouchmove",
	TouchCancel: "ontouchcancel",
}

var focusNames = map[FocusEvent]string{
	Focus:    "onfocus",
	FocusIn:  "onfocusin",
	FocusOut: "onfocusout",
}

// Name returns the attribute name for e, e.g. "onclick".
func (e MouseEvent) Name() (string, error) {
	return lookup(mouseNames, e, "MouseEvent")
}

// MustName is like Name but panics on an undeclared value.
func (e MouseEvent) MustName() string { return must(e.Name()) }

// String returns the DOM event name ("click"), or MouseEvent(n) for
// undeclared values.
func (e MouseEvent) String() string { return display(mouseNames, e, "MouseEvent") }

// Name returns the attribute name for e, e.g. "ontouchstart".
func (e TouchEvent) Name() (string, error) {
	return lookup(touchNames, e, "TouchEvent")
}

// MustName is like Name but panics on an undeclared value.
func (e TouchEvent) MustName() string { return must(e.Name()) }

// String returns the DOM event name ("touchstart"), or TouchEvent(n) for
// undeclared values.
func (e TouchEvent) String() string { return display(touchNames, e, "TouchEvent") }

// Name returns the attribute name for e, e.g. "onfocusin".
func (e FocusEvent) Name() (string, error) {
	return lookup(focusNames, e, "FocusEvent")
}

// MustName is like Name but panics on an undeclared value.
func (e FocusEvent) MustName() string { return must(e.Name()) }

// String returns the DOM event name ("focusin"), or FocusEvent(n) for
// undeclared values.
func (e FocusEvent) String() string { return display(focusNames, e, "FocusEvent") }

// MouseEvents returns every MouseEvent in declaration order.
func MouseEvents() []MouseEvent { return members[MouseEvent](len(mouseNames)) }

// TouchEvents returns every TouchEvent in declaration order.
func TouchEvents() []TouchEvent { return members[TouchEvent](len(touchNames)) }

// FocusEvents returns every FocusEvent in declaration order.
func FocusEvents() []FocusEvent { return members[FocusEvent](len(focusNames)) }

// ParseMouse resolves "click" or "onclick" (any case) to a MouseEvent.
func ParseMouse(name string) (MouseEvent, error) { return parse(mouseNames, name, "MouseEvent") }

// ParseTouch resolves "touchstart" or "ontouchstart" to a TouchEvent.
func ParseTouch(name string) (TouchEvent, error) { return parse(touchNames, name, "TouchEvent") }

// ParseFocus resolves "focusin" or "onfocusin" to a FocusEvent.
func ParseFocus(name string) (FocusEvent, error) { return parse(focusNames, name, "FocusEvent") }

type enum interface {
	~int
}

func lookup[E enum](table map[E]string, e E, kind string) (string, error) {
	name, ok := table[e]
	if !ok {
		return "", errors.UnmappedEnum(kind, int(e))
	}
	return name, nil
}

func display[E enum](table map[E]string, e E, kind string) string {
	if name, ok := table[e]; ok {
		return strings.TrimPrefix(name, attrPrefix)
	}
	return fmt.Sprintf("%s(%d)", kind, int(e))
}

func must(name string, err error) string {
	if err != nil {
		panic(err)
	}
	return name
}

// members relies on each enumeration being dense from zero.
func members[E enum](n int) []E {
	out := make([]E, n)
	for i := range out {
		out[i] = E(i)
	}
	return out
}

func parse[E enum](table map[E]string, name, kind string) (E, error) {
	attr := strings.ToLower(strings.TrimSpace(name))
	if !strings.HasPrefix(attr, attrPrefix) {
		attr = attrPrefix + attr
	}
	for e, n := range table {
		if n == attr {
			return e, nil
		}
	}
	return -1, errors.New(errors.CodeUnmappedEnum).
		WithDetailf("%q is not a %s name", name, kind)
}
