// Package events maps the closed mouse, touch and focus event enumerations
// to the attribute names the render tree builder recognizes.
//
// Each table is total over its enumeration and immutable after package
// initialization, so lookups are safe from any number of goroutines:
//
//	name, err := events.Click.Name() // "onclick", nil
//
// A value outside the declared members (e.g. MouseEvent(42)) is a
// programming error. Name reports it as an Unmapped Enum Value error
// carrying the offending integer; MustName panics with the same error.
package events
