// Package treeseq threads render tree builder sequence numbers through
// nested composition calls.
//
// A render tree builder takes a monotonically increasing sequence number
// with every open, attribute and component instruction so the host
// framework can match nodes across re-renders. Keeping that counter by
// hand is error prone; the helpers here take the current cursor, consume
// what they need and return the next cursor:
//
//	seq := 0
//	seq = treeseq.OpenElement(b, seq, "span", func(seq int) int {
//	    seq = treeseq.AddClass(b, seq, "icon")
//	    return treeseq.OpenElement(b, seq, "i", func(seq int) int {
//	        return treeseq.AddClass(b, seq, "gg-play-list-add")
//	    })
//	})
//	// seq == 4
//
// # Cursor Rules
//
// Open instructions and attributes consume one value each. Close consumes
// none. Nested content receives the cursor after the open and returns the
// cursor it stopped at, so values are strictly increasing along the
// executed path at any nesting depth.
//
// The cursor is a plain int owned by one render pass; do not share a
// Builder or cursor across goroutines.
package treeseq
