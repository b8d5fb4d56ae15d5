// Package errors provides structured, coded errors for treeseq.
//
// Every error carries a code (e.g., "T001") registered with a category,
// a short message, a longer detail and a documentation URL. Callers add
// context through the fluent With* setters:
//
//	err := errors.New("T001").
//	    WithDetail("MouseEvent value 42 is not a declared member").
//	    WithSuggestion("Use one of the events.MouseEvents() members")
//
//	fmt.Println(err.Format())
//
// # Categories
//
//   - runtime: contract violations raised while composing builder calls
//   - config: configuration loading and validation
//   - cli: command line usage errors
//
// Errors compare equal under errors.Is when their codes match, so the
// exported sentinels (ErrUnmappedEnum, ErrUnbalancedScope, ...) can be
// used to classify any error produced by this package.
package errors
