// Package frames provides a recording treeseq.Builder.
//
// A Recorder keeps every instruction it receives as a Frame so tests and
// tooling can inspect the exact sequence numbers a composition consumed,
// check scope pairing and print a readable trace. It never renders.
package frames
