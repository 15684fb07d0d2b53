// Package command implements the line-oriented command-stream format that
// drives a treap.Engine: a length-prefixed initial sequence followed by a
// length-prefixed list of opcodes (spec.md §6). This package is mechanical
// glue around the engine — parsing, dispatch, and output buffering — and
// carries none of the engine's own algorithmic complexity.
package command
