package command

import "errors"

var (
	// ErrMalformedStream indicates the input did not match the expected
	// length-prefixed format: a missing count, an unparsable integer, or
	// a truncated stream. Wrapped with %w over the underlying scan error
	// so callers can still errors.Is against it.
	ErrMalformedStream = errors.New("command: malformed command stream")

	// ErrUnknownOpcode indicates a command line's leading opcode was not
	// one of the seven defined in spec.md §6.
	ErrUnknownOpcode = errors.New("command: unknown opcode")
)
