package command

import (
	"context"
	"fmt"

	"github.com/noath/ordseq/treap"
)

// Result is the accumulated output of running a Program: every Sum result
// in order, followed by the final sequence. Result is owned by the call
// that produced it — this is the re-architecture spec.md §9 calls for of
// the source's global mutable "sums collected" vector; nothing here is
// package-level state.
type Result struct {
	Sums  []int64
	Final []int64
}

// Runner builds a treap.Engine from a Program's initial sequence and
// dispatches each command to it through a single switch (spec.md §9,
// "Polymorphic command dispatch"). A Runner holds no state between calls
// to Run and is safe to reuse sequentially; like treap.Engine itself it is
// not safe for concurrent use — callers sharing one across goroutines must
// serialize their own calls (spec.md §5).
type Runner struct {
	seedOpts []treap.Option
}

// New returns a Runner. opts are forwarded to treap.New for every Program
// it runs, most commonly treap.WithSeed for reproducible runs.
func New(opts ...treap.Option) *Runner {
	return &Runner{seedOpts: opts}
}

// Run constructs an Engine from p.Initial, applies p.Commands in order,
// and returns the accumulated sums and final sequence. ctx is checked
// between commands so a long-running stream can be cancelled; it is not
// threaded into the engine itself, which has no blocking operations of its
// own (spec.md §5, "no operation blocks or suspends").
func (r *Runner) Run(ctx context.Context, p *Program) (*Result, error) {
	e := treap.New(r.seedOpts...)
	for i, v := range p.Initial {
		if err := e.Insert(int64(i), v); err != nil {
			return nil, fmt.Errorf("command: building initial sequence: %w", err)
		}
	}

	res := &Result{}
	for idx, cmd := range p.Commands {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := dispatch(e, cmd, res); err != nil {
			return nil, fmt.Errorf("command: command %d (%s): %w", idx, cmd.Op, err)
		}
	}

	res.Final = e.Extract()
	return res, nil
}

// dispatch applies one command to e, appending to res.Sums when the
// command is a sum query.
func dispatch(e *treap.Engine, cmd Command, res *Result) error {
	switch cmd.Op {
	case OpSum:
		v, err := e.Sum(cmd.L, cmd.R)
		if err != nil {
			return err
		}
		res.Sums = append(res.Sums, v)
		return nil
	case OpInsert:
		return e.Insert(cmd.Pos, cmd.Value)
	case OpRemove:
		return e.Remove(cmd.Pos)
	case OpAssign:
		return e.Assign(cmd.Value, cmd.L, cmd.R)
	case OpAdd:
		return e.Add(cmd.Value, cmd.L, cmd.R)
	case OpNextPermutation:
		return e.NextPermutation(cmd.L, cmd.R)
	case OpPrevPermutation:
		return e.PrevPermutation(cmd.L, cmd.R)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownOpcode, cmd.Op)
	}
}
