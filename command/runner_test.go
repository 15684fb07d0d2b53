package command_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/noath/ordseq/command"
	"github.com/noath/ordseq/treap"
)

type RunnerSuite struct {
	suite.Suite
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(RunnerSuite))
}

// TestScenario2Replay runs spec.md §8.2 through the command-stream interface
// end to end: parse, run, check both sums and the final sequence.
func (s *RunnerSuite) TestScenario2Replay() {
	in := strings.NewReader(`5
1 2 3 4 5
2
6 0 4
6 0 4
`)
	p, err := command.Parse(in)
	require.NoError(s.T(), err)

	r := command.New(treap.WithSeed(2))
	res, err := r.Run(context.Background(), p)
	require.NoError(s.T(), err)
	require.Empty(s.T(), res.Sums)
	require.Equal(s.T(), []int64{1, 2, 4, 3, 5}, res.Final)
}

// TestScenario4Replay runs spec.md §8.4 (assign, sum, add) and checks the
// single collected sum alongside the final sequence.
func (s *RunnerSuite) TestScenario4Replay() {
	in := strings.NewReader(`4
1 2 3 4
3
4 7 1 2
1 0 3
5 -1 0 3
`)
	p, err := command.Parse(in)
	require.NoError(s.T(), err)

	r := command.New(treap.WithSeed(4))
	res, err := r.Run(context.Background(), p)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int64{19}, res.Sums)
	require.Equal(s.T(), []int64{0, 6, 6, 3}, res.Final)
}

// TestRunCollectsMultipleSumsInOrder checks that Sums accumulates in
// command order, not completion order.
func (s *RunnerSuite) TestRunCollectsMultipleSumsInOrder() {
	p := &command.Program{
		Initial: []int64{1, 2, 3, 4},
		Commands: []command.Command{
			{Op: command.OpSum, L: 0, R: 1},
			{Op: command.OpSum, L: 2, R: 3},
			{Op: command.OpSum, L: 0, R: 3},
		},
	}
	r := command.New(treap.WithSeed(1))
	res, err := r.Run(context.Background(), p)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int64{3, 7, 10}, res.Sums)
}

// TestRunRejectsOutOfRangeCommand verifies an invalid command aborts the
// run and surfaces the engine's sentinel error.
func (s *RunnerSuite) TestRunRejectsOutOfRangeCommand() {
	p := &command.Program{
		Initial: []int64{1, 2, 3},
		Commands: []command.Command{
			{Op: command.OpRemove, Pos: 5},
		},
	}
	r := command.New(treap.WithSeed(1))
	_, err := r.Run(context.Background(), p)
	require.ErrorIs(s.T(), err, treap.ErrIndexOutOfRange)
}

// TestRunHonorsCancellation verifies a cancelled context stops processing
// before any further command runs.
func (s *RunnerSuite) TestRunHonorsCancellation() {
	p := &command.Program{
		Initial: []int64{1, 2, 3},
		Commands: []command.Command{
			{Op: command.OpSum, L: 0, R: 2},
		},
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := command.New(treap.WithSeed(1))
	_, err := r.Run(ctx, p)
	require.ErrorIs(s.T(), err, context.Canceled)
}

// TestRunTwoInstancesAreIndependent checks that a Runner carries no shared
// mutable state between successive Run calls.
func (s *RunnerSuite) TestRunTwoInstancesAreIndependent() {
	r := command.New(treap.WithSeed(1))

	p1 := &command.Program{Initial: []int64{1, 2}, Commands: []command.Command{{Op: command.OpSum, L: 0, R: 1}}}
	res1, err := r.Run(context.Background(), p1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int64{3}, res1.Sums)

	p2 := &command.Program{Initial: []int64{10, 20, 30}, Commands: []command.Command{{Op: command.OpSum, L: 0, R: 2}}}
	res2, err := r.Run(context.Background(), p2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int64{60}, res2.Sums)
}
