package bnb_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/bnb"
)

// ParallelSuite exercises the shared-frontier multi-worker variant.
type ParallelSuite struct {
	suite.Suite
}

func (s *ParallelSuite) opts() bnb.Options[*treeNode, int] {
	return bnb.DefaultOptions[*treeNode, int]()
}

// TestMatchesSequentialOptimum: any worker count run to exhaustion returns
// the same optimal cost as the sequential engine.
func (s *ParallelSuite) TestMatchesSequentialOptimum() {
	for seed := int64(20); seed <= 24; seed++ {
		rng := rand.New(rand.NewSource(seed))
		root, opt := randomTree(rng, 6, true)

		for _, workers := range []int{1, 2, 4, 8} {
			res, err := bnb.SolveParallel(root, bnb.Maximize, workers, s.opts())
			require.NoError(s.T(), err)
			require.True(s.T(), res.Found)
			require.Equal(s.T(), opt, res.Cost, "seed %d workers %d", seed, workers)
			require.Equal(s.T(), bnb.Exhausted, res.State)
		}
	}
}

// TestMinimizeDirection covers the opposite optimization sense.
func (s *ParallelSuite) TestMinimizeDirection() {
	rng := rand.New(rand.NewSource(31))
	root, opt := randomTree(rng, 6, false)

	res, err := bnb.SolveParallel(root, bnb.Minimize, 4, s.opts())
	require.NoError(s.T(), err)
	require.Equal(s.T(), opt, res.Cost)
}

// TestInfeasibleSpaceDrains: all workers must exit on a wholly infeasible
// space without hanging.
func (s *ParallelSuite) TestInfeasibleSpaceDrains() {
	res, err := bnb.SolveParallel(infeasibleRoot(), bnb.Maximize, 4, s.opts())
	require.NoError(s.T(), err)
	require.False(s.T(), res.Found)
	require.Equal(s.T(), bnb.Exhausted, res.State)
}

// TestStopFlagOnCancel: a cancelled context raises the shared stop flag and
// every worker drains to TerminatedEarly.
func (s *ParallelSuite) TestStopFlagOnCancel() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := s.opts()
	opts.Ctx = ctx
	res, err := bnb.SolveParallel(maxDemoTree(), bnb.Maximize, 4, opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), bnb.TerminatedEarly, res.State)
}

// TestExpiredTimeLimit terminates before any expansion completes the search.
func (s *ParallelSuite) TestExpiredTimeLimit() {
	opts := s.opts()
	opts.TimeLimit = time.Nanosecond
	res, err := bnb.SolveParallel(maxDemoTree(), bnb.Maximize, 2, opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), bnb.TerminatedEarly, res.State)
}

// TestWorkerValidation rejects non-positive worker counts.
func (s *ParallelSuite) TestWorkerValidation() {
	_, err := bnb.SolveParallel(maxDemoTree(), bnb.Maximize, 0, s.opts())
	require.ErrorIs(s.T(), err, bnb.ErrOptionViolation)

	_, err = bnb.SolveParallel(maxDemoTree(), bnb.Direction(9), 2, s.opts())
	require.ErrorIs(s.T(), err, bnb.ErrDirection)
}

// TestIncumbentMonotoneUnderContention: even with concurrent updates the
// recorded incumbent sequence is strictly improving, because replacement
// happens under one guard keyed on strict improvement.
func (s *ParallelSuite) TestIncumbentMonotoneUnderContention() {
	rng := rand.New(rand.NewSource(40))
	root, _ := randomTree(rng, 7, true)

	var seen []int
	opts := s.opts()
	// OnIncumbent runs under the engine's guard, so no extra locking is needed.
	opts.OnIncumbent = func(_ *treeNode, cost int) { seen = append(seen, cost) }

	res, err := bnb.SolveParallel(root, bnb.Maximize, 4, opts)
	require.NoError(s.T(), err)
	require.NotEmpty(s.T(), seen)
	for i := 1; i < len(seen); i++ {
		require.Greater(s.T(), seen[i], seen[i-1])
	}
	require.Equal(s.T(), res.Cost, seen[len(seen)-1])
}

func TestParallelSuite(t *testing.T) {
	suite.Run(t, new(ParallelSuite))
}
