package sat

import (
	"github.com/katalvlaran/bnb"
)

// Solve searches for a satisfying assignment of f with depth-first
// backtracking. The returned slice is 1-indexed (assignment[v] is the value
// of variable v; index 0 is unused); variables left unconstrained by the
// found solution are false. Returns nil iff the formula is unsatisfiable.
func Solve(f *Formula) []bool {
	root := newNode(f, make([]int8, f.Vars+1), 0)

	res, err := bnb.SolveDepthFirst(root, bnb.Maximize, bnb.DefaultOptions[*node, int]())
	if err != nil || !res.Found {
		// The only possible error is an option violation, which defaults
		// cannot produce.
		return nil
	}

	assignment := make([]bool, f.Vars+1)
	for v := 1; v <= f.Vars; v++ {
		assignment[v] = res.Best.assign[v] == 1
	}

	return assignment
}

// Verify reports whether assignment (1-indexed, as returned by Solve)
// satisfies every clause of f.
func Verify(f *Formula, assignment []bool) bool {
	if len(assignment) < f.Vars+1 {
		return false
	}
	for _, clause := range f.Clauses {
		sat := false
		for _, lit := range clause {
			if (lit > 0 && assignment[lit]) || (lit < 0 && !assignment[-lit]) {
				sat = true
				break
			}
		}
		if !sat {
			return false
		}
	}

	return true
}
