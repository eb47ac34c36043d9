package bnb

import "cmp"

// Subproblem is the capability set a problem-specific node type must implement
// to be solvable by this engine. S is the concrete node type itself
// (self-referential, so Branch returns concrete children without casts) and
// C is the totally ordered cost type of the objective.
//
// Ownership: a node moves into the frontier when pushed and is exclusively
// owned by it until popped. Branch may consume the receiver — the engine
// discards a branched parent and never touches it again. A node reported
// Complete is retained as a candidate incumbent, so it must keep representing
// the same solution afterwards.
type Subproblem[S any, C cmp.Ordered] interface {
	// Bound returns an admissible optimistic estimate of the best objective
	// value reachable from this node: under Minimize no descendant costs less,
	// under Maximize no descendant costs more. Admissibility is a caller
	// contract; the engine cannot verify it, and pruning against a
	// non-admissible bound silently loses optimal solutions.
	Bound() C

	// Complete reports whether this node is a terminal candidate solution.
	Complete() bool

	// Branch produces the finite set of child subproblems. An empty (or nil)
	// result signals a dead end: the subspace is infeasible and is dropped.
	// Branch is only invoked on nodes whose Complete reports false.
	Branch() []S

	// Cost returns the exact objective value of this node's solution.
	// Valid only when Complete reports true.
	Cost() C
}
