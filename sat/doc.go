// Package sat formulates boolean satisfiability (CNF) for the bnb engine,
// demonstrating backtracking — the branch-and-bound special case where
// pruning only ever discards proven-infeasible branches.
//
// The trick is a degenerate score: every bound and every solution cost is 0.
// Decomposition alone drives the search (DPLL-style: unit propagation to a
// fixpoint, then case-split on the most frequent unassigned variable), and as
// soon as the first satisfying assignment becomes the incumbent, no remaining
// bound is a strict improvement, so the engine drains the frontier without
// expanding another node.
//
// Input is the DIMACS CNF format:
//
//	c a comment
//	p cnf 2 2
//	1 2 0
//	1 -2 0
//
// ParseDIMACS reads it, Solve returns a satisfying assignment or nil (UNSAT).
package sat
