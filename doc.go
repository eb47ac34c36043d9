// Package bnb is a generic branch-and-bound / backtracking search engine.
//
// Branch-and-bound (and backtracking, its special case) solves an optimization
// problem by recursively decomposing it into subproblems and discarding any
// subproblem whose best obtainable value provably cannot beat the best complete
// solution found so far (the incumbent).
//
// 🚀 What does bnb provide?
//
//   - Subproblem — the capability set a problem-specific node type implements:
//     Bound / Complete / Branch / Cost. Any caller-defined type participates;
//     no forced embedding or base types.
//   - Frontier — the pluggable pending-work container that fixes traversal
//     order: Stack (depth-first), Queue (breadth-first), BestFirst (bound-ordered)
//     and Beam (bounded-width best-first). Any container with the same four
//     operations can be injected via SolveWithFrontier.
//   - The solver loop — incumbent tracking, strict-improvement pruning at pop
//     and push time, optional node / wall-clock budgets, context cancellation,
//     and instrumentation hooks.
//   - SolveParallel — a shared-frontier multi-worker variant with the same
//     pruning and tie-break semantics.
//
// ✨ Caller contract (the engine cannot verify these):
//
//   - Bound must be admissible: the true best objective reachable from a node
//     is never worse than its bound under the configured Direction. A
//     non-admissible bound silently breaks optimality guarantees.
//   - Branch must terminate the decomposition (finite tree). Unbounded
//     branching depth yields non-termination, not an error.
//   - Cost is only meaningful on nodes whose Complete reports true.
//
// Tie-break rule (fixed, deterministic): a complete candidate whose cost
// exactly equals the incumbent's never replaces it — first-found wins.
//
// Organized under subpackages:
//
//	knapsack/ — 0/1 knapsack formulation (worked problem)
//	sat/      — DIMACS CNF parsing + DPLL-as-backtracking formulation
//	cmd/      — the bnb command-line front end
//
// Quick example (maximize over an explicit tree):
//
//	res, err := bnb.Solve(root, bnb.Maximize, bnb.DefaultOptions[*Node, int]())
//	if err != nil { ... }
//	if res.Found {
//		fmt.Println("optimum:", res.Cost)
//	}
package bnb
