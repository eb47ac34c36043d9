package bnb

import (
	"cmp"
	"time"
)

// Solve runs branch-and-bound from root using the default best-first frontier:
// on every iteration the pending subproblem with the most promising bound is
// examined next, which for typical bound functions tightens the incumbent
// fastest.
//
// Returns ErrDirection or an ErrOptionViolation-wrapped error on malformed
// inputs; every other outcome, including "no feasible solution exists", is a
// normal Result.
func Solve[S Subproblem[S, C], C cmp.Ordered](root S, dir Direction, opts Options[S, C]) (Result[S, C], error) {
	return SolveWithFrontier(root, dir, NewBestFirst[S, C](dir), opts)
}

// SolveDepthFirst runs branch-and-bound from root with LIFO (depth-first)
// traversal: every subtree is descended to its leaves before siblings are
// examined. Children of one Branch call are popped in reverse of the order
// Branch returned them.
func SolveDepthFirst[S Subproblem[S, C], C cmp.Ordered](root S, dir Direction, opts Options[S, C]) (Result[S, C], error) {
	return SolveWithFrontier(root, dir, NewStack[S](), opts)
}

// SolveBreadthFirst runs branch-and-bound from root with FIFO (breadth-first)
// traversal: the subproblem tree is examined layer by layer.
func SolveBreadthFirst[S Subproblem[S, C], C cmp.Ordered](root S, dir Direction, opts Options[S, C]) (Result[S, C], error) {
	return SolveWithFrontier(root, dir, NewQueue[S](), opts)
}

// SolveWithFrontier is the generic engine entry point: it accepts any
// caller-supplied Frontier, which fixes the traversal order and may implement
// additional policies (bounded retention, randomized order, ...).
//
// Per iteration the engine: checks the external limits (context, wall-clock
// and node budgets) once; pops the next subproblem per frontier order;
// discards it unless its bound strictly beats the incumbent (the incumbent
// may have improved since insertion, so this pop-time re-check is required
// even though dominated children are already filtered at push time);
// records a complete node as the new incumbent iff its cost is a strict
// improvement (an equal cost keeps the first-found incumbent); otherwise
// branches it and pushes the non-dominated children.
//
// Run to Exhausted with admissible bounds, the returned incumbent is a global
// optimum over the reachable space, and Found == false correctly reflects a
// wholly infeasible space.
func SolveWithFrontier[S Subproblem[S, C], C cmp.Ordered](root S, dir Direction, fr Frontier[S], opts Options[S, C]) (Result[S, C], error) {
	var res Result[S, C]
	if fr == nil {
		return res, ErrNilFrontier
	}
	if dir != Minimize && dir != Maximize {
		return res, ErrDirection
	}
	if err := opts.validate(); err != nil {
		return res, err
	}

	var deadline time.Time
	useDeadline := opts.TimeLimit > 0
	if useDeadline {
		deadline = time.Now().Add(opts.TimeLimit)
	}

	fr.Push(root)

	for !fr.Empty() {
		// External termination conditions, once per iteration.
		select {
		case <-opts.Ctx.Done():
			res.State = TerminatedEarly
			return res, nil
		default:
		}
		if useDeadline && time.Now().After(deadline) {
			res.State = TerminatedEarly
			return res, nil
		}
		if opts.MaxNodes > 0 && res.Expanded >= opts.MaxNodes {
			res.State = TerminatedEarly
			return res, nil
		}

		node, ok := fr.Pop()
		if !ok {
			break
		}
		if opts.OnPop != nil {
			opts.OnPop(node)
		}

		// Pop-time domination re-check against the current incumbent.
		if res.Found && !better(dir, node.Bound(), res.Cost) {
			res.Pruned++
			if opts.OnPrune != nil {
				opts.OnPrune(node)
			}
			continue
		}

		// Terminal candidate: record iff strictly better (first-found wins ties).
		if node.Complete() {
			if c := node.Cost(); !res.Found || better(dir, c, res.Cost) {
				res.Best, res.Cost, res.Found = node, c, true
				if opts.OnIncumbent != nil {
					opts.OnIncumbent(node, c)
				}
			}
			continue
		}

		// Intermediate subproblem: branch, filter dominated children eagerly.
		res.Expanded++
		for _, child := range node.Branch() {
			if res.Found && !better(dir, child.Bound(), res.Cost) {
				res.Pruned++
				if opts.OnPrune != nil {
					opts.OnPrune(child)
				}
				continue
			}
			fr.Push(child)
		}
	}

	res.State = Exhausted

	return res, nil
}
