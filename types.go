package bnb

import (
	"cmp"
	"errors"
)

// Sentinel errors for solver invocation.
var (
	// ErrNilFrontier is returned when SolveWithFrontier receives a nil container.
	ErrNilFrontier = errors.New("bnb: frontier is nil")

	// ErrOptionViolation is returned when Options carry an invalid value
	// (negative budget, malformed limit).
	ErrOptionViolation = errors.New("bnb: invalid option supplied")

	// ErrDirection is returned when the Direction is neither Minimize nor Maximize.
	ErrDirection = errors.New("bnb: unknown optimization direction")
)

// Direction selects the optimization sense of a solve run.
type Direction uint8

const (
	// Minimize treats smaller costs as better.
	Minimize Direction = iota
	// Maximize treats larger costs as better.
	Maximize
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Minimize:
		return "Minimize"
	case Maximize:
		return "Maximize"
	default:
		return "Direction(?)"
	}
}

// better reports whether a is a strict improvement over b under d.
// Strictness is correctness-critical: a bound merely equal to the incumbent
// cannot yield a better solution, and an equal-cost candidate must not
// displace a first-found incumbent.
func better[C cmp.Ordered](d Direction, a, b C) bool {
	if d == Maximize {
		return a > b
	}

	return a < b
}

// State describes how a solve run ended.
type State uint8

const (
	// Running is the zero value; a returned Result never carries it.
	Running State = iota
	// Exhausted means the frontier emptied normally: at that point the
	// incumbent (if any) is a global optimum over the reachable space,
	// provided all bounds were admissible.
	Exhausted
	// TerminatedEarly means an external limit fired (node budget, time
	// budget, or context cancellation). The incumbent, if present, is the
	// best known but possibly suboptimal.
	TerminatedEarly
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Exhausted:
		return "Exhausted"
	case TerminatedEarly:
		return "TerminatedEarly"
	default:
		return "State(?)"
	}
}

// Result is the outcome of one solve invocation.
//
// Found == false with State == Exhausted is a normal, non-error outcome:
// the entire reachable space was infeasible.
type Result[S any, C cmp.Ordered] struct {
	// Best is the incumbent node: the best complete feasible subproblem
	// discovered. Zero value when Found is false.
	Best S

	// Cost is the exact objective value of Best. Meaningless when !Found.
	Cost C

	// Found reports whether any complete feasible solution was recorded.
	Found bool

	// State is Exhausted or TerminatedEarly.
	State State

	// Expanded counts Branch calls performed (the node budget unit).
	Expanded int

	// Pruned counts subproblems discarded by the incumbent domination check,
	// at pop time or before insertion.
	Pruned int
}
