package bnb

import (
	"cmp"
	"context"
	"fmt"
	"time"
)

// Options tunes one solve invocation. The zero value is valid: no budgets,
// background context, no hooks.
//
// Budgets are optional configuration, not a core guarantee: reaching one ends
// the run with State == TerminatedEarly and the best-known incumbent, never
// with an error.
type Options[S any, C cmp.Ordered] struct {
	// Ctx allows cancellation; polled once per loop iteration.
	// Nil means context.Background().
	Ctx context.Context

	// MaxNodes, if > 0, caps the number of Branch calls (expansion budget).
	MaxNodes int

	// TimeLimit, if > 0, is a wall-clock budget for the whole run,
	// checked once per loop iteration.
	TimeLimit time.Duration

	// OnPop is invoked for every subproblem removed from the frontier,
	// before the domination check. Nil disables it.
	OnPop func(node S)

	// OnIncumbent is invoked each time the incumbent is replaced.
	// Observed costs are monotone: non-increasing under Minimize,
	// non-decreasing under Maximize. Nil disables it.
	OnIncumbent func(node S, cost C)

	// OnPrune is invoked for every subproblem discarded because its bound
	// could not strictly beat the incumbent. Nil disables it.
	OnPrune func(node S)
}

// DefaultOptions returns Options with sane defaults:
// background context, no budgets, no hooks.
func DefaultOptions[S any, C cmp.Ordered]() Options[S, C] {
	return Options[S, C]{Ctx: context.Background()}
}

// validate normalizes o in place and reports option violations.
func (o *Options[S, C]) validate() error {
	if o.MaxNodes < 0 {
		return fmt.Errorf("%w: MaxNodes must be non-negative, got %d", ErrOptionViolation, o.MaxNodes)
	}
	if o.TimeLimit < 0 {
		return fmt.Errorf("%w: TimeLimit must be non-negative, got %s", ErrOptionViolation, o.TimeLimit)
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}

	return nil
}
