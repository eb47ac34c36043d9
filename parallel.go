package bnb

import (
	"cmp"
	"fmt"
	"sync"
	"time"
)

// SolveParallel runs branch-and-bound from root with the given number of
// workers popping from one shared best-first frontier. Pruning and the
// first-found tie-break keep the same semantics as the sequential engine:
// the incumbent is replaced under a single guard only on strict improvement,
// so an equal-cost candidate never displaces it, under contention included.
//
// External limits (context, wall-clock and node budgets) raise a shared stop
// flag polled once per worker iteration; once set, workers stop popping and
// pushing and the run drains to TerminatedEarly. The node budget counts
// concurrent in-flight expansions, so it may be overshot by up to workers-1.
//
// Unlike the sequential entry points, the pop order among equal bounds —
// and therefore which of several cost-tied optima becomes the incumbent —
// depends on scheduling. The optimal cost itself does not. Hooks may be
// invoked from multiple goroutines concurrently.
func SolveParallel[S Subproblem[S, C], C cmp.Ordered](root S, dir Direction, workers int, opts Options[S, C]) (Result[S, C], error) {
	var res Result[S, C]
	if dir != Minimize && dir != Maximize {
		return res, ErrDirection
	}
	if workers < 1 {
		return res, fmt.Errorf("%w: workers must be positive, got %d", ErrOptionViolation, workers)
	}
	if err := opts.validate(); err != nil {
		return res, err
	}

	sh := &parallelRun[S, C]{
		dir:  dir,
		opts: opts,
		fr:   NewBestFirst[S, C](dir),
	}
	sh.cond = sync.NewCond(&sh.mu)
	if opts.TimeLimit > 0 {
		sh.useDeadline = true
		sh.deadline = time.Now().Add(opts.TimeLimit)
	}
	sh.fr.Push(root)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sh.work()
		}()
	}
	wg.Wait()

	if sh.stopped {
		sh.res.State = TerminatedEarly
	} else {
		sh.res.State = Exhausted
	}

	return sh.res, nil
}

// parallelRun is the state shared by all workers of one SolveParallel call.
// fr, inFlight, stopped and res are guarded by mu; cond signals frontier or
// incumbent changes to waiting workers.
type parallelRun[S Subproblem[S, C], C cmp.Ordered] struct {
	dir         Direction
	opts        Options[S, C]
	useDeadline bool
	deadline    time.Time

	mu       sync.Mutex
	cond     *sync.Cond
	fr       *BestFirst[S, C]
	inFlight int
	stopped  bool
	res      Result[S, C]
}

// work is one worker's loop. A worker blocks when the frontier is empty while
// siblings still hold in-flight nodes (their children may yet arrive), and
// exits once the frontier is drained with nothing in flight, or on stop.
func (sh *parallelRun[S, C]) work() {
	for {
		// External termination conditions, once per iteration.
		limit := false
		select {
		case <-sh.opts.Ctx.Done():
			limit = true
		default:
		}
		if !limit && sh.useDeadline && time.Now().After(sh.deadline) {
			limit = true
		}

		sh.mu.Lock()
		if limit {
			sh.stopped = true
		}
		for !sh.stopped && sh.fr.Empty() && sh.inFlight > 0 {
			sh.cond.Wait()
		}
		if sh.stopped || sh.fr.Empty() {
			sh.mu.Unlock()
			sh.cond.Broadcast()
			return
		}
		node, _ := sh.fr.Pop()
		sh.inFlight++
		found, incumbent := sh.res.Found, sh.res.Cost
		sh.mu.Unlock()

		if sh.opts.OnPop != nil {
			sh.opts.OnPop(node)
		}

		// Pop-time domination check against the incumbent snapshot.
		if found && !better(sh.dir, node.Bound(), incumbent) {
			sh.mu.Lock()
			sh.res.Pruned++
			sh.inFlight--
			sh.mu.Unlock()
			sh.cond.Broadcast()
			if sh.opts.OnPrune != nil {
				sh.opts.OnPrune(node)
			}
			continue
		}

		if node.Complete() {
			c := node.Cost()
			sh.mu.Lock()
			if !sh.res.Found || better(sh.dir, c, sh.res.Cost) {
				sh.res.Best, sh.res.Cost, sh.res.Found = node, c, true
				// Invoked under the guard so observers see replacements in
				// their true, strictly improving order. The hook must not
				// call back into the solver.
				if sh.opts.OnIncumbent != nil {
					sh.opts.OnIncumbent(node, c)
				}
			}
			sh.inFlight--
			sh.mu.Unlock()
			sh.cond.Broadcast()
			continue
		}

		// Branch outside the lock: the caller's expensive call must not
		// serialize the other workers.
		children := node.Branch()

		var prunedChildren []S
		sh.mu.Lock()
		sh.res.Expanded++
		if sh.opts.MaxNodes > 0 && sh.res.Expanded >= sh.opts.MaxNodes {
			sh.stopped = true
		}
		if !sh.stopped {
			for _, child := range children {
				if sh.res.Found && !better(sh.dir, child.Bound(), sh.res.Cost) {
					sh.res.Pruned++
					prunedChildren = append(prunedChildren, child)
					continue
				}
				sh.fr.Push(child)
			}
		}
		sh.inFlight--
		sh.mu.Unlock()
		sh.cond.Broadcast()

		if sh.opts.OnPrune != nil {
			for _, child := range prunedChildren {
				sh.opts.OnPrune(child)
			}
		}
	}
}
