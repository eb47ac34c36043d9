package bnb

// Frontier is the ordered container of pending subproblems. It owns its
// contents until popped and fully determines traversal order; the engine is
// agnostic to the ordering policy. Any type satisfying these four operations
// may be injected via SolveWithFrontier, enabling custom strategies
// (bounded beam width, randomized order, ...) without touching the engine.
//
// The built-in implementations are not safe for concurrent use; SolveParallel
// guards its shared frontier itself.
type Frontier[S any] interface {
	// Push adds a pending subproblem.
	Push(s S)

	// Pop removes and returns the next subproblem per container order.
	// ok is false iff the container is empty.
	Pop() (s S, ok bool)

	// Empty reports whether no subproblems are pending.
	Empty() bool

	// Len returns the number of pending subproblems.
	Len() int
}

// Stack is a LIFO Frontier: last pushed, first popped. Injected into the
// engine it yields depth-first traversal, which for typical bound functions
// keeps the frontier small (memory O(depth · branching)).
type Stack[S any] struct {
	nodes []S
}

// NewStack returns an empty LIFO frontier.
func NewStack[S any]() *Stack[S] { return &Stack[S]{} }

// Push appends s on top of the stack.
func (st *Stack[S]) Push(s S) { st.nodes = append(st.nodes, s) }

// Pop removes the most recently pushed subproblem.
func (st *Stack[S]) Pop() (S, bool) {
	if len(st.nodes) == 0 {
		var zero S
		return zero, false
	}
	last := len(st.nodes) - 1
	s := st.nodes[last]
	var zero S
	st.nodes[last] = zero // release the reference
	st.nodes = st.nodes[:last]

	return s, true
}

// Empty reports whether the stack holds no subproblems.
func (st *Stack[S]) Empty() bool { return len(st.nodes) == 0 }

// Len returns the number of pending subproblems.
func (st *Stack[S]) Len() int { return len(st.nodes) }

// Queue is a FIFO Frontier: first pushed, first popped. Injected into the
// engine it yields breadth-first traversal (layer by layer).
type Queue[S any] struct {
	nodes []S
}

// NewQueue returns an empty FIFO frontier.
func NewQueue[S any]() *Queue[S] { return &Queue[S]{} }

// Push appends s at the tail of the queue.
func (q *Queue[S]) Push(s S) { q.nodes = append(q.nodes, s) }

// Pop removes the oldest pending subproblem.
func (q *Queue[S]) Pop() (S, bool) {
	if len(q.nodes) == 0 {
		var zero S
		return zero, false
	}
	s := q.nodes[0]
	var zero S
	q.nodes[0] = zero
	q.nodes = q.nodes[1:]

	return s, true
}

// Empty reports whether the queue holds no subproblems.
func (q *Queue[S]) Empty() bool { return len(q.nodes) == 0 }

// Len returns the number of pending subproblems.
func (q *Queue[S]) Len() int { return len(q.nodes) }
