package bnb

import (
	"cmp"
	"container/heap"
	"sort"
)

// boundHeap adapts a node slice to container/heap, ordered so that the node
// with the best Bound under the configured Direction surfaces first.
type boundHeap[S Subproblem[S, C], C cmp.Ordered] struct {
	nodes []S
	dir   Direction
}

func (h *boundHeap[S, C]) Len() int { return len(h.nodes) }

func (h *boundHeap[S, C]) Less(i, j int) bool {
	return better(h.dir, h.nodes[i].Bound(), h.nodes[j].Bound())
}

func (h *boundHeap[S, C]) Swap(i, j int) { h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i] }

func (h *boundHeap[S, C]) Push(x any) { h.nodes = append(h.nodes, x.(S)) }

func (h *boundHeap[S, C]) Pop() any {
	last := len(h.nodes) - 1
	s := h.nodes[last]
	var zero S
	h.nodes[last] = zero
	h.nodes = h.nodes[:last]

	return s
}

// BestFirst is a bound-ordered priority Frontier: Pop returns the pending
// subproblem with the best Bound under the configured Direction (smallest
// bound under Minimize, largest under Maximize). Injected into the engine
// it yields best-first (greedy) traversal.
//
// The pop order among subproblems with equal bounds is unspecified.
type BestFirst[S Subproblem[S, C], C cmp.Ordered] struct {
	h boundHeap[S, C]
}

// NewBestFirst returns an empty bound-ordered frontier for dir.
func NewBestFirst[S Subproblem[S, C], C cmp.Ordered](dir Direction) *BestFirst[S, C] {
	return &BestFirst[S, C]{h: boundHeap[S, C]{dir: dir}}
}

// Push inserts s, O(log n).
func (b *BestFirst[S, C]) Push(s S) { heap.Push(&b.h, s) }

// Pop removes the best-bound subproblem, O(log n).
func (b *BestFirst[S, C]) Pop() (S, bool) {
	if len(b.h.nodes) == 0 {
		var zero S
		return zero, false
	}

	return heap.Pop(&b.h).(S), true
}

// Empty reports whether the frontier holds no subproblems.
func (b *BestFirst[S, C]) Empty() bool { return len(b.h.nodes) == 0 }

// Len returns the number of pending subproblems.
func (b *BestFirst[S, C]) Len() int { return len(b.h.nodes) }

// Beam is a bounded-width variant of BestFirst: it retains at most Width
// pending subproblems and discards the worst-bound entry on overflow.
// Beam search trades completeness for memory — dropped subtrees are never
// revisited, so the engine may miss the global optimum. Pop still returns
// the best retained bound first.
type Beam[S Subproblem[S, C], C cmp.Ordered] struct {
	dir   Direction
	width int
	nodes []S // sorted by bound, worst first, best last
}

// NewBeam returns a bound-ordered frontier retaining at most width entries.
// A width below 1 is clamped to 1.
func NewBeam[S Subproblem[S, C], C cmp.Ordered](dir Direction, width int) *Beam[S, C] {
	if width < 1 {
		width = 1
	}

	return &Beam[S, C]{dir: dir, width: width}
}

// Push inserts s in bound order; if the beam is full the worst entry
// (possibly s itself) is dropped. O(width) per insertion.
func (b *Beam[S, C]) Push(s S) {
	sb := s.Bound()
	// First index whose bound strictly beats sb; s is inserted just before it.
	i := sort.Search(len(b.nodes), func(i int) bool {
		return better(b.dir, b.nodes[i].Bound(), sb)
	})
	b.nodes = append(b.nodes, s)
	copy(b.nodes[i+1:], b.nodes[i:])
	b.nodes[i] = s
	if len(b.nodes) > b.width {
		var zero S
		b.nodes[0] = zero
		b.nodes = b.nodes[1:]
	}
}

// Pop removes the best-bound retained subproblem.
func (b *Beam[S, C]) Pop() (S, bool) {
	if len(b.nodes) == 0 {
		var zero S
		return zero, false
	}
	last := len(b.nodes) - 1
	s := b.nodes[last]
	var zero S
	b.nodes[last] = zero
	b.nodes = b.nodes[:last]

	return s, true
}

// Empty reports whether the beam holds no subproblems.
func (b *Beam[S, C]) Empty() bool { return len(b.nodes) == 0 }

// Len returns the number of retained subproblems.
func (b *Beam[S, C]) Len() int { return len(b.nodes) }
