package knapsack

import (
	"slices"
	"sort"

	"github.com/katalvlaran/bnb"
)

// Node is one subproblem of the 0/1 knapsack search space. It implements
// bnb.Subproblem[*Node, uint64] under Maximize.
//
// Internal invariant: if itemsLeft is non-empty, its last element fits the
// remaining capacity (too-heavy tail items are popped eagerly). All decision
// methods rely on it.
type Node struct {
	// value collected by the decisions taken so far.
	value uint64

	// capacityLeft after the decisions taken so far.
	capacityLeft uint64

	// itemsLeft still undecided, sorted by value/weight ratio in ascending
	// order: the most valuable-per-weight item is last.
	itemsLeft []Item

	// itemsIn already packed (kept only to restore the answer).
	itemsIn []Item
}

// New builds the root subproblem for the given capacity and items.
// Items whose weight exceeds the capacity can never be packed and are
// discarded up front.
func New(capacity uint64, items []Item) *Node {
	n := &Node{capacityLeft: capacity, itemsLeft: slices.Clone(items)}
	// Ascending ratio, best item last. Cross-multiplication avoids float drift;
	// the stable sort keeps equal-ratio items in input order for determinism.
	sort.SliceStable(n.itemsLeft, func(i, j int) bool {
		a, b := n.itemsLeft[i], n.itemsLeft[j]
		return a.Value*b.Weight < b.Value*a.Weight
	})
	n.popTooHeavy()

	return n
}

// popTooHeavy restores the invariant after a capacity or tail change.
func (n *Node) popTooHeavy() {
	for len(n.itemsLeft) > 0 && n.itemsLeft[len(n.itemsLeft)-1].Weight > n.capacityLeft {
		n.itemsLeft = n.itemsLeft[:len(n.itemsLeft)-1]
	}
}

// clone produces an independently owned copy for branching.
func (n *Node) clone() *Node {
	return &Node{
		value:        n.value,
		capacityLeft: n.capacityLeft,
		itemsLeft:    slices.Clone(n.itemsLeft),
		itemsIn:      slices.Clone(n.itemsIn),
	}
}

// includeNext packs the best remaining item.
func (n *Node) includeNext() {
	last := len(n.itemsLeft) - 1
	item := n.itemsLeft[last]
	n.value += item.Value
	n.capacityLeft -= item.Weight
	n.itemsIn = append(n.itemsIn, item)
	n.itemsLeft = n.itemsLeft[:last]
	n.popTooHeavy()
}

// dropNext discards the best remaining item.
func (n *Node) dropNext() {
	n.itemsLeft = n.itemsLeft[:len(n.itemsLeft)-1]
	n.popTooHeavy()
}

// Complete reports whether no undecided item fits: the packing is final.
func (n *Node) Complete() bool { return len(n.itemsLeft) == 0 }

// Cost returns the packed value. Exact once Complete.
func (n *Node) Cost() uint64 { return n.value }

// Branch decides the best remaining item both ways: packed and discarded.
func (n *Node) Branch() []*Node {
	include := n.clone()
	include.includeNext()
	exclude := n.clone()
	exclude.dropNext()

	return []*Node{include, exclude}
}

// Bound returns the greedy relaxation upper bound: take remaining fitting
// items in descending ratio order; the first item that would overflow is
// claimed at full value, which bounds the optimum of any larger knapsack
// and therefore of this one.
func (n *Node) Bound() uint64 {
	val, capacity := n.value, n.capacityLeft
	for i := len(n.itemsLeft) - 1; i >= 0; i-- {
		item := n.itemsLeft[i]
		if item.Weight > n.capacityLeft {
			// Can never be packed from this node on.
			continue
		}
		if item.Weight < capacity {
			val += item.Value
			capacity -= item.Weight
			continue
		}

		return val + item.Value
	}

	return val
}

// Items returns the packed items of this node.
func (n *Node) Items() []Item { return n.itemsIn }

// Solve packs items into a knapsack of the given capacity, maximizing total
// value. It runs best-first branch-and-bound to exhaustion, so the returned
// packing is optimal. The empty packing is always feasible, hence a solution
// always exists.
func Solve(capacity uint64, items []Item) ([]Item, uint64, error) {
	res, err := bnb.Solve(New(capacity, items), bnb.Maximize, bnb.DefaultOptions[*Node, uint64]())
	if err != nil {
		return nil, 0, err
	}

	return res.Best.Items(), res.Cost, nil
}
