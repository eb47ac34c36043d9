package bnb_test

import (
	"math/rand"
	"strconv"
)

// treeNode is the explicit-tree Subproblem used throughout the engine tests:
// the whole search space is materialized up front, so every property
// (optimum, visit order, pruning) can be checked against plain tree walks.
type treeNode struct {
	id       string
	bound    int
	cost     int // exact objective; meaningful only when complete
	complete bool
	children []*treeNode

	// branchLog, when non-nil, records every node that gets branched.
	// Shared by the whole tree via instrument.
	branchLog *[]*treeNode
}

func (n *treeNode) Bound() int { return n.bound }

func (n *treeNode) Complete() bool { return n.complete }

func (n *treeNode) Cost() int { return n.cost }

func (n *treeNode) Branch() []*treeNode {
	if n.branchLog != nil {
		*n.branchLog = append(*n.branchLog, n)
	}

	return n.children
}

// leaf builds a terminal candidate with a tight bound (bound == cost).
func leaf(id string, cost int) *treeNode {
	return &treeNode{id: id, bound: cost, cost: cost, complete: true}
}

// inner builds an intermediate node with an explicit bound.
func inner(id string, bound int, children ...*treeNode) *treeNode {
	return &treeNode{id: id, bound: bound, children: children}
}

// instrument attaches a shared branch log to every node of the tree.
func instrument(root *treeNode, log *[]*treeNode) {
	root.branchLog = log
	for _, c := range root.children {
		instrument(c, log)
	}
}

// maxDemoTree reproduces the canonical demo space: a maximization tree whose
// optimum leaf has cost 5, with several subtrees dominated by bound.
//
//	           root(8)
//	       /           \
//	   p1(5)           p2(7)
//	   /   \           /   \
//	l1(1) p3(4)     l0(0) p4(6)
//	       /  \            /  \
//	    l2(2) l3(3)     l4(4) l5(5)
func maxDemoTree() *treeNode {
	p3 := inner("p3", 4, leaf("l2", 2), leaf("l3", 3))
	p1 := inner("p1", 5, leaf("l1", 1), p3)
	p4 := inner("p4", 6, leaf("l4", 4), leaf("l5", 5))
	p2 := inner("p2", 7, leaf("l0", 0), p4)

	return inner("root", 8, p1, p2)
}

// infeasibleRoot is a non-complete node that branches into nothing:
// the whole reachable space is infeasible.
func infeasibleRoot() *treeNode {
	return &treeNode{id: "dead", bound: 100}
}

// randomTree generates a reproducible search tree of the given depth with
// tight admissible bounds for dir: every internal bound equals the best leaf
// cost in its subtree. Returns the root and the brute-force optimum.
func randomTree(rng *rand.Rand, depth int, maximize bool) (root *treeNode, opt int) {
	id := 0

	var build func(d int) (*treeNode, int)
	build = func(d int) (*treeNode, int) {
		id++
		if d == 0 {
			c := rng.Intn(1000)
			return leaf(strconv.Itoa(id), c), c
		}
		width := 2 + rng.Intn(2)
		children := make([]*treeNode, 0, width)
		best := 0
		for i := 0; i < width; i++ {
			child, childBest := build(d - 1)
			children = append(children, child)
			if i == 0 || (maximize && childBest > best) || (!maximize && childBest < best) {
				best = childBest
			}
		}

		return inner(strconv.Itoa(id), best, children...), best
	}

	root, opt = build(depth)

	return root, opt
}

// bruteForceBest walks the whole tree and returns the best leaf cost.
func bruteForceBest(n *treeNode, maximize bool) (int, bool) {
	if n.complete {
		return n.cost, true
	}
	best, found := 0, false
	for _, c := range n.children {
		cb, ok := bruteForceBest(c, maximize)
		if !ok {
			continue
		}
		if !found || (maximize && cb > best) || (!maximize && cb < best) {
			best, found = cb, true
		}
	}

	return best, found
}
