package sat

// node is one partial assignment of the DPLL search. It implements
// bnb.Subproblem[*node, int] with a degenerate score: Bound and Cost are
// always 0, which turns branch-and-bound into pure backtracking (see the
// package comment).
//
// Unit propagation runs to a fixpoint at construction, so a node is always
// in one of three settled states: satisfied (Complete), conflicting
// (Branch returns nothing) or open (two children per the next undecided
// variable).
type node struct {
	f *Formula

	// assign is 1-indexed: +1 true, -1 false, 0 unassigned.
	assign []int8

	// next indexes f.varsByFrequency: earlier variables are already decided
	// (by branching or propagation).
	next int

	satisfied bool
	conflict  bool
}

func newNode(f *Formula, assign []int8, next int) *node {
	n := &node{f: f, assign: assign, next: next}
	n.propagate()

	return n
}

// evalClause inspects one clause under assign: sat if any literal holds;
// otherwise unit is the sole unassigned literal (when open == 1) and open
// counts the unassigned literals. open == 0 with sat == false is a conflict.
func evalClause(clause []int, assign []int8) (sat bool, unit int, open int) {
	for _, lit := range clause {
		switch a := assign[abs(lit)]; {
		case (lit > 0 && a == 1) || (lit < 0 && a == -1):
			return true, 0, 0
		case a == 0:
			unit = lit
			open++
		}
	}

	return false, unit, open
}

// propagate assigns forced (unit) literals until nothing changes, then
// settles the node state. Eager unit assignments may falsify other clauses;
// the next pass detects that as a conflict.
func (n *node) propagate() {
	for {
		changed := false
		undecided := 0
		for _, clause := range n.f.Clauses {
			sat, unit, open := evalClause(clause, n.assign)
			if sat {
				continue
			}
			switch open {
			case 0:
				n.conflict = true
				return
			case 1:
				if unit > 0 {
					n.assign[unit] = 1
				} else {
					n.assign[-unit] = -1
				}
				changed = true
			default:
				undecided++
			}
		}
		if !changed {
			n.satisfied = undecided == 0
			return
		}
	}
}

// Bound is constant: solutions are not compared, only found.
func (n *node) Bound() int { return 0 }

// Cost is constant, see Bound.
func (n *node) Cost() int { return 0 }

// Complete reports whether every clause is satisfied.
func (n *node) Complete() bool { return n.satisfied }

// Branch case-splits the next undecided variable in frequency order.
// A conflicting node is a dead end and yields no children.
func (n *node) Branch() []*node {
	if n.conflict {
		return nil
	}

	idx := n.next
	for idx < len(n.f.varsByFrequency) && n.assign[n.f.varsByFrequency[idx]] != 0 {
		idx++ // decided by propagation, skip
	}
	if idx == len(n.f.varsByFrequency) {
		// Fully assigned but neither satisfied nor conflicting cannot happen
		// after propagate; treat as a dead end.
		return nil
	}
	v := n.f.varsByFrequency[idx]

	asTrue := make([]int8, len(n.assign))
	copy(asTrue, n.assign)
	asTrue[v] = 1

	asFalse := make([]int8, len(n.assign))
	copy(asFalse, n.assign)
	asFalse[v] = -1

	return []*node{
		newNode(n.f, asTrue, idx+1),
		newNode(n.f, asFalse, idx+1),
	}
}
