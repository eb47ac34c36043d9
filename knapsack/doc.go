// Package knapsack formulates the 0/1 knapsack problem for the bnb engine.
//
// A Node represents the subspace of packings still reachable after a series
// of include/exclude decisions. Items are sorted by value/weight ratio at
// construction, branching always decides the best remaining item first, and
// the bound is the classic greedy relaxation: pack remaining items greedily
// by ratio and, on the first overflow, claim the overflowing item's full
// value — the optimum of a roomier knapsack, hence an admissible upper bound.
//
// Solve runs the formulation to exhaustion under Maximize with the default
// best-first frontier and returns a provably optimal packing.
package knapsack
