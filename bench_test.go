package bnb_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/bnb"
)

// benchTree is built once; the engine never mutates nodes, so the same tree
// is reusable across iterations.
func benchTree(depth int) *treeNode {
	rng := rand.New(rand.NewSource(1))
	root, _ := randomTree(rng, depth, true)

	return root
}

func BenchmarkSolveBestFirst(b *testing.B) {
	root := benchTree(10)
	opts := bnb.DefaultOptions[*treeNode, int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bnb.Solve(root, bnb.Maximize, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolveDepthFirst(b *testing.B) {
	root := benchTree(10)
	opts := bnb.DefaultOptions[*treeNode, int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bnb.SolveDepthFirst(root, bnb.Maximize, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolveParallel(b *testing.B) {
	root := benchTree(10)
	opts := bnb.DefaultOptions[*treeNode, int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bnb.SolveParallel(root, bnb.Maximize, 4, opts); err != nil {
			b.Fatal(err)
		}
	}
}
