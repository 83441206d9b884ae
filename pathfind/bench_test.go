package pathfind_test

import (
	"testing"

	"github.com/katalvlaran/passivetree/pathfind"
	"github.com/katalvlaran/passivetree/tree"
	"github.com/katalvlaran/passivetree/treegen"
)

// BenchmarkSearch_RandomTree measures one multi-source search on a
// 5000-node random tree seeded from a 50-node allocated cluster.
func BenchmarkSearch_RandomTree(b *testing.B) {
	def := treegen.MustGenerate([]treegen.Option{treegen.WithSeed(1)}, treegen.RandomTree(5000))
	g, err := tree.Build(def)
	if err != nil {
		b.Fatal(err)
	}
	res, err := pathfind.Search(g, []string{"0"}, pathfind.WithMaxDepth(6))
	if err != nil {
		b.Fatal(err)
	}
	allocated := res.Order
	if len(allocated) > 50 {
		allocated = allocated[:50]
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pathfind.Search(g, allocated)
	}
}

// BenchmarkSearch_Grid measures a single-source search on a 100×100 lattice.
func BenchmarkSearch_Grid(b *testing.B) {
	g, err := tree.Build(treegen.MustGenerate(nil, treegen.Grid(100, 100)))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pathfind.Search(g, []string{"0,0"})
	}
}
