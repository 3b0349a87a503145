package dijkstra_test

import (
	"testing"

	"github.com/lodeston/puzzlekit/core"
	"github.com/lodeston/puzzlekit/dijkstra"
	"github.com/lodeston/puzzlekit/geom"
)

// BenchmarkFindPath_WeightedGrid routes across an M×M lazy grid where the
// cost of entering (x,y) varies with the coordinates.
func BenchmarkFindPath_WeightedGrid(b *testing.B) {
	const M = 100
	terrain := core.WeightedGraph[geom.Point](func(p geom.Point) []core.Edge[geom.Point] {
		edges := make([]core.Edge[geom.Point], 0, 4)
		for _, q := range p.Neighbors4() {
			if q.X >= 0 && q.X < M && q.Y >= 0 && q.Y < M {
				edges = append(edges, core.Edge[geom.Point]{To: q, Weight: int64(1 + (q.X*7+q.Y*13)%5)})
			}
		}
		return edges
	})
	goal := geom.Point{X: M - 1, Y: M - 1}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.FindPath(terrain, geom.Point{}, func(p geom.Point) bool { return p == goal })
	}
}

// BenchmarkFindPaths_Chain floods a weighted chain of N nodes.
func BenchmarkFindPaths_Chain(b *testing.B) {
	const N = 10000
	chain := core.WeightedGraph[int](func(i int) []core.Edge[int] {
		if i+1 >= N {
			return nil
		}
		return []core.Edge[int]{{To: i + 1, Weight: int64(i%3 + 1)}}
	})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dijkstra.FindPaths(chain, 0)
	}
}
