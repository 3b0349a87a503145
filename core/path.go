// File: path.go
// Role: Persistent backward-linked path records shared by bfs, dijkstra
// and spfa.
// Invariants:
//   - A Path is immutable after creation; an "update" is a new Path
//     wrapping the superseded one as predecessor.
//   - Dist equals Prev().Dist() plus the weight of the last edge
//     (plus one for bfs); the chain returned to callers is monotonically
//     non-decreasing in distance.

package core

import "sync"

// Path records one discovered route from some source node to End.
// Paths form a persistent singly-linked chain: many frontier candidates
// share a common prefix instead of copying it, so branching is O(1).
type Path[N comparable] struct {
	end  N
	dist int64
	prev *Path[N]

	// route caches the Nodes() expansion; computed at most once.
	once  sync.Once
	route []N
}

// NewPath creates the route record for end, reached at cumulative distance
// dist via prev. A nil prev marks end as a source node. The traversal
// packages are the intended callers; hand-built chains must keep dist
// consistent with the edges they claim to traverse.
func NewPath[N comparable](end N, dist int64, prev *Path[N]) *Path[N] {
	return &Path[N]{end: end, dist: dist, prev: prev}
}

// End returns the node this path terminates at. O(1).
func (p *Path[N]) End() N { return p.end }

// Dist returns the cumulative distance from the nearest source: total edge
// weight for weighted traversals, edge count for bfs. O(1).
func (p *Path[N]) Dist() int64 { return p.dist }

// Prev returns the path that reached this path's predecessor, or nil if
// End is itself a source. O(1).
func (p *Path[N]) Prev() *Path[N] { return p.prev }

// Edges returns the number of edges traversed along the path.
func (p *Path[N]) Edges() int { return len(p.Nodes()) - 1 }

// Nodes returns the full route in order, from the nearest source to End.
// The first call walks the predecessor chain and costs O(length); the
// expansion is memoized, so subsequent calls are O(1) and return the same
// slice. Callers must not modify the returned slice.
func (p *Path[N]) Nodes() []N {
	p.once.Do(func() {
		n := 0
		for q := p; q != nil; q = q.prev {
			n++
		}
		route := make([]N, n)
		for q := p; q != nil; q = q.prev {
			n--
			route[n] = q.end
		}
		p.route = route
	})

	return p.route
}
