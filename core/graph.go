// File: graph.go
// Role: Non-mutating graph views (filtering combinators and weight adapters).
// Determinism:
//   - Views preserve the neighbor order of the underlying graph.
// Concurrency:
//   - Views hold no state; a view is as re-entrant as the function it wraps.

package core

// FilterNodes returns a view of g whose neighbor lists drop every node
// failing keep. The queried node itself is never filtered — only its
// neighbors are; seeding a traversal at a "forbidden" node still expands it.
//
// Complexity: O(deg) per query on top of g itself.
func (g Graph[N]) FilterNodes(keep func(node N) bool) Graph[N] {
	return func(node N) []N {
		var out []N
		for _, nbr := range g(node) {
			if keep(nbr) {
				out = append(out, nbr)
			}
		}

		return out
	}
}

// FilterEdges returns a view of g whose neighbor lists drop every pair
// (from, to) failing keep. Useful for one-way walls and conditional moves
// where admissibility depends on both endpoints.
func (g Graph[N]) FilterEdges(keep func(from, to N) bool) Graph[N] {
	return func(node N) []N {
		var out []N
		for _, nbr := range g(node) {
			if keep(node, nbr) {
				out = append(out, nbr)
			}
		}

		return out
	}
}

// WithWeight lifts an unweighted graph into a WeightedGraph by computing
// each edge's weight from its endpoints. Neither g nor the result is
// mutated by the conversion; the weight function is invoked lazily, once
// per discovered edge per query.
func (g Graph[N]) WithWeight(weight func(from, to N) int64) WeightedGraph[N] {
	return func(node N) []Edge[N] {
		nbrs := g(node)
		out := make([]Edge[N], 0, len(nbrs))
		for _, nbr := range nbrs {
			out = append(out, Edge[N]{To: nbr, Weight: weight(node, nbr)})
		}

		return out
	}
}

// FilterNodes returns a view of g whose edge lists drop every edge leading
// to a node failing keep. The queried node itself is never filtered.
func (g WeightedGraph[N]) FilterNodes(keep func(node N) bool) WeightedGraph[N] {
	return func(node N) []Edge[N] {
		var out []Edge[N]
		for _, e := range g(node) {
			if keep(e.To) {
				out = append(out, e)
			}
		}

		return out
	}
}

// FilterEdges returns a view of g whose edge lists drop every edge
// (from, to, weight) failing keep.
func (g WeightedGraph[N]) FilterEdges(keep func(from, to N, weight int64) bool) WeightedGraph[N] {
	return func(node N) []Edge[N] {
		var out []Edge[N]
		for _, e := range g(node) {
			if keep(node, e.To, e.Weight) {
				out = append(out, e)
			}
		}

		return out
	}
}

// Unweighted returns a view of g that forgets edge weights, suitable for
// handing a weighted graph to bfs when only hop counts matter.
func (g WeightedGraph[N]) Unweighted() Graph[N] {
	return func(node N) []N {
		edges := g(node)
		out := make([]N, 0, len(edges))
		for _, e := range edges {
			out = append(out, e.To)
		}

		return out
	}
}
