// Package core defines the shared abstractions of the puzzlekit traversal
// engine: lazy graph contracts, filtering combinators, the persistent Path
// type, and the multi-source seeding policy used by every algorithm.
//
// What
//
//   - Graph[N]:         node → neighbors, for unweighted traversal (bfs).
//   - WeightedGraph[N]: node → (neighbor, weight) edges (dijkstra, spfa).
//   - FilterNodes / FilterEdges: derived views that narrow a graph without
//     materializing or mutating it.
//   - WithWeight: lift an unweighted graph into a weighted one.
//   - Path[N]: an immutable, backward-linked record of a discovered route
//     (end node, cumulative distance, link to the predecessor path).
//   - Seed: turn a source collection into the initial frontier and result
//     map shared by all three algorithms.
//
// Why
//
//	Puzzle state spaces are frequently too large — or conceptually
//	infinite — to build up front. Modeling a graph as a plain function
//	lets callers describe "the neighbors of this state" and nothing
//	else; the algorithms only ever ask for as many nodes as they
//	actually expand. Backward-linked paths make "branch and keep both
//	candidates" an O(1) operation: many paths share one long prefix
//	instead of copying it.
//
// Contracts
//
//   - A node is any comparable value: a vertex label, a grid cell, an
//     encoded combinatorial state.
//   - The neighbor sequence returned for a node must be finite; the node
//     space as a whole need not be.
//   - For undirected graphs, symmetry (v reachable from u ⇒ u reachable
//     from v with the same weight) is a caller obligation, not enforced.
//   - Graph values are stateless and re-entrant; derived views wrap the
//     original function without touching shared state, so concurrent
//     traversals over the same view are safe as long as the underlying
//     discovery function is itself pure.
//
// Errors
//
//   - ErrNoSources if a traversal is seeded from an empty source
//     collection.
//
// See the bfs, dijkstra and spfa packages for the algorithms built on
// these contracts.
package core
