// Package core defines shared types and sentinel errors
// for the puzzlekit traversal engine.
package core

import "errors"

// ErrNoSources is returned when a traversal is asked to start from an
// empty source collection. An empty seed is a caller error: it would
// otherwise silently produce an empty result map.
var ErrNoSources = errors.New("core: at least one source node required")

// Edge is one outgoing connection of a node: the endpoint it leads to and
// the weight of traversing it. Weight is a signed 64-bit integer; negative
// weights are meaningful only to algorithms that support them (spfa).
type Edge[N comparable] struct {
	To     N
	Weight int64
}

// Graph lazily enumerates the immediate neighbors of a node. The returned
// slice must be finite, but the node space it spans may be unbounded —
// callers of a Graph only ever consume the prefix of the space they expand.
type Graph[N comparable] func(node N) []N

// WeightedGraph lazily enumerates the outgoing edges of a node.
// Same laziness contract as Graph.
type WeightedGraph[N comparable] func(node N) []Edge[N]
