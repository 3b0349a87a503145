package dijkstra

import (
	"container/heap"

	"github.com/lodeston/puzzlekit/core"
)

// FindPath searches g outward from source and returns the cheapest path to
// the first node accepted by goal, or ok == false when no reachable node
// satisfies it. goal is checked on every popped node, including source.
//
// Precondition: every edge weight ≥ 0 (not checked).
func FindPath[N comparable](g core.WeightedGraph[N], source N, goal func(N) bool) (path *core.Path[N], ok bool) {
	// A single-element seed cannot fail.
	path, ok, _ = FindPathFromAny(g, []N{source}, goal)

	return path, ok
}

// FindPathFromAny is FindPath seeded from every node in sources at
// distance 0. Returns core.ErrNoSources when sources is empty.
func FindPathFromAny[N comparable](g core.WeightedGraph[N], sources []N, goal func(N) bool) (*core.Path[N], bool, error) {
	r, err := newRunner(g, sources)
	if err != nil {
		return nil, false, err
	}

	if p := r.run(goal); p != nil {
		return p, true, nil
	}

	return nil, false, nil
}

// FindPaths computes the cheapest path to every node reachable from
// source. Never call it on an infinite graph.
func FindPaths[N comparable](g core.WeightedGraph[N], source N) map[N]*core.Path[N] {
	results, _ := FindPathsFromAny(g, []N{source})

	return results
}

// FindPathsFromAny is FindPaths seeded from every node in sources;
// each node's path starts at its nearest source.
// Returns core.ErrNoSources when sources is empty.
func FindPathsFromAny[N comparable](g core.WeightedGraph[N], sources []N) (map[N]*core.Path[N], error) {
	r, err := newRunner(g, sources)
	if err != nil {
		return nil, err
	}
	r.run(nil)

	return r.results, nil
}

// runner holds the mutable state of a single Dijkstra execution.
type runner[N comparable] struct {
	graph   core.WeightedGraph[N]
	results map[N]*core.Path[N] // node → current best path
	settled map[N]struct{}      // nodes whose outgoing edges are expanded
	pq      pathHeap[N]         // min-heap by Dist, may hold stale entries
}

func newRunner[N comparable](g core.WeightedGraph[N], sources []N) (*runner[N], error) {
	frontier, results, err := core.Seed(sources)
	if err != nil {
		return nil, err
	}

	r := &runner[N]{
		graph:   g,
		results: results,
		settled: make(map[N]struct{}, len(frontier)),
		pq:      pathHeap[N](frontier),
	}
	heap.Init(&r.pq)

	return r, nil
}

// run pops paths in non-decreasing distance until the heap drains, or
// until goal accepts a popped end node (nil goal never accepts).
func (r *runner[N]) run(goal func(N) bool) *core.Path[N] {
	for r.pq.Len() > 0 {
		p := heap.Pop(&r.pq).(*core.Path[N])

		// First accepting pop is optimal; a stale entry can never be the
		// first pop of its node, so checking goal before staleness is safe.
		if goal != nil && goal(p.End()) {
			return p
		}

		// Superseded lazy-decrease-key leftover.
		if _, done := r.settled[p.End()]; done {
			continue
		}
		r.settled[p.End()] = struct{}{}

		r.relax(p)
	}

	return nil
}

// relax expands p's end node, recording and enqueueing every strict
// improvement. Old heap entries for an improved node stay behind and are
// filtered by the settled check when popped.
func (r *runner[N]) relax(p *core.Path[N]) {
	var cand int64
	for _, e := range r.graph(p.End()) {
		cand = p.Dist() + e.Weight
		if best, seen := r.results[e.To]; seen && cand >= best.Dist() {
			continue
		}
		np := core.NewPath(e.To, cand, p)
		r.results[e.To] = np
		heap.Push(&r.pq, np)
	}
}

// pathHeap is a min-heap of *core.Path ordered by Dist ascending.
type pathHeap[N comparable] []*core.Path[N]

func (h pathHeap[N]) Len() int           { return len(h) }
func (h pathHeap[N]) Less(i, j int) bool { return h[i].Dist() < h[j].Dist() }
func (h pathHeap[N]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

// Push appends x; called by heap.Push, x must be a *core.Path[N].
func (h *pathHeap[N]) Push(x any) { *h = append(*h, x.(*core.Path[N])) }

// Pop removes and returns the last element; called by heap.Pop.
func (h *pathHeap[N]) Pop() any {
	old := *h
	n := len(old)
	p := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return p
}
