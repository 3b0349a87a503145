package spfa

import "github.com/lodeston/puzzlekit/core"

// FindPath relaxes g to convergence from source, then returns the cheapest
// path to a node accepted by goal, or ok == false when no reachable node
// satisfies it.
//
// Precondition: no negative-weight cycle reachable from source (not
// checked; violation loops forever).
func FindPath[N comparable](g core.WeightedGraph[N], source N, goal func(N) bool) (path *core.Path[N], ok bool) {
	// A single-element seed cannot fail.
	path, ok, _ = FindPathFromAny(g, []N{source}, goal)

	return path, ok
}

// FindPathFromAny is FindPath seeded from every node in sources at
// distance 0. Returns core.ErrNoSources when sources is empty.
func FindPathFromAny[N comparable](g core.WeightedGraph[N], sources []N, goal func(N) bool) (*core.Path[N], bool, error) {
	results, err := FindPathsFromAny(g, sources)
	if err != nil {
		return nil, false, err
	}

	// Post-hoc scan: distances are final only now, so this is the first
	// moment the goal can be applied safely.
	var best *core.Path[N]
	for _, p := range results {
		if goal == nil || !goal(p.End()) {
			continue
		}
		if best == nil || p.Dist() < best.Dist() {
			best = p
		}
	}
	if best == nil {
		return nil, false, nil
	}

	return best, true, nil
}

// FindPaths computes the cheapest path to every node reachable from
// source. Never call it on an infinite graph.
func FindPaths[N comparable](g core.WeightedGraph[N], source N) map[N]*core.Path[N] {
	results, _ := FindPathsFromAny(g, []N{source})

	return results
}

// FindPathsFromAny is FindPaths seeded from every node in sources;
// each node's path starts at its cheapest source.
// Returns core.ErrNoSources when sources is empty.
func FindPathsFromAny[N comparable](g core.WeightedGraph[N], sources []N) (map[N]*core.Path[N], error) {
	frontier, results, err := core.Seed(sources)
	if err != nil {
		return nil, err
	}

	w := &walker[N]{graph: g, frontier: frontier, results: results}
	w.run()

	return w.results, nil
}

// walker encapsulates mutable SPFA state. Unlike bfs, results membership
// is not a visited set: entries are overwritten whenever a strictly
// cheaper route appears, and the improved node rejoins the queue.
type walker[N comparable] struct {
	graph    core.WeightedGraph[N]
	frontier []*core.Path[N]
	results  map[N]*core.Path[N]
}

// run relaxes until the queue drains. Termination requires that no
// negative-weight cycle is reachable from the seeds.
func (w *walker[N]) run() {
	var p *core.Path[N]
	for len(w.frontier) > 0 {
		p, w.frontier = w.frontier[0], w.frontier[1:]

		// Superseded while queued: every relaxation from the stale
		// distance is dominated by the fresh entry already queued.
		if w.results[p.End()] != p {
			continue
		}

		w.relax(p)
	}
}

// relax expands p's end node, overwriting and re-enqueueing every strict
// improvement.
func (w *walker[N]) relax(p *core.Path[N]) {
	var cand int64
	for _, e := range w.graph(p.End()) {
		cand = p.Dist() + e.Weight
		if best, seen := w.results[e.To]; seen && cand >= best.Dist() {
			continue
		}
		np := core.NewPath(e.To, cand, p)
		w.results[e.To] = np
		w.frontier = append(w.frontier, np)
	}
}
