package bfs

import "github.com/lodeston/puzzlekit/core"

// FindPath searches g outward from source and returns the shortest path
// (fewest edges) to the first node accepted by goal, or ok == false when
// no reachable node satisfies it. goal is checked on every popped node,
// including source itself.
func FindPath[N comparable](g core.Graph[N], source N, goal func(N) bool) (path *core.Path[N], ok bool) {
	// A single-element seed cannot fail.
	path, ok, _ = FindPathFromAny(g, []N{source}, goal)

	return path, ok
}

// FindPathFromAny is FindPath seeded from every node in sources at
// distance 0; the returned path starts at whichever source is nearest to
// an accepting node. Returns core.ErrNoSources when sources is empty.
func FindPathFromAny[N comparable](g core.Graph[N], sources []N, goal func(N) bool) (*core.Path[N], bool, error) {
	frontier, results, err := core.Seed(sources)
	if err != nil {
		return nil, false, err
	}

	w := &walker[N]{graph: g, frontier: frontier, results: results}
	if p := w.run(goal); p != nil {
		return p, true, nil
	}

	return nil, false, nil
}

// FindPaths explores every node reachable from source and returns the
// map from node to its shortest path. Never call it on an infinite graph.
func FindPaths[N comparable](g core.Graph[N], source N) map[N]*core.Path[N] {
	results, _ := FindPathsFromAny(g, []N{source})

	return results
}

// FindPathsFromAny is FindPaths seeded from every node in sources;
// each node's path starts at its nearest source.
// Returns core.ErrNoSources when sources is empty.
func FindPathsFromAny[N comparable](g core.Graph[N], sources []N) (map[N]*core.Path[N], error) {
	frontier, results, err := core.Seed(sources)
	if err != nil {
		return nil, err
	}

	w := &walker[N]{graph: g, frontier: frontier, results: results}
	w.run(nil)

	return w.results, nil
}

// walker encapsulates mutable BFS state. results doubles as the visited
// set: membership alone marks a node discovered.
type walker[N comparable] struct {
	graph    core.Graph[N]
	frontier []*core.Path[N]
	results  map[N]*core.Path[N]
}

// run processes the frontier until it drains, or until goal accepts a
// popped end node (nil goal never accepts). Returns the accepted path,
// or nil on exhaustion.
func (w *walker[N]) run(goal func(N) bool) *core.Path[N] {
	var p *core.Path[N]
	for len(w.frontier) > 0 {
		p, w.frontier = w.frontier[0], w.frontier[1:]

		// First accepting pop is optimal: the FIFO frontier pops in
		// non-decreasing distance order.
		if goal != nil && goal(p.End()) {
			return p
		}

		w.discover(p)
	}

	return nil
}

// discover expands p's end node, enqueueing a one-longer path to every
// neighbor seen for the first time.
func (w *walker[N]) discover(p *core.Path[N]) {
	for _, nbr := range w.graph(p.End()) {
		if _, seen := w.results[nbr]; seen {
			continue
		}
		np := core.NewPath(nbr, p.Dist()+1, p)
		w.results[nbr] = np
		w.frontier = append(w.frontier, np)
	}
}
