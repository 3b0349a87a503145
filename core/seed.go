// File: seed.go
// Role: Multi-source seeding policy shared by bfs, dijkstra and spfa.

package core

// Seed builds the initial traversal state from a source collection: one
// zero-distance Path per distinct source, returned both as the initial
// frontier (in source order) and as the initial result map.
//
// Duplicate sources collapse to a single entry; the first occurrence wins.
// Returns ErrNoSources when sources is empty — an empty seed would
// otherwise silently produce an empty result map.
//
// Complexity: O(len(sources)).
func Seed[N comparable](sources []N) ([]*Path[N], map[N]*Path[N], error) {
	if len(sources) == 0 {
		return nil, nil, ErrNoSources
	}

	frontier := make([]*Path[N], 0, len(sources))
	results := make(map[N]*Path[N], len(sources))
	for _, src := range sources {
		if _, seen := results[src]; seen {
			continue
		}
		p := NewPath(src, 0, nil)
		results[src] = p
		frontier = append(frontier, p)
	}

	return frontier, results, nil
}
