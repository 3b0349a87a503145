package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lodeston/puzzlekit/bfs"
	"github.com/lodeston/puzzlekit/core"
	"github.com/lodeston/puzzlekit/dijkstra"
)

// sevenNodes is the weighted variant of the shared test topology:
//
//	A→B:1 A→C:1 A→D:1 B→E:2 C→E:3 D→G:4 E→D:5 E→F:5 E→G:5 F→B:6 F→G:6
var sevenNodes = map[string][]core.Edge[string]{
	"A": {{To: "B", Weight: 1}, {To: "C", Weight: 1}, {To: "D", Weight: 1}},
	"B": {{To: "E", Weight: 2}},
	"C": {{To: "E", Weight: 3}},
	"D": {{To: "G", Weight: 4}},
	"E": {{To: "D", Weight: 5}, {To: "F", Weight: 5}, {To: "G", Weight: 5}},
	"F": {{To: "B", Weight: 6}, {To: "G", Weight: 6}},
	"G": {},
}

func adjacency(m map[string][]core.Edge[string]) core.WeightedGraph[string] {
	return func(node string) []core.Edge[string] { return m[node] }
}

func TestFindPath_SevenNodeTopology(t *testing.T) {
	path, ok := dijkstra.FindPath(adjacency(sevenNodes), "A", func(n string) bool { return n == "G" })

	require.True(t, ok)
	assert.Equal(t, int64(5), path.Dist())
	assert.Equal(t, []string{"A", "D", "G"}, path.Nodes())
}

func TestFindPaths_SevenNodeTopology(t *testing.T) {
	results := dijkstra.FindPaths(adjacency(sevenNodes), "A")

	want := map[string]int64{"A": 0, "B": 1, "C": 1, "D": 1, "E": 3, "F": 8, "G": 5}
	require.Len(t, results, len(want))
	for node, dist := range want {
		require.Contains(t, results, node)
		assert.Equal(t, dist, results[node].Dist(), "dist to %s", node)
	}

	// Path invariant: edge weights along the route sum to Dist.
	for node, p := range results {
		var sum int64
		nodes := p.Nodes()
		for i := 1; i < len(nodes); i++ {
			sum += edgeWeight(t, nodes[i-1], nodes[i])
		}
		assert.Equal(t, p.Dist(), sum, "weight sum along path to %s", node)
		assert.Equal(t, "A", nodes[0])
	}
}

func edgeWeight(t *testing.T, from, to string) int64 {
	t.Helper()
	for _, e := range sevenNodes[from] {
		if e.To == to {
			return e.Weight
		}
	}
	t.Fatalf("no edge %s→%s", from, to)

	return 0
}

// TestFindPath_GreedyTrapAvoided pins pop-order optimality: the direct
// edge is discovered first but the detour is cheaper.
func TestFindPath_GreedyTrapAvoided(t *testing.T) {
	g := adjacency(map[string][]core.Edge[string]{
		"A": {{To: "B", Weight: 10}, {To: "C", Weight: 1}},
		"C": {{To: "B", Weight: 2}},
	})

	path, ok := dijkstra.FindPath(g, "A", func(n string) bool { return n == "B" })

	require.True(t, ok)
	assert.Equal(t, int64(3), path.Dist())
	assert.Equal(t, []string{"A", "C", "B"}, path.Nodes())
}

func TestFindPath_ZeroWeightEdges(t *testing.T) {
	g := adjacency(map[string][]core.Edge[string]{
		"A": {{To: "B", Weight: 0}},
		"B": {{To: "C", Weight: 0}},
	})

	path, ok := dijkstra.FindPath(g, "A", func(n string) bool { return n == "C" })

	require.True(t, ok)
	assert.Zero(t, path.Dist())
	assert.Equal(t, []string{"A", "B", "C"}, path.Nodes())
}

func TestFindPath_Unreachable(t *testing.T) {
	path, ok := dijkstra.FindPath(adjacency(sevenNodes), "G", func(n string) bool { return n == "A" })

	assert.False(t, ok)
	assert.Nil(t, path)
}

func TestFindPathFromAny(t *testing.T) {
	goalG := func(n string) bool { return n == "G" }

	path, ok, err := dijkstra.FindPathFromAny(adjacency(sevenNodes), []string{"E", "F"}, goalG)
	require.NoError(t, err)
	require.True(t, ok)

	// From E: 5. From F: 6. The multi-source answer is the minimum.
	assert.Equal(t, int64(5), path.Dist())
	assert.Equal(t, []string{"E", "G"}, path.Nodes())
}

func TestFindPathFromAny_NoSources(t *testing.T) {
	_, ok, err := dijkstra.FindPathFromAny(adjacency(sevenNodes), nil, func(string) bool { return true })

	assert.ErrorIs(t, err, core.ErrNoSources)
	assert.False(t, ok)
}

// TestFindPaths_DiscoveryOncePerNode pins the settle-once guarantee even
// when a node's distance improves several times before it settles.
func TestFindPaths_DiscoveryOncePerNode(t *testing.T) {
	// Both B and the long way around improve E before it pops.
	topo := map[string][]core.Edge[string]{
		"A": {{To: "E", Weight: 9}, {To: "B", Weight: 1}, {To: "C", Weight: 2}},
		"B": {{To: "E", Weight: 5}},
		"C": {{To: "E", Weight: 2}},
		"E": {{To: "Z", Weight: 1}},
	}
	calls := map[string]int{}
	counted := core.WeightedGraph[string](func(node string) []core.Edge[string] {
		calls[node]++
		return topo[node]
	})

	results := dijkstra.FindPaths(counted, "A")

	assert.Equal(t, int64(4), results["E"].Dist())
	for node, n := range calls {
		assert.Equal(t, 1, n, "node %s expanded %d times", node, n)
	}
}

// TestFindPaths_MatchesBFSOnUnitWeights cross-checks the two engines:
// with every weight 1, weighted and hop-count distances coincide.
func TestFindPaths_MatchesBFSOnUnitWeights(t *testing.T) {
	unweighted := core.Graph[string](func(node string) []string {
		edges := sevenNodes[node]
		out := make([]string, 0, len(edges))
		for _, e := range edges {
			out = append(out, e.To)
		}
		return out
	})
	unit := unweighted.WithWeight(func(_, _ string) int64 { return 1 })

	byHops := bfs.FindPaths(unweighted, "A")
	byWeight := dijkstra.FindPaths(unit, "A")

	require.Len(t, byWeight, len(byHops))
	for node, p := range byHops {
		require.Contains(t, byWeight, node)
		assert.Equal(t, p.Dist(), byWeight[node].Dist(), "dist to %s", node)
	}
}
