// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// lazy core.WeightedGraph with non-negative edge weights.
//
// What
//
//   - Explore nodes in non-decreasing accumulated weight from one or more
//     source nodes, via a min-heap frontier of persistent paths.
//   - FindPath / FindPathFromAny return the cheapest *core.Path to the
//     first goal-accepting node popped from the heap.
//   - FindPaths / FindPathsFromAny run to exhaustion and return the full
//     node → *core.Path result map.
//
// Why
//
//   - Weighted shortest paths in O((V + E) log V) without materializing
//     the graph: terrain costs, toll networks, state spaces where each
//     move has a price.
//
// Lazy decrease-key
//
//	The heap never removes superseded entries. Every strict improvement
//	to a node's best distance pushes a fresh path; a settled set filters
//	the stale leftovers when they surface. This needs only insert and
//	extract-min from the heap — container/heap suffices.
//
// Guarantees
//
//   - The first goal-accepting pop is optimal: the heap pops in
//     non-decreasing true distance.
//   - The discovery function is invoked at most once per node — exactly
//     when that node is popped and settled for the first time.
//   - Ties among equally-cheap goal nodes fall to whichever pops first;
//     no finer tie-breaking is specified.
//
// Precondition
//
//	All edge weights must be ≥ 0. The graph is lazy, so there is no
//	up-front scan to fail fast on; a negative weight silently breaks the
//	settle-once argument and yields undefined results. Use package spfa
//	when negative weights are possible.
//
// Complexity (V = reached nodes, E = edges among them)
//
//   - Time:   O((V + E) log V)
//   - Memory: O(V + E) — the heap keeps stale entries until popped
//
// Errors
//
//   - core.ErrNoSources from the FromAny variants when the source
//     collection is empty.
//   - An unreachable goal is not an error: FindPath reports ok == false.
package dijkstra
