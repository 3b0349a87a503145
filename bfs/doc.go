// Package bfs provides breadth-first search over a lazy core.Graph,
// returning persistent shortest paths measured in edge count.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from one or
//     more source nodes.
//   - FindPath / FindPathFromAny stop at the first popped node accepted by
//     the goal predicate and return its *core.Path.
//   - FindPaths / FindPathsFromAny run the frontier to exhaustion and
//     return the full node → *core.Path result map.
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Works on graphs that exist only as a neighbor function — mazes,
//     word ladders, state spaces with no materialized vertex set.
//
// Guarantees
//
//   - A node is enqueued at most once: in an unweighted graph the first
//     discovery is already shortest, so no revision logic exists.
//   - The first goal-accepting pop is optimal, because the FIFO frontier
//     pops in non-decreasing distance order.
//   - The discovery function is invoked at most once per node, when that
//     node is popped.
//   - Deterministic given deterministic source and neighbor order. Ties
//     among equally-near goal nodes fall to whichever was discovered
//     first; callers must not rely on any finer tie-breaking.
//
// Termination
//
//	The frontier drains on finite node spaces. On an infinite graph,
//	FindPath terminates only if a goal node is reachable; FindPaths
//	does not terminate. Encode any abort condition (step budget,
//	boundary box) in the goal predicate or the graph view itself.
//
// Complexity (V = reached nodes, E = edges among them)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the frontier and result map
//
// Errors
//
//   - core.ErrNoSources from the FromAny variants when the source
//     collection is empty.
//   - A goal no reachable node satisfies is not an error: FindPath
//     reports ok == false.
package bfs
