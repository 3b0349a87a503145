// Package spfa implements the Shortest Path Faster Algorithm — a
// queue-based reformulation of Bellman-Ford — over a lazy
// core.WeightedGraph. Unlike dijkstra, it supports negative edge weights.
//
// What
//
//   - Relax edges from a FIFO queue of persistent paths, re-enqueueing a
//     node every time a strictly cheaper route to it is found.
//   - FindPaths / FindPathsFromAny drain the queue and return the full
//     node → *core.Path result map.
//   - FindPath / FindPathFromAny drain the queue, then scan the finished
//     results for the cheapest node accepted by the goal predicate.
//
// Why
//
//	Dijkstra's settle-once argument collapses under negative weights: a
//	node popped early may still be improved by a later detour through a
//	negative edge. SPFA gives up settling — a node may be relaxed and
//	re-enqueued any number of times — in exchange for correctness on
//	negative-weight graphs.
//
// No mid-run short-circuit
//
//	Distances are not monotonic while the queue is live, so a goal match
//	popped early proves nothing. The goal is therefore applied only
//	post-hoc, once relaxation has converged. Ties among equally-cheap
//	goal nodes are unspecified.
//
// Precondition
//
//	No negative-weight cycle may be reachable from any source. If one
//	is, nodes on the cycle improve forever and the run never terminates.
//	This is a documented limitation, not a detected error.
//
// Complexity (V = reached nodes, E = edges among them)
//
//   - Time:   O(V·E) worst case; far better on typical inputs
//   - Memory: O(V) plus queue entries pending at any moment
//
// Errors
//
//   - core.ErrNoSources from the FromAny variants when the source
//     collection is empty.
//   - A goal no reachable node satisfies is not an error: FindPath
//     reports ok == false.
package spfa
