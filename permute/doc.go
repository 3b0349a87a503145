// Package permute provides array-based backtracking search over
// permutations, for puzzles where the answer is an ordering: seating
// plans, route orders, operator assignments.
//
// What
//
//   - Permutations: visit every permutation of 0..n-1 in lexicographic
//     order, with early exit.
//   - Of: the same over an arbitrary value slice.
//   - MinBy: the cost-minimal permutation under a caller-supplied cost.
//
// Why
//
//	Exhaustive ordering search is a different state-space technique from
//	the traversal engine — there is no frontier, no distance, and no
//	shared code with bfs/dijkstra/spfa. It lives here so small n! spaces
//	(n ≲ 10) can be swept without hand-rolling the recursion each time.
//
// The visit callback receives a reused buffer: the slice is valid only
// for the duration of the call. Copy it before retaining.
//
// Complexity: O(n · n!) time, O(n) extra memory.
package permute
