package permute

import "math"

// Permutations invokes visit with every permutation of 0..n-1, in
// lexicographic order. Traversal stops early when visit returns false.
// n == 0 yields exactly one visit with the empty permutation.
//
// The slice passed to visit is a reused buffer; copy it before retaining.
func Permutations(n int, visit func(perm []int) bool) {
	if n < 0 {
		return
	}
	perm := make([]int, n)
	used := make([]bool, n)

	// rec fills position depth with each unused value in ascending order;
	// a false return propagates the early exit up the stack.
	var rec func(depth int) bool
	rec = func(depth int) bool {
		if depth == n {
			return visit(perm)
		}
		for v := 0; v < n; v++ {
			if used[v] {
				continue
			}
			perm[depth] = v
			used[v] = true
			keep := rec(depth + 1)
			used[v] = false
			if !keep {
				return false
			}
		}

		return true
	}
	rec(0)
}

// Of invokes visit with every ordering of items, in the lexicographic
// order of the underlying index permutation. items is never mutated.
//
// The slice passed to visit is a reused buffer; copy it before retaining.
func Of[T any](items []T, visit func(ordered []T) bool) {
	buf := make([]T, len(items))
	Permutations(len(items), func(perm []int) bool {
		for i, idx := range perm {
			buf[i] = items[idx]
		}

		return visit(buf)
	})
}

// MinBy sweeps every permutation of 0..n-1 and returns a copy of the one
// minimizing cost, together with that cost. Among equal-cost permutations
// the lexicographically first wins.
func MinBy(n int, cost func(perm []int) int64) ([]int, int64) {
	var best []int
	bestCost := int64(math.MaxInt64)
	Permutations(n, func(perm []int) bool {
		if c := cost(perm); c < bestCost {
			bestCost = c
			best = append(best[:0], perm...)
		}

		return true
	})

	return best, bestCost
}
