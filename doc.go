// Package puzzlekit is a small toolkit of generic algorithms for solving
// ad-hoc combinatorial and geometric puzzles.
//
// 🚀 What is puzzlekit?
//
//	A collection of lazy, allocation-light building blocks:
//		• Traversal engine: BFS, Dijkstra and SPFA over lazily-defined graphs
//		• Graph views: node/edge filtering combinators, weight adapters
//		• Persistent paths: immutable backward-linked routes, cheap branching
//		• Grid tables: generic 2D tables exposing neighbor queries
//		• Geometry: points, boxes and integer ranges as ready-made node types
//		• Permutations: array-based backtracking search with early exit
//		• Parsing: tiny helpers for line/field/integer extraction
//
// ✨ Why choose puzzlekit?
//
//   - Lazy everywhere – graphs are plain functions, never materialized
//   - Generic – any comparable type is a node; no adapters, no registration
//   - Pure Go – no cgo, the only dependency is testify for tests
//   - Predictable – deterministic, single-threaded traversals
//
// The traversal engine lives in three sibling packages sharing one
// abstraction:
//
//	core/     — Graph / WeightedGraph contracts, filters, the Path type
//	bfs/      — unweighted shortest paths over a FIFO frontier
//	dijkstra/ — non-negative weights over a lazy-decrease-key min-heap
//	spfa/     — queue-based Bellman-Ford supporting negative weights
//
// Collaborating packages build example graphs and node types:
//
//	geom/    — Point, Box, Range primitives
//	grid/    — fixed-size 2D tables with 4/8-connectivity neighbor views
//	permute/ — backtracking permutation search (no shared traversal code)
//	parse/   — string and number input helpers
//
// Quick ASCII example:
//
//	   S . . #
//	   # # . #
//	   G . . .
//
//	a maze is just grid.Graph(Conn4) filtered by walkability, and the
//	route S→G is one bfs.FindPath call away.
//
// Dive into each package's doc.go for contracts, complexity notes and
// worked examples.
package puzzlekit
