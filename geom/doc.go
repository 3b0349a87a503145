// Package geom provides small integer geometry primitives used as node
// types and building blocks for puzzle graphs.
//
// What
//
//   - Point: an integer 2D coordinate with vector arithmetic, Manhattan
//     and Chebyshev metrics, and 4/8-neighborhood enumeration.
//   - Box: an inclusive axis-aligned bounding box.
//   - Range: an inclusive interval over int64 with overlap algebra.
//
// Why
//
//	The traversal engine treats nodes opaquely; any comparable value
//	works. Point is the canonical node type for grid worlds, and Box and
//	Range express the finite windows that keep a conceptually infinite
//	graph explorable (compose them with core's FilterNodes).
//
// All types are plain values: no pointers, no hidden state, safe to use
// as map keys and to copy freely.
package geom
