// Package grid provides a generic fixed-size 2D table that doubles as a
// graph source: every cell knows its 4- or 8-connected neighbors, and the
// whole table can be viewed as a lazy core.Graph over geom.Point.
//
// What
//
//   - Grid[T]: a rectangular, row-major table of any cell type.
//   - Construction from dimensions (New) or from existing rows (FromRows,
//     deep-copied, validated rectangular).
//   - Cell access (At, Set), lookup (Find), enumeration (Points).
//   - Neighbors with Conn4 or Conn8 connectivity, always in-bounds.
//   - Graph: the "neighbors of this cell" view consumable by the bfs,
//     dijkstra and spfa packages; walls and costs are layered on with
//     core's FilterNodes / FilterEdges / WithWeight combinators.
//
// Why
//
//	Mazes, heightmaps and cellular puzzles arrive as rectangles of
//	cells. Wrapping them once gives bounds-checked access and an
//	immediately traversable graph without materializing vertices or
//	edges.
//
// Coordinates are geom.Point values: X is the column, Y is the row, the
// origin is the top-left cell.
//
// Errors
//
//   - ErrEmptyGrid for zero-width or zero-height construction.
//   - ErrNonRectangular when input rows differ in length.
//
// Out-of-bounds At/Set panic, like slice indexing; use InBounds first
// when the coordinate is not already trusted.
package grid
