package grid

import (
	"github.com/lodeston/puzzlekit/core"
	"github.com/lodeston/puzzlekit/geom"
)

// New constructs a width×height grid of zero-valued cells.
// Returns ErrEmptyGrid unless both dimensions are positive.
func New[T any](width, height int) (*Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}

	return &Grid[T]{width: width, height: height, cells: make([]T, width*height)}, nil
}

// FromRows constructs a grid from a slice of equally-long rows,
// deep-copying the input so later mutation of rows cannot leak in.
// Returns ErrEmptyGrid or ErrNonRectangular on invalid input.
//
// Complexity: O(W×H) time and memory.
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]T, 0, w*h)
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells = append(cells, row...)
	}

	return &Grid[T]{width: w, height: h, cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// InBounds reports whether p lies within the grid.
func (g *Grid[T]) InBounds(p geom.Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// index maps p to its row-major position: Y*width + X.
func (g *Grid[T]) index(p geom.Point) int { return p.Y*g.width + p.X }

// At returns the cell value at p. Panics when p is out of bounds.
func (g *Grid[T]) At(p geom.Point) T { return g.cells[g.index(p)] }

// Set stores v at p. Panics when p is out of bounds.
func (g *Grid[T]) Set(p geom.Point, v T) { g.cells[g.index(p)] = v }

// Points returns every cell coordinate in row-major order.
func (g *Grid[T]) Points() []geom.Point {
	out := make([]geom.Point, 0, len(g.cells))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			out = append(out, geom.Point{X: x, Y: y})
		}
	}

	return out
}

// Find returns the first cell (row-major) whose value satisfies pred,
// and false when no cell matches.
func (g *Grid[T]) Find(pred func(T) bool) (geom.Point, bool) {
	for i, v := range g.cells {
		if pred(v) {
			return geom.Point{X: i % g.width, Y: i / g.width}, true
		}
	}

	return geom.Point{}, false
}

// Neighbors returns p's in-bounds neighbors under the given connectivity,
// in the fixed clockwise-from-north offset order.
func (g *Grid[T]) Neighbors(p geom.Point, conn Connectivity) []geom.Point {
	steps := conn.offsets()
	out := make([]geom.Point, 0, len(steps))
	for _, d := range steps {
		if q := p.Add(d); g.InBounds(q) {
			out = append(out, q)
		}
	}

	return out
}

// Graph exposes the grid as a lazy traversal graph: each cell's neighbors
// are its in-bounds adjacent cells. Walls, costs and one-way moves are
// layered on with core's FilterNodes, FilterEdges and WithWeight.
func (g *Grid[T]) Graph(conn Connectivity) core.Graph[geom.Point] {
	return func(p geom.Point) []geom.Point {
		return g.Neighbors(p, conn)
	}
}
