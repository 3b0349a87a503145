// Package grid defines core types and sentinel errors
// for the grid subpackage of github.com/lodeston/puzzlekit.
package grid

import (
	"errors"

	"github.com/lodeston/puzzlekit/geom"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the grid would have no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// offsets returns the unit steps for the connectivity mode.
func (c Connectivity) offsets() []geom.Point {
	if c == Conn8 {
		return geom.Directions8[:]
	}

	return geom.Directions4[:]
}

// Grid is a fixed-size rectangular table of T stored row-major.
// Construct with New or FromRows; the zero Grid is empty and unusable.
type Grid[T any] struct {
	width, height int
	cells         []T
}
