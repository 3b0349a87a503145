package geom

import "fmt"

// Point is an integer 2D coordinate. X grows rightward, Y grows downward
// (the usual grid-of-text orientation).
type Point struct {
	X, Y int
}

// Directions4 lists the four cardinal unit offsets: N, E, S, W.
var Directions4 = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Directions8 lists the eight compass unit offsets, clockwise from N.
var Directions8 = [8]Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// Add returns p + q componentwise.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p − q componentwise.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by k.
func (p Point) Scale(k int) Point { return Point{p.X * k, p.Y * k} }

// Manhattan returns the L1 distance between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Chebyshev returns the L∞ distance between p and q — the number of moves
// a chess king needs.
func (p Point) Chebyshev(q Point) int {
	dx, dy := abs(p.X-q.X), abs(p.Y-q.Y)
	if dx > dy {
		return dx
	}

	return dy
}

// Neighbors4 returns p's four orthogonal neighbors, in Directions4 order.
func (p Point) Neighbors4() []Point {
	out := make([]Point, len(Directions4))
	for i, d := range Directions4 {
		out[i] = p.Add(d)
	}

	return out
}

// Neighbors8 returns p's eight surrounding neighbors, in Directions8 order.
func (p Point) Neighbors8() []Point {
	out := make([]Point, len(Directions8))
	for i, d := range Directions8 {
		out[i] = p.Add(d)
	}

	return out
}

// String renders p as "(x,y)".
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
