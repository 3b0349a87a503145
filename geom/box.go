package geom

// Box is an axis-aligned bounding box with inclusive corners Min and Max.
// The zero Box covers exactly the origin point.
type Box struct {
	Min, Max Point
}

// Bound returns the smallest Box containing every point, and false when
// points is empty.
func Bound(points []Point) (Box, bool) {
	if len(points) == 0 {
		return Box{}, false
	}
	b := Box{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b = b.Extend(p)
	}

	return b, true
}

// Extend returns the smallest Box containing both b and p.
func (b Box) Extend(p Point) Box {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}

	return b
}

// Contains reports whether p lies inside b, borders included.
func (b Box) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Width returns the number of integer columns b spans.
func (b Box) Width() int { return b.Max.X - b.Min.X + 1 }

// Height returns the number of integer rows b spans.
func (b Box) Height() int { return b.Max.Y - b.Min.Y + 1 }

// Area returns the number of integer points inside b.
func (b Box) Area() int { return b.Width() * b.Height() }
