package geom

// Range is an inclusive interval [Lo, Hi] over int64. A Range with
// Hi < Lo is empty.
type Range struct {
	Lo, Hi int64
}

// Empty reports whether r contains no values.
func (r Range) Empty() bool { return r.Hi < r.Lo }

// Len returns the number of values in r, 0 when empty.
func (r Range) Len() int64 {
	if r.Empty() {
		return 0
	}

	return r.Hi - r.Lo + 1
}

// Contains reports whether v lies inside r.
func (r Range) Contains(v int64) bool { return v >= r.Lo && v <= r.Hi }

// Overlaps reports whether r and s share at least one value.
func (r Range) Overlaps(s Range) bool {
	return !r.Empty() && !s.Empty() && r.Lo <= s.Hi && s.Lo <= r.Hi
}

// Intersect returns the values common to r and s; the result is empty
// when they do not overlap.
func (r Range) Intersect(s Range) Range {
	return Range{Lo: max(r.Lo, s.Lo), Hi: min(r.Hi, s.Hi)}
}

// Union returns the smallest Range covering both r and s. The inputs must
// overlap or touch (gap of zero); merging disjoint ranges would invent
// values neither contains.
func (r Range) Union(s Range) Range {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}

	return Range{Lo: min(r.Lo, s.Lo), Hi: max(r.Hi, s.Hi)}
}
