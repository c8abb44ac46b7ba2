package axgeom

import "golang.org/x/exp/constraints"

// Num is the coordinate type of ranges and rectangles.
//
// Float coordinates must not be NaN; the tree orders boxes by coordinate and
// NaN has no order.
type Num interface {
	constraints.Integer | constraints.Float
}

// Range is an inclusive one dimensional interval [Left, Right].
type Range[N Num] struct {
	Left  N
	Right N
}

func NewRange[N Num](left, right N) Range[N] {
	return Range[N]{Left: left, Right: right}
}

// IsValid reports whether Left <= Right.
func (r Range[N]) IsValid() bool {
	return r.Left <= r.Right
}

// Contains reports whether v lies within r, end points included.
func (r Range[N]) Contains(v N) bool {
	return r.Left <= v && v <= r.Right
}

// ContainsRange reports whether o lies entirely within r.
func (r Range[N]) ContainsRange(o Range[N]) bool {
	return r.Left <= o.Left && o.Right <= r.Right
}

// Intersects reports whether r and o share at least one point.
func (r Range[N]) Intersects(o Range[N]) bool {
	return r.Left <= o.Right && o.Left <= r.Right
}

// Grow returns the smallest range covering both r and o.
func (r Range[N]) Grow(o Range[N]) Range[N] {
	return Range[N]{Left: min(r.Left, o.Left), Right: max(r.Right, o.Right)}
}

// Length returns Right - Left.
func (r Range[N]) Length() N {
	return r.Right - r.Left
}
