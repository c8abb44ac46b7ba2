package axgeom

import "fmt"

// Rect is an axis aligned rectangle, the product of an X and a Y range.
type Rect[N Num] struct {
	X Range[N]
	Y Range[N]
}

// NewRect creates a rectangle from its x range and y range end points.
func NewRect[N Num](xl, xr, yl, yr N) Rect[N] {
	return Rect[N]{X: Range[N]{Left: xl, Right: xr}, Y: Range[N]{Left: yl, Right: yr}}
}

// Get returns the range of r along axis.
func (r Rect[N]) Get(axis Axis) Range[N] {
	if axis == XAxis {
		return r.X
	}
	return r.Y
}

// Intersects reports whether r and o share at least one point.
func (r Rect[N]) Intersects(o Rect[N]) bool {
	return r.X.Intersects(o.X) && r.Y.Intersects(o.Y)
}

// ContainsRect reports whether o lies entirely within r.
func (r Rect[N]) ContainsRect(o Rect[N]) bool {
	return r.X.ContainsRange(o.X) && r.Y.ContainsRange(o.Y)
}

// Grow returns the smallest rectangle covering both r and o.
func (r Rect[N]) Grow(o Rect[N]) Rect[N] {
	return Rect[N]{X: r.X.Grow(o.X), Y: r.Y.Grow(o.Y)}
}

func (r Rect[N]) String() string {
	return fmt.Sprintf("[%v,%v]x[%v,%v]", r.X.Left, r.X.Right, r.Y.Left, r.Y.Right)
}
