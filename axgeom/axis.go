package axgeom

// Axis selects one of the two dimensions of a Rect.
type Axis uint8

const (
	XAxis Axis = 0
	YAxis Axis = 1
)

// Next returns the axis orthogonal to a. Tree levels alternate axis using Next.
func (a Axis) Next() Axis {
	return a ^ 1
}

// IsX reports whether a is the X axis.
func (a Axis) IsX() bool {
	return a == XAxis
}

// AtDepth returns the axis used at depth of a tree whose root splits on a.
func (a Axis) AtDepth(depth int) Axis {
	if depth%2 == 0 {
		return a
	}
	return a.Next()
}

func (a Axis) String() string {
	if a == XAxis {
		return "X"
	}
	return "Y"
}
