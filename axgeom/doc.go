package axgeom

/*

# Axis aligned geometry for go-dinotree

The tree only ever looks at one axis at a time. Every rectangle is the product
of two inclusive one dimensional ranges, and every level of the tree selects
one of them:

	depth 0: X
	depth 1: Y
	depth 2: X
	...

So the only geometric vocabulary the tree needs is:

- `Axis` with `Next()` giving the other axis
- `Range[N]` an inclusive [Left, Right] interval
- `Rect[N]` the pair of ranges, addressable by axis via `Get`

Ranges are inclusive on both ends. A range whose Left equals its Right is a
point, and two ranges that only touch at an end point intersect.

*/
