package dinotree

import (
	"fmt"

	"github.com/forestrie/go-dinotree/axgeom"
)

// sideOf constrains a subtree to one side of an ancestor divider.
type sideOf[N axgeom.Num] struct {
	axis  axgeom.Axis
	div   N
	right bool
}

func (s sideOf[N]) holds(r axgeom.Rect[N]) bool {
	rg := r.Get(s.axis)
	if s.right {
		return rg.Left > s.div
	}
	return rg.Right < s.div
}

// CheckInvariants walks the tree under v, whose root splits on axis, and
// returns an ErrInvariant describing the first violation found. It checks
// that
//
//   - the bots of each node are sorted by left edge on the next axis,
//   - cont is present exactly when the node has bots and is the tightest
//     range covering them,
//   - every bot of an internal node touches its divider and at least one
//     starts on it,
//   - every bot below a divider lies strictly on its side,
//   - an internal node without a divider has nothing below it.
func CheckInvariants[N axgeom.Num, T any, M any](v Vistr[N, T, M], axis axgeom.Axis) error {
	return checkNode(v, axis, nil)
}

func invariantErr(depth int, format string, args ...any) error {
	return fmt.Errorf("%w: depth %d: %s", ErrInvariant, depth, fmt.Sprintf(format, args...))
}

func checkNode[N axgeom.Num, T any, M any](v Vistr[N, T, M], axis axgeom.Axis, sides []sideOf[N]) error {
	node, children, internal := v.Next()
	depth := node.Depth()
	if node.Axis() != axis {
		return invariantErr(depth, "axis %v, expected %v", node.Axis(), axis)
	}

	bots := node.Bots()
	next := axis.Next()
	for i := 1; i < bots.Len(); i++ {
		if bots.Rect(i-1).Get(next).Left > bots.Rect(i).Get(next).Left {
			return invariantErr(depth, "bots %d and %d not sorted on %v", i-1, i, next)
		}
	}
	for i := 0; i < bots.Len(); i++ {
		for _, s := range sides {
			if !s.holds(bots.Rect(i)) {
				return invariantErr(depth, "bot %d %v crosses ancestor divider %v on %v", i, bots.Rect(i), s.div, s.axis)
			}
		}
	}

	if err := checkCont(node, axis); err != nil {
		return err
	}

	if !internal {
		if node.Div() != nil {
			return invariantErr(depth, "leaf has a divider")
		}
		return nil
	}

	div := node.Div()
	if div == nil {
		if children.Comp != nil {
			return invariantErr(depth, "empty node has a comp")
		}
		if err := checkEmpty(children.Left); err != nil {
			return err
		}
		return checkEmpty(children.Right)
	}

	if children.Comp == nil || children.Comp.Div != *div {
		return invariantErr(depth, "children comp does not match divider %v", *div)
	}
	starts := false
	for i := 0; i < bots.Len(); i++ {
		r := bots.Rect(i).Get(axis)
		if !r.Contains(*div) {
			return invariantErr(depth, "bot %d %v does not touch divider %v", i, r, *div)
		}
		if r.Left == *div {
			starts = true
		}
	}
	if !starts {
		return invariantErr(depth, "no bot starts on divider %v", *div)
	}

	left := append(append([]sideOf[N](nil), sides...), sideOf[N]{axis: axis, div: *div})
	right := append(append([]sideOf[N](nil), sides...), sideOf[N]{axis: axis, div: *div, right: true})
	if err := checkNode(children.Left, next, left); err != nil {
		return err
	}
	return checkNode(children.Right, next, right)
}

func checkCont[N axgeom.Num, T any, M any](node NodeRef[N, T, M], axis axgeom.Axis) error {
	bots := node.Bots()
	cont := node.Cont()
	if bots.Len() == 0 {
		if cont != nil {
			return invariantErr(node.Depth(), "empty node has cont %v", *cont)
		}
		return nil
	}
	if cont == nil {
		return invariantErr(node.Depth(), "node with %d bots has no cont", bots.Len())
	}
	want := bots.Rect(0).Get(axis)
	for i := 1; i < bots.Len(); i++ {
		want = want.Grow(bots.Rect(i).Get(axis))
	}
	if *cont != want {
		return invariantErr(node.Depth(), "cont %v, bots span %v", *cont, want)
	}
	return nil
}

func checkEmpty[N axgeom.Num, T any, M any](v Vistr[N, T, M]) error {
	for node := range v.Preorder() {
		if node.Bots().Len() != 0 || node.Cont() != nil || node.Div() != nil {
			return invariantErr(node.Depth(), "node under an empty node is not empty")
		}
	}
	return nil
}
