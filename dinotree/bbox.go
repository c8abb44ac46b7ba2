package dinotree

import (
	"fmt"

	"github.com/forestrie/go-dinotree/axgeom"
)

// BBox is a bot as stored in the tree: a rectangle plus a payload.
//
// The rectangle is only readable once the box exists. Code holding a tree may
// change Inner freely but can never move a box, which is what keeps the tree
// valid for as long as it lives.
type BBox[N axgeom.Num, T any] struct {
	rect  axgeom.Rect[N]
	Inner T
}

// NewBBox creates a box with rect as its fixed geometry.
func NewBBox[N axgeom.Num, T any](rect axgeom.Rect[N], inner T) BBox[N, T] {
	return BBox[N, T]{rect: rect, Inner: inner}
}

// Rect returns the box geometry.
func (b *BBox[N, T]) Rect() axgeom.Rect[N] {
	return b.rect
}

func (b BBox[N, T]) String() string {
	return fmt.Sprintf("%v:%v", b.rect, b.Inner)
}

// traceBot is the element the partitioner works on. It carries only what
// partitioning needs, the rectangle and where the bot came from, so the
// recursion moves small values regardless of the payload size.
type traceBot[N axgeom.Num] struct {
	rect  axgeom.Rect[N]
	index uint32
}

func (b *traceBot[N]) get(axis axgeom.Axis) axgeom.Range[N] {
	return b.rect.Get(axis)
}
