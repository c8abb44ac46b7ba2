package dinotree

import (
	"fmt"

	"github.com/forestrie/go-dinotree/axgeom"
)

// Ref is a record index into either the internal arena or the leaf arena of a
// packed tree. Which arena is implied by the depth the ref is followed from;
// records carry no kind tag.
type Ref uint32

const NoRef = ^Ref(0)

// FullComp is the data only non empty internal nodes have.
type FullComp[N axgeom.Num] struct {
	// Div is the position of the splitting line.
	Div N
	// Cont covers every bot of the node along the node's axis.
	Cont axgeom.Range[N]
}

// internalRecord is the fixed size record of a non leaf node. comp is only
// meaningful if the node has bots.
type internalRecord[N axgeom.Num, M any] struct {
	left, right Ref
	start, end  uint32
	comp        FullComp[N]
	misc        M
}

// leafRecord is the fixed size record of a leaf. cont is only meaningful if
// the leaf has bots.
type leafRecord[N axgeom.Num, M any] struct {
	start, end uint32
	cont       axgeom.Range[N]
	misc       M
}

// packedTree holds a tree as two record arenas plus the bots in preorder.
type packedTree[N axgeom.Num, T any, M any] struct {
	internals []internalRecord[N, M]
	leaves    []leafRecord[N, M]
	bots      []BBox[N, T]
	height    int
}

// packCounter hands out arena slots and bot ranges in preorder.
type packCounter[N axgeom.Num, T any, M any] struct {
	t      *packedTree[N, T, M]
	misc   M
	botPos int
}

func (c *packCounter[N, T, M]) takeBots(n int) (uint32, uint32) {
	start := c.botPos
	c.botPos += n
	return uint32(start), uint32(c.botPos)
}

func (c *packCounter[N, T, M]) recc(v preorderVistr[N]) Ref {
	node, left, right, ok := v.next()
	start, end := c.takeBots(node.len())

	if !ok {
		ref := Ref(len(c.t.leaves))
		c.t.leaves = append(c.t.leaves, leafRecord[N, M]{
			start: start, end: end, cont: node.cont, misc: c.misc,
		})
		return ref
	}

	ref := Ref(len(c.t.internals))
	c.t.internals = append(c.t.internals, internalRecord[N, M]{
		left: NoRef, right: NoRef,
		start: start, end: end,
		comp: FullComp[N]{Div: node.div, Cont: node.cont},
		misc: c.misc,
	})

	l := c.recc(left)
	r := c.recc(right)
	c.t.internals[ref].left = l
	c.t.internals[ref].right = r
	return ref
}

// newPackedTree lays out the preorder node sequence. bots must already be in
// tree order, that is node by node in preorder, each node's bots contiguous.
//
// The arenas are sized exactly up front. Anything other than an exact fill is
// a bug in the builder and panics.
func newPackedTree[N axgeom.Num, T any, M any](nodes []buildNode[N], height int, bots []BBox[N, T], misc M) *packedTree[N, T, M] {
	t := &packedTree[N, T, M]{
		internals: make([]internalRecord[N, M], 0, InternalCount(height)),
		leaves:    make([]leafRecord[N, M], 0, LeafCount(height)),
		bots:      bots,
		height:    height,
	}
	c := packCounter[N, T, M]{t: t, misc: misc}
	root := c.recc(newPreorderVistr(nodes, height))

	if len(t.internals) != InternalCount(height) || len(t.leaves) != LeafCount(height) || c.botPos != len(bots) {
		panic(fmt.Sprintf(
			"dinotree: packed tree not filled exactly: internal=%d/%d leaf=%d/%d bots=%d/%d",
			len(t.internals), InternalCount(height), len(t.leaves), LeafCount(height), c.botPos, len(bots)))
	}
	if root != 0 {
		panic("dinotree: packed tree root is not the first record")
	}
	return t
}

func (t *packedTree[N, T, M]) numNodes() int {
	return len(t.internals) + len(t.leaves)
}

// mapPackedMisc copies the record arenas of t with each misc value replaced by
// fn(misc). The bots are shared, not copied.
func mapPackedMisc[N axgeom.Num, T any, M any, M2 any](t *packedTree[N, T, M], fn func(M) M2) *packedTree[N, T, M2] {
	out := &packedTree[N, T, M2]{
		internals: make([]internalRecord[N, M2], len(t.internals)),
		leaves:    make([]leafRecord[N, M2], len(t.leaves)),
		bots:      t.bots,
		height:    t.height,
	}
	for i, r := range t.internals {
		out.internals[i] = internalRecord[N, M2]{
			left: r.left, right: r.right, start: r.start, end: r.end, comp: r.comp, misc: fn(r.misc),
		}
	}
	for i, r := range t.leaves {
		out.leaves[i] = leafRecord[N, M2]{start: r.start, end: r.end, cont: r.cont, misc: fn(r.misc)}
	}
	return out
}
