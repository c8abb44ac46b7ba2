package dinotree

import (
	"iter"

	"github.com/forestrie/go-dinotree/axgeom"
)

// BotsView is read only access to the bots of one node.
type BotsView[N axgeom.Num, T any] struct {
	bots []BBox[N, T]
}

func (b BotsView[N, T]) Len() int {
	return len(b.bots)
}

// At returns a copy of the i'th bot.
func (b BotsView[N, T]) At(i int) BBox[N, T] {
	return b.bots[i]
}

func (b BotsView[N, T]) Rect(i int) axgeom.Rect[N] {
	return b.bots[i].rect
}

func (b BotsView[N, T]) All() iter.Seq2[axgeom.Rect[N], T] {
	return func(yield func(axgeom.Rect[N], T) bool) {
		for i := range b.bots {
			if !yield(b.bots[i].rect, b.bots[i].Inner) {
				return
			}
		}
	}
}

// BotsMut gives mutable access to the payloads of one node. The geometry
// stays read only.
type BotsMut[N axgeom.Num, T any] struct {
	bots []BBox[N, T]
}

func (b BotsMut[N, T]) Len() int {
	return len(b.bots)
}

func (b BotsMut[N, T]) Rect(i int) axgeom.Rect[N] {
	return b.bots[i].rect
}

func (b BotsMut[N, T]) Inner(i int) *T {
	return &b.bots[i].Inner
}

func (b BotsMut[N, T]) All() iter.Seq2[axgeom.Rect[N], *T] {
	return func(yield func(axgeom.Rect[N], *T) bool) {
		for i := range b.bots {
			if !yield(b.bots[i].rect, &b.bots[i].Inner) {
				return
			}
		}
	}
}

// nodeAt is the position of a node: which record, at which depth and axis.
type nodeAt[N axgeom.Num, T any, M any] struct {
	t     *packedTree[N, T, M]
	ref   Ref
	depth int
	axis  axgeom.Axis
}

func (p nodeAt[N, T, M]) isLeaf() bool {
	return IsLeafDepth(p.depth, p.t.height)
}

// read resolves the record. comp is nil for leaves and empty internal nodes,
// cont is nil for empty nodes.
func (p nodeAt[N, T, M]) read() (bots []BBox[N, T], cont *axgeom.Range[N], comp *FullComp[N], misc *M) {
	if p.isLeaf() {
		r := &p.t.leaves[p.ref]
		if r.start != r.end {
			c := r.cont
			cont = &c
		}
		return p.t.bots[r.start:r.end], cont, nil, &r.misc
	}
	r := &p.t.internals[p.ref]
	if r.start != r.end {
		c := r.comp
		comp = &c
		cont = &c.Cont
	}
	return p.t.bots[r.start:r.end], cont, comp, &r.misc
}

func (p nodeAt[N, T, M]) children() (nodeAt[N, T, M], nodeAt[N, T, M]) {
	r := &p.t.internals[p.ref]
	next := p.axis.Next()
	return nodeAt[N, T, M]{t: p.t, ref: r.left, depth: p.depth + 1, axis: next},
		nodeAt[N, T, M]{t: p.t, ref: r.right, depth: p.depth + 1, axis: next}
}

// NodeRef is a read only view of one node.
type NodeRef[N axgeom.Num, T any, M any] struct {
	bots  []BBox[N, T]
	cont  *axgeom.Range[N]
	div   *N
	misc  M
	depth int
	axis  axgeom.Axis
}

func (n NodeRef[N, T, M]) Bots() BotsView[N, T] { return BotsView[N, T]{bots: n.bots} }
func (n NodeRef[N, T, M]) Depth() int           { return n.depth }
func (n NodeRef[N, T, M]) Axis() axgeom.Axis    { return n.axis }
func (n NodeRef[N, T, M]) Misc() M              { return n.misc }

// Cont is the range covering the node's bots on the node axis, nil if the
// node has none.
func (n NodeRef[N, T, M]) Cont() *axgeom.Range[N] { return n.cont }

// Div is the splitting line, nil for leaves and for empty internal nodes.
func (n NodeRef[N, T, M]) Div() *N { return n.div }

// NodeMut is a view of one node through which payloads and misc can be
// changed.
type NodeMut[N axgeom.Num, T any, M any] struct {
	bots  []BBox[N, T]
	cont  *axgeom.Range[N]
	div   *N
	misc  *M
	depth int
	axis  axgeom.Axis
}

func (n NodeMut[N, T, M]) Bots() BotsMut[N, T]    { return BotsMut[N, T]{bots: n.bots} }
func (n NodeMut[N, T, M]) Depth() int             { return n.depth }
func (n NodeMut[N, T, M]) Axis() axgeom.Axis      { return n.axis }
func (n NodeMut[N, T, M]) Misc() *M               { return n.misc }
func (n NodeMut[N, T, M]) Cont() *axgeom.Range[N] { return n.cont }
func (n NodeMut[N, T, M]) Div() *N                { return n.div }

// AsRef is a read only copy of the view.
func (n NodeMut[N, T, M]) AsRef() NodeRef[N, T, M] {
	return NodeRef[N, T, M]{bots: n.bots, cont: n.cont, div: n.div, misc: *n.misc, depth: n.depth, axis: n.axis}
}

// Children of an internal node. Comp is nil iff the parent has no bots, in
// which case both subtrees are empty too.
type Children[N axgeom.Num, T any, M any] struct {
	Left, Right Vistr[N, T, M]
	Comp        *FullComp[N]
}

type ChildrenMut[N axgeom.Num, T any, M any] struct {
	Left, Right VistrMut[N, T, M]
	Comp        *FullComp[N]
}

// Vistr visits a tree read only. A Vistr is a position in the tree; Next
// returns the node there and, unless it is a leaf, visitors for both
// children.
type Vistr[N axgeom.Num, T any, M any] struct {
	at nodeAt[N, T, M]
}

func (v Vistr[N, T, M]) Depth() int        { return v.at.depth }
func (v Vistr[N, T, M]) Axis() axgeom.Axis { return v.at.axis }

// LevelsRemaining is the height of the subtree rooted here.
func (v Vistr[N, T, M]) LevelsRemaining() int {
	return v.at.t.height - v.at.depth
}

func (v Vistr[N, T, M]) Next() (NodeRef[N, T, M], Children[N, T, M], bool) {
	bots, cont, comp, misc := v.at.read()
	node := NodeRef[N, T, M]{bots: bots, cont: cont, misc: *misc, depth: v.at.depth, axis: v.at.axis}
	if comp != nil {
		node.div = &comp.Div
	}
	if v.at.isLeaf() {
		return node, Children[N, T, M]{}, false
	}
	l, r := v.at.children()
	return node, Children[N, T, M]{Left: Vistr[N, T, M]{l}, Right: Vistr[N, T, M]{r}, Comp: comp}, true
}

func (v Vistr[N, T, M]) preorder(yield func(NodeRef[N, T, M]) bool) bool {
	node, c, ok := v.Next()
	if !yield(node) {
		return false
	}
	if !ok {
		return true
	}
	return c.Left.preorder(yield) && c.Right.preorder(yield)
}

func (v Vistr[N, T, M]) inorder(yield func(NodeRef[N, T, M]) bool) bool {
	node, c, ok := v.Next()
	if !ok {
		return yield(node)
	}
	return c.Left.inorder(yield) && yield(node) && c.Right.inorder(yield)
}

// Preorder yields every node of the subtree, parents before children and
// left before right. This is the order bots are stored in.
func (v Vistr[N, T, M]) Preorder() iter.Seq[NodeRef[N, T, M]] {
	return func(yield func(NodeRef[N, T, M]) bool) {
		v.preorder(yield)
	}
}

// Inorder yields the left subtree, then the node, then the right subtree.
// Along the root axis this visits nodes from low to high.
func (v Vistr[N, T, M]) Inorder() iter.Seq[NodeRef[N, T, M]] {
	return func(yield func(NodeRef[N, T, M]) bool) {
		v.inorder(yield)
	}
}

func (v Vistr[N, T, M]) PreorderWithDepth() iter.Seq2[int, NodeRef[N, T, M]] {
	return func(yield func(int, NodeRef[N, T, M]) bool) {
		v.preorder(func(n NodeRef[N, T, M]) bool {
			return yield(n.depth, n)
		})
	}
}

// VistrMut is Vistr with mutable payload and misc.
type VistrMut[N axgeom.Num, T any, M any] struct {
	at nodeAt[N, T, M]
}

func (v VistrMut[N, T, M]) Depth() int        { return v.at.depth }
func (v VistrMut[N, T, M]) Axis() axgeom.Axis { return v.at.axis }

func (v VistrMut[N, T, M]) LevelsRemaining() int {
	return v.at.t.height - v.at.depth
}

// AsVistr downgrades to a read only visitor at the same position.
func (v VistrMut[N, T, M]) AsVistr() Vistr[N, T, M] {
	return Vistr[N, T, M](v)
}

func (v VistrMut[N, T, M]) Next() (NodeMut[N, T, M], ChildrenMut[N, T, M], bool) {
	bots, cont, comp, misc := v.at.read()
	node := NodeMut[N, T, M]{bots: bots, cont: cont, misc: misc, depth: v.at.depth, axis: v.at.axis}
	if comp != nil {
		node.div = &comp.Div
	}
	if v.at.isLeaf() {
		return node, ChildrenMut[N, T, M]{}, false
	}
	l, r := v.at.children()
	return node, ChildrenMut[N, T, M]{Left: VistrMut[N, T, M]{l}, Right: VistrMut[N, T, M]{r}, Comp: comp}, true
}

func (v VistrMut[N, T, M]) preorder(yield func(NodeMut[N, T, M]) bool) bool {
	node, c, ok := v.Next()
	if !yield(node) {
		return false
	}
	if !ok {
		return true
	}
	return c.Left.preorder(yield) && c.Right.preorder(yield)
}

func (v VistrMut[N, T, M]) inorder(yield func(NodeMut[N, T, M]) bool) bool {
	node, c, ok := v.Next()
	if !ok {
		return yield(node)
	}
	return c.Left.inorder(yield) && yield(node) && c.Right.inorder(yield)
}

func (v VistrMut[N, T, M]) Preorder() iter.Seq[NodeMut[N, T, M]] {
	return func(yield func(NodeMut[N, T, M]) bool) {
		v.preorder(yield)
	}
}

func (v VistrMut[N, T, M]) Inorder() iter.Seq[NodeMut[N, T, M]] {
	return func(yield func(NodeMut[N, T, M]) bool) {
		v.inorder(yield)
	}
}

func (v VistrMut[N, T, M]) PreorderWithDepth() iter.Seq2[int, NodeMut[N, T, M]] {
	return func(yield func(int, NodeMut[N, T, M]) bool) {
		v.preorder(func(n NodeMut[N, T, M]) bool {
			return yield(n.depth, n)
		})
	}
}
