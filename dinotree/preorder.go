package dinotree

import "github.com/forestrie/go-dinotree/axgeom"

// preorderVistr walks the recurser's preorder node sequence. Children are not
// stored; they are found by index arithmetic on the preorder position.
type preorderVistr[N axgeom.Num] struct {
	nodes  []buildNode[N]
	index  int
	depth  int
	height int
}

func newPreorderVistr[N axgeom.Num](nodes []buildNode[N], height int) preorderVistr[N] {
	return preorderVistr[N]{nodes: nodes, height: height}
}

func (v preorderVistr[N]) leftIndex() int {
	return v.index + 1
}

func (v preorderVistr[N]) rightIndex() int {
	return v.index + 1 + SubtreeNodeCount(v.depth+1, v.height)
}

// next returns the node and, for internal nodes, the two child visitors.
func (v preorderVistr[N]) next() (*buildNode[N], preorderVistr[N], preorderVistr[N], bool) {
	node := &v.nodes[v.index]
	if IsLeafDepth(v.depth, v.height) {
		return node, preorderVistr[N]{}, preorderVistr[N]{}, false
	}
	left := preorderVistr[N]{nodes: v.nodes, index: v.leftIndex(), depth: v.depth + 1, height: v.height}
	right := preorderVistr[N]{nodes: v.nodes, index: v.rightIndex(), depth: v.depth + 1, height: v.height}
	return node, left, right, true
}

// inorder calls fn for each node, left subtree first, then the node, then the
// right subtree.
func (v preorderVistr[N]) inorder(fn func(depth int, node *buildNode[N])) {
	node, left, right, ok := v.next()
	if ok {
		left.inorder(fn)
	}
	fn(v.depth, node)
	if ok {
		right.inorder(fn)
	}
}
