package dinotree

import (
	"slices"
	"testing"

	"github.com/forestrie/go-dinotree/axgeom"
	"github.com/forestrie/go-dinotree/dinotreetesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nodeSummary is what a traversal sees of one node.
type nodeSummary struct {
	depth   int
	hasDiv  bool
	div     float64
	hasCont bool
	cont    axgeom.Range[float64]
	ids     []int
}

func summarizeBuildNode(depth int, n *buildNode[float64], trace []traceBot[float64]) nodeSummary {
	s := nodeSummary{depth: depth, hasDiv: n.hasDiv, ids: []int{}}
	if n.hasDiv {
		s.div = n.div
	}
	if n.len() > 0 {
		s.hasCont, s.cont = true, n.cont
	}
	for _, b := range trace[n.start:n.end] {
		s.ids = append(s.ids, int(b.index))
	}
	return s
}

func summarizeNodeRef(n NodeRef[float64, int, int]) nodeSummary {
	s := nodeSummary{depth: n.Depth(), ids: []int{}}
	if d := n.Div(); d != nil {
		s.hasDiv, s.div = true, *d
	}
	if c := n.Cont(); c != nil {
		s.hasCont, s.cont = true, *c
	}
	for _, id := range n.Bots().All() {
		s.ids = append(s.ids, id)
	}
	return s
}

func implicitPreorder(v preorderVistr[float64], trace []traceBot[float64], out *[]nodeSummary) {
	node, left, right, ok := v.next()
	*out = append(*out, summarizeBuildNode(v.depth, node, trace))
	if ok {
		implicitPreorder(left, trace, out)
		implicitPreorder(right, trace, out)
	}
}

func packTestTree(t *testing.T, seed uint64, n int, numPerNode int) ([]buildNode[float64], []traceBot[float64], *packedTree[float64, int, int]) {
	tc := newTestContext(t, seed)
	bots := dinotreetesting.RandomRects[float64](tc.Rng, n, 300, 15)
	height := ComputeHeight(n, numPerNode)

	o := newBuildOptions()
	trace := traceOf(bots)
	nodes := buildTrace(&o, height, trace)

	ordered := treeOrder(nodes, trace)
	storage := make([]BBox[float64, int], len(ordered))
	for i, b := range ordered {
		storage[i] = NewBBox(b.rect, int(b.index))
	}
	return nodes, trace, newPackedTree(nodes, height, storage, 0)
}

func TestPackedMatchesPreorderNodes(t *testing.T) {
	for _, n := range []int{0, 1, 30, 1000} {
		nodes, trace, packed := packTestTree(t, uint64(50+n), n, 8)
		height := packed.height

		require.Len(t, packed.internals, InternalCount(height))
		require.Len(t, packed.leaves, LeafCount(height))

		var want []nodeSummary
		implicitPreorder(newPreorderVistr(nodes, height), trace, &want)

		// The node slice is itself in preorder.
		require.Len(t, want, len(nodes))
		for i := range nodes {
			require.Equal(t, want[i], summarizeBuildNode(want[i].depth, &nodes[i], trace))
		}

		var got []nodeSummary
		v := Vistr[float64, int, int]{nodeAt[float64, int, int]{t: packed}}
		for node := range v.Preorder() {
			got = append(got, summarizeNodeRef(node))
		}
		assert.Equal(t, want, got, "n=%d", n)

		var wantIn, gotIn []nodeSummary
		newPreorderVistr(nodes, height).inorder(func(depth int, node *buildNode[float64]) {
			wantIn = append(wantIn, summarizeBuildNode(depth, node, trace))
		})
		for node := range v.Inorder() {
			gotIn = append(gotIn, summarizeNodeRef(node))
		}
		assert.Equal(t, wantIn, gotIn, "n=%d", n)
	}
}

func TestPackedStorageIsPreorder(t *testing.T) {
	_, _, packed := packTestTree(t, 60, 500, 16)
	v := Vistr[float64, int, int]{nodeAt[float64, int, int]{t: packed}}

	var ids []int
	for node := range v.Preorder() {
		for _, id := range node.Bots().All() {
			ids = append(ids, id)
		}
	}
	want := make([]int, 0, len(packed.bots))
	for i := range packed.bots {
		want = append(want, packed.bots[i].Inner)
	}
	assert.Equal(t, want, ids)

	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	for i := range sorted {
		require.Equal(t, i, sorted[i])
	}
}

func TestPackedExactFill(t *testing.T) {
	nodes, trace, packed := packTestTree(t, 61, 200, 8)
	assert.Panics(t, func() {
		newPackedTree(nodes, packed.height, packed.bots[:len(trace)-1], 0)
	})
}

func TestMapPackedMisc(t *testing.T) {
	_, _, packed := packTestTree(t, 62, 300, 8)
	for i := range packed.internals {
		packed.internals[i].misc = i
	}
	for i := range packed.leaves {
		packed.leaves[i].misc = -i
	}

	mapped := mapPackedMisc(packed, func(m int) float64 { return float64(m) / 2 })
	require.Len(t, mapped.internals, len(packed.internals))
	require.Len(t, mapped.leaves, len(packed.leaves))
	for i := range mapped.internals {
		assert.Equal(t, float64(i)/2, mapped.internals[i].misc)
		assert.Equal(t, packed.internals[i].comp, mapped.internals[i].comp)
	}
	for i := range mapped.leaves {
		assert.Equal(t, float64(-i)/2, mapped.leaves[i].misc)
	}
}
