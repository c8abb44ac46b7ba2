package dinotree

import (
	"sync"

	"github.com/forestrie/go-dinotree/axgeom"
)

// buildNode is one node of the preorder sequence produced by the recurser. Its
// bots are trace[start:end] of the trace the tree was built over.
type buildNode[N axgeom.Num] struct {
	start, end int

	// cont is meaningful iff start != end.
	cont axgeom.Range[N]

	div    N
	hasDiv bool
}

func (n *buildNode[N]) len() int {
	return n.end - n.start
}

type recurser[N axgeom.Num] struct {
	height int
	strat  BinStrat
	mode   BoundsMode
}

func (r *recurser[N]) createLeaf(axis axgeom.Axis, rest []traceBot[N], off int) buildNode[N] {
	sortByLeft(axis.Next(), rest)
	cont, _ := createCont(axis, rest)
	return buildNode[N]{start: off, end: off + len(rest), cont: cont}
}

// createNonLeaf splits rest into this node's straddling bots and the bots for
// each child. An empty rest gives an empty node and empty children.
func (r *recurser[N]) createNonLeaf(axis axgeom.Axis, rest []traceBot[N], off int) (
	node buildNode[N], left []traceBot[N], leftOff int, right []traceBot[N], rightOff int,
) {
	res := constructNonLeaf(r.strat, r.mode, axis, rest)
	if res.empty {
		return buildNode[N]{start: off, end: off}, rest[:0], off, rest[:0], off
	}
	node = buildNode[N]{
		start:  off + res.middleOff,
		end:    off + res.middleOff + len(res.middle),
		cont:   res.cont,
		div:    res.div,
		hasDiv: true,
	}
	return node, res.left, off + res.leftOff, res.right, off + res.rightOff
}

func (r *recurser[N]) recurseSeq(axis axgeom.Axis, rest []traceBot[N], off int, nodes *[]buildNode[N], splitter Splitter, depth int) {
	splitter.NodeStart()

	if depth < r.height-1 {
		node, left, leftOff, right, rightOff := r.createNonLeaf(axis, rest, off)
		*nodes = append(*nodes, node)

		splitter2 := splitter.Div()

		r.recurseSeq(axis.Next(), left, leftOff, nodes, splitter, depth+1)
		r.recurseSeq(axis.Next(), right, rightOff, nodes, splitter2, depth+1)

		splitter.Add(splitter2)
		return
	}

	*nodes = append(*nodes, r.createLeaf(axis, rest, off))
	splitter.NodeEnd()
}

// recursePar is recurseSeq with the option of building the two children on
// separate goroutines. The right subtree is built into its own slice and
// appended after the left subtree, so the preorder sequence is the same
// whether or not, and wherever, the build forked.
func (r *recurser[N]) recursePar(axis axgeom.Axis, joiner Joiner, rest []traceBot[N], off int, nodes *[]buildNode[N], splitter Splitter, depth int) {
	splitter.NodeStart()

	if depth >= r.height-1 {
		*nodes = append(*nodes, r.createLeaf(axis, rest, off))
		splitter.NodeEnd()
		return
	}

	node, left, leftOff, right, rightOff := r.createNonLeaf(axis, rest, off)
	*nodes = append(*nodes, node)

	splitter2 := splitter.Div()

	if !joiner.Fork(depth) {
		r.recurseSeq(axis.Next(), left, leftOff, nodes, splitter, depth+1)
		r.recurseSeq(axis.Next(), right, rightOff, nodes, splitter2, depth+1)
		splitter.Add(splitter2)
		return
	}

	// left and right are disjoint sub slices of rest, so the two goroutines
	// never touch the same bots.
	var (
		wg         sync.WaitGroup
		rightNodes []buildNode[N]
		recovered  any
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer func() { recovered = recover() }()
		rightNodes = make([]buildNode[N], 0, SubtreeNodeCount(depth+1, r.height))
		r.recursePar(axis.Next(), joiner, right, rightOff, &rightNodes, splitter2, depth+1)
	}()
	func() {
		defer wg.Wait()
		r.recursePar(axis.Next(), joiner, left, leftOff, nodes, splitter, depth+1)
	}()
	if recovered != nil {
		panic(recovered)
	}

	*nodes = append(*nodes, rightNodes...)
	splitter.Add(splitter2)
}

// buildTrace builds the preorder node sequence over trace.
func buildTrace[N axgeom.Num](o *buildOptions, height int, trace []traceBot[N]) []buildNode[N] {
	r := &recurser[N]{height: height, strat: o.binStrat, mode: o.boundsMode}
	nodes := make([]buildNode[N], 0, NodeCount(height))

	joiner := o.joinerFor(height)
	if _, ok := joiner.(Sequential); ok {
		r.recurseSeq(o.axis, trace, 0, &nodes, o.splitter, 0)
	} else {
		r.recursePar(o.axis, joiner, trace, 0, &nodes, o.splitter, 0)
	}

	if len(nodes) != NodeCount(height) {
		panic("dinotree: recurser produced an incomplete tree")
	}
	total := 0
	for i := range nodes {
		total += nodes[i].len()
	}
	if total != len(trace) {
		panic("dinotree: recurser lost or duplicated bots")
	}
	return nodes
}
