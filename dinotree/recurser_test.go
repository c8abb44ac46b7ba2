package dinotree

import (
	"fmt"
	"testing"

	"github.com/forestrie/go-dinotree/axgeom"
	"github.com/forestrie/go-dinotree/dinotreetesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallelMatchesSequential(t *testing.T) {
	tc := newTestContext(t, 10)
	bots := dinotreetesting.RandomRects[float64](tc.Rng, 3000, 1000, 20)
	height := ComputeHeight(len(bots), 16)

	seqOpts := newBuildOptions(WithSequential())
	seqTrace := traceOf(bots)
	seqNodes := buildTrace(&seqOpts, height, seqTrace)

	for switchDepth := 0; switchDepth <= height; switchDepth++ {
		t.Run(fmt.Sprintf("switch %d", switchDepth), func(t *testing.T) {
			o := newBuildOptions(WithJoiner(Parallel{SwitchDepth: switchDepth}))
			trace := traceOf(bots)
			nodes := buildTrace(&o, height, trace)

			require.Equal(t, seqNodes, nodes)
			require.Equal(t, seqTrace, trace)
		})
	}
}

func TestParallelMatchesSequentialAllStrats(t *testing.T) {
	tc := newTestContext(t, 11)
	bots := dinotreetesting.UniformSquares[int](tc.Rng, 2000, 500, 4)
	height := ComputeHeight(len(bots), 8)

	for _, strat := range allBinStrats {
		seqOpts := newBuildOptions(WithSequential(), WithBinStrat(strat), WithAxis(axgeom.YAxis))
		parOpts := newBuildOptions(WithBinStrat(strat), WithAxis(axgeom.YAxis), WithHeightSwitchSeq(2))

		seqNodes := buildTrace(&seqOpts, height, traceOf(bots))
		parNodes := buildTrace(&parOpts, height, traceOf(bots))
		assert.Equal(t, seqNodes, parNodes, "strat %v", strat)
	}
}

func TestBuildTraceCounts(t *testing.T) {
	tc := newTestContext(t, 12)
	for _, n := range []int{0, 1, 5, 100, 1234} {
		bots := dinotreetesting.RandomRects[float64](tc.Rng, n, 100, 5)
		for _, height := range []int{1, 2, 3, 6} {
			o := newBuildOptions(WithBoundsMode(Checked))
			nodes := buildTrace(&o, height, traceOf(bots))
			require.Len(t, nodes, NodeCount(height))

			total := 0
			for i := range nodes {
				total += nodes[i].len()
			}
			assert.Equal(t, n, total, "n=%d height=%d", n, height)
		}
	}
}

func TestRecurserPanicPropagates(t *testing.T) {
	bots := dinotreetesting.IdenticalPoints[float64](64, 1)
	o := newBuildOptions(WithJoiner(Parallel{SwitchDepth: 4}), WithSplitter(&panicSplitter{}))
	assert.Panics(t, func() {
		buildTrace(&o, 5, traceOf(bots))
	})
}

// panicSplitter panics when a leaf is reached, which for a forking build is
// on a goroutine other than the caller's.
type panicSplitter struct{}

func (*panicSplitter) Div() Splitter { return &panicSplitter{} }
func (*panicSplitter) Add(Splitter)  {}
func (*panicSplitter) NodeStart()    {}
func (*panicSplitter) NodeEnd()      { panic("leaf") }

func TestComputeSwitchDepth(t *testing.T) {
	assert.Equal(t, 0, ComputeSwitchDepth(SwitchSequentialDefault, 5))
	assert.Equal(t, 0, ComputeSwitchDepth(6, 6))
	assert.Equal(t, 3, ComputeSwitchDepth(6, 9))
	assert.Equal(t, Parallel{SwitchDepth: 9}, NewParallel(0, 9))
	assert.False(t, Sequential{}.Fork(0))
	assert.True(t, Parallel{SwitchDepth: 2}.Fork(1))
	assert.False(t, Parallel{SwitchDepth: 2}.Fork(2))
}
