package dinotree

import (
	"fmt"

	"github.com/forestrie/go-dinotree/axgeom"
)

// BinStrat selects how the three buckets produced by a partition are laid out
// in the working slice. All strategies produce the same buckets.
type BinStrat uint8

const (
	// StraddleMiddle lays out left, straddling, right.
	StraddleMiddle BinStrat = iota
	// StraddleFirst lays out straddling, left, right.
	StraddleFirst
	// StraddleLast lays out left, right, straddling.
	StraddleLast
)

func (s BinStrat) String() string {
	switch s {
	case StraddleMiddle:
		return "straddle-middle"
	case StraddleFirst:
		return "straddle-first"
	case StraddleLast:
		return "straddle-last"
	}
	return fmt.Sprintf("BinStrat(%d)", uint8(s))
}

// BoundsMode selects whether binning asserts its scan indices and post
// conditions as it goes. Both modes produce identical output.
type BoundsMode uint8

const (
	Unchecked BoundsMode = iota
	Checked
)

func (m BoundsMode) String() string {
	if m == Checked {
		return "checked"
	}
	return "unchecked"
}

type bucket uint8

const (
	bucketLeft bucket = iota
	bucketMiddle
	bucketRight
)

// classify places a range relative to div. A range touching div straddles it.
func classify[N axgeom.Num](r axgeom.Range[N], div N) bucket {
	if r.Right < div {
		return bucketLeft
	}
	if r.Left > div {
		return bucketRight
	}
	return bucketMiddle
}

// ranks returns the position of each bucket in the output layout.
func (s BinStrat) ranks() [3]uint8 {
	switch s {
	case StraddleFirst:
		return [3]uint8{bucketLeft: 1, bucketMiddle: 0, bucketRight: 2}
	case StraddleLast:
		return [3]uint8{bucketLeft: 0, bucketMiddle: 2, bucketRight: 1}
	default:
		return [3]uint8{bucketLeft: 0, bucketMiddle: 1, bucketRight: 2}
	}
}

// binned is the result of a three way partition. Offsets are relative to the
// start of the partitioned slice.
type binned[N axgeom.Num] struct {
	left, middle, right          []traceBot[N]
	leftOff, middleOff, rightOff int
}

// binMiddleLeftRight partitions bots into those entirely left of div, those
// touching or crossing div, and those entirely right of div, laid out as strat
// dictates.
func binMiddleLeftRight[N axgeom.Num](strat BinStrat, mode BoundsMode, axis axgeom.Axis, div N, bots []traceBot[N]) binned[N] {
	rank := strat.ranks()
	checked := mode == Checked
	n := len(bots)

	// Dutch flag scan: [0,lo) rank 0, [lo,i) rank 1, [hi,n) rank 2.
	lo, i, hi := 0, 0, n
	for i < hi {
		if checked && (lo > i || hi > n || i >= n) {
			panic(fmt.Sprintf("dinotree: binning scan out of bounds: lo=%d i=%d hi=%d n=%d", lo, i, hi, n))
		}
		switch rank[classify(bots[i].get(axis), div)] {
		case 0:
			bots[lo], bots[i] = bots[i], bots[lo]
			lo++
			i++
		case 1:
			i++
		default:
			hi--
			bots[i], bots[hi] = bots[hi], bots[i]
		}
	}

	var seg [3][]traceBot[N]
	var off [3]int
	seg[0], off[0] = bots[:lo], 0
	seg[1], off[1] = bots[lo:hi], lo
	seg[2], off[2] = bots[hi:], hi

	b := binned[N]{
		left: seg[rank[bucketLeft]], leftOff: off[rank[bucketLeft]],
		middle: seg[rank[bucketMiddle]], middleOff: off[rank[bucketMiddle]],
		right: seg[rank[bucketRight]], rightOff: off[rank[bucketRight]],
	}
	if checked {
		checkBinned(axis, div, n, b)
	}
	return b
}

func checkBinned[N axgeom.Num](axis axgeom.Axis, div N, n int, b binned[N]) {
	if len(b.left)+len(b.middle)+len(b.right) != n {
		panic(fmt.Sprintf("dinotree: binning lost bots: %d+%d+%d != %d",
			len(b.left), len(b.middle), len(b.right), n))
	}
	if n > 0 && len(b.middle) == 0 {
		panic("dinotree: binning produced no straddling bots for a non empty slice")
	}
	for _, want := range []struct {
		bots []traceBot[N]
		b    bucket
	}{{b.left, bucketLeft}, {b.middle, bucketMiddle}, {b.right, bucketRight}} {
		for j := range want.bots {
			if got := classify(want.bots[j].get(axis), div); got != want.b {
				panic(fmt.Sprintf("dinotree: bot %d binned into bucket %d, belongs in %d",
					want.bots[j].index, want.b, got))
			}
		}
	}
}

// constructResult is the outcome of splitting one node's bots.
type constructResult[N axgeom.Num] struct {
	empty bool

	div  N
	cont axgeom.Range[N]
	binned[N]
}

// constructNonLeaf selects the median bot by left edge along axis, makes its
// left edge the divider and bins every bot against it. The median bot always
// touches its own left edge, so the straddling bucket of a non empty slice is
// never empty. The straddling bucket is sorted along the next axis.
func constructNonLeaf[N axgeom.Num](strat BinStrat, mode BoundsMode, axis axgeom.Axis, bots []traceBot[N]) constructResult[N] {
	if len(bots) == 0 {
		return constructResult[N]{empty: true}
	}

	mm := len(bots) / 2
	selectNth(axis, bots, mm)
	div := bots[mm].get(axis).Left

	b := binMiddleLeftRight(strat, mode, axis, div, bots)

	sortByLeft(axis.Next(), b.middle)
	cont, _ := createCont(axis, b.middle)

	return constructResult[N]{div: div, cont: cont, binned: b}
}
