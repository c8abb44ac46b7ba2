package dinotree

import (
	"cmp"
	"math/bits"
	"slices"

	"github.com/forestrie/go-dinotree/axgeom"
)

func compareLeft[N axgeom.Num](axis axgeom.Axis) func(a, b traceBot[N]) int {
	return func(a, b traceBot[N]) int {
		return cmp.Compare(a.rect.Get(axis).Left, b.rect.Get(axis).Left)
	}
}

// sortByLeft sorts bots ascending by left edge along axis. Equal edges keep
// their relative order.
func sortByLeft[N axgeom.Num](axis axgeom.Axis, bots []traceBot[N]) {
	slices.SortStableFunc(bots, compareLeft[N](axis))
}

// selectNth rearranges bots so that bots[k] holds the bot whose left edge along
// axis would be at position k if sorted, with no larger left edge before it
// and no smaller one after it.
//
// This is a deterministic introselect: median of three quickselect with a three
// way partition, falling back to a full sort when the pivots keep going bad.
// Identical input always gives an identical arrangement, which is what keeps
// parallel and sequential builds equal.
func selectNth[N axgeom.Num](axis axgeom.Axis, bots []traceBot[N], k int) {
	lo, hi := 0, len(bots)-1
	budget := 2 * bits.Len(uint(len(bots)))

	for lo < hi {
		if budget == 0 {
			slices.SortStableFunc(bots[lo:hi+1], compareLeft[N](axis))
			return
		}
		budget--

		pivot := bots[medianOfThree(axis, bots, lo, lo+(hi-lo)/2, hi)].get(axis).Left

		// [lo,lt) < pivot, [lt,i) == pivot, (gt,hi] > pivot
		lt, i, gt := lo, lo, hi
		for i <= gt {
			v := bots[i].get(axis).Left
			switch {
			case v < pivot:
				bots[lt], bots[i] = bots[i], bots[lt]
				lt++
				i++
			case v > pivot:
				bots[i], bots[gt] = bots[gt], bots[i]
				gt--
			default:
				i++
			}
		}

		switch {
		case k < lt:
			hi = lt - 1
		case k > gt:
			lo = gt + 1
		default:
			return
		}
	}
}

func medianOfThree[N axgeom.Num](axis axgeom.Axis, bots []traceBot[N], a, b, c int) int {
	va, vb, vc := bots[a].get(axis).Left, bots[b].get(axis).Left, bots[c].get(axis).Left
	if va < vb {
		if vb < vc {
			return b
		}
		if va < vc {
			return c
		}
		return a
	}
	if va < vc {
		return a
	}
	if vb < vc {
		return c
	}
	return b
}

// createCont returns the smallest range along axis covering every bot, and
// false if there are no bots.
func createCont[N axgeom.Num](axis axgeom.Axis, bots []traceBot[N]) (axgeom.Range[N], bool) {
	if len(bots) == 0 {
		return axgeom.Range[N]{}, false
	}
	cont := bots[0].get(axis)
	for i := 1; i < len(bots); i++ {
		r := bots[i].get(axis)
		if r.Left < cont.Left {
			cont.Left = r.Left
		}
		if r.Right > cont.Right {
			cont.Right = r.Right
		}
	}
	return cont, true
}
