package dinotree

import (
	"fmt"

	"github.com/forestrie/go-dinotree/axgeom"
)

// Mover records where each bot of a tree came from: Mover[i] is the index in
// the caller's slice of the bot at tree position i.
type Mover []uint32

// Reorder moves items from tree order back to original order, so that the
// item at position i ends up at mover[i]. It runs in place by following the
// cycles of the permutation and does not allocate.
//
// mover is consumed: on success it is left as the identity. If mover is not a
// permutation the error is only found part way through, so items and mover
// are left partially permuted.
func Reorder[X any](items []X, mover []uint32) error {
	if len(items) != len(mover) {
		return fmt.Errorf("%w: %d items, mover of %d", ErrLengthMismatch, len(items), len(mover))
	}
	for i := range mover {
		for mover[i] != uint32(i) {
			j := mover[i]
			if int(j) >= len(mover) {
				return fmt.Errorf("%w: index %d out of range at %d", ErrInvalidMover, j, i)
			}
			// j already holds its item, so i and j both claim it.
			if mover[j] == j {
				return fmt.Errorf("%w: index %d repeated at %d", ErrInvalidMover, j, i)
			}
			items[i], items[j] = items[j], items[i]
			mover[i], mover[j] = mover[j], mover[i]
		}
	}
	return nil
}

// Permute moves items from original order into tree order, so that position i
// receives the item at mover[i]. mover is left unchanged.
func Permute[X any](items []X, mover []uint32) error {
	if len(items) != len(mover) {
		return fmt.Errorf("%w: %d items, mover of %d", ErrLengthMismatch, len(items), len(mover))
	}
	const unset = ^uint32(0)

	inverse := make([]uint32, len(mover))
	for i := range inverse {
		inverse[i] = unset
	}
	for i, j := range mover {
		if int(j) >= len(mover) {
			return fmt.Errorf("%w: index %d out of range at %d", ErrInvalidMover, j, i)
		}
		if inverse[j] != unset {
			return fmt.Errorf("%w: index %d repeated at %d", ErrInvalidMover, j, i)
		}
		inverse[j] = uint32(i)
	}
	return Reorder(items, inverse)
}

// treeOrder concatenates the bots of every node in preorder. The result is
// the order bots are stored in.
func treeOrder[N axgeom.Num](nodes []buildNode[N], trace []traceBot[N]) []traceBot[N] {
	ordered := make([]traceBot[N], 0, len(trace))
	for i := range nodes {
		ordered = append(ordered, trace[nodes[i].start:nodes[i].end]...)
	}
	return ordered
}

func moverOf[N axgeom.Num](ordered []traceBot[N]) Mover {
	mover := make(Mover, len(ordered))
	for i := range ordered {
		mover[i] = ordered[i].index
	}
	return mover
}
