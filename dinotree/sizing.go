package dinotree

import (
	"fmt"
	"unsafe"

	"github.com/forestrie/go-dinotree/axgeom"
)

// NodeCount returns the number of nodes in a complete tree of the given height.
func NodeCount(height int) int {
	return 1<<height - 1
}

// LeafCount returns the number of leaves in a complete tree of the given height.
func LeafCount(height int) int {
	return 1 << (height - 1)
}

// InternalCount returns the number of non leaf nodes in a complete tree of the
// given height.
func InternalCount(height int) int {
	return LeafCount(height) - 1
}

// SubtreeNodeCount returns the number of nodes in the subtree rooted at depth,
// that node included.
func SubtreeNodeCount(depth, height int) int {
	return 1<<(height-depth) - 1
}

// IsLeafDepth reports whether nodes at depth are leaves in a tree of height.
func IsLeafDepth(depth, height int) bool {
	return depth >= height-1
}

// CheckNumBots checks whether numBots can be indexed by a tree.
func CheckNumBots(numBots int) error {
	if uint64(numBots) > MaxBots {
		return fmt.Errorf("%w: %d", ErrTooManyBots, numBots)
	}
	return nil
}

// CheckHeight checks an explicit height override.
func CheckHeight(height int) error {
	if height < 1 || height > MaxHeight {
		return fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidHeight, height, MaxHeight)
	}
	return nil
}

// PackedSizeBytes returns the number of bytes the packed arenas of a tree over
// numBots bots of payload T with per node misc M occupy:
//
//	internal*sizeof(internal record) + leaf*sizeof(leaf record) + numBots*sizeof(BBox)
func PackedSizeBytes[N axgeom.Num, T any, M any](numBots int, height int) uint64 {
	var ir internalRecord[N, M]
	var lr leafRecord[N, M]
	var b BBox[N, T]
	return uint64(InternalCount(height))*uint64(unsafe.Sizeof(ir)) +
		uint64(LeafCount(height))*uint64(unsafe.Sizeof(lr)) +
		uint64(numBots)*uint64(unsafe.Sizeof(b))
}
