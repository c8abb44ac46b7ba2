package dinotree

import "math"

// ComputeHeight returns the tree height for numBots bots such that each leaf
// holds roughly numPerNode bots.
//
// There are 2^h leaves, so we want 2^h * numPerNode >= numBots. The result is
// always odd so the root axis and the leaf axis are the same:
//
//	h = 2*ceil(log2(numBots/numPerNode)/2) + 1
//
// A single leaf (height 1) is returned when numBots <= numPerNode.
func ComputeHeight(numBots int, numPerNode int) int {
	if numBots <= numPerNode {
		return 1
	}
	a := float64(numBots) / float64(numPerNode)
	b := math.Log2(a) / 2
	return int(math.Ceil(b))*2 + 1
}
