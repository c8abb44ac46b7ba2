package dinotree

// Joiner decides, per internal node, whether the two child subtrees are built
// concurrently.
type Joiner interface {
	// Fork reports whether the children of a node at depth should be built on
	// separate goroutines.
	Fork(depth int) bool
}

// Sequential never forks.
type Sequential struct{}

func (Sequential) Fork(int) bool { return false }

// Parallel forks for every node above SwitchDepth. Nodes at or below it, and
// their descendants, are built sequentially.
type Parallel struct {
	SwitchDepth int
}

func (p Parallel) Fork(depth int) bool {
	return depth < p.SwitchDepth
}

// ComputeSwitchDepth returns the depth at which parallel construction of a tree
// of height stops forking, leaving heightSwitchSeq levels above the leaves to
// be built sequentially. Forking small subtrees costs more than it saves.
func ComputeSwitchDepth(heightSwitchSeq int, height int) int {
	if height <= heightSwitchSeq {
		return 0
	}
	return height - heightSwitchSeq
}

// NewParallel returns the Parallel joiner for a tree of height.
func NewParallel(heightSwitchSeq int, height int) Parallel {
	return Parallel{SwitchDepth: ComputeSwitchDepth(heightSwitchSeq, height)}
}
