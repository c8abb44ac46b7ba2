package dinotree

import (
	"errors"
	"math"
)

// DefaultNumElemPerNode is the number of bots ComputeHeight aims to place in
// each leaf. Too small and time goes into recursing, too large and the tree
// degrades into a single sort and sweep.
const DefaultNumElemPerNode = 128

// SwitchSequentialDefault is the number of levels above the leaves at which
// parallel construction stops forking.
const SwitchSequentialDefault = 6

// MaxHeight bounds explicit height overrides. Node refs are 32 bit.
const MaxHeight = 32

// MaxBots is the largest number of bots a tree can index. Original indices
// are stored as uint32.
const MaxBots = math.MaxUint32 - 1

var (
	ErrTooManyBots       = errors.New("dinotree: too many bots for 32 bit indices")
	ErrInvalidHeight     = errors.New("dinotree: invalid tree height")
	ErrInvalidNumPerNode = errors.New("dinotree: number of bots per node must be > 0")
	ErrLengthMismatch    = errors.New("dinotree: slice length does not match the tree")
	ErrTreeConsumed      = errors.New("dinotree: tree has already been consumed")
	ErrInvalidMover      = errors.New("dinotree: mover is not a permutation")
	ErrInvariant         = errors.New("dinotree: tree invariant violated")
)
