package dinotree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermuteThenReorder(t *testing.T) {
	items := []string{"a", "b", "c", "d"}
	mover := []uint32{2, 0, 3, 1}

	require.NoError(t, Permute(items, mover))
	assert.Equal(t, []string{"c", "a", "d", "b"}, items)
	assert.Equal(t, []uint32{2, 0, 3, 1}, mover, "Permute leaves the mover alone")

	require.NoError(t, Reorder(items, mover))
	assert.Equal(t, []string{"a", "b", "c", "d"}, items)
	assert.Equal(t, []uint32{0, 1, 2, 3}, mover, "Reorder consumes the mover")
}

func TestReorderCycles(t *testing.T) {
	tests := []struct {
		name  string
		mover []uint32
	}{
		{name: "empty", mover: []uint32{}},
		{name: "identity", mover: []uint32{0, 1, 2}},
		{name: "swap", mover: []uint32{1, 0}},
		{name: "rotate", mover: []uint32{1, 2, 3, 4, 0}},
		{name: "two cycles", mover: []uint32{1, 0, 4, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := make([]int, len(tt.mover))
			for i, orig := range tt.mover {
				items[i] = int(orig) * 10
			}
			mover := append([]uint32(nil), tt.mover...)
			require.NoError(t, Reorder(items, mover))
			for i := range items {
				assert.Equal(t, i*10, items[i])
				assert.Equal(t, uint32(i), mover[i])
			}
		})
	}
}

func TestReorderInvalidMover(t *testing.T) {
	tests := []struct {
		name  string
		items int
		mover []uint32
		err   error
	}{
		{name: "length", items: 3, mover: []uint32{0, 1}, err: ErrLengthMismatch},
		{name: "out of range", items: 2, mover: []uint32{5, 0}, err: ErrInvalidMover},
		{name: "repeat fixed", items: 2, mover: []uint32{0, 0}, err: ErrInvalidMover},
		{name: "repeat forward", items: 2, mover: []uint32{1, 1}, err: ErrInvalidMover},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := make([]int, tt.items)
			require.ErrorIs(t, Reorder(items, append([]uint32(nil), tt.mover...)), tt.err)
			require.ErrorIs(t, Permute(items, append([]uint32(nil), tt.mover...)), tt.err)
		})
	}
}
