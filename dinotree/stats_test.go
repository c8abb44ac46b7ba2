package dinotree

import (
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-dinotree/dinotreetesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsRoundTrip(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()
	tc := newTestContext(t, 80)

	bots := dinotreetesting.UniformSquares[float64](tc.Rng, 5000, 1000, 2)
	tree := buildTestTree(t, bots,
		WithNumPerNode(32), WithHeightSwitchSeq(3), WithBinStrat(StraddleLast),
		WithSplitter(NewLevelTimer()), WithLogger(tc.Log))

	stats := tree.Stats()
	assert.Equal(t, tree.BuildID().String(), stats.BuildID)
	assert.Equal(t, uint64(5000), stats.NumBots)
	assert.Equal(t, uint64(tree.Height()), stats.Height)
	assert.Equal(t, uint64(NodeCount(tree.Height())), stats.NumNodes)
	assert.False(t, stats.Sequential)
	assert.Equal(t, uint64(ComputeSwitchDepth(3, tree.Height())), stats.SwitchDepth)
	assert.Equal(t, "straddle-last", stats.BinStrat)
	assert.Equal(t, PackedSizeBytes[float64, testBot, struct{}](5000, tree.Height()), stats.PackedBytes)
	assert.Len(t, stats.LevelNanos, tree.Height())

	data, err := EncodeStats(stats)
	require.NoError(t, err)

	again, err := EncodeStats(stats)
	require.NoError(t, err)
	assert.Equal(t, data, again)

	decoded, err := DecodeStats(data)
	require.NoError(t, err)
	assert.Equal(t, stats, decoded)
}

func TestStatsSequential(t *testing.T) {
	tc := newTestContext(t, 81)
	bots := dinotreetesting.UniformSquares[float64](tc.Rng, 100, 100, 2)
	tree := buildTestTree(t, bots, WithSequential())

	stats := tree.Stats()
	assert.True(t, stats.Sequential)
	assert.Zero(t, stats.SwitchDepth)
	assert.Nil(t, stats.LevelNanos)

	data, err := EncodeStats(stats)
	require.NoError(t, err)
	decoded, err := DecodeStats(data)
	require.NoError(t, err)
	assert.Equal(t, stats, decoded)
}

func TestDecodeStatsGarbage(t *testing.T) {
	_, err := DecodeStats([]byte{0xff, 0x00, 0x13})
	assert.Error(t, err)
}
