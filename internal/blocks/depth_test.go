package blocks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chainOfThree() []*Block {
	// three stacked row-axis blocks in one column, all sliding up:
	// the top one is free, each next waits for the one above it
	return []*Block{
		laneBlock(0, AxisRow, 0, 0, Up),
		laneBlock(1, AxisRow, 2, 0, Up),
		laneBlock(2, AxisRow, 4, 0, Up),
	}
}

func facingPair() []*Block {
	return []*Block{
		laneBlock(0, AxisRow, 0, 0, Down),
		laneBlock(1, AxisRow, 2, 0, Up),
	}
}

func TestAnalyzeDepthsChain(t *testing.T) {
	stats := analyzeDepths(chainOfThree())
	assert.Equal(t, 1, stats.RemovableCount)
	assert.Equal(t, 2, stats.Max)
	assert.InDelta(t, 1.0, stats.Avg, 1e-9)
	assert.Equal(t, 0, stats.Unresolved)
}

func TestAnalyzeDepthsCycle(t *testing.T) {
	stats := analyzeDepths(facingPair())
	assert.Equal(t, 0, stats.RemovableCount)
	assert.Equal(t, 2, stats.Unresolved)
}

func TestCalculateBlockDepthsChain(t *testing.T) {
	cfg := DefaultBoardConfig()
	bounds := Rect{W: 1000, H: 1000}
	bl := chainOfThree()

	stats := calculateBlockDepths(bl, bounds, cfg)
	require.Equal(t, 0, stats.Unresolved)
	assert.Equal(t, 1, stats.RemovableCount)
	assert.InDelta(t, 1.0/3.0, stats.RemovableRatio, 1e-9)
	assert.Equal(t, 0, bl[0].Depth)
	assert.Equal(t, 1, bl[1].Depth)
	assert.Equal(t, 2, bl[2].Depth)
	assert.Equal(t, 2, stats.Max)
}

func TestCalculateBlockDepthsDeadlock(t *testing.T) {
	cfg := DefaultBoardConfig()
	bounds := Rect{W: 1000, H: 1000}
	bl := facingPair()

	stats := calculateBlockDepths(bl, bounds, cfg)
	assert.Equal(t, 2, stats.Unresolved)
	assert.Equal(t, 0, stats.RemovableCount)
}

func TestDepthsAgreeOnIndependentLanes(t *testing.T) {
	cfg := DefaultBoardConfig()
	bounds := Rect{W: 1000, H: 1000}
	bl := []*Block{
		laneBlock(0, AxisRow, 0, 0, Up),
		laneBlock(1, AxisRow, 2, 0, Up),
		laneBlock(2, AxisCol, 10, 4, Left),
		laneBlock(3, AxisCol, 10, 7, Left),
	}

	graph := analyzeDepths(bl)
	peel := calculateBlockDepths(bl, bounds, cfg)
	assert.Equal(t, graph.RemovableCount, peel.RemovableCount)
	assert.Equal(t, graph.Max, peel.Max)
	assert.InDelta(t, graph.Avg, peel.Avg, 1e-9)
}
