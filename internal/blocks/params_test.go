package blocks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParamsForLevelPure(t *testing.T) {
	cfg := DefaultBoardConfig()
	for _, level := range []int{1, 5, 12, 23, 47, 60} {
		assert.Equal(t, ParamsForLevel(level, cfg), ParamsForLevel(level, cfg))
	}
}

func TestParamsForLevelOpening(t *testing.T) {
	cfg := DefaultBoardConfig()
	p := ParamsForLevel(1, cfg)

	assert.Equal(t, 6, p.BlockCount)
	assert.Equal(t, StrategyLaneUniform, p.Strategy)
	assert.InDelta(t, 1.8, p.DepthTarget.Max, 1e-9)
	assert.InDelta(t, 0.95, p.OutwardBias, 1e-9)
	assert.InDelta(t, 0.05, p.DepthFactor, 1e-9)
	assert.Zero(t, p.HoleRatio)
}

func TestParamsForLevelClampsLow(t *testing.T) {
	cfg := DefaultBoardConfig()
	assert.Equal(t, ParamsForLevel(1, cfg), ParamsForLevel(0, cfg))
	assert.Equal(t, ParamsForLevel(1, cfg), ParamsForLevel(-3, cfg))
}

func TestParamsForLevelSaturatesHigh(t *testing.T) {
	cfg := DefaultBoardConfig()
	top := ParamsForLevel(60, cfg)
	beyond := ParamsForLevel(120, cfg)

	assert.Equal(t, top.BlockCount, beyond.BlockCount)
	assert.Equal(t, top.Strategy, beyond.Strategy)
	assert.Equal(t, top.DepthTarget, beyond.DepthTarget)
}

func TestDifficultyRampsUp(t *testing.T) {
	cfg := DefaultBoardConfig()

	// relief levels excluded: the raw curve grows monotonically
	levels := []int{1, 2, 3, 4, 6, 7, 11, 16, 22, 28, 31, 42, 58}
	for i := 1; i < len(levels); i++ {
		lo := ParamsForLevel(levels[i-1], cfg)
		hi := ParamsForLevel(levels[i], cfg)
		assert.Greater(t, hi.BlockCount, lo.BlockCount,
			"level %d vs %d", levels[i], levels[i-1])
		assert.GreaterOrEqual(t, hi.ScoreTarget, lo.ScoreTarget)
		assert.GreaterOrEqual(t, hi.DepthTarget.Max, lo.DepthTarget.Max)
	}
}

func TestStrategyProgression(t *testing.T) {
	cfg := DefaultBoardConfig()
	assert.Equal(t, StrategyLaneUniform, ParamsForLevel(3, cfg).Strategy)
	assert.Equal(t, StrategyDepthLayered, ParamsForLevel(10, cfg).Strategy)
	assert.Equal(t, StrategyDepthLayered, ParamsForLevel(20, cfg).Strategy)
	assert.Equal(t, StrategyReverseFill, ParamsForLevel(40, cfg).Strategy)
}

func TestReliefLevelsEaseTargets(t *testing.T) {
	cfg := DefaultBoardConfig()

	relief := ParamsForLevel(10, cfg)
	before := ParamsForLevel(9, cfg)
	after := ParamsForLevel(11, cfg)

	assert.Less(t, relief.ScoreTarget, before.ScoreTarget)
	assert.Less(t, relief.BlockCount, after.BlockCount)
	assert.Greater(t, relief.RemovableBand.Min, after.RemovableBand.Min)
}

func TestHoleRatioAppearsMidgame(t *testing.T) {
	cfg := DefaultBoardConfig()
	assert.Zero(t, ParamsForLevel(7, cfg).HoleRatio)
	assert.Greater(t, ParamsForLevel(8, cfg).HoleRatio, 0.0)
	assert.LessOrEqual(t, ParamsForLevel(500, cfg).HoleRatio, 0.18)
}
