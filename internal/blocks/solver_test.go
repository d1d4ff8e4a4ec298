package blocks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasSolvablePathChain(t *testing.T) {
	cfg := DefaultBoardConfig()
	bounds := Rect{W: 1000, H: 1000}

	assert.True(t, HasSolvablePath(chainOfThree(), bounds, cfg, 1, 4))
}

func TestHasSolvablePathDeadlock(t *testing.T) {
	cfg := DefaultBoardConfig()
	bounds := Rect{W: 1000, H: 1000}

	assert.False(t, HasSolvablePath(facingPair(), bounds, cfg, 1, 16))
}

func TestEstimateDeadlockProbability(t *testing.T) {
	cfg := DefaultBoardConfig()
	bounds := Rect{W: 1000, H: 1000}

	// a pure chain never gets stuck, a facing pair always does
	assert.Equal(t, 0.0, EstimateDeadlockProbability(chainOfThree(), bounds, cfg, 7, 20))
	assert.Equal(t, 1.0, EstimateDeadlockProbability(facingPair(), bounds, cfg, 7, 20))
}

func TestSolvablePathOnGeneratedBoard(t *testing.T) {
	cfg := DefaultBoardConfig()
	safe := cfg.SafeRect(400, 700)
	g := BuildGrid(cfg, safe)
	rng := NewRand(11)

	placed := assembleBoard(g, 30, 0, ProfileUniform, rng, cfg)
	bs := &boardState{grid: g, blocks: placed, cfg: cfg, safe: safe}
	strat := &laneUniformStrategy{outwardBias: 1, removableTarget: 1}
	assert.NoError(t, strat.assign(bs, rng, deadline{}))

	assert.True(t, HasSolvablePath(placed, safe, cfg, 13, 6))
}
