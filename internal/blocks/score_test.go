package blocks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasOverlap(t *testing.T) {
	cfg := DefaultBoardConfig()

	a := &Block{X: 0, Y: 0, W: 20, H: 40}
	b := &Block{X: 30, Y: 0, W: 20, H: 40}
	assert.False(t, hasOverlap([]*Block{a, b}, cfg))

	b.X = 10
	assert.True(t, hasOverlap([]*Block{a, b}, cfg))

	// gap-sized separation is tolerated
	b.X = 20 + cfg.Gap
	assert.False(t, hasOverlap([]*Block{a, b}, cfg))
}

func TestScoreBoardRange(t *testing.T) {
	p := GenParams{
		DepthTarget:   Band{Min: 1, Max: 6},
		RemovableBand: Band{Min: 0.1, Max: 0.5},
	}
	dir := dirShareStats{diversity: 0.5}

	for _, ds := range []DepthStats{
		{},
		{Avg: 3, Max: 8, RemovableRatio: 0.3},
		{Avg: 100, Max: 100, RemovableRatio: 1},
	} {
		score := scoreBoard(ds, dir, p)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
	}
}

func TestScoreBoardRewardsDepth(t *testing.T) {
	p := GenParams{
		DepthTarget:   Band{Min: 1, Max: 6},
		RemovableBand: Band{Min: 0.1, Max: 0.5},
	}
	dir := dirShareStats{diversity: 0.5}

	shallow := scoreBoard(DepthStats{Avg: 1, Max: 2, RemovableRatio: 0.3}, dir, p)
	deep := scoreBoard(DepthStats{Avg: 4, Max: 7, RemovableRatio: 0.3}, dir, p)
	assert.Greater(t, deep, shallow)
}

func TestComputeDirectionShares(t *testing.T) {
	safe := Rect{X: 0, Y: 0, W: 300, H: 300}
	mk := func(id int, d Direction, x, y float64) *Block {
		return &Block{ID: id, Axis: d.SlideAxis(), Direction: d, X: x, Y: y, W: 10, H: 20}
	}

	// four blocks, one per direction, spread over distinct sectors
	bl := []*Block{
		mk(0, Up, 10, 10),
		mk(1, Down, 250, 10),
		mk(2, Left, 10, 250),
		mk(3, Right, 250, 250),
	}
	stats := computeDirectionShares(bl, safe)
	assert.InDelta(t, 0.25, stats.maxGlobal, 1e-9)
	// each sector and lane holds fewer than four blocks, so no share applies
	assert.Equal(t, 0.0, stats.maxSector)
	assert.Equal(t, 0.0, stats.maxLane)
	assert.InDelta(t, 1.0, stats.diversity, 1e-9)

	// all blocks one way: worst possible balance
	for _, b := range bl {
		b.Direction = Up
		b.Axis = AxisRow
	}
	stats = computeDirectionShares(bl, safe)
	assert.InDelta(t, 1.0, stats.maxGlobal, 1e-9)
	assert.Less(t, stats.diversity, 0.55)
}

func TestAcceptBoard(t *testing.T) {
	cfg := DefaultBoardConfig()
	p := GenParams{
		DepthTarget:   Band{Min: 0, Max: 6},
		RemovableBand: Band{Min: 0.1, Max: 0.9},
		MaxDirShare:   0.8,
	}
	bl := make([]*Block, 0, 24)
	for i := 0; i < 24; i++ {
		bl = append(bl, &Block{
			ID: i, Axis: AxisRow, Direction: iif(i%2 == 0, Up, Down),
			GridRow: i * 3, GridCol: i,
			X: float64(i) * 50, Y: 0, W: 20, H: 40,
		})
	}
	good := DepthStats{Avg: 2, Max: 4, RemovableCount: 12, RemovableRatio: 0.5}
	dir := dirShareStats{maxGlobal: 0.5, diversity: 0.7}

	ok, reason := acceptBoard(bl, good, dir, 50, p, cfg)
	require.True(t, ok, reason)

	tests := []struct {
		name   string
		ds     DepthStats
		dir    dirShareStats
		p      GenParams
		reason string
	}{
		{
			name:   "cycle",
			ds:     DepthStats{Avg: 2, RemovableCount: 12, Unresolved: 2},
			dir:    dir,
			p:      p,
			reason: "unresolved dependency cycle",
		},
		{
			name:   "too few removable",
			ds:     DepthStats{Avg: 2, RemovableCount: 1, RemovableRatio: 0.04},
			dir:    dir,
			p:      p,
			reason: "removable count below floor",
		},
		{
			name:   "too many removable",
			ds:     DepthStats{Avg: 2, RemovableCount: 23, RemovableRatio: 0.96},
			dir:    dir,
			p:      p,
			reason: "removable ratio above band",
		},
		{
			name:   "too deep",
			ds:     DepthStats{Avg: 7, RemovableCount: 12, RemovableRatio: 0.5},
			dir:    dir,
			p:      p,
			reason: "average depth out of range",
		},
		{
			name:   "lopsided directions",
			ds:     good,
			dir:    dirShareStats{maxGlobal: 0.9},
			p:      p,
			reason: "global direction share too high",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ok, reason := acceptBoard(bl, test.ds, test.dir, 50, test.p, cfg)
			assert.False(t, ok)
			assert.Equal(t, test.reason, reason)
		})
	}

	ok, reason = acceptBoard(nil, good, dir, 50, p, cfg)
	assert.False(t, ok)
	assert.Equal(t, "empty board", reason)
}

func TestAcceptBoardScoreTolerance(t *testing.T) {
	cfg := DefaultBoardConfig()
	p := GenParams{
		RemovableBand:  Band{Min: 0.1},
		ScoreTarget:    50,
		ScoreTolerance: 10,
	}
	bl := make([]*Block, 0, 24)
	for i := 0; i < 24; i++ {
		bl = append(bl, &Block{ID: i, Axis: AxisRow, Direction: Up, X: float64(i) * 50, W: 20, H: 40})
	}
	ds := DepthStats{Avg: 2, RemovableCount: 12, RemovableRatio: 0.5}

	ok, _ := acceptBoard(bl, ds, dirShareStats{}, 55, p, cfg)
	assert.True(t, ok)
	ok, reason := acceptBoard(bl, ds, dirShareStats{}, 75, p, cfg)
	assert.False(t, ok)
	assert.Equal(t, "score outside target tolerance", reason)
}
