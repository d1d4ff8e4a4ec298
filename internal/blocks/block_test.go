package blocks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCell(row, col int, step float64) *Cell {
	return &Cell{
		Row: row, Col: col,
		X: float64(col-row) * step,
		Y: float64(col+row) * step,
	}
}

func TestNewBlockAxes(t *testing.T) {
	cfg := DefaultBoardConfig()
	step := cfg.Step()

	rowBlk := newBlock(0, testCell(1, 0, step), testCell(0, 0, step), cfg)
	assert.Equal(t, AxisRow, rowBlk.Axis)
	assert.Equal(t, 0, rowBlk.GridRow) // lower-indexed cell of the pair
	assert.Equal(t, 0, rowBlk.GridCol)
	assert.Equal(t, cfg.ShortSide, rowBlk.W)
	assert.Equal(t, cfg.LongSide(), rowBlk.H)

	colBlk := newBlock(1, testCell(0, 0, step), testCell(0, 1, step), cfg)
	assert.Equal(t, AxisCol, colBlk.Axis)
	assert.Equal(t, cfg.LongSide(), colBlk.W)
	assert.Equal(t, cfg.ShortSide, colBlk.H)

	assert.Panics(t, func() {
		newBlock(2, testCell(0, 0, step), testCell(2, 0, step), cfg)
	})
}

func TestBlockRectCenteredOnCellPair(t *testing.T) {
	cfg := DefaultBoardConfig()
	step := cfg.Step()
	a, b := testCell(0, 0, step), testCell(1, 0, step)

	blk := newBlock(0, a, b, cfg)
	cx, cy := blk.Rect().Center()
	assert.InDelta(t, (a.X+b.X)/2, cx, 1e-9)
	assert.InDelta(t, (a.Y+b.Y)/2, cy, 1e-9)
}

func TestSetDirectionPreservesCenter(t *testing.T) {
	cfg := DefaultBoardConfig()
	step := cfg.Step()
	blk := newBlock(0, testCell(0, 0, step), testCell(1, 0, step), cfg)

	cx, cy := blk.Rect().Center()
	blk.SetDirection(Up, cfg)
	blk.SetDirection(Down, cfg)
	blk.SetDirection(Up, cfg)

	gotX, gotY := blk.Rect().Center()
	assert.InDelta(t, cx, gotX, 1e-9)
	assert.InDelta(t, cy, gotY, 1e-9)
	assert.Equal(t, Up, blk.Direction)
}

func TestSetDirectionRejectsOffAxis(t *testing.T) {
	cfg := DefaultBoardConfig()
	step := cfg.Step()
	blk := newBlock(0, testCell(0, 0, step), testCell(1, 0, step), cfg)

	assert.Panics(t, func() {
		blk.SetDirection(Left, cfg)
	})
}

func TestOccupiedCells(t *testing.T) {
	cfg := DefaultBoardConfig()
	step := cfg.Step()

	rowBlk := newBlock(0, testCell(2, 3, step), testCell(3, 3, step), cfg)
	assert.Equal(t, [][2]int{{2, 3}, {3, 3}}, rowBlk.OccupiedCells())

	colBlk := newBlock(1, testCell(2, 3, step), testCell(2, 4, step), cfg)
	assert.Equal(t, [][2]int{{2, 3}, {2, 4}}, colBlk.OccupiedCells())
}

func TestFrontCell(t *testing.T) {
	cfg := DefaultBoardConfig()
	step := cfg.Step()
	rowBlk := newBlock(0, testCell(2, 3, step), testCell(3, 3, step), cfg)

	r, c := rowBlk.FrontCell(Up)
	assert.Equal(t, [2]int{2, 3}, [2]int{r, c})
	r, c = rowBlk.FrontCell(Down)
	assert.Equal(t, [2]int{3, 3}, [2]int{r, c})

	colBlk := newBlock(1, testCell(2, 3, step), testCell(2, 4, step), cfg)
	r, c = colBlk.FrontCell(Left)
	assert.Equal(t, [2]int{2, 3}, [2]int{r, c})
	r, c = colBlk.FrontCell(Right)
	assert.Equal(t, [2]int{2, 4}, [2]int{r, c})
}

func TestLane(t *testing.T) {
	cfg := DefaultBoardConfig()
	step := cfg.Step()

	rowBlk := newBlock(0, testCell(2, 3, step), testCell(3, 3, step), cfg)
	axis, index := rowBlk.Lane()
	require.Equal(t, AxisRow, axis)
	assert.Equal(t, 3, index)

	colBlk := newBlock(1, testCell(2, 3, step), testCell(2, 4, step), cfg)
	axis, index = colBlk.Lane()
	require.Equal(t, AxisCol, axis)
	assert.Equal(t, 2, index)
}
