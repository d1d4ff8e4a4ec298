package blocks

// Cell is a lattice point of the rotated grid. Cells are created once per
// generation attempt and only their occupancy changes afterwards.
type Cell struct {
	Row, Col int
	X, Y     float64
	Rank     int // Manhattan distance from the center cell
	Occupied bool
	BlockID  int
}

type cellKey struct {
	row, col int
}

var neighborOffsets = [4]cellKey{
	{row: -1}, {row: 1}, {col: -1}, {col: 1},
}

// Grid tiles the safe rectangle with cells on a 45-degree rotated square
// lattice and tracks their occupancy plus an incrementally maintained
// boundary set (empty cells next to a missing or occupied neighbor).
type Grid struct {
	cfg      BoardConfig
	safe     Rect
	cells    map[cellKey]*Cell
	ordered  []*Cell
	boundary map[cellKey]*Cell
}

// BuildGrid lays out every lattice cell that falls inside the safe rect.
// A degenerate safe rect yields an empty grid.
func BuildGrid(cfg BoardConfig, safe Rect) *Grid {
	g := &Grid{
		cfg:      cfg,
		safe:     safe,
		cells:    map[cellKey]*Cell{},
		boundary: map[cellKey]*Cell{},
	}
	if !safe.Valid() {
		return g
	}

	step := cfg.Step()
	centerX, centerY := safe.Center()
	keep := safe.Inset(cfg.ShortSide / 2)
	if !keep.Valid() {
		return g
	}

	// generous index range; out-of-rect candidates are discarded below
	span := int((safe.W+safe.H)/(2*step)) + 2
	for row := -span; row <= span; row++ {
		for col := -span; col <= span; col++ {
			x := centerX + float64(col-row)*step
			y := centerY + float64(col+row)*step
			if !keep.ContainsPoint(x, y) {
				continue
			}
			c := &Cell{
				Row: row, Col: col,
				X: x, Y: y,
				Rank:    absInt(row) + absInt(col),
				BlockID: -1,
			}
			g.cells[cellKey{row, col}] = c
			g.ordered = append(g.ordered, c)
		}
	}

	for _, c := range g.ordered {
		if g.isBoundary(c) {
			g.boundary[cellKey{c.Row, c.Col}] = c
		}
	}
	return g
}

func (g *Grid) Len() int {
	return len(g.ordered)
}

// Cells returns every cell in deterministic (row-major within the scan
// order) sequence.
func (g *Grid) Cells() []*Cell {
	return g.ordered
}

func (g *Grid) CellAt(row, col int) *Cell {
	return g.cells[cellKey{row, col}]
}

func (g *Grid) SafeRect() Rect {
	return g.safe
}

// NeighborsOf returns the up-to-four lattice neighbors present in the grid.
func (g *Grid) NeighborsOf(c *Cell) []*Cell {
	out := make([]*Cell, 0, 4)
	for _, d := range neighborOffsets {
		if n := g.cells[cellKey{c.Row + d.row, c.Col + d.col}]; n != nil {
			out = append(out, n)
		}
	}
	return out
}

func (g *Grid) isBoundary(c *Cell) bool {
	if c.Occupied {
		return false
	}
	for _, d := range neighborOffsets {
		n := g.cells[cellKey{c.Row + d.row, c.Col + d.col}]
		if n == nil || n.Occupied {
			return true
		}
	}
	return false
}

// Occupy marks a cell as owned by blockID and updates the boundary set:
// the cell leaves it, newly exposed empty neighbors join it.
func (g *Grid) Occupy(c *Cell, blockID int) {
	c.Occupied = true
	c.BlockID = blockID
	delete(g.boundary, cellKey{c.Row, c.Col})
	for _, n := range g.NeighborsOf(c) {
		if !n.Occupied {
			g.boundary[cellKey{n.Row, n.Col}] = n
		}
	}
}

// Release undoes Occupy and re-derives the boundary status of the cell and
// its neighbors.
func (g *Grid) Release(c *Cell) {
	c.Occupied = false
	c.BlockID = -1
	g.refreshBoundary(c)
	for _, n := range g.NeighborsOf(c) {
		g.refreshBoundary(n)
	}
}

func (g *Grid) refreshBoundary(c *Cell) {
	k := cellKey{c.Row, c.Col}
	if g.isBoundary(c) {
		g.boundary[k] = c
	} else {
		delete(g.boundary, k)
	}
}

func (g *Grid) BoundaryCells() []*Cell {
	out := make([]*Cell, 0, len(g.boundary))
	for _, c := range g.ordered {
		if _, ok := g.boundary[cellKey{c.Row, c.Col}]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Reset clears all occupancy between attempts without rebuilding cells.
func (g *Grid) Reset() {
	for _, c := range g.ordered {
		c.Occupied = false
		c.BlockID = -1
	}
	g.boundary = map[cellKey]*Cell{}
	for _, c := range g.ordered {
		if g.isBoundary(c) {
			g.boundary[cellKey{c.Row, c.Col}] = c
		}
	}
}
