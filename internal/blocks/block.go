package blocks

// BlockKinds is the cosmetic category pool. Kinds are assigned after
// geometry and direction are final and carry no gameplay meaning.
var BlockKinds = []string{"mouse", "cat", "dog", "fox", "panda", "bear"}

// Block is a domino covering two adjacent lattice cells. Its pixel
// rectangle is always derived from the cell-pair midpoint and the current
// direction; SetDirection is the only mutator of direction and geometry,
// which keeps grid and pixel state in sync.
type Block struct {
	ID        int       `json:"-"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	W         float64   `json:"width"`
	H         float64   `json:"height"`
	Direction Direction `json:"direction"`
	Axis      Axis      `json:"axis"`
	GridRow   int       `json:"gridRow"`
	GridCol   int       `json:"gridCol"`
	Kind      string    `json:"type"`
	Size      float64   `json:"size"`
	Depth     int       `json:"depth"`
}

// newBlock builds a block over two adjacent cells. GridRow/GridCol always
// hold the lower-indexed cell of the pair. The placeholder direction points
// along the block's axis and is replaced by a direction strategy later.
func newBlock(id int, a, b *Cell, cfg BoardConfig) *Block {
	blk := &Block{
		ID:   id,
		Size: cfg.ShortSide,
	}
	switch {
	case a.Col == b.Col && absInt(a.Row-b.Row) == 1:
		blk.Axis = AxisRow
		blk.GridRow = min(a.Row, b.Row)
		blk.GridCol = a.Col
		blk.Direction = Down
	case a.Row == b.Row && absInt(a.Col-b.Col) == 1:
		blk.Axis = AxisCol
		blk.GridRow = a.Row
		blk.GridCol = min(a.Col, b.Col)
		blk.Direction = Right
	default:
		panic(AssertionError{"newBlock called with non-adjacent cells"})
	}
	cx := (a.X + b.X) / 2
	cy := (a.Y + b.Y) / 2
	blk.resize(cx, cy, cfg)
	return blk
}

func (b *Block) resize(cx, cy float64, cfg BoardConfig) {
	if b.Direction.SlideAxis() == AxisRow {
		b.W, b.H = cfg.ShortSide, cfg.LongSide()
	} else {
		b.W, b.H = cfg.LongSide(), cfg.ShortSide
	}
	b.X = cx - b.W/2
	b.Y = cy - b.H/2
}

// SetDirection changes the slide direction and recomputes the pixel
// rectangle about the unchanged center. The direction must run along the
// block's axis.
func (b *Block) SetDirection(d Direction, cfg BoardConfig) {
	if b.Axis != AxisNone && d.SlideAxis() != b.Axis {
		panic(AssertionError{"direction " + d.String() + " is off the block axis " + b.Axis.String()})
	}
	cx, cy := b.Rect().Center()
	b.Direction = d
	b.resize(cx, cy, cfg)
}

func (b *Block) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// hitRect is the rectangle used for raycast hit testing, shrunk to avoid
// false positives from barely-touching neighbors.
func (b *Block) hitRect(cfg BoardConfig) Rect {
	return b.Rect().Inset(cfg.hitInset(min(b.W, b.H)))
}

// OccupiedCells returns the two lattice cells covered by the block, or nil
// when the axis is undetermined.
func (b *Block) OccupiedCells() [][2]int {
	switch b.Axis {
	case AxisRow:
		return [][2]int{{b.GridRow, b.GridCol}, {b.GridRow + 1, b.GridCol}}
	case AxisCol:
		return [][2]int{{b.GridRow, b.GridCol}, {b.GridRow, b.GridCol + 1}}
	default:
		return nil
	}
}

// FrontCell is the leading cell of the block when sliding along d.
func (b *Block) FrontCell(d Direction) (row, col int) {
	switch d {
	case Up:
		return b.GridRow, b.GridCol
	case Down:
		if b.Axis == AxisRow {
			return b.GridRow + 1, b.GridCol
		}
		return b.GridRow, b.GridCol
	case Right:
		if b.Axis == AxisCol {
			return b.GridRow, b.GridCol + 1
		}
		return b.GridRow, b.GridCol
	default:
		return b.GridRow, b.GridCol
	}
}

// Lane is the perpendicular grid index shared by every block that can
// obstruct this one: the column for row-axis blocks, the row for col-axis
// blocks.
func (b *Block) Lane() (Axis, int) {
	switch b.Axis {
	case AxisRow:
		return AxisRow, b.GridCol
	case AxisCol:
		return AxisCol, b.GridRow
	default:
		return AxisNone, 0
	}
}
