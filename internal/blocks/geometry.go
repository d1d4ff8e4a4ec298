package blocks

import "strconv"

// Direction is a slide-out direction. The numeric codes are part of the
// level payload and must not be reordered.
type Direction int8

const (
	Up Direction = iota
	Right
	Down
	Left
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "direction(" + strconv.Itoa(int(d)) + ")"
	}
}

func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// GridDelta is the per-step lattice offset of a slide along d.
func (d Direction) GridDelta() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Right:
		return 0, 1
	case Left:
		return 0, -1
	}
	return 0, 0
}

// ScreenVector is the per-step pixel offset of a slide along d. The lattice
// is rotated 45 degrees, so every exit path is a screen diagonal.
func (d Direction) ScreenVector(step float64) (dx, dy float64) {
	dRow, dCol := d.GridDelta()
	return float64(dCol-dRow) * step, float64(dCol+dRow) * step
}

func (d Direction) SlideAxis() Axis {
	if d == Up || d == Down {
		return AxisRow
	}
	return AxisCol
}

// Axis is the orientation of a domino: AxisRow dominoes stack two cells
// along the row index and slide up/down, AxisCol dominoes pair two cells
// along the column index and slide left/right.
type Axis int8

const (
	AxisNone Axis = iota
	AxisRow
	AxisCol
)

func (a Axis) String() string {
	switch a {
	case AxisRow:
		return "row"
	case AxisCol:
		return "col"
	default:
		return ""
	}
}

func (a Axis) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Directions returns the two legal slide directions for the axis.
func (a Axis) Directions() []Direction {
	switch a {
	case AxisRow:
		return []Direction{Up, Down}
	case AxisCol:
		return []Direction{Left, Right}
	default:
		return nil
	}
}

// Rect is an axis-aligned pixel rectangle with its origin at the top-left.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Valid() bool {
	return r.W > 0 && r.H > 0
}

func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Inset shrinks the rectangle by d on every side. A negative d inflates it.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

func (r Rect) Intersects(o Rect) bool {
	if !r.Valid() || !o.Valid() {
		return false
	}
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

func (r Rect) ContainsPoint(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y &&
		o.X+o.W <= r.X+r.W && o.Y+o.H <= r.Y+r.H
}
