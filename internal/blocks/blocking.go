package blocks

// removedSet is a lightweight simulation overlay over an immutable block
// list, indexed by block ID. It replaces per-trial block copies.
type removedSet []bool

func newRemovedSet(n int) removedSet {
	return make(removedSet, n)
}

func (s removedSet) has(id int) bool {
	return id >= 0 && id < len(s) && s[id]
}

// IsBlocked reports whether b cannot currently slide out. Blocks with valid
// grid coordinates use the lane fast path, which is the authoritative
// semantics; the geometric raycast only backs up blocks without an axis.
// Pure function of the board state.
func IsBlocked(b *Block, all []*Block, removed removedSet, bounds Rect, cfg BoardConfig) bool {
	if b.Axis == AxisNone {
		return raycastBlocked(b, all, removed, bounds, cfg)
	}
	return laneBlocked(b, all, removed)
}

// laneBlocked walks b's lane from the front cell toward the edge: blocked
// iff any active block occupies a lane cell strictly beyond the front.
func laneBlocked(b *Block, all []*Block, removed removedSet) bool {
	frontRow, frontCol := b.FrontCell(b.Direction)
	dRow, dCol := b.Direction.GridDelta()
	for _, o := range all {
		if o.ID == b.ID || removed.has(o.ID) {
			continue
		}
		for _, c := range o.OccupiedCells() {
			if dCol == 0 {
				if c[1] == frontCol && (c[0]-frontRow)*dRow > 0 {
					return true
				}
			} else {
				if c[0] == frontRow && (c[1]-frontCol)*dCol > 0 {
					return true
				}
			}
		}
	}
	return false
}

// raycastBlocked steps a probe point outward along the direction's screen
// diagonal. Leaving the bounds first means the exit is clear; entering
// another block's inset hit rectangle first means blocked. Exceeding the
// step cap counts as blocked.
func raycastBlocked(b *Block, all []*Block, removed removedSet, bounds Rect, cfg BoardConfig) bool {
	px, py := b.Rect().Center()
	dx, dy := b.Direction.ScreenVector(cfg.ShortSide * cfg.RayStepFrac)
	for step := 0; step < cfg.MaxRaySteps; step++ {
		px += dx
		py += dy
		if !bounds.ContainsPoint(px, py) {
			return false
		}
		for _, o := range all {
			if o.ID == b.ID || removed.has(o.ID) {
				continue
			}
			if o.hitRect(cfg).ContainsPoint(px, py) {
				return true
			}
		}
	}
	return true
}

// IsPathClearToEdge is the grid-occupancy variant of the lane walk, used
// while directions are still being assigned: it ignores b's own cells, so
// callers do not have to free and re-occupy them around each probe.
func IsPathClearToEdge(b *Block, d Direction, g *Grid) bool {
	if b.Axis == AxisNone || d.SlideAxis() != b.Axis {
		return false
	}
	row, col := b.FrontCell(d)
	dRow, dCol := d.GridDelta()
	for {
		row += dRow
		col += dCol
		c := g.CellAt(row, col)
		if c == nil {
			return true
		}
		if c.Occupied && c.BlockID != b.ID {
			return false
		}
	}
}
