package blocks

// boardState bundles the working pieces of one generation attempt. It is
// private to the pipeline; nothing here is shared across calls.
type boardState struct {
	grid   *Grid
	blocks []*Block
	cfg    BoardConfig
	safe   Rect
}

type laneKey struct {
	axis  Axis
	index int
}

// lanes groups blocks by their lane. Blocks without a determined axis are
// skipped; the blocking fast path treats them as always blocked.
func (bs *boardState) lanes() map[laneKey][]*Block {
	out := map[laneKey][]*Block{}
	for _, b := range bs.blocks {
		axis, index := b.Lane()
		if axis == AxisNone {
			continue
		}
		k := laneKey{axis, index}
		out[k] = append(out[k], b)
	}
	return out
}

func (bs *boardState) removableCount() int {
	none := newRemovedSet(len(bs.blocks))
	n := 0
	for _, b := range bs.blocks {
		if !IsBlocked(b, bs.blocks, none, bs.safe, bs.cfg) {
			n++
		}
	}
	return n
}

// wouldFace reports whether giving b direction d creates an anti-facing
// pair in its lane: some lane mate with the opposite direction sitting in
// b's path. Such a pair can never resolve and must be avoided by
// construction. Mates whose direction is not yet assigned are ignored; a
// nil assigned set means every mate counts.
func wouldFace(b *Block, d Direction, laneMates []*Block, assigned []bool) bool {
	frontRow, frontCol := b.FrontCell(d)
	dRow, dCol := d.GridDelta()
	opp := d.Opposite()
	for _, o := range laneMates {
		if o.ID == b.ID || o.Direction != opp {
			continue
		}
		if assigned != nil && (o.ID >= len(assigned) || !assigned[o.ID]) {
			continue
		}
		for _, c := range o.OccupiedCells() {
			if dCol == 0 && c[1] == frontCol && (c[0]-frontRow)*dRow > 0 {
				return true
			}
			if dRow == 0 && c[0] == frontRow && (c[1]-frontCol)*dCol > 0 {
				return true
			}
		}
	}
	return false
}

// inwardDirection is the axis direction pointing from b toward the given
// lattice point; outward is its opposite.
func inwardDirection(b *Block, coreRow, coreCol int) Direction {
	if b.Axis == AxisCol {
		if b.GridCol > coreCol {
			return Left
		}
		return Right
	}
	if b.GridRow > coreRow {
		return Up
	}
	return Down
}

// normalizedCenterDistance maps the block center to [0, 1] against the
// safe rect half-diagonal.
func normalizedCenterDistance(b *Block, safe Rect) float64 {
	cx, cy := safe.Center()
	bx, by := b.Rect().Center()
	dx, dy := bx-cx, by-cy
	halfDiag := (safe.W + safe.H) / 4
	if halfDiag <= 0 {
		return 0
	}
	return clamp((absFloat(dx)+absFloat(dy))/(2*halfDiag), 0, 1)
}

// sectorOf buckets a screen point into one of nine 3x3 sectors of the
// safe rect, used by direction-diversity accounting.
func sectorOf(x, y float64, safe Rect) int {
	if !safe.Valid() {
		return 0
	}
	ix := int(clamp((x-safe.X)/safe.W*3, 0, 2.999))
	iy := int(clamp((y-safe.Y)/safe.H*3, 0, 2.999))
	return iy*3 + ix
}
