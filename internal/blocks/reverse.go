package blocks

import "sort"

// reverseFillStrategy assigns directions one block at a time, farthest
// from center first, admitting only directions whose exit path is clear
// through the still-occupied grid; the block's cells are then freed. The
// assignment order is therefore itself a valid peeling order, which makes
// every completed assignment a constructive solvability proof. Direction
// choice greedily closes the gap between running direction counts (global,
// per-sector, per-lane) and the configured mix targets.
type reverseFillStrategy struct {
	params GenParams
}

func (s *reverseFillStrategy) assign(bs *boardState, rng *Rand, dl deadline) error {
	n := len(bs.blocks)
	if n == 0 {
		return nil
	}

	target := s.params.DirectionMix
	if target == ([4]float64{}) {
		target = [4]float64{0.25, 0.25, 0.25, 0.25}
	}

	order := make([]*Block, n)
	copy(order, bs.blocks)
	priority := make(map[int]float64, n)
	for _, b := range order {
		priority[b.ID] = normalizedCenterDistance(b, bs.safe) + rng.Float64()*0.08
	}
	sort.SliceStable(order, func(i, j int) bool {
		return priority[order[i].ID] > priority[order[j].ID]
	})

	var globalCount [4]int
	var sectorCount [9][4]int
	laneCount := map[laneKey]*[4]int{}

	for i, b := range order {
		if dl.expired() {
			return errBudgetExpired
		}
		if b.Axis == AxisNone {
			return errNoLegalExit
		}

		cx, cy := b.Rect().Center()
		sector := sectorOf(cx, cy, bs.safe)
		axis, index := b.Lane()
		lk := laneKey{axis, index}
		if laneCount[lk] == nil {
			laneCount[lk] = &[4]int{}
		}

		best := Direction(-1)
		bestCost := 0.0
		for _, d := range b.Axis.Directions() {
			if !IsPathClearToEdge(b, d, bs.grid) {
				continue
			}
			cost := s.directionCost(d, b, target,
				&globalCount, &sectorCount[sector], laneCount[lk], bs.safe)
			cost += rng.Float64() * 0.01 // tie break
			if best < 0 || cost < bestCost {
				best, bestCost = d, cost
			}
		}
		if best < 0 {
			return errNoLegalExit
		}

		b.SetDirection(best, bs.cfg)
		b.Depth = i
		for _, c := range b.OccupiedCells() {
			if cell := bs.grid.CellAt(c[0], c[1]); cell != nil {
				bs.grid.Release(cell)
			}
		}

		globalCount[best]++
		sectorCount[sector][best]++
		laneCount[lk][best]++
	}
	return nil
}

// directionCost scores a candidate direction: positive gaps between the
// running fraction (as if d were chosen) and the target fraction at the
// global, sector and lane scopes, plus a center-distance penalty for
// pointing a peripheral block inward.
func (s *reverseFillStrategy) directionCost(
	d Direction,
	b *Block,
	target [4]float64,
	global *[4]int,
	sector *[4]int,
	lane *[4]int,
	safe Rect,
) float64 {
	frac := func(counts *[4]int) float64 {
		total := 0
		for _, c := range counts {
			total += c
		}
		return float64(counts[d]+1) / float64(total+1)
	}

	cost := max(0.0, frac(global)-target[d])
	cost += max(0.0, frac(sector)-target[d]) * 0.5
	cost += max(0.0, frac(lane)-target[d]) * 0.8

	outward := inwardDirection(b, 0, 0).Opposite()
	if d != outward {
		cost += normalizedCenterDistance(b, safe) * 0.2
	}
	return cost
}
