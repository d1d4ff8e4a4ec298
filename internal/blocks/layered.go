package blocks

import "sort"

// depthLayeredStrategy peels the board into layers around one or two core
// points: core blocks mostly face inward (deep chains), the middle band
// mixes by a difficulty-scaled probability, and the outermost band is
// forced outward so the opening position always has moves. A bounded
// adjustment loop then nudges outlier blocks until the depth profile
// lands inside its target band.
type depthLayeredStrategy struct {
	params GenParams
}

const maxAdjustRounds = 40

func (s *depthLayeredStrategy) assign(bs *boardState, rng *Rand, dl deadline) error {
	n := len(bs.blocks)
	if n == 0 {
		return nil
	}

	cores := [][2]int{{0, 0}}
	if rng.Chance(0.35) && bs.grid.Len() > 0 {
		cells := bs.grid.Cells()
		c := cells[rng.IntN(len(cells))]
		cores = append(cores, [2]int{c.Row, c.Col})
	}

	order := make([]*Block, n)
	copy(order, bs.blocks)
	dist := func(b *Block) int {
		best := 1 << 30
		for _, core := range cores {
			d := absInt(b.GridRow-core[0]) + absInt(b.GridCol-core[1])
			best = min(best, d)
		}
		return best
	}
	sort.SliceStable(order, func(i, j int) bool {
		return dist(order[i]) < dist(order[j])
	})

	coreCut := int(s.params.CoreRatio * float64(n))
	edgeCut := n - int(s.params.EdgeRatio*float64(n))
	mixP := clamp(0.25+s.params.DepthFactor, 0, 0.9)

	lanes := bs.lanes()
	assigned := make([]bool, n)
	for idx, b := range order {
		core := s.nearestCore(b, cores)
		inward := inwardDirection(b, core[0], core[1])
		outward := inward.Opposite()

		var d Direction
		switch {
		case idx >= edgeCut:
			d = outward
		case idx < coreCut:
			d = iif(rng.Chance(0.85), inward, outward)
		default:
			d = iif(rng.Chance(mixP), inward, outward)
		}

		axis, index := b.Lane()
		mates := lanes[laneKey{axis, index}]
		if wouldFace(b, d, mates, assigned) {
			d = d.Opposite()
			if wouldFace(b, d, mates, assigned) {
				return errNoLegalExit
			}
		}
		b.SetDirection(d, bs.cfg)
		assigned[b.ID] = true
	}

	return s.adjust(bs, dl)
}

func (s *depthLayeredStrategy) nearestCore(b *Block, cores [][2]int) [2]int {
	best := cores[0]
	bestDist := 1 << 30
	for _, core := range cores {
		d := absInt(b.GridRow-core[0]) + absInt(b.GridCol-core[1])
		if d < bestDist {
			bestDist = d
			best = core
		}
	}
	return best
}

// adjust recomputes the full depth profile each round and flips a batch of
// outlier blocks: outward when too few blocks start removable or the
// average depth overshoots, inward when it undershoots. The batch size
// tracks how far off the profile is, so large boards converge within the
// round budget.
func (s *depthLayeredStrategy) adjust(bs *boardState, dl deadline) error {
	n := len(bs.blocks)
	floor := removableFloor(s.params, n)
	lanes := bs.lanes()

	for round := 0; round < maxAdjustRounds; round++ {
		if dl.expired() {
			return errBudgetExpired
		}
		stats := calculateBlockDepths(bs.blocks, bs.safe, bs.cfg)

		var want float64
		var outward bool
		switch {
		case stats.RemovableCount < floor:
			outward, want = true, float64(floor-stats.RemovableCount)
		case stats.Avg < s.params.DepthTarget.Min:
			outward, want = false, (s.params.DepthTarget.Min-stats.Avg)*float64(n)/10
		case s.params.DepthTarget.Max > 0 && stats.Avg > s.params.DepthTarget.Max:
			outward, want = true, (stats.Avg-s.params.DepthTarget.Max)*float64(n)/10
		default:
			return nil
		}

		batch := max(1, min(int(want), n/8))
		if s.flipOutliers(bs, lanes, outward, batch) == 0 {
			return nil
		}
	}
	return nil
}

// flipOutliers turns up to batch blocks around: outward=true frees the
// deepest inward-facing blocks, outward=false sinks the shallowest
// outward-facing ones. Candidates that would create a facing pair are
// skipped. Returns the number of blocks flipped.
func (s *depthLayeredStrategy) flipOutliers(bs *boardState, lanes map[laneKey][]*Block, outward bool, batch int) int {
	cands := make([]*Block, 0, len(bs.blocks))
	for _, b := range bs.blocks {
		if b.Axis == AxisNone {
			continue
		}
		pointsInward := b.Direction == inwardDirection(b, 0, 0)
		if outward == pointsInward {
			cands = append(cands, b)
		}
	}
	sort.SliceStable(cands, func(i, j int) bool {
		if outward {
			return cands[i].Depth > cands[j].Depth
		}
		return cands[i].Depth < cands[j].Depth
	})

	flipped := 0
	for _, b := range cands {
		if flipped >= batch {
			break
		}
		d := b.Direction.Opposite()
		axis, index := b.Lane()
		if wouldFace(b, d, lanes[laneKey{axis, index}], nil) {
			continue
		}
		b.SetDirection(d, bs.cfg)
		flipped++
	}
	return flipped
}

// removableFloor is the hard minimum of initially removable blocks: the
// level's configured band minimum, never below six for nontrivial boards.
func removableFloor(p GenParams, n int) int {
	floor := int(p.RemovableBand.Min * float64(n))
	if n >= 20 {
		return max(floor, 6)
	}
	return max(floor, 1)
}
