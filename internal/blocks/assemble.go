package blocks

import "sort"

// assembleBoard fills the grid with non-overlapping dominoes up to target,
// greedy randomized matching: candidate cells are visited center-out with
// profile-weighted jitter, each pairing with a random free neighbor. A
// second shuffled pass mops up placements the ordered pass missed.
// Shortfalls are returned as partial results, not errors; callers decide
// whether to relax parameters and retry.
func assembleBoard(g *Grid, target int, holeRatio float64, profile LayoutProfile, rng *Rand, cfg BoardConfig) []*Block {
	cells := g.Cells()
	if len(cells) == 0 || target <= 0 {
		return nil
	}

	maxRank := 0
	for _, c := range cells {
		maxRank = max(maxRank, c.Rank)
	}

	holes := pickHoles(cells, holeRatio, profile, maxRank, rng)

	ordered := make([]*Cell, len(cells))
	copy(ordered, cells)
	jitter := make(map[*Cell]float64, len(cells))
	for _, c := range ordered {
		// center-out shells, nudged toward the profile's dense regions
		jitter[c] = float64(c.Rank) + profile.holeWeight(c, maxRank)*1.5 + rng.Float64()*2
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return jitter[ordered[i]] < jitter[ordered[j]]
	})

	var placed []*Block
	placed = placePass(g, ordered, holes, target, placed, rng, cfg)

	if len(placed) < target {
		placed = placePass(g, mopUpOrder(g, rng), holes, target, placed, rng, cfg)
	}

	return placed
}

// mopUpOrder visits the occupancy frontier first: a boundary cell borders
// a pocket the ordered pass left behind, so seeding from it squeezes in
// pairs a uniform shuffle reaches late or not at all. Remaining cells
// follow in shuffled order.
func mopUpOrder(g *Grid, rng *Rand) []*Cell {
	frontier := g.BoundaryCells()
	rng.Shuffle(len(frontier), func(i, j int) {
		frontier[i], frontier[j] = frontier[j], frontier[i]
	})
	onFrontier := make(map[*Cell]bool, len(frontier))
	for _, c := range frontier {
		onFrontier[c] = true
	}
	rest := make([]*Cell, 0, g.Len()-len(frontier))
	for _, c := range g.Cells() {
		if !onFrontier[c] {
			rest = append(rest, c)
		}
	}
	rng.Shuffle(len(rest), func(i, j int) {
		rest[i], rest[j] = rest[j], rest[i]
	})
	return append(frontier, rest...)
}

func pickHoles(cells []*Cell, ratio float64, profile LayoutProfile, maxRank int, rng *Rand) map[*Cell]bool {
	budget := int(clamp(ratio, 0, 0.9) * float64(len(cells)))
	holes := make(map[*Cell]bool, budget)
	if budget == 0 {
		return holes
	}
	scored := make([]*Cell, len(cells))
	copy(scored, cells)
	weight := make(map[*Cell]float64, len(cells))
	for _, c := range scored {
		weight[c] = profile.holeWeight(c, maxRank) + rng.Float64()*0.35
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return weight[scored[i]] > weight[scored[j]]
	})
	for _, c := range scored[:budget] {
		holes[c] = true
	}
	return holes
}

func placePass(g *Grid, order []*Cell, holes map[*Cell]bool, target int, placed []*Block, rng *Rand, cfg BoardConfig) []*Block {
	for _, c := range order {
		if len(placed) >= target {
			break
		}
		if c.Occupied || holes[c] {
			continue
		}
		mates := make([]*Cell, 0, 4)
		for _, n := range g.NeighborsOf(c) {
			if !n.Occupied && !holes[n] {
				mates = append(mates, n)
			}
		}
		rng.Shuffle(len(mates), func(i, j int) {
			mates[i], mates[j] = mates[j], mates[i]
		})
		for _, mate := range mates {
			blk := newBlock(len(placed), c, mate, cfg)
			if !fits(blk, placed, g.SafeRect(), cfg) {
				continue
			}
			g.Occupy(c, blk.ID)
			g.Occupy(mate, blk.ID)
			placed = append(placed, blk)
			break
		}
	}
	return placed
}

// fits rejects a candidate whose rectangle clips the safe rect or comes
// within the clearance margin of an already placed block.
func fits(blk *Block, placed []*Block, safe Rect, cfg BoardConfig) bool {
	r := blk.Rect()
	if !safe.ContainsRect(r) {
		return false
	}
	inflated := r.Inset(-cfg.Gap / 2)
	for _, o := range placed {
		if inflated.Intersects(o.Rect().Inset(-cfg.Gap / 2)) {
			return false
		}
	}
	return true
}
