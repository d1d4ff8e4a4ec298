package blocks

// HasSolvablePath runs seeded Monte-Carlo peeling trials: each trial
// repeatedly removes a uniformly chosen unblocked block until the board is
// empty or no move remains. One successful trial proves the board solvable
// (a single valid removal order suffices); multiple independent trials
// bound the false-negative rate, since exhaustive search is infeasible at
// board sizes of one to two hundred blocks.
func HasSolvablePath(bl []*Block, bounds Rect, cfg BoardConfig, seed uint32, attempts int) bool {
	for a := 0; a < max(attempts, 1); a++ {
		rng := NewRand(seed + uint32(a)*0x85ebca6b)
		if peelTrial(bl, bounds, cfg, rng) {
			return true
		}
	}
	return false
}

// EstimateDeadlockProbability reports the fraction of peeling trials that
// got stuck. Harder levels may deliberately target a nonzero band.
func EstimateDeadlockProbability(bl []*Block, bounds Rect, cfg BoardConfig, seed uint32, attempts int) float64 {
	attempts = max(attempts, 1)
	stuck := 0
	for a := 0; a < attempts; a++ {
		rng := NewRand(seed + uint32(a)*0x85ebca6b)
		if !peelTrial(bl, bounds, cfg, rng) {
			stuck++
		}
	}
	return float64(stuck) / float64(attempts)
}

func peelTrial(bl []*Block, bounds Rect, cfg BoardConfig, rng *Rand) bool {
	removed := newRemovedSet(len(bl))
	remaining := len(bl)
	candidates := make([]*Block, 0, len(bl))
	for remaining > 0 {
		candidates = candidates[:0]
		for _, b := range bl {
			if !removed.has(b.ID) && !IsBlocked(b, bl, removed, bounds, cfg) {
				candidates = append(candidates, b)
			}
		}
		if len(candidates) == 0 {
			return false // stuck
		}
		pick := candidates[rng.IntN(len(candidates))]
		removed[pick.ID] = true
		remaining--
	}
	return true
}
