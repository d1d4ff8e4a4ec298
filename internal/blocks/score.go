package blocks

// dirShareStats captures directional balance at three scopes. Sector and
// lane shares only consider groups with at least four blocks; smaller
// groups are trivially lopsided.
type dirShareStats struct {
	global    [4]float64
	maxGlobal float64
	maxSector float64
	maxLane   float64
	diversity float64
}

const minShareGroup = 4

func computeDirectionShares(bl []*Block, safe Rect) dirShareStats {
	var stats dirShareStats
	if len(bl) == 0 {
		return stats
	}

	var global [4]int
	var sectors [9][4]int
	laneCounts := map[laneKey]*[4]int{}
	for _, b := range bl {
		global[b.Direction]++
		cx, cy := b.Rect().Center()
		sectors[sectorOf(cx, cy, safe)][b.Direction]++
		axis, index := b.Lane()
		if axis == AxisNone {
			continue
		}
		lk := laneKey{axis, index}
		if laneCounts[lk] == nil {
			laneCounts[lk] = &[4]int{}
		}
		laneCounts[lk][b.Direction]++
	}

	for d := range global {
		stats.global[d] = float64(global[d]) / float64(len(bl))
		stats.maxGlobal = max(stats.maxGlobal, stats.global[d])
	}
	for _, s := range sectors {
		stats.maxSector = max(stats.maxSector, maxShare(&s))
	}
	for _, l := range laneCounts {
		stats.maxLane = max(stats.maxLane, maxShare(l))
	}

	gDiv := 1 - clamp((stats.maxGlobal-0.25)/0.75, 0, 1)
	sDiv := 1 - clamp((stats.maxSector-0.25)/0.75, 0, 1)
	lDiv := 1 - clamp((stats.maxLane-0.25)/0.75, 0, 1)
	stats.diversity = 0.5*gDiv + 0.3*sDiv + 0.2*lDiv
	return stats
}

func maxShare(counts *[4]int) float64 {
	total := 0
	for _, c := range counts {
		total += c
	}
	if total < minShareGroup {
		return 0
	}
	share := 0.0
	for _, c := range counts {
		share = max(share, float64(c)/float64(total))
	}
	return share
}

// scoreBoard folds depth and balance metrics into a 0-100 difficulty
// score. Higher is harder.
func scoreBoard(ds DepthStats, dir dirShareStats, p GenParams) float64 {
	depthNorm := p.DepthTarget.Max
	if depthNorm <= 0 {
		depthNorm = 8
	}
	depthTerm := clamp(ds.Avg/depthNorm, 0, 1)
	maxTerm := clamp(float64(ds.Max)/(depthNorm*2), 0, 1)

	mid := p.RemovableBand.Min + 0.1
	if p.RemovableBand.Max > 0 {
		mid = (p.RemovableBand.Min + p.RemovableBand.Max) / 2
	}
	removPenalty := clamp(absFloat(ds.RemovableRatio-mid)/0.5, 0, 1)

	return 100 * (0.35*depthTerm +
		0.15*maxTerm +
		0.2*(1-removPenalty) +
		0.3*dir.diversity)
}

func hasOverlap(bl []*Block, cfg BoardConfig) bool {
	shrink := cfg.Gap / 2
	for i, a := range bl {
		ra := a.Rect().Inset(shrink)
		for _, b := range bl[i+1:] {
			if ra.Intersects(b.Rect().Inset(shrink)) {
				return true
			}
		}
	}
	return false
}

// acceptBoard is the hard gate a candidate must pass to be returned as-is.
// The returned reason names the first failed check, for attempt logging.
func acceptBoard(bl []*Block, ds DepthStats, dir dirShareStats, score float64, p GenParams, cfg BoardConfig) (bool, string) {
	n := len(bl)
	if n == 0 {
		return false, "empty board"
	}
	if hasOverlap(bl, cfg) {
		return false, "geometric overlap"
	}
	if ds.Unresolved > 0 {
		return false, "unresolved dependency cycle"
	}
	if ds.RemovableCount < removableFloor(p, n) {
		return false, "removable count below floor"
	}
	if p.RemovableBand.Max > 0 && ds.RemovableRatio > p.RemovableBand.Max {
		return false, "removable ratio above band"
	}
	if p.DepthTarget.Max > 0 && (ds.Avg < p.DepthTarget.Min || ds.Avg > p.DepthTarget.Max) {
		return false, "average depth out of range"
	}
	if p.MaxDirShare > 0 && dir.maxGlobal > p.MaxDirShare {
		return false, "global direction share too high"
	}
	if p.MaxSectorShare > 0 && dir.maxSector > p.MaxSectorShare {
		return false, "sector direction share too high"
	}
	if p.MaxLaneShare > 0 && dir.maxLane > p.MaxLaneShare {
		return false, "lane direction share too high"
	}
	if p.ScoreTolerance > 0 && absFloat(score-p.ScoreTarget) > p.ScoreTolerance {
		return false, "score outside target tolerance"
	}
	return true, ""
}
