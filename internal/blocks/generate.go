package blocks

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// GenResult is the outcome of one generation call. Accepted reports
// whether the board passed the full acceptance gate; a false value means
// the board is the closest hard-valid candidate the budget allowed, which
// is still guaranteed overlap-free and solvable.
type GenResult struct {
	Blocks   []*Block
	Total    int
	Stats    DepthStats
	Score    float64
	Accepted bool
	Seed     uint32
	Attempts int
}

// GenerateLevel produces a board for the given level number, seeding from
// the wall clock for session variety.
func GenerateLevel(level int, screenW, screenH float64, cfg BoardConfig) (*GenResult, error) {
	p := ParamsForLevel(level, cfg)
	return Generate(p, SessionSeed(level), screenW, screenH, cfg)
}

// Generate runs the full pipeline: tile the grid, assemble dominoes,
// assign directions, verify and score, retrying with perturbed seeds until
// a candidate passes the gate or the attempt/time budget runs out. The
// best hard-valid candidate seen is kept as a fallback; an invalid board
// is never returned while any valid one exists.
func Generate(p GenParams, seed uint32, screenW, screenH float64, cfg BoardConfig) (res *GenResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			var ae AssertionError
			if e, ok := r.(error); ok && errors.As(e, &ae) {
				res, err = nil, ae
				return
			}
			panic(r)
		}
	}()

	if p.ShortSide > 0 {
		cfg = cfg.withShortSide(p.ShortSide)
	}
	safe := cfg.SafeRect(screenW, screenH)
	if !safe.Valid() {
		// degenerate playfield: structurally infeasible, not an error
		return &GenResult{Seed: seed}, nil
	}

	dl := newDeadline(p.TimeBudget)
	attempts := max(p.MaxAttempts, 1)

	var best *GenResult
	bestDist := 0.0
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 && dl.expired() {
			break
		}
		attemptSeed := seed + uint32(attempt)*0x9e3779b9
		cand := runAttempt(p, attemptSeed, safe, cfg, dl)
		if cand == nil {
			continue
		}
		cand.Seed = attemptSeed
		cand.Attempts = attempt + 1
		if cand.Accepted {
			return cand, nil
		}
		dist := absFloat(cand.Score - p.ScoreTarget)
		if best == nil || dist < bestDist {
			best, bestDist = cand, dist
		}
	}

	if best != nil {
		Log.WithFields(logrus.Fields{
			"level": p.Level,
			"score": best.Score,
			"want":  p.ScoreTarget,
		}).Debug("no candidate passed the gate, returning closest fallback")
		return best, nil
	}
	return lastResort(p, seed, safe, cfg), nil
}

// runAttempt builds and evaluates a single candidate board. It returns nil
// when the attempt produced nothing hard-valid: such boards must never be
// offered even as fallbacks.
func runAttempt(p GenParams, seed uint32, safe Rect, cfg BoardConfig, dl deadline) *GenResult {
	rng := NewRand(seed)

	profile := ProfileUniform
	if len(p.Profiles) > 0 {
		profile = p.Profiles[rng.IntN(len(p.Profiles))]
	}

	// placement shortfalls relax the block size down to the floor
	local := cfg
	var grid *Grid
	var placed []*Block
	for {
		grid = BuildGrid(local, safe)
		placed = assembleBoard(grid, p.BlockCount, p.HoleRatio, profile, rng, local)
		if len(placed) >= p.BlockCount {
			break
		}
		next := local.ShortSide * local.ShrinkFactor
		if next < local.MinShortSide {
			break
		}
		local = local.withShortSide(next)
	}
	if len(placed) == 0 {
		return nil
	}
	underTarget := len(placed) < p.BlockCount

	bs := &boardState{grid: grid, blocks: placed, cfg: local, safe: safe}
	if err := strategyFor(p).assign(bs, rng, dl); err != nil {
		Log.WithFields(logrus.Fields{
			"level":    p.Level,
			"strategy": p.Strategy.String(),
			"error":    err,
		}).Debug("direction assignment failed")
		return nil
	}

	for _, b := range placed {
		b.Kind = BlockKinds[rng.IntN(len(BlockKinds))]
	}

	stats := calculateBlockDepths(placed, safe, local)
	if hasOverlap(placed, local) {
		Log.WithField("level", p.Level).Error("assembler produced overlapping blocks")
		return nil
	}
	if stats.Unresolved > 0 {
		return nil
	}
	if !HasSolvablePath(placed, safe, local, seed^0x5bd1e995, p.SolveAttempts) {
		return nil
	}
	if stats.RemovableCount < removableFloor(p, len(placed)) {
		return nil
	}

	shares := computeDirectionShares(placed, safe)
	score := scoreBoard(stats, shares, p)

	accepted := false
	if underTarget {
		Log.WithFields(logrus.Fields{
			"level":  p.Level,
			"placed": len(placed),
			"target": p.BlockCount,
		}).Debug("placement shortfall, keeping candidate as fallback only")
	} else {
		var reason string
		accepted, reason = acceptBoard(placed, stats, shares, score, p, local)
		if !accepted {
			Log.WithFields(logrus.Fields{
				"level":  p.Level,
				"reason": reason,
				"score":  score,
			}).Debug("candidate rejected")
		}
	}

	return &GenResult{
		Blocks:   placed,
		Total:    len(placed),
		Stats:    stats,
		Score:    score,
		Accepted: accepted,
	}
}

// lastResort builds an all-outward lane-uniform board, the configuration
// with the weakest difficulty but the strongest structural guarantees.
// Reached only when every budgeted attempt failed hard validation.
func lastResort(p GenParams, seed uint32, safe Rect, cfg BoardConfig) *GenResult {
	for i := 0; i < 3; i++ {
		attemptSeed := seed ^ (uint32(i+1) * 0xcc9e2d51)
		rng := NewRand(attemptSeed)
		grid := BuildGrid(cfg, safe)
		placed := assembleBoard(grid, p.BlockCount, 0, ProfileUniform, rng, cfg)
		if len(placed) == 0 {
			continue
		}
		bs := &boardState{grid: grid, blocks: placed, cfg: cfg, safe: safe}
		strat := &laneUniformStrategy{outwardBias: 1, removableTarget: 1}
		if err := strat.assign(bs, rng, deadline{}); err != nil {
			continue
		}
		for _, b := range placed {
			b.Kind = BlockKinds[rng.IntN(len(BlockKinds))]
		}
		stats := calculateBlockDepths(placed, safe, cfg)
		if stats.Unresolved > 0 || hasOverlap(placed, cfg) {
			continue
		}
		if !HasSolvablePath(placed, safe, cfg, attemptSeed, max(p.SolveAttempts, 3)) {
			continue
		}
		shares := computeDirectionShares(placed, safe)
		Log.WithField("level", p.Level).Debug("returning last-resort outward board")
		return &GenResult{
			Blocks: placed,
			Total:  len(placed),
			Stats:  stats,
			Score:  scoreBoard(stats, shares, p),
			Seed:   attemptSeed,
		}
	}
	return &GenResult{Seed: seed}
}
