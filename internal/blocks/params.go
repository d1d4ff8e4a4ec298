package blocks

import "time"

// Band is an inclusive target range. A zero Max leaves the upper end open.
type Band struct {
	Min, Max float64
}

// GenParams is the immutable per-level generation configuration. Produced
// once per call by ParamsForLevel, consumed read-only downstream.
type GenParams struct {
	Level          int
	BlockCount     int
	ShortSide      float64 // 0 means the board config default
	HoleRatio      float64
	Strategy       StrategyKind
	DirectionMix   [4]float64
	OutwardBias    float64
	CoreRatio      float64
	EdgeRatio      float64
	DepthFactor    float64
	DepthTarget    Band
	RemovableBand  Band
	MaxDirShare    float64
	MaxSectorShare float64
	MaxLaneShare   float64
	ScoreTarget    float64
	ScoreTolerance float64 // 0 disables whole-score gating
	MaxAttempts    int
	TimeBudget     time.Duration
	SolveAttempts  int
	Profiles       []LayoutProfile
}

// phase is one named ramp of the difficulty curve. Values interpolate
// linearly between from and to across the phase's level range.
type phase struct {
	name           string
	fromLevel      int
	toLevel        int // 0 means open-ended
	blocks         [2]float64
	depthMin       [2]float64
	depthMax       [2]float64
	removableMin   [2]float64
	removableMax   [2]float64
	outwardBias    [2]float64
	depthFactor    [2]float64
	scoreTarget    [2]float64
	strategy       StrategyKind
	maxDirShare    float64
	maxSectorShare float64
	maxLaneShare   float64
	profiles       []LayoutProfile
}

var curve = []phase{
	{
		name:      "opening",
		fromLevel: 1, toLevel: 5,
		blocks:       [2]float64{6, 36},
		depthMin:     [2]float64{0, 0.4},
		depthMax:     [2]float64{1.8, 2.6},
		removableMin: [2]float64{0.4, 0.3},
		removableMax: [2]float64{1, 0.9},
		outwardBias:  [2]float64{0.95, 0.8},
		depthFactor:  [2]float64{0.05, 0.15},
		scoreTarget:  [2]float64{18, 32},
		strategy:     StrategyLaneUniform,
		maxDirShare:  0.65, maxSectorShare: 1, maxLaneShare: 1,
		profiles: []LayoutProfile{ProfileUniform, ProfileHollow},
	},
	{
		name:      "climb",
		fromLevel: 6, toLevel: 15,
		blocks:       [2]float64{42, 110},
		depthMin:     [2]float64{1.2, 3.0},
		depthMax:     [2]float64{3.6, 5.8},
		removableMin: [2]float64{0.22, 0.13},
		removableMax: [2]float64{0.7, 0.5},
		outwardBias:  [2]float64{0.75, 0.65},
		depthFactor:  [2]float64{0.2, 0.45},
		scoreTarget:  [2]float64{34, 56},
		strategy:     StrategyDepthLayered,
		maxDirShare:  0.6, maxSectorShare: 0.95, maxLaneShare: 1,
		profiles:     allProfiles,
	},
	{
		name:      "surge",
		fromLevel: 16, toLevel: 30,
		blocks:       [2]float64{112, 170},
		depthMin:     [2]float64{3.2, 4.5},
		depthMax:     [2]float64{6.2, 7.6},
		removableMin: [2]float64{0.12, 0.08},
		removableMax: [2]float64{0.45, 0.35},
		outwardBias:  [2]float64{0.62, 0.55},
		depthFactor:  [2]float64{0.45, 0.62},
		scoreTarget:  [2]float64{56, 74},
		strategy:     StrategyDepthLayered,
		maxDirShare:  0.55, maxSectorShare: 0.9, maxLaneShare: 1,
		profiles:     allProfiles,
	},
	{
		name:      "mastery",
		fromLevel: 31, toLevel: 60,
		blocks:       [2]float64{172, 220},
		depthMin:     [2]float64{4.5, 5.5},
		depthMax:     [2]float64{7.8, 8.6},
		removableMin: [2]float64{0.07, 0.05},
		removableMax: [2]float64{0.3, 0.24},
		outwardBias:  [2]float64{0.55, 0.5},
		depthFactor:  [2]float64{0.62, 0.75},
		scoreTarget:  [2]float64{74, 88},
		strategy:     StrategyReverseFill,
		maxDirShare:  0.5, maxSectorShare: 0.85, maxLaneShare: 0.95,
		profiles:     allProfiles,
	},
}

const reliefPeriod = 5

// ParamsForLevel maps a level number to its generation parameters. Pure:
// the same level always yields the same parameters within a process run.
// Every reliefPeriod-th level eases targets slightly.
func ParamsForLevel(level int, cfg BoardConfig) GenParams {
	level = max(level, 1)
	ph := curve[len(curve)-1]
	for _, c := range curve {
		if level >= c.fromLevel && (c.toLevel == 0 || level <= c.toLevel) {
			ph = c
			break
		}
	}

	span := float64(max(ph.toLevel-ph.fromLevel, 1))
	t := clamp(float64(level-ph.fromLevel)/span, 0, 1)
	lerp := func(v [2]float64) float64 { return v[0] + (v[1]-v[0])*t }

	p := GenParams{
		Level:          level,
		BlockCount:     int(lerp(ph.blocks)),
		Strategy:       ph.strategy,
		DirectionMix:   [4]float64{0.25, 0.25, 0.25, 0.25},
		OutwardBias:    lerp(ph.outwardBias),
		CoreRatio:      0.3,
		EdgeRatio:      0.25,
		DepthFactor:    lerp(ph.depthFactor),
		DepthTarget:    Band{Min: lerp(ph.depthMin), Max: lerp(ph.depthMax)},
		RemovableBand:  Band{Min: lerp(ph.removableMin), Max: lerp(ph.removableMax)},
		MaxDirShare:    ph.maxDirShare,
		MaxSectorShare: ph.maxSectorShare,
		MaxLaneShare:   ph.maxLaneShare,
		ScoreTarget:    lerp(ph.scoreTarget),
		MaxAttempts:    12 + min(level/5, 12),
		TimeBudget:     3 * time.Second,
		SolveAttempts:  6,
		Profiles:       ph.profiles,
	}
	if p.Level >= 8 {
		p.HoleRatio = clamp(0.04+float64(level)*0.002, 0, 0.18)
	}

	if level%reliefPeriod == 0 {
		p.BlockCount = int(float64(p.BlockCount) * 0.9)
		p.DepthTarget.Min *= 0.8
		p.DepthTarget.Max = p.DepthTarget.Max*0.9 + 0.5
		p.RemovableBand.Min = clamp(p.RemovableBand.Min+0.05, 0, 1)
		if p.RemovableBand.Max > 0 {
			p.RemovableBand.Max = clamp(p.RemovableBand.Max+0.05, 0, 1)
		}
		p.ScoreTarget *= 0.85
	}
	return p
}

// SessionSeed derives a per-call seed for play-session variety. The
// wall-clock perturbation affects only the seed, never the parameter
// curve.
func SessionSeed(level int) uint32 {
	return uint32(level)*2654435761 ^ uint32(time.Now().UnixNano())
}
