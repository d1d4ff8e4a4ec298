package blocks

// BoardConfig gathers the sizing and spacing constants of the playfield.
// It is built once at startup and passed explicitly into every component,
// so tests can run with alternate sizes.
type BoardConfig struct {
	ShortSide    float64 // block short side, px
	MinShortSide float64 // relaxation floor for placement shortfalls
	ShrinkFactor float64 // short-side multiplier per relaxation round
	Margin       float64 // screen edge to safe rect, px
	Gap          float64 // minimum clearance between placed blocks, px
	InsetMin     float64 // fixed hit-rect inset, px
	InsetFrac    float64 // proportional hit-rect inset, fraction of short side
	RayStepFrac  float64 // raycast step, fraction of short side
	MaxRaySteps  int     // raycast cap; blocked if exceeded
}

func DefaultBoardConfig() BoardConfig {
	return BoardConfig{
		ShortSide:    22,
		MinShortSide: 12,
		ShrinkFactor: 0.88,
		Margin:       24,
		Gap:          1.5,
		InsetMin:     2,
		InsetFrac:    0.15,
		RayStepFrac:  0.5,
		MaxRaySteps:  400,
	}
}

// Step is the pixel distance between adjacent lattice cells along one grid
// axis. Slightly over one short side so that neighboring dominoes clear
// each other without per-pair nudging.
func (c BoardConfig) Step() float64 {
	return c.ShortSide * 1.15
}

// LongSide is the length of a domino along its slide axis.
func (c BoardConfig) LongSide() float64 {
	return c.ShortSide * 2
}

// SafeRect maps screen dimensions to the playfield rectangle. Degenerate
// screens produce an invalid rect, which downstream components treat as
// "no cells" rather than an error.
func (c BoardConfig) SafeRect(screenW, screenH float64) Rect {
	return Rect{
		X: c.Margin,
		Y: c.Margin,
		W: screenW - 2*c.Margin,
		H: screenH - 2*c.Margin,
	}
}

func (c BoardConfig) withShortSide(s float64) BoardConfig {
	c.ShortSide = s
	return c
}

// hitInset is the inset applied to a block's rectangle before raycast hit
// testing, the larger of the fixed and the proportional inset.
func (c BoardConfig) hitInset(shorter float64) float64 {
	if prop := shorter * c.InsetFrac; prop > c.InsetMin {
		return prop
	}
	return c.InsetMin
}
