package blocks

// LayoutProfile biases where holes concentrate on the board. The weight
// of a cell is the relative preference for leaving it empty.
type LayoutProfile int8

const (
	ProfileUniform LayoutProfile = iota
	ProfileRing
	ProfileDiagonal
	ProfileTwoLumps
	ProfileHollow
)

func (p LayoutProfile) String() string {
	switch p {
	case ProfileUniform:
		return "uniform"
	case ProfileRing:
		return "ring"
	case ProfileDiagonal:
		return "diagonal"
	case ProfileTwoLumps:
		return "two-lumps"
	case ProfileHollow:
		return "hollow"
	default:
		return "profile(?)"
	}
}

var allProfiles = []LayoutProfile{
	ProfileUniform, ProfileRing, ProfileDiagonal, ProfileTwoLumps, ProfileHollow,
}

// holeWeight scores a cell for hole placement, in [0, 1]. maxRank is the
// largest cell rank of the grid (never zero for non-empty grids).
func (p LayoutProfile) holeWeight(c *Cell, maxRank int) float64 {
	norm := float64(c.Rank) / float64(max(maxRank, 1))
	switch p {
	case ProfileRing:
		// holes along a mid-radius ring
		return clamp(1-absFloat(norm-0.55)*2.5, 0, 1)
	case ProfileDiagonal:
		// holes along the row==col diagonal band
		band := float64(absInt(c.Row-c.Col)) / float64(max(maxRank, 1))
		return clamp(1-band*3, 0, 1)
	case ProfileTwoLumps:
		half := max(maxRank/2, 1)
		dA := absInt(c.Row-half) + absInt(c.Col)
		dB := absInt(c.Row+half) + absInt(c.Col)
		d := float64(min(dA, dB)) / float64(max(maxRank, 1))
		return clamp(1-d*2, 0, 1)
	case ProfileHollow:
		// hollow center
		return clamp(1-norm*1.6, 0, 1)
	default:
		return 0.5
	}
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
