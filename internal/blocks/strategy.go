package blocks

import "errors"

// StrategyKind selects the direction assignment policy for a level.
type StrategyKind int8

const (
	StrategyLaneUniform StrategyKind = iota
	StrategyDepthLayered
	StrategyReverseFill
)

func (k StrategyKind) String() string {
	switch k {
	case StrategyLaneUniform:
		return "lane-uniform"
	case StrategyDepthLayered:
		return "depth-layered"
	case StrategyReverseFill:
		return "reverse-fill"
	default:
		return "strategy(?)"
	}
}

var (
	errBudgetExpired = errors.New("generation budget expired")
	errNoLegalExit   = errors.New("no legal exit direction for a block")
)

// directionStrategy decides every block's slide direction. All three
// implementations must leave the board free of anti-facing lane pairs.
type directionStrategy interface {
	assign(bs *boardState, rng *Rand, dl deadline) error
}

func strategyFor(p GenParams) directionStrategy {
	switch p.Strategy {
	case StrategyDepthLayered:
		return &depthLayeredStrategy{params: p}
	case StrategyReverseFill:
		return &reverseFillStrategy{params: p}
	default:
		return &laneUniformStrategy{
			outwardBias:     p.OutwardBias,
			removableTarget: p.RemovableBand.Min,
		}
	}
}
