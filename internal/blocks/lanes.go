package blocks

import "sort"

// laneUniformStrategy gives every lane one shared direction, biased toward
// the nearest edge. With a single direction per lane no lane can hold the
// two opposing directions, so anti-facing deadlock is impossible by
// construction; a flip pass then turns the most central inward lanes
// outward until enough blocks start removable.
type laneUniformStrategy struct {
	outwardBias     float64
	removableTarget float64
}

type laneState struct {
	key     laneKey
	mates   []*Block
	outward Direction
	rank    float64 // mean block rank, proxy for distance from center
	inward  bool
}

func (s *laneUniformStrategy) assign(bs *boardState, rng *Rand, dl deadline) error {
	if dl.expired() {
		return errBudgetExpired
	}

	lanes := make([]*laneState, 0)
	for k, mates := range bs.lanes() {
		lanes = append(lanes, &laneState{
			key:     k,
			mates:   mates,
			outward: laneOutward(k, mates),
			rank:    meanRank(mates),
		})
	}
	sort.Slice(lanes, func(i, j int) bool {
		a, b := lanes[i], lanes[j]
		if a.key.axis != b.key.axis {
			return a.key.axis < b.key.axis
		}
		return a.key.index < b.key.index
	})

	for _, ln := range lanes {
		d := ln.outward
		if !rng.Chance(s.outwardBias) {
			d = d.Opposite()
			ln.inward = true
		}
		for _, b := range ln.mates {
			b.SetDirection(d, bs.cfg)
		}
	}

	s.flipCentralLanes(bs, lanes)
	return nil
}

// flipCentralLanes walks the inward lanes from the board center outward,
// flipping each until the removable ratio clears the target.
func (s *laneUniformStrategy) flipCentralLanes(bs *boardState, lanes []*laneState) {
	if len(bs.blocks) == 0 {
		return
	}
	inward := make([]*laneState, 0, len(lanes))
	for _, ln := range lanes {
		if ln.inward {
			inward = append(inward, ln)
		}
	}
	sort.SliceStable(inward, func(i, j int) bool {
		return inward[i].rank < inward[j].rank
	})

	target := s.removableTarget
	for _, ln := range inward {
		ratio := float64(bs.removableCount()) / float64(len(bs.blocks))
		if ratio >= target {
			break
		}
		for _, b := range ln.mates {
			b.SetDirection(ln.outward, bs.cfg)
		}
		ln.inward = false
	}
}

// laneOutward picks the axis direction pointing from the lane's center of
// mass toward the nearest board edge.
func laneOutward(k laneKey, mates []*Block) Direction {
	sum := 0.0
	for _, b := range mates {
		if k.axis == AxisRow {
			sum += float64(b.GridRow) + 0.5
		} else {
			sum += float64(b.GridCol) + 0.5
		}
	}
	if k.axis == AxisRow {
		return iif(sum >= 0, Down, Up)
	}
	return iif(sum >= 0, Right, Left)
}

func meanRank(mates []*Block) float64 {
	sum := 0
	for _, b := range mates {
		sum += absInt(b.GridRow) + absInt(b.GridCol)
	}
	return float64(sum) / float64(max(len(mates), 1))
}
