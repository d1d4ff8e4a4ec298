package blocks

import "github.com/sirupsen/logrus"

// DepthStats summarizes the blocking dependency structure of a board.
type DepthStats struct {
	Avg            float64
	Max            int
	RemovableCount int
	RemovableRatio float64
	Unresolved     int
}

// buildBlockingGraph returns, per block index, the IDs of its direct
// blockers: active blocks occupying a lane cell strictly between the
// block's front and the board edge in its direction. Blocks without an
// axis get no edges and are handled by the peeling fallback instead.
func buildBlockingGraph(bl []*Block) [][]int {
	blockers := make([][]int, len(bl))
	for i, t := range bl {
		if t.Axis == AxisNone {
			continue
		}
		frontRow, frontCol := t.FrontCell(t.Direction)
		dRow, dCol := t.Direction.GridDelta()
		for _, o := range bl {
			if o.ID == t.ID {
				continue
			}
			for _, c := range o.OccupiedCells() {
				onLane := (dCol == 0 && c[1] == frontCol && (c[0]-frontRow)*dRow > 0) ||
					(dRow == 0 && c[0] == frontRow && (c[1]-frontCol)*dCol > 0)
				if onLane {
					blockers[i] = append(blockers[i], o.ID)
					break
				}
			}
		}
	}
	return blockers
}

// analyzeDepths layers the blocking graph breadth-first from its
// in-degree-zero nodes: a node's depth is one past the deepest of its
// blockers. Nodes left unvisited sit on a cycle and are reported as
// unresolved one layer past the deepest resolved node.
//
// The pipeline runs calculateBlockDepths only; this graph-based variant
// exists as its independent cross-check in tests and must agree with it.
func analyzeDepths(bl []*Block) DepthStats {
	var stats DepthStats
	if len(bl) == 0 {
		return stats
	}

	blockers := buildBlockingGraph(bl)
	indegree := make([]int, len(bl))
	dependents := make([][]int, len(bl))
	for t, bs := range blockers {
		indegree[t] = len(bs)
		for _, b := range bs {
			dependents[b] = append(dependents[b], t)
		}
	}

	depth := make([]int, len(bl))
	queue := make([]int, 0, len(bl))
	visited := make([]bool, len(bl))
	for i := range bl {
		if indegree[i] == 0 {
			queue = append(queue, i)
			stats.RemovableCount++
		}
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		visited[cur] = true
		for _, t := range dependents[cur] {
			if d := depth[cur] + 1; d > depth[t] {
				depth[t] = d
			}
			indegree[t]--
			if indegree[t] == 0 {
				queue = append(queue, t)
			}
		}
	}

	maxResolved := 0
	for i := range bl {
		if visited[i] && depth[i] > maxResolved {
			maxResolved = depth[i]
		}
	}
	sum := 0
	for i := range bl {
		if !visited[i] {
			depth[i] = maxResolved + 1
			stats.Unresolved++
		}
		sum += depth[i]
		stats.Max = max(stats.Max, depth[i])
	}
	stats.Avg = float64(sum) / float64(len(bl))
	stats.RemovableRatio = float64(stats.RemovableCount) / float64(len(bl))
	return stats
}

// calculateBlockDepths runs the simulate-and-peel fixed point: every round
// removes all currently unblocked blocks and stamps them with the round
// index. Blocks left after the rounds run dry sit on a genuine deadlock;
// they are stamped one layer deeper and reported as unresolved, which is a
// soft failure the caller must not silently accept.
func calculateBlockDepths(bl []*Block, bounds Rect, cfg BoardConfig) DepthStats {
	var stats DepthStats
	if len(bl) == 0 {
		return stats
	}

	removed := newRemovedSet(len(bl))
	remaining := len(bl)
	round := 0
	for remaining > 0 && round <= len(bl) {
		var peel []*Block
		for _, b := range bl {
			if !removed.has(b.ID) && !IsBlocked(b, bl, removed, bounds, cfg) {
				peel = append(peel, b)
			}
		}
		if len(peel) == 0 {
			break
		}
		if round == 0 {
			stats.RemovableCount = len(peel)
		}
		for _, b := range peel {
			b.Depth = round
			removed[b.ID] = true
		}
		remaining -= len(peel)
		round++
	}

	if remaining > 0 {
		for _, b := range bl {
			if !removed.has(b.ID) {
				b.Depth = round
			}
		}
		stats.Unresolved = remaining
		Log.WithFields(logrus.Fields{
			"unresolved": remaining,
			"total":      len(bl),
			"round":      round,
		}).Error("blocking depth fixed point did not resolve, board has a dependency cycle")
	}

	sum := 0
	for _, b := range bl {
		sum += b.Depth
		stats.Max = max(stats.Max, b.Depth)
	}
	stats.Avg = float64(sum) / float64(len(bl))
	stats.RemovableRatio = float64(stats.RemovableCount) / float64(len(bl))
	return stats
}
