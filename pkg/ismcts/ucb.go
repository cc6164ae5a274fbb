package ismcts

import "math"

// ExplorationConstant is the classical UCB1 coefficient inside the square
// root: ucb1 = R/N + sqrt(ExplorationConstant * ln(A) / N). Defaults to
// the classical value of 2, tunable per search via
// Handler.SetExplorationConstant.
var ExplorationConstant = 2.0

// ucb1 scores a node for selection, reading its statistics under a single
// read-lock. An unvisited node (N == 0) always scores +Inf, so it would
// be picked first if ever considered - in practice Select only considers
// nodes that already exist as children, and by the time a node is
// selectable its own expanding iteration has usually backpropagated, so
// N >= 1. The race where it hasn't yet is handled by returning +Inf.
func ucb1[M Move, P PlayerTag](n *Node[M, P], explorationConstant float64) float64 {
	snap := n.Stats.snapshot()
	if snap.Visits == 0 {
		return math.Inf(1)
	}
	exploitation := snap.Reward / float64(snap.Visits)
	exploration := math.Sqrt(explorationConstant * math.Log(float64(snap.Availability)) / float64(snap.Visits))
	return exploitation + exploration
}

// selectChild picks a child to descend into: among the children
// whose entering move is in legal, pick the one with the highest UCB1
// score (ties go to the first one encountered), then bump availability
// on every legal child - not just the chosen one - since all of them were
// visible to this determinization. Returns false if none of legal has a
// child yet.
func selectChild[M Move, P PlayerTag](n *Node[M, P], legal []M, explorationConstant float64) (*Node[M, P], bool) {
	n.childrenMu.RLock()
	candidates := make([]*Node[M, P], 0, len(legal))
	for _, mv := range legal {
		if ch, ok := n.children[mv]; ok {
			candidates = append(candidates, ch)
		}
	}
	n.childrenMu.RUnlock()

	if len(candidates) == 0 {
		return nil, false
	}

	best := candidates[0]
	bestScore := ucb1(best, explorationConstant)
	for _, ch := range candidates[1:] {
		if score := ucb1(ch, explorationConstant); score > bestScore {
			bestScore = score
			best = ch
		}
	}

	for _, ch := range candidates {
		ch.Stats.addAvailability(1)
	}

	return best, true
}
