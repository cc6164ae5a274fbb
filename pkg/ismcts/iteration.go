package ismcts

import "math/rand"

// runIteration performs one full ISMCTS cycle against state (a private
// per-worker clone) starting from root:
//
//  1. Determinize - resample hidden information for the current player.
//  2. Select - descend by UCB1 while every legal move already has a
//     tried child.
//  3. Expand - try one untried legal move, if any.
//  4. Simulate - uniform-random rollout to a terminal state.
//  5. Backpropagate - walk parent links, crediting each non-root node's
//     player_just_moved with the terminal result.
func runIteration[M Move, P PlayerTag](root *Node[M, P], state Game[M, P], rng *rand.Rand, explorationConstant float64) {
	state.RandomizeDetermination(state.CurrentPlayer())

	node := root
	for {
		legal := state.AvailableMoves()
		if len(legal) == 0 {
			break
		}
		if untried := node.untriedMoves(legal); len(untried) > 0 {
			move := untried[rng.Intn(len(untried))]
			player := state.CurrentPlayer()
			state.MakeMove(move)
			node = node.addChild(move, player)
			break
		}

		next, ok := selectChild(node, legal, explorationConstant)
		if !ok {
			// untriedMoves reported every legal move as already tried, so
			// this cannot happen in practice (children are only ever
			// added, never removed, during a search). Stop here rather
			// than loop, and let the rollout continue from this node.
			break
		}
		node = next
		move, _ := node.EnteringMove()
		state.MakeMove(move)
	}

	RandomRollout[M](state, rng)
	backpropagate(node, state)
}

// backpropagate walks from node up through parent references, updating
// every non-root node's statistics with the reward credited to its
// player_just_moved. It stops at the root (which has no player_just_moved
// and is never updated, per invariant 5) or if an ancestor has already
// been released (weak reference upgrade fails).
func backpropagate[M Move, P PlayerTag](node *Node[M, P], terminal Game[M, P]) {
	for {
		player, ok := node.PlayerJustMoved()
		if !ok {
			return
		}

		reward, isTerminal := terminal.Result(player)
		if !isTerminal {
			reward = 0
		}
		node.update(reward)

		parent, ok := node.Parent()
		if !ok {
			return
		}
		node = parent
	}
}
