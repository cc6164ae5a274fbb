package ismcts

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Scenario A: 2-turn, 10-move per turn game, single thread, 1000
// iterations. Root should end with exactly 10 children, each with
// exactly 10 grandchildren, and total root-child visits of 1000.
func TestScenarioA_SingleThread(t *testing.T) {
	h := NewHandler[int, int](newTurnGame(2))
	require.NoError(t, h.RunIterations(1, 1000))

	children := h.root.Children()
	require.Len(t, children, 10)

	var totalVisits int64
	for _, child := range children {
		require.Len(t, child.Children(), 10)
		totalVisits += child.Stats.snapshot().Visits
	}
	require.EqualValues(t, 1000, totalVisits)
}

// Scenario B: same game, 4 threads x 1000 iterations each. 10 root
// children, 10 grandchildren per child, 4000 total root-child visits,
// and availability >= visits everywhere below the root.
func TestScenarioB_FourThreads(t *testing.T) {
	h := NewHandler[int, int](newTurnGame(2))
	require.NoError(t, h.RunIterations(4, 1000))

	children := h.root.Children()
	require.Len(t, children, 10)

	var totalVisits int64
	for _, child := range children {
		require.Len(t, child.Children(), 10)
		totalVisits += child.Stats.snapshot().Visits
	}
	require.EqualValues(t, 4000, totalVisits)

	for _, n := range allNodes[int, int](h.root) {
		if n.IsRoot() {
			continue
		}
		snap := n.Stats.snapshot()
		require.GreaterOrEqual(t, snap.Availability, snap.Visits)
	}
}

// Scenario E: root advance. After a search and MakeMove on a legal root
// child, the new root is the former child, State reflects the move, and
// the former siblings are no longer reachable from the new root.
func TestScenarioE_RootAdvance(t *testing.T) {
	h := NewHandler[int, int](newTurnGame(2))
	require.NoError(t, h.RunIterations(1, 500))

	move, ok := h.BestMove()
	require.True(t, ok)

	expectedChild, ok := h.root.childForMove(move)
	require.True(t, ok)
	siblings := h.root.Children()

	require.NoError(t, h.MakeMove(move))

	require.Same(t, expectedChild, h.root)
	require.EqualValues(t, []int{move}, h.rootState.(*turnGame).moves)

	for _, sibling := range siblings {
		siblingMove, _ := sibling.EnteringMove()
		if siblingMove == move {
			continue
		}
		for _, newChild := range h.root.Children() {
			require.NotSame(t, sibling, newChild)
		}
	}
}

// Scenario F: terminal at root. The tree stays empty, BestMove is
// absent, and no worker panics.
func TestScenarioF_TerminalRoot(t *testing.T) {
	h := NewHandler[int, int](newTurnGame(0))
	require.NoError(t, h.RunIterations(4, 100))

	require.Empty(t, h.root.Children())
	_, ok := h.BestMove()
	require.False(t, ok)
}

func TestMakeMove_IllegalMoveIsAnError(t *testing.T) {
	h := NewHandler[int, int](newTurnGame(2))
	require.NoError(t, h.RunIterations(1, 50))

	err := h.MakeMove(999)
	require.ErrorIs(t, err, ErrIllegalMove)
}

func TestMustMakeMove_PanicsOnIllegalMove(t *testing.T) {
	h := NewHandler[int, int](newTurnGame(2))
	require.NoError(t, h.RunIterations(1, 50))

	require.Panics(t, func() {
		h.MustMakeMove(999)
	})
}

func TestDebugChildren_SortedByVisitsDescending(t *testing.T) {
	h := NewHandler[int, int](newTurnGame(2))
	require.NoError(t, h.RunIterations(1, 1000))

	out := h.DebugChildren()
	require.NotEmpty(t, out)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 10)
	var prev int64
	for i, line := range lines {
		var move int
		var visits, availability int64
		var mean float64
		_, err := fmt.Sscanf(line, "%d: N=%d A=%d mean=%f", &move, &visits, &availability, &mean)
		require.NoError(t, err)
		if i > 0 {
			require.LessOrEqual(t, visits, prev)
		}
		prev = visits
	}
}
