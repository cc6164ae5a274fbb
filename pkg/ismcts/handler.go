package ismcts

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Handler is the public façade of the engine: it owns the root game state
// and the root node of the search tree, and drives the worker pool against
// them. The zero value is not usable; construct with NewHandler.
type Handler[M Move, P PlayerTag] struct {
	rootState           Game[M, P]
	root                *Node[M, P]
	explorationConstant float64
}

// NewHandler constructs a handler with a fresh root node (no entering
// move) wrapping state. state is not cloned here: the handler takes
// ownership of it; callers must not mutate it afterwards.
func NewHandler[M Move, P PlayerTag](state Game[M, P]) *Handler[M, P] {
	return &Handler[M, P]{
		rootState:           state,
		root:                newRootNode[M, P](),
		explorationConstant: ExplorationConstant,
	}
}

// SetExplorationConstant overrides the UCB1 coefficient used by this
// handler's searches. See ExplorationConstant for the default.
func (h *Handler[M, P]) SetExplorationConstant(c float64) {
	h.explorationConstant = c
}

// RunIterations spawns threads workers, each executing itersPerThread
// iterations against the shared tree, and blocks until all complete.
// Any per-worker game-contract panic is aggregated into the returned
// error; a nil error means every iteration completed cleanly.
func (h *Handler[M, P]) RunIterations(threads, itersPerThread int) error {
	if threads < 1 {
		threads = 1
	}
	return runIterationsPool(h.root, h.rootState, threads, itersPerThread, h.explorationConstant)
}

// RunTimed spawns threads workers, each looping iterations until duration
// has elapsed since the call began, and blocks until all stop.
func (h *Handler[M, P]) RunTimed(threads int, duration time.Duration) error {
	if threads < 1 {
		threads = 1
	}
	return runTimedPool(h.root, h.rootState, threads, duration, h.explorationConstant)
}

// BestMove returns the entering move of the root's most-visited child -
// the MCTS "robust child" - or false if the root has no children (e.g. a
// terminal root, or no iterations run yet).
func (h *Handler[M, P]) BestMove() (M, bool) {
	var zero M
	best := h.bestChildByVisits()
	if best == nil {
		return zero, false
	}
	move, _ := best.EnteringMove()
	return move, true
}

func (h *Handler[M, P]) bestChildByVisits() *Node[M, P] {
	var best *Node[M, P]
	var bestVisits int64 = -1
	for _, child := range h.root.Children() {
		if v := child.Stats.snapshot().Visits; v > bestVisits {
			bestVisits = v
			best = child
		}
	}
	return best
}

// MakeMove advances the root: the caller asserts m is legal in the
// current root state and is the entering move of some already-explored
// root child. On success, root_state becomes root_state.MakeMove(m) and
// the root node becomes that child, discarding its siblings. On failure
// (m is not legal in the root state, or was never explored), the handler
// is left untouched and an error wrapping ErrIllegalMove is returned.
func (h *Handler[M, P]) MakeMove(m M) error {
	legal := false
	for _, mv := range h.rootState.AvailableMoves() {
		if mv == m {
			legal = true
			break
		}
	}
	if !legal {
		return errors.Wrapf(ErrIllegalMove, "move %v is not legal in the root state", m)
	}

	child, ok := h.root.childForMove(m)
	if !ok {
		return errors.Wrapf(ErrIllegalMove, "move %v is not an explored root child", m)
	}

	h.rootState.MakeMove(m)
	h.root = child
	return nil
}

// MustMakeMove is MakeMove for callers that want a fatal, abort-the-
// program disposition for an illegal advance instead of a recoverable
// error.
func (h *Handler[M, P]) MustMakeMove(m M) {
	if err := h.MakeMove(m); err != nil {
		panic(err)
	}
}

// State returns the current root game state. Callers must treat the
// returned value as read-only: mutating it directly would desynchronize
// it from the root node's statistics.
func (h *Handler[M, P]) State() Game[M, P] {
	return h.rootState
}

// MaxVisits returns the highest visit count among the root's children, or
// 0 if the root has none.
func (h *Handler[M, P]) MaxVisits() int64 {
	var max int64
	for _, child := range h.root.Children() {
		if v := child.Stats.snapshot().Visits; v > max {
			max = v
		}
	}
	return max
}

// TotalVisits returns the sum of visit counts across the root's children.
func (h *Handler[M, P]) TotalVisits() int64 {
	var total int64
	for _, child := range h.root.Children() {
		total += child.Stats.snapshot().Visits
	}
	return total
}

// DebugChildren renders one line per root child - move, visits,
// availability, mean reward - sorted by visits descending.
func (h *Handler[M, P]) DebugChildren() string {
	children := h.root.Children()
	sort.Slice(children, func(i, j int) bool {
		return children[i].Stats.snapshot().Visits > children[j].Stats.snapshot().Visits
	})

	var b strings.Builder
	for _, child := range children {
		snap := child.Stats.snapshot()
		move, _ := child.EnteringMove()
		mean := 0.0
		if snap.Visits > 0 {
			mean = snap.Reward / float64(snap.Visits)
		}
		fmt.Fprintf(&b, "%v: N=%d A=%d mean=%.3f\n", move, snap.Visits, snap.Availability, mean)
	}
	return b.String()
}

func (h *Handler[M, P]) String() string {
	return fmt.Sprintf("Handler{children=%d, totalVisits=%d}", h.root.childCount(), h.TotalVisits())
}
