package sat

import (
	"math/rand"

	"github.com/rhartert/yagh"
)

// Heuristic is the decision-variable selector capability set: it supplies
// the next variable to branch on and a suggested phase, and is notified of
// conflicts so that conflict-driven policies (VSIDS) can update their
// priorities. The engine is polymorphic over this interface; correctness of
// the search does not depend on which implementation is plugged in.
type Heuristic interface {
	// NextVar returns the next unassigned variable to branch on, or 0 when
	// it has no candidate left. It consults a to skip variables that
	// propagation has already assigned; a skipped variable is not offered
	// again after it is unassigned, so 0 does not imply that every variable
	// is assigned.
	NextVar(a Assignment) int

	// Phase returns the suggested initial truth value for variable v.
	Phase(v int) LBool

	// PutBack returns v to the pool of candidate variables, e.g. when the
	// search backtracks past the decision that consumed it.
	PutBack(v int)

	// OnConflict notifies the heuristic that learned is a freshly learned
	// clause, so that conflict-driven policies can bump the variables it
	// names.
	OnConflict(learned []Literal)
}

// HeuristicKind selects which Heuristic implementation Solver.Solve builds.
type HeuristicKind int

const (
	Simple HeuristicKind = iota
	Randomized
	VSIDS
)

// simpleHeuristic emits variables 1, 2, ..., N in order and always suggests
// the true phase; it ignores conflicts entirely.
type simpleHeuristic struct {
	cursor  int
	numVars int
}

func newSimpleHeuristic(numVars int) *simpleHeuristic {
	return &simpleHeuristic{cursor: 1, numVars: numVars}
}

func (h *simpleHeuristic) NextVar(a Assignment) int {
	for h.cursor <= h.numVars {
		v := h.cursor
		h.cursor++
		if a.ValueOfVar(v) == Unassigned {
			return v
		}
	}
	return 0
}

func (h *simpleHeuristic) Phase(int) LBool { return True }

func (h *simpleHeuristic) PutBack(v int) { h.cursor = v }

func (h *simpleHeuristic) OnConflict([]Literal) {}

// randomizedHeuristic emits a random permutation of 1..N and fixes a random
// phase per variable at construction.
type randomizedHeuristic struct {
	order  []int
	cursor int
	phases []LBool // indexed by variable
}

func newRandomizedHeuristic(numVars int, seed int64) *randomizedHeuristic {
	rng := rand.New(rand.NewSource(seed))

	order := make([]int, numVars)
	for v := 1; v <= numVars; v++ {
		order[v-1] = v
	}
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	phases := make([]LBool, numVars+1)
	for v := 1; v <= numVars; v++ {
		phases[v] = Lift(rng.Intn(2) == 1)
	}

	return &randomizedHeuristic{order: order, phases: phases}
}

func (h *randomizedHeuristic) NextVar(a Assignment) int {
	for h.cursor < len(h.order) {
		v := h.order[h.cursor]
		h.cursor++
		if a.ValueOfVar(v) == Unassigned {
			return v
		}
	}
	return 0
}

func (h *randomizedHeuristic) Phase(v int) LBool { return h.phases[v] }

func (h *randomizedHeuristic) PutBack(v int) {
	for i, ord := range h.order {
		if ord == v {
			h.cursor = i
			return
		}
	}
}

func (h *randomizedHeuristic) OnConflict([]Literal) {}

// vsidsHeuristic scores variables by their occurrence count in the original
// formula, bumped by one each time they appear in a learned clause, with
// all scores periodically decayed. Scores are maintained in a max-heap (via
// yagh's min-heap of negated priorities) so NextVar is a single pop.
type vsidsHeuristic struct {
	heap   *yagh.IntMap[float64]
	scores []float64 // indexed by variable, in [0, +inf)
	decay  float64   // δ > 1, spec.md §4.5
	phases []LBool   // fixed at construction, indexed by variable
}

func newVSIDSHeuristic(occurrences []int, decay float64, seed int64) *vsidsHeuristic {
	numVars := len(occurrences) - 1
	rng := rand.New(rand.NewSource(seed))

	h := &vsidsHeuristic{
		heap:   yagh.New[float64](0),
		scores: make([]float64, numVars+1),
		decay:  decay,
		phases: make([]LBool, numVars+1),
	}
	h.heap.GrowBy(numVars)

	for v := 1; v <= numVars; v++ {
		h.scores[v] = float64(occurrences[v])
		h.heap.Put(v, -h.scores[v])
		h.phases[v] = Lift(rng.Intn(2) == 1)
	}

	return h
}

func (h *vsidsHeuristic) NextVar(a Assignment) int {
	for {
		next, ok := h.heap.Pop()
		if !ok {
			return 0
		}
		if a.ValueOfVar(next.Elem) == Unassigned {
			return next.Elem
		}
	}
}

func (h *vsidsHeuristic) Phase(v int) LBool { return h.phases[v] }

func (h *vsidsHeuristic) PutBack(v int) {
	h.heap.Put(v, -h.scores[v])
}

func (h *vsidsHeuristic) OnConflict(learned []Literal) {
	for v := 1; v < len(h.scores); v++ {
		h.scores[v] /= h.decay
		if h.heap.Contains(v) {
			h.heap.Put(v, -h.scores[v])
		}
	}
	for _, l := range learned {
		v := l.VarID()
		h.scores[v]++
		if h.heap.Contains(v) {
			h.heap.Put(v, -h.scores[v])
		}
	}
}
