package sat

import "testing"

func newTestSolver(numVars int, clauses [][]int) *Solver {
	s := buildSolver(DefaultOptions, numVars, clauses)
	s.heuristic = newSimpleHeuristic(numVars) // Solve() not called; propagator needs none of it
	return s
}

func TestPropagator_seedsUnitClauses(t *testing.T) {
	s := newTestSolver(1, [][]int{{1}})
	s.trail.Begin(0)
	s.graph.BeginLevel(0)

	p := newPropagator(s, 0)
	if p.units.IsEmpty() {
		t.Fatalf("newPropagator() did not seed the unit clause {1}")
	}
	if !p.Propagate() {
		t.Fatalf("Propagate() = false, want true")
	}
	if s.valueOfVar(1) != True {
		t.Errorf("var 1 = %s, want true", s.valueOfVar(1))
	}
}

func TestPropagator_chainsUnits(t *testing.T) {
	// {1} forces var 1 true; {-1, 2} then forces var 2 true.
	s := newTestSolver(2, [][]int{{1}, {-1, 2}})
	s.trail.Begin(0)
	s.graph.BeginLevel(0)

	p := newPropagator(s, 0)
	if !p.Propagate() {
		t.Fatalf("Propagate() = false, want true")
	}
	if s.valueOfVar(1) != True || s.valueOfVar(2) != True {
		t.Errorf("vars 1,2 = %s,%s, want true,true", s.valueOfVar(1), s.valueOfVar(2))
	}
}

func TestPropagator_detectsConflict(t *testing.T) {
	s := newTestSolver(1, [][]int{{1}, {-1}})
	s.trail.Begin(0)
	s.graph.BeginLevel(0)

	p := newPropagator(s, 0)
	if p.Propagate() {
		t.Fatalf("Propagate() = true, want false (conflicting units)")
	}
	if s.store.Len() != 3 {
		t.Errorf("store.Len() = %d, want 3 (two original + one learned clause)", s.store.Len())
	}
}

func TestPropagator_noUnitsReturnsOkImmediately(t *testing.T) {
	s := newTestSolver(2, [][]int{{1, 2}})
	s.trail.Begin(0)
	s.graph.BeginLevel(0)

	p := newPropagator(s, 0)
	if !p.units.IsEmpty() {
		t.Fatalf("newPropagator() seeded a unit from a 2-literal clause")
	}
	if !p.Propagate() {
		t.Errorf("Propagate() = false, want true")
	}
}
