package sat

import "testing"

func TestSimpleHeuristic_sequentialOrder(t *testing.T) {
	h := newSimpleHeuristic(3)
	a := fakeAssignment{}

	for _, want := range []int{1, 2, 3, 0, 0} {
		if got := h.NextVar(a); got != want {
			t.Errorf("NextVar() = %d, want %d", got, want)
		}
	}
}

func TestSimpleHeuristic_numVars1(t *testing.T) {
	h := newSimpleHeuristic(1)
	a := fakeAssignment{}

	if got := h.NextVar(a); got != 1 {
		t.Fatalf("NextVar() = %d, want 1", got)
	}
	if got := h.NextVar(a); got != 0 {
		t.Errorf("NextVar() = %d, want 0", got)
	}
}

func TestSimpleHeuristic_skipsAssigned(t *testing.T) {
	h := newSimpleHeuristic(3)
	a := fakeAssignment{2: True}

	if got := h.NextVar(a); got != 1 {
		t.Fatalf("NextVar() = %d, want 1", got)
	}
	if got := h.NextVar(a); got != 3 {
		t.Errorf("NextVar() = %d, want 3 (2 is already assigned)", got)
	}
}

func TestSimpleHeuristic_putBack(t *testing.T) {
	h := newSimpleHeuristic(3)
	a := fakeAssignment{}

	h.NextVar(a) // consumes 1
	h.NextVar(a) // consumes 2
	h.PutBack(2)

	if got := h.NextVar(a); got != 2 {
		t.Errorf("NextVar() after PutBack(2) = %d, want 2", got)
	}
}

func TestVSIDSHeuristic_bumpsConflictVars(t *testing.T) {
	occ := []int{0, 1, 1, 1, 1, 1} // index 0 unused, vars 1..5 each occur once
	h := newVSIDSHeuristic(occ, 1.05, 42)

	h.OnConflict([]Literal{PositiveLiteral(3), NegativeLiteral(5)})

	if h.scores[3] <= h.scores[1] {
		t.Errorf("OnConflict() did not raise var 3's score above an untouched one: scores=%v", h.scores)
	}
	if h.scores[5] <= h.scores[1] {
		t.Errorf("OnConflict() did not raise var 5's score above an untouched one: scores=%v", h.scores)
	}
}

func TestVSIDSHeuristic_exhausts(t *testing.T) {
	occ := []int{0, 2, 1}
	h := newVSIDSHeuristic(occ, 1.05, 1)
	a := fakeAssignment{}

	first := h.NextVar(a)
	second := h.NextVar(a)
	if first == 0 || second == 0 || first == second {
		t.Fatalf("NextVar() should return each of 1, 2 exactly once before 0; got %d, %d", first, second)
	}
	if got := h.NextVar(a); got != 0 {
		t.Errorf("NextVar() after exhausting both vars = %d, want 0", got)
	}
}
