package sat

import "testing"

func TestStore_AppendAndOccurrence(t *testing.T) {
	s := NewStore(3)
	idx := s.Append([]Literal{PositiveLiteral(1), NegativeLiteral(2)}, false)
	if idx != 0 {
		t.Fatalf("Append() returned index %d, want 0", idx)
	}

	if got := s.OccurPositive(1); len(got) != 1 || got[0] != 0 {
		t.Errorf("OccurPositive(1) = %v, want [0]", got)
	}
	if got := s.OccurNegative(2); len(got) != 1 || got[0] != 0 {
		t.Errorf("OccurNegative(2) = %v, want [0]", got)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestStore_AnyEmpty(t *testing.T) {
	s := NewStore(1)
	s.Append([]Literal{PositiveLiteral(1)}, false)
	if s.AnyEmpty() {
		t.Fatalf("AnyEmpty() = true for a fresh clause, want false")
	}
	s.At(0).MarkFalse(1)
	if !s.AnyEmpty() {
		t.Errorf("AnyEmpty() = false for a fully-resolved, unsatisfied clause, want true")
	}
}

func TestStore_AllSatisfied(t *testing.T) {
	s := NewStore(2)
	s.Append([]Literal{PositiveLiteral(1)}, false)
	s.Append([]Literal{NegativeLiteral(2)}, false)
	if s.AllSatisfied() {
		t.Fatalf("AllSatisfied() = true before any assignment, want false")
	}
	s.At(0).MarkTrue(1)
	s.At(1).MarkTrue(1)
	if !s.AllSatisfied() {
		t.Errorf("AllSatisfied() = false once every clause has a true literal, want true")
	}
}

func TestStore_Grow(t *testing.T) {
	s := NewStore(0)
	s.Grow()
	s.Append([]Literal{PositiveLiteral(1)}, false)
	if len(s.OccurPositive(1)) != 1 {
		t.Errorf("Grow() did not extend occurrence index for the new variable")
	}
}
