package sat

import "testing"

func TestTrail_PushAndLiterals(t *testing.T) {
	tr := NewTrail()
	tr.Begin(0)
	tr.Push(0, PositiveLiteral(1))
	tr.Push(0, NegativeLiteral(2))

	got := tr.Literals(0)
	want := []Literal{PositiveLiteral(1), NegativeLiteral(2)}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Literals(0) = %v, want %v", got, want)
	}
	if tr.Len(0) != 2 {
		t.Errorf("Len(0) = %d, want 2", tr.Len(0))
	}
}

func TestTrail_Pop(t *testing.T) {
	tr := NewTrail()
	tr.Begin(0)
	tr.Push(0, PositiveLiteral(1))
	tr.Push(0, NegativeLiteral(2))

	got := tr.Pop(0)
	if got != NegativeLiteral(2) {
		t.Errorf("Pop(0) = %s, want -2", got)
	}
	if tr.Len(0) != 1 {
		t.Errorf("Len(0) after Pop = %d, want 1", tr.Len(0))
	}
}

func TestTrail_Clear(t *testing.T) {
	tr := NewTrail()
	tr.Begin(0)
	tr.Push(0, PositiveLiteral(1))
	tr.Clear(0)
	if tr.Len(0) != 0 {
		t.Errorf("Len(0) after Clear = %d, want 0", tr.Len(0))
	}
}

func TestTrail_BeginResetsLevel(t *testing.T) {
	tr := NewTrail()
	tr.Begin(0)
	tr.Push(0, PositiveLiteral(1))
	tr.Begin(0)
	if tr.Len(0) != 0 {
		t.Errorf("Begin() should reset an existing level's entries")
	}
}
