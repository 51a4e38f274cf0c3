package dimacs

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rhartert/cinders/internal/sat"
)

type fakeSolver struct {
	variables int
	clauses   [][]sat.Literal
}

func (f *fakeSolver) AddVariable() int {
	f.variables++
	return f.variables
}

func (f *fakeSolver) AddClause(lits []sat.Literal) error {
	clause := make([]sat.Literal, len(lits))
	copy(clause, lits)
	f.clauses = append(f.clauses, clause)
	return nil
}

const testCNF = `c a tiny instance
p cnf 3 2
1 -2 3 0
-1 2 0
`

func TestRead(t *testing.T) {
	got := &fakeSolver{}
	stats, err := Read(strings.NewReader(testCNF), got)
	if err != nil {
		t.Fatalf("Read(): unexpected error: %s", err)
	}

	if stats.Variables != 3 || stats.Clauses != 2 {
		t.Errorf("Read(): stats = %+v, want {Variables:3 Clauses:2}", stats)
	}

	want := [][]sat.Literal{
		{sat.PositiveLiteral(1), sat.NegativeLiteral(2), sat.PositiveLiteral(3)},
		{sat.NegativeLiteral(1), sat.PositiveLiteral(2)},
	}
	if diff := cmp.Diff(want, got.clauses); diff != "" {
		t.Errorf("Read(): clauses mismatch (-want +got):\n%s", diff)
	}
}

func TestRead_wrongProblemType(t *testing.T) {
	got := &fakeSolver{}
	_, err := Read(strings.NewReader("p sat 3 2\n"), got)
	if err == nil {
		t.Errorf("Read(): want error for non-cnf problem line, got none")
	}
}
