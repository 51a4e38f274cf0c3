// Package dimacs reads DIMACS CNF formulas into an internal/sat.Solver and
// writes the solver's result back out in DIMACS's own convention.
package dimacs

import (
	"fmt"
	"io"

	"github.com/rhartert/dimacs"
	"github.com/rhartert/cinders/internal/sat"
)

// Solver is the subset of *sat.Solver that Read needs to populate a
// formula; narrowing to an interface keeps this package independent of the
// concrete solver type for testing.
type Solver interface {
	AddVariable() int
	AddClause([]sat.Literal) error
}

// Stats reports the sizes read from a formula's problem line.
type Stats struct {
	Variables int
	Clauses   int
}

// Read parses a DIMACS CNF formula from r and loads it into solver, adding
// one variable per the problem line's variable count and one clause per
// "Clause" callback. DIMACS variables are already 1-indexed, matching
// Solver.AddVariable's numbering, so literals need no offset translation.
func Read(r io.Reader, solver Solver) (Stats, error) {
	b := &builder{solver: solver}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return Stats{}, fmt.Errorf("dimacs: %w", err)
	}
	return b.stats, nil
}

type builder struct {
	solver Solver
	stats  Stats
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("dimacs: unsupported problem type %q", problem)
	}
	b.stats.Variables = nVars
	b.stats.Clauses = nClauses
	for i := 0; i < nVars; i++ {
		b.solver.AddVariable()
	}
	return nil
}

func (b *builder) Clause(lits []int) error {
	clause := make([]sat.Literal, len(lits))
	for i, l := range lits {
		if l < 0 {
			clause[i] = sat.NegativeLiteral(-l)
		} else {
			clause[i] = sat.PositiveLiteral(l)
		}
	}
	return b.solver.AddClause(clause)
}

func (b *builder) Comment(string) error {
	return nil
}
