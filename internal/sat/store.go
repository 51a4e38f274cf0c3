package sat

// Store owns the mutable formula: the clause list plus, for each variable,
// the list of clause indices in which it occurs positively and negatively.
// Clauses are appended (original clauses at load, learned clauses at
// conflicts) but are never removed during a solve, per the engine's
// lifecycle rules.
type Store struct {
	clauses []*Clause

	// posOccur[v] / negOccur[v] list the indices of clauses containing +v
	// / -v respectively. Built incrementally as clauses are appended.
	posOccur [][]int
	negOccur [][]int
}

// NewStore returns an empty Store sized for numVars variables.
func NewStore(numVars int) *Store {
	return &Store{
		posOccur: make([][]int, numVars+1),
		negOccur: make([][]int, numVars+1),
	}
}

// Grow extends the store's occurrence index to cover a newly added
// variable.
func (s *Store) Grow() {
	s.posOccur = append(s.posOccur, nil)
	s.negOccur = append(s.negOccur, nil)
}

// Append adds a new clause built from lits (duplicates removed,
// order-preserving) to the store and returns its index. It always succeeds,
// including for an empty lits, which yields a clause that Empty() reports
// as conflicting (AddClause passes empty clauses through unchanged).
func (s *Store) Append(lits []Literal, learnt bool) int {
	c := newClause(lits, learnt)
	idx := len(s.clauses)
	s.clauses = append(s.clauses, c)
	for _, l := range c.literals {
		v := l.VarID()
		if l.IsPositive() {
			s.posOccur[v] = append(s.posOccur[v], idx)
		} else {
			s.negOccur[v] = append(s.negOccur[v], idx)
		}
	}
	return idx
}

// At returns the clause at the given index.
func (s *Store) At(idx int) *Clause {
	return s.clauses[idx]
}

// Len returns the number of clauses currently in the store.
func (s *Store) Len() int {
	return len(s.clauses)
}

// OccurPositive returns the indices of clauses containing +v.
func (s *Store) OccurPositive(v int) []int {
	return s.posOccur[v]
}

// OccurNegative returns the indices of clauses containing -v.
func (s *Store) OccurNegative(v int) []int {
	return s.negOccur[v]
}

// AnyEmpty reports whether any clause in the store is currently conflicting.
// The search driver uses this before starting a solve to short-circuit a
// formula that already contains the empty clause (spec boundary: "A formula
// containing the empty clause: UNSAT without any decisions").
func (s *Store) AnyEmpty() bool {
	for _, c := range s.clauses {
		if c.Empty() {
			return true
		}
	}
	return false
}

// AllSatisfied reports whether every clause in the store is satisfied.
func (s *Store) AllSatisfied() bool {
	for _, c := range s.clauses {
		if !c.Satisfied() {
			return false
		}
	}
	return true
}
