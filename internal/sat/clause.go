package sat

import "strings"

// Clause is an ordered, duplicate-free sequence of literals. It carries the
// two counters the rest of the engine relies on to classify it in O(1):
//
//   - positive: number of literals currently assigned true.
//   - resolved: number of literals currently assigned (true or false).
//
// Counters are never inferred from the valuation; the solver tells the
// clause what happened via MarkTrue/MarkFalse (and their inverses), so
// every mutation is a reversible O(1) integer update.
type Clause struct {
	literals []Literal
	positive int
	resolved int

	// learnt distinguishes clauses added by conflict analysis from the
	// clauses of the original formula. It has no bearing on correctness; it
	// only helps diagnostics distinguish the two.
	learnt bool
}

// newClause builds a Clause from lits, removing duplicate literals while
// preserving the order of first occurrence.
func newClause(lits []Literal, learnt bool) *Clause {
	out := make([]Literal, 0, len(lits))
	seen := make(map[Literal]struct{}, len(lits))
	for _, l := range lits {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return &Clause{literals: out, learnt: learnt}
}

// Literals returns the clause's literals. The returned slice must not be
// mutated by the caller.
func (c *Clause) Literals() []Literal {
	return c.literals
}

// Size returns the number of literals in the clause.
func (c *Clause) Size() int {
	return len(c.literals)
}

// Satisfied reports whether the clause currently has at least one true
// literal.
func (c *Clause) Satisfied() bool {
	return c.positive > 0
}

// Unit reports whether the clause has exactly one unassigned literal and is
// not already satisfied.
func (c *Clause) Unit() bool {
	return !c.Satisfied() && len(c.literals)-c.resolved == 1
}

// Empty reports whether every literal in the clause is assigned and none of
// them is true, i.e. the clause is conflicting.
func (c *Clause) Empty() bool {
	return !c.Satisfied() && c.resolved == len(c.literals)
}

// UnresolvedLiteral returns the sole literal that remains unassigned,
// assuming the clause is Unit(). Behavior is undefined otherwise.
func (c *Clause) UnresolvedLiteral(assigns func(Literal) LBool) Literal {
	for _, l := range c.literals {
		if assigns(l) == Unassigned {
			return l
		}
	}
	panic("UnresolvedLiteral called on a non-unit clause")
}

// MarkTrue records that delta additional literals of the clause were just
// assigned true. It is always paired with UnmarkTrue on backtrack.
func (c *Clause) MarkTrue(delta int) {
	c.positive += delta
	c.resolved += delta
}

// UnmarkTrue is the exact inverse of MarkTrue.
func (c *Clause) UnmarkTrue(delta int) {
	c.positive -= delta
	c.resolved -= delta
	if c.positive < 0 || c.resolved < 0 {
		panic("clause counter underflow in UnmarkTrue")
	}
}

// MarkFalse records that delta additional literals of the clause were just
// assigned false (resolved, but not satisfying). It is always paired with
// UnmarkFalse on backtrack.
func (c *Clause) MarkFalse(delta int) {
	c.resolved += delta
}

// UnmarkFalse is the exact inverse of MarkFalse.
func (c *Clause) UnmarkFalse(delta int) {
	c.resolved -= delta
	if c.resolved < 0 {
		panic("clause counter underflow in UnmarkFalse")
	}
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
