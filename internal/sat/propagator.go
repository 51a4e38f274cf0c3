package sat

// propagator implements the head/tail unit propagation scheme of spec.md
// §4.4. It is constructed fresh for each decision level: on construction it
// filters every clause in the store down to its currently-free literals and
// seeds a stack with any clause that is already unit. Propagate then drains
// that stack to a fixed point, reporting ok (true) if no conflict was
// reached, or false once it has recorded exactly one learned clause and
// notified the heuristic.
//
// Rebuilding from scratch every level costs more than incrementally
// restoring head/tail pointers on backtrack, but it keeps the head/tail
// invariant trivially true at every call, which this engine values over
// raw throughput.
type propagator struct {
	s     *Solver
	level int

	// clauses[c] holds the literals of clause c that were free when this
	// propagator was built, in their original relative order. A nil entry
	// means clause c was already satisfied at construction and is not
	// watched at all.
	clauses [][]Literal
	head    []int
	tail    []int

	// posHead[v] / negHead[v] list the indices of clauses whose head
	// pointer currently rests on +v / -v; posTail/negTail do the same for
	// the tail pointer.
	posHead [][]int
	negHead [][]int
	posTail [][]int
	negTail [][]int

	units *Stack[unit]

	conflictClause int // -1 until a conflict is found
}

type unit struct {
	clause int
	lit    Literal
}

func newPropagator(s *Solver, level int) *propagator {
	numVars := len(s.values) - 1
	numClauses := s.store.Len()

	p := &propagator{
		s:       s,
		level:   level,
		clauses: make([][]Literal, numClauses),
		head:    make([]int, numClauses),
		tail:    make([]int, numClauses),
		posHead: make([][]int, numVars+1),
		negHead: make([][]int, numVars+1),
		posTail: make([][]int, numVars+1),
		negTail: make([][]int, numVars+1),
		units:   NewStack[unit](numClauses),

		conflictClause: -1,
	}

	for idx := 0; idx < numClauses; idx++ {
		c := s.store.At(idx)
		if c.Satisfied() {
			continue
		}

		free := make([]Literal, 0, c.Size())
		for _, l := range c.Literals() {
			if s.valueOfVar(l.VarID()) == Unassigned {
				free = append(free, l)
			}
		}
		if len(free) == 0 {
			// The driver checks Store.AnyEmpty before invoking propagate;
			// reaching this means that invariant was violated upstream.
			panic("propagator built over an already-empty clause")
		}

		p.clauses[idx] = free
		p.head[idx] = 0
		p.tail[idx] = len(free) - 1

		if len(free) == 1 {
			p.units.Push(unit{clause: idx, lit: free[0]})
			continue
		}
		p.registerHead(idx, free[0])
		p.registerTail(idx, free[len(free)-1])
	}

	return p
}

func (p *propagator) registerHead(c int, l Literal) {
	v := l.VarID()
	if l.IsPositive() {
		p.posHead[v] = append(p.posHead[v], c)
	} else {
		p.negHead[v] = append(p.negHead[v], c)
	}
}

func (p *propagator) registerTail(c int, l Literal) {
	v := l.VarID()
	if l.IsPositive() {
		p.posTail[v] = append(p.posTail[v], c)
	} else {
		p.negTail[v] = append(p.negTail[v], c)
	}
}

// Propagate drains the unit stack to a fixed point. It returns true if every
// clause is free of conflict afterward, false if a conflict was found (in
// which case exactly one learned clause has been appended to the store and
// the heuristic has been notified).
func (p *propagator) Propagate() bool {
	if p.units.IsEmpty() {
		return true
	}

	for !p.units.IsEmpty() {
		u := p.units.Pop()
		v := u.lit.VarID()

		if val := p.s.valueOfVar(v); val != Unassigned {
			if literalTrue(u.lit, val) {
				continue
			}
			p.reportConflict(u.clause)
			return false
		}

		p.s.assignLiteral(u.lit, p.level)

		// Every other literal of the propagating clause is already false
		// (that is what made it unit), so each is a reason for u.lit. Only
		// this direction is recorded: u.lit is not a reason for them, since
		// their own assignments predate it.
		orig := p.s.store.At(u.clause).Literals()
		for _, m := range orig {
			if m == u.lit {
				continue
			}
			p.s.graph.Link(m, u.lit, p.level)
		}

		if c := p.propagateValue(u.lit); c >= 0 {
			p.reportConflict(c)
			return false
		}
	}
	return true
}

func (p *propagator) reportConflict(clauseIdx int) {
	learned := p.s.graph.Analyze(p.s.store.At(clauseIdx).Literals(), p.s)
	p.s.recordLearned(learned)
}

// propagateValue shortens every clause watching the newly-false literal
// ¬assigned, enqueuing new units and detecting conflicts. It returns the
// index of a conflicting clause, or -1 if none was found.
func (p *propagator) propagateValue(assigned Literal) int {
	v := assigned.VarID()

	var killHead, killTail []int
	if assigned.IsPositive() {
		killHead, killTail = p.negHead[v], p.negTail[v]
	} else {
		killHead, killTail = p.posHead[v], p.posTail[v]
	}

	p.conflictClause = -1
	for _, c := range killHead {
		if p.conflictClause >= 0 {
			break
		}
		p.shortenFromHead(c)
	}
	for _, c := range killTail {
		if p.conflictClause >= 0 {
			break
		}
		p.shortenFromTail(c)
	}
	return p.conflictClause
}

func (p *propagator) shortenFromHead(c int) {
	lits := p.clauses[c]
	for i := p.head[c] + 1; i <= p.tail[c]; i++ {
		l := lits[i]
		val := p.s.valueOfVar(l.VarID())
		if val != Unassigned {
			if literalTrue(l, val) {
				return // clause satisfied; stop watching it
			}
			continue // resolved false, keep scanning
		}
		p.head[c] = i
		if i == p.tail[c] {
			p.units.Push(unit{clause: c, lit: l})
			return
		}
		p.registerHead(c, l)
		return
	}
	p.conflictClause = c
}

func (p *propagator) shortenFromTail(c int) {
	lits := p.clauses[c]
	for i := p.tail[c] - 1; i >= p.head[c]; i-- {
		l := lits[i]
		val := p.s.valueOfVar(l.VarID())
		if val != Unassigned {
			if literalTrue(l, val) {
				return
			}
			continue
		}
		p.tail[c] = i
		if i == p.head[c] {
			p.units.Push(unit{clause: c, lit: l})
			return
		}
		p.registerTail(c, l)
		return
	}
	p.conflictClause = c
}

// literalTrue reports whether literal l is satisfied given that its
// variable is assigned val.
func literalTrue(l Literal, val LBool) bool {
	return (val == True && l.IsPositive()) || (val == False && !l.IsPositive())
}
