package sat

import "fmt"

// HeuristicKind values select which Heuristic Solve builds; see heuristic.go.

// Options configures a Solver. The zero Options is not meant to be used
// directly; start from DefaultOptions and override what you need.
type Options struct {
	Heuristic    HeuristicKind // Simple, Randomized, or VSIDS
	Seed         int64         // RNG seed for Randomized/VSIDS phase choice
	ScoreDecay   float64       // VSIDS δ > 1, spec §4.5 (~1.05)
	MaxDecisions int64         // -1 for unbounded; a host cancellation knob
}

// DefaultOptions is a reasonable starting point: VSIDS heuristic, a fixed
// seed for reproducibility, and no decision limit.
var DefaultOptions = Options{
	Heuristic:    VSIDS,
	Seed:         1,
	ScoreDecay:   1.05,
	MaxDecisions: -1,
}

// Stats accumulates search counters for reporting; it has no bearing on
// solver correctness.
type Stats struct {
	Decisions      int64
	Conflicts      int64
	LearnedClauses int64
}

// Solver owns the clause store, trail, implication graph, and valuation for
// a single CNF instance, plus the decision heuristic once Solve has been
// called. Variables are numbered 1..NumVariables(); index 0 of values is an
// unused placeholder so variable IDs can index directly.
type Solver struct {
	opts Options

	values []LBool // indexed by variable; values[0] unused

	store     *Store
	trail     *Trail
	graph     *Graph
	heuristic Heuristic

	stats Stats
}

// NewSolver returns a Solver with no variables and no clauses, configured
// by opts.
func NewSolver(opts Options) *Solver {
	return &Solver{
		opts:   opts,
		values: make([]LBool, 1),
		store:  NewStore(0),
		trail:  NewTrail(),
		graph:  NewGraph(0),
	}
}

// NewDefaultSolver returns a Solver configured with DefaultOptions.
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultOptions)
}

// AddVariable introduces a new boolean variable and returns its ID.
func (s *Solver) AddVariable() int {
	s.values = append(s.values, Unassigned)
	s.store.Grow()
	s.graph.Grow()
	return len(s.values) - 1
}

// NumVariables returns the number of variables added so far.
func (s *Solver) NumVariables() int {
	return len(s.values) - 1
}

// AddClause adds a clause over the given literals to the formula. It
// returns an error if any literal references a variable that was never
// added via AddVariable. An empty clause is accepted (it makes the formula
// immediately unsatisfiable, per spec boundary rules) rather than rejected.
func (s *Solver) AddClause(lits []Literal) error {
	for _, l := range lits {
		v := l.VarID()
		if v < 1 || v > s.NumVariables() {
			return fmt.Errorf("sat: clause references unknown variable %d", v)
		}
	}
	s.store.Append(lits, false)
	return nil
}

// ValueOfVar returns the current truth value of variable v. It implements
// the Assignment interface consumed by Graph.Analyze and the heuristics.
func (s *Solver) ValueOfVar(v int) LBool {
	return s.values[v]
}

func (s *Solver) valueOfVar(v int) LBool {
	return s.values[v]
}

// Stats returns a snapshot of the search counters accumulated so far.
func (s *Solver) Stats() Stats {
	return s.stats
}

// Model returns the final valuation once Solve has returned Sat, defaulting
// any variable propagation and decisions never touched to True, per
// spec.md §6's "unassigned variables default to TRUE" output rule.
func (s *Solver) Model() []bool {
	model := make([]bool, s.NumVariables()+1)
	for v := 1; v <= s.NumVariables(); v++ {
		model[v] = s.values[v] != False
	}
	return model
}

func literalWithPhase(v int, val LBool) Literal {
	if val == True {
		return PositiveLiteral(v)
	}
	return NegativeLiteral(v)
}

// assignLiteral records that lit is assigned at decision level, updating
// the trail and every clause counter its variable's occurrences touch.
func (s *Solver) assignLiteral(lit Literal, level int) {
	v := lit.VarID()
	if lit.IsPositive() {
		s.values[v] = True
	} else {
		s.values[v] = False
	}
	s.trail.Push(level, lit)
	s.updateClauseCounters(lit, 1)
}

// unassignLiteral is the exact inverse of assignLiteral, save for the trail
// entry itself: callers remove that separately (undoLevel/undoDecision),
// since the trail is what drives which literals need unassigning.
func (s *Solver) unassignLiteral(lit Literal) {
	s.updateClauseCounters(lit, -1)
	s.values[lit.VarID()] = Unassigned
}

// updateClauseCounters bumps (sign=1) or unbumps (sign=-1) the
// positive/resolved counters of every clause in which lit's variable
// occurs: clauses agreeing with lit's polarity become more satisfied,
// clauses containing its negation become more resolved.
func (s *Solver) updateClauseCounters(lit Literal, sign int) {
	v := lit.VarID()
	var trueOccur, falseOccur []int
	if lit.IsPositive() {
		trueOccur, falseOccur = s.store.OccurPositive(v), s.store.OccurNegative(v)
	} else {
		trueOccur, falseOccur = s.store.OccurNegative(v), s.store.OccurPositive(v)
	}
	if sign > 0 {
		for _, idx := range trueOccur {
			s.store.At(idx).MarkTrue(1)
		}
		for _, idx := range falseOccur {
			s.store.At(idx).MarkFalse(1)
		}
	} else {
		for _, idx := range trueOccur {
			s.store.At(idx).UnmarkTrue(1)
		}
		for _, idx := range falseOccur {
			s.store.At(idx).UnmarkFalse(1)
		}
	}
}

// recordLearned appends learned to the store, initializes its counters
// against the current valuation (every one of its literals is false under
// the valuation that produced the conflict, by construction of the
// analysis, but this stays general rather than assuming that), and
// notifies the heuristic.
func (s *Solver) recordLearned(learned []Literal) int {
	idx := s.store.Append(learned, true)
	c := s.store.At(idx)
	for _, l := range c.Literals() {
		val := s.valueOfVar(l.VarID())
		if val == Unassigned {
			continue
		}
		if literalTrue(l, val) {
			c.MarkTrue(1)
		} else {
			c.MarkFalse(1)
		}
	}
	s.heuristic.OnConflict(learned)
	s.stats.Conflicts++
	s.stats.LearnedClauses++
	return idx
}

func (s *Solver) undoLevel(level int) {
	lits := s.trail.Literals(level)
	for i := len(lits) - 1; i >= 0; i-- {
		s.unassignLiteral(lits[i])
	}
	s.trail.Clear(level)
}

func (s *Solver) undoDecision(level int) {
	l := s.trail.Pop(level)
	s.unassignLiteral(l)
}

// Solve runs the search to completion (or until Options.MaxDecisions is
// reached) and returns the outcome. It never reports Sat without an
// independent verification pass over every clause.
func (s *Solver) Solve() Status {
	if s.store.AnyEmpty() {
		return Unsat
	}

	numVars := s.NumVariables()
	occurrences := make([]int, numVars+1)
	for v := 1; v <= numVars; v++ {
		occurrences[v] = len(s.store.OccurPositive(v)) + len(s.store.OccurNegative(v))
	}

	switch s.opts.Heuristic {
	case Simple:
		s.heuristic = newSimpleHeuristic(numVars)
	case Randomized:
		s.heuristic = newRandomizedHeuristic(numVars, s.opts.Seed)
	default:
		s.heuristic = newVSIDSHeuristic(occurrences, s.opts.ScoreDecay, s.opts.Seed)
	}

	if numVars == 0 {
		return Sat
	}

	r := s.solve(0)
	if r != Sat {
		return r
	}
	if !s.verify() {
		return Unknown
	}
	return Sat
}

// solve is the recursive DPLL driver (spec.md §4.6): propagate to a fixed
// point, succeed if every clause is already satisfied, otherwise branch on
// the heuristic's next variable trying both phases, undoing exactly what
// this level assigned before returning failure.
func (s *Solver) solve(level int) Status {
	if s.store.AnyEmpty() {
		return Unsat
	}

	s.trail.Begin(level)
	s.graph.BeginLevel(level)

	p := newPropagator(s, level)
	if !p.Propagate() {
		s.undoLevel(level)
		return Unsat
	}

	if s.store.AllSatisfied() {
		return Sat
	}

	v := s.heuristic.NextVar(s)
	// The heuristic does not offer again a variable it skipped while that
	// variable was assigned; fall back to the first unassigned variable.
	for u := 1; v == 0 && u <= s.NumVariables(); u++ {
		if s.values[u] == Unassigned {
			v = u
		}
	}
	if v == 0 {
		// Every variable is assigned yet some clause is unsatisfied: only
		// reachable if AnyEmpty/AllSatisfied above disagree with the
		// valuation, which would be an internal inconsistency.
		s.undoLevel(level)
		return Unsat
	}

	if s.opts.MaxDecisions >= 0 && s.stats.Decisions >= s.opts.MaxDecisions {
		s.undoLevel(level)
		return Unknown
	}
	s.stats.Decisions++

	phase := s.heuristic.Phase(v)
	attempts := [2]LBool{phase, phase.Opposite()}
	for _, val := range attempts {
		lit := literalWithPhase(v, val)
		s.assignLiteral(lit, level)

		switch s.solve(level + 1) {
		case Sat:
			s.heuristic.PutBack(v)
			return Sat
		case Unknown:
			s.heuristic.PutBack(v)
			s.undoDecision(level)
			s.undoLevel(level)
			return Unknown
		}
		s.undoDecision(level)
	}

	s.heuristic.PutBack(v)
	s.undoLevel(level)
	return Unsat
}

// verify independently recomputes satisfaction for every clause against
// the final valuation, ignoring the positive/resolved counters entirely.
// It is the last line of defense against a counter-bookkeeping bug letting
// Solve claim Sat incorrectly.
func (s *Solver) verify() bool {
	for i := 0; i < s.store.Len(); i++ {
		satisfied := false
		for _, l := range s.store.At(i).Literals() {
			if literalTrue(l, s.valueOfVar(l.VarID())) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}
