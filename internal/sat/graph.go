package sat

// Assignment is the narrow view of the solver's valuation that the
// implication graph needs to recover literal polarities during conflict
// analysis.
type Assignment interface {
	ValueOfVar(v int) LBool
}

// Graph is the implication graph. For each variable it keeps only the
// reason for its *current* assignment — the variables whose assignment
// forced it, via a single propagation step — and the decision level that
// reason was recorded at. A variable with no reason recorded is either a
// decision or an original unit: conflict analysis treats it as a root.
//
// Only the current reason is kept, not a history per level. A variable can
// be linked at one level, unassigned by backtracking, and later relinked
// at a different (shallower) level by an unrelated branch; once that
// happens its old reason describes nothing reachable from the live trail
// and must not be available to a later conflict's analysis.
type Graph struct {
	reason  [][]int // reason[v]: variables that caused v's current assignment
	level   []int   // level[v]: decision level reason[v] was recorded at, -1 if unset
	visited *ResetSet
}

// NewGraph returns an empty Graph sized for numVars variables.
func NewGraph(numVars int) *Graph {
	g := &Graph{
		reason:  make([][]int, numVars+1),
		level:   make([]int, numVars+1),
		visited: &ResetSet{},
	}
	for i := 0; i <= numVars; i++ {
		g.level[i] = -1
		g.visited.Expand()
	}
	return g
}

// Grow extends the graph to cover one more variable.
func (g *Graph) Grow() {
	g.reason = append(g.reason, nil)
	g.level = append(g.level, -1)
	g.visited.Expand()
}

// BeginLevel discards every reason recorded at decision level L or deeper.
// It must be called before the first Link of a (re)entry into level L —
// whether that is a first visit, a same-level phase retry, or a shallower
// level being retried after a deeper branch was abandoned. In every case,
// any reason previously recorded at L or below the old branch's deepest
// point is stale and must not leak into a later conflict analysis, even if
// the specific level it was recorded at is never visited again.
func (g *Graph) BeginLevel(level int) {
	for v, lv := range g.level {
		if lv >= level {
			g.reason[v] = g.reason[v][:0]
			g.level[v] = -1
		}
	}
}

// Link records that reason forced implied's assignment at decision level
// level. The first Link call for implied's variable at a new level resets
// its reason list; subsequent calls at that same level accumulate, so a
// single propagation step that cites several reasons (the other literals
// of the propagating clause) is recorded in full.
func (g *Graph) Link(reason, implied Literal, level int) {
	fv, tv := reason.VarID(), implied.VarID()
	if g.level[tv] != level {
		g.reason[tv] = g.reason[tv][:0]
		g.level[tv] = level
	}
	g.reason[tv] = append(g.reason[tv], fv)
}

// reasonsOf returns the variables currently recorded as v's reason, or nil
// if v is a root (a decision or an original unit).
func (g *Graph) reasonsOf(v int) []int {
	return g.reason[v]
}

// Analyze walks reasons from every literal of the conflicting clause,
// following them back to the decisions and/or original units that produced
// them. Nodes with no reason recorded are decisions or roots; their
// negations (recovered from the current assignment: a variable assigned
// TRUE contributes -v, FALSE contributes +v) form the learned clause.
// Analyze marks each node visited once per call, bounding its work by the
// size of the explored subgraph.
func (g *Graph) Analyze(conflict []Literal, a Assignment) []Literal {
	g.visited.Clear()

	stack := make([]int, 0, len(conflict))
	for _, l := range conflict {
		v := l.VarID()
		if !g.visited.Contains(v) {
			g.visited.Add(v)
			stack = append(stack, v)
		}
	}

	var learned []Literal
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		reasons := g.reasonsOf(v)
		if len(reasons) == 0 {
			switch a.ValueOfVar(v) {
			case True:
				learned = append(learned, NegativeLiteral(v))
			case False:
				learned = append(learned, PositiveLiteral(v))
			default:
				panic("analyze reached a variable with no assignment")
			}
			continue
		}

		for _, u := range reasons {
			if !g.visited.Contains(u) {
				g.visited.Add(u)
				stack = append(stack, u)
			}
		}
	}

	return learned
}
