package sat

// Trail records, for each decision level, the literals assigned at that
// level (both the decision literal itself and everything propagation
// forced afterwards). Backtracking a level pops its list in LIFO order;
// the Trail itself restores no variable or clause state — that is the
// caller's responsibility, since only the caller (the propagator and the
// search driver) knows how to undo it symmetrically.
type Trail struct {
	levels [][]Literal
}

// NewTrail returns an empty Trail.
func NewTrail() *Trail {
	return &Trail{}
}

// Begin ensures the trail has an (empty) list for decision level L. It must
// be called once before the first Push at a new level.
func (t *Trail) Begin(level int) {
	for len(t.levels) <= level {
		t.levels = append(t.levels, nil)
	}
	t.levels[level] = t.levels[level][:0]
}

// Push records that literal l was assigned at decision level L.
func (t *Trail) Push(level int, l Literal) {
	t.levels[level] = append(t.levels[level], l)
}

// Literals returns the literals assigned at level L, in the order they were
// pushed. The returned slice must not be retained past the next Begin/Clear
// of the same level.
func (t *Trail) Literals(level int) []Literal {
	return t.levels[level]
}

// Clear empties the list for level L once the caller has finished undoing
// its assignments.
func (t *Trail) Clear(level int) {
	t.levels[level] = t.levels[level][:0]
}

// Pop removes and returns the most recently pushed literal at level L. It is
// used to undo a single decision (to retry with the opposite phase) without
// disturbing the rest of the level's trail.
func (t *Trail) Pop(level int) Literal {
	last := len(t.levels[level]) - 1
	l := t.levels[level][last]
	t.levels[level] = t.levels[level][:last]
	return l
}

// Len returns the number of literals currently assigned at level L.
func (t *Trail) Len(level int) int {
	return len(t.levels[level])
}
