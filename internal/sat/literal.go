package sat

import "fmt"

// Literal is a signed, nonzero reference to a boolean variable: its
// magnitude is the variable's ID (in 1..N) and its sign is the polarity.
// The value 0 is reserved as a terminator / "no literal" and must never be
// passed to the methods below.
type Literal int32

// PositiveLiteral returns the literal asserting that variable v is true.
func PositiveLiteral(v int) Literal {
	return Literal(v)
}

// NegativeLiteral returns the literal asserting that variable v is false.
func NegativeLiteral(v int) Literal {
	return Literal(-v)
}

// VarID returns the ID of the literal's variable.
func (l Literal) VarID() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

// IsPositive reports whether l asserts its variable directly, as opposed to
// its negation.
func (l Literal) IsPositive() bool {
	return l > 0
}

// Opposite returns the negation of l.
func (l Literal) Opposite() Literal {
	return -l
}

func (l Literal) String() string {
	if l.IsPositive() {
		return fmt.Sprintf("%d", l.VarID())
	}
	return fmt.Sprintf("-%d", l.VarID())
}
