package dimacs

import (
	"fmt"
	"io"
	"strings"

	"github.com/rhartert/cinders/internal/sat"
)

// FormatValuation renders model (as returned by sat.Solver.Model, index 0
// unused) as a space-prefixed sequence of signed variable IDs: positive for
// TRUE, negative for FALSE. Variable 1 with value true and variable 2 with
// value false render as " 1 -2", matching spec.md §8's valuation-printing
// example once prefixed with "v".
func FormatValuation(model []bool) string {
	var sb strings.Builder
	for i := 1; i < len(model); i++ {
		sb.WriteByte(' ')
		if model[i] {
			fmt.Fprintf(&sb, "%d", i)
		} else {
			fmt.Fprintf(&sb, "-%d", i)
		}
	}
	return sb.String()
}

// WriteResult writes the status line, and on Sat the model line, to w in
// DIMACS's own convention: "s SATISFIED"/"s UNSATISFIED"/"s UNKNOWN" and,
// when satisfiable, "v" followed by FormatValuation's output.
func WriteResult(w io.Writer, status sat.Status, model []bool) error {
	if _, err := fmt.Fprintf(w, "s %s\n", status); err != nil {
		return err
	}
	if status != sat.Sat {
		return nil
	}
	_, err := fmt.Fprintf(w, "v%s\n", FormatValuation(model))
	return err
}
