package simplex

import (
	"github.com/katalvlaran/lpsimplex/lpmodel"
)

// CanonicalSolution is the engine's raw result before solution.Map
// reconstructs user-space values.
type CanonicalSolution struct {
	Status     lpmodel.Status
	X          []float64 // length N, canonical variable values (last iterate if not Optimal)
	Objective  float64   // value of C·X under the canonical maximization sense; 0 when the solve ends in Phase I
	Iterations int
	PivotLog   []lpmodel.PivotRecord
}
