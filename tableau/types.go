package tableau

import (
	"errors"

	"github.com/bits-and-blooms/bitset"
)

// ErrInvalidDimensions is returned when m or n is non-positive.
var ErrInvalidDimensions = errors.New("tableau: dimensions must be > 0")

// ErrColumnOutOfRange is returned when a column index is outside [0,n] for
// Entry (column n is the RHS column) or outside [0,n) for Pivot.
var ErrColumnOutOfRange = errors.New("tableau: column index out of range")

// ErrRowOutOfRange is returned when a row index is outside [0,m] for Entry
// (row m is the z-row) or outside [0,m) for Pivot.
var ErrRowOutOfRange = errors.New("tableau: row index out of range")

// ErrZeroPivot is returned when Pivot is asked to pivot on a near-zero
// entry; this indicates a bug in entering/leaving-variable selection
// upstream, not a valid solver outcome.
var ErrZeroPivot = errors.New("tableau: pivot element below tolerance")

// Tableau is the mutable (m+1)×(n+1) slack dictionary.
//
// Row-major storage: data[i*(n+1)+j] is T[i,j] for i in [0,m], j in [0,n];
// row m is the z-row, column n is the RHS/objective-value column.
type Tableau struct {
	m, n int
	data []float64

	basis   []int // length m: canonical column index basic in row i
	inBasis *bitset.BitSet

	iterations int

	pivotTolerance float64
	zeroTolerance  float64
}
