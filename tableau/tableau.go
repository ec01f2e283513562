package tableau

import "github.com/bits-and-blooms/bitset"

// New builds a Tableau from a dense A (m×n) and RHS vector b (length m).
// The z-row is initialized to all zeros; call SetObjective once an initial
// basis is established via SetBasis.
//
// Complexity: O(m·n).
func New(a [][]float64, b []float64, n int, pivotTolerance, zeroTolerance float64) (*Tableau, error) {
	m := len(a)
	if m <= 0 || n <= 0 {
		return nil, ErrInvalidDimensions
	}

	width := n + 1
	data := make([]float64, (m+1)*width)
	for i := 0; i < m; i++ {
		row := data[i*width : i*width+width]
		copy(row[:n], a[i])
		row[n] = b[i]
	}

	return &Tableau{
		m:              m,
		n:              n,
		data:           data,
		basis:          make([]int, m),
		inBasis:        bitset.New(uint(n)),
		pivotTolerance: pivotTolerance,
		zeroTolerance:  zeroTolerance,
	}, nil
}

// Rows returns m, the number of constraint rows (excluding the z-row).
func (t *Tableau) Rows() int { return t.m }

// Cols returns n, the number of canonical columns (excluding the RHS column).
func (t *Tableau) Cols() int { return t.n }

// Iterations returns the number of pivots performed so far.
func (t *Tableau) Iterations() int { return t.iterations }

// zRow is the row index of the objective row.
func (t *Tableau) zRow() int { return t.m }

// rhsCol is the column index of the RHS/objective-value column.
func (t *Tableau) rhsCol() int { return t.n }

func (t *Tableau) at(row, col int) float64 {
	return t.data[row*(t.n+1)+col]
}

// Entry returns T[row,col] for row in [0,m] and col in [0,n].
func (t *Tableau) Entry(row, col int) (float64, error) {
	if row < 0 || row > t.m {
		return 0, ErrRowOutOfRange
	}
	if col < 0 || col > t.n {
		return 0, ErrColumnOutOfRange
	}
	return t.at(row, col), nil
}

// RHS returns the current value of basic row i (T[i,n]).
func (t *Tableau) RHS(row int) (float64, error) {
	return t.Entry(row, t.rhsCol())
}

// ObjectiveValue returns the current objective value T[z,n].
func (t *Tableau) ObjectiveValue() float64 {
	return t.at(t.zRow(), t.rhsCol())
}

// ReducedCost returns -T[z,j], the reduced cost of column j.
func (t *Tableau) ReducedCost(col int) (float64, error) {
	v, err := t.Entry(t.zRow(), col)
	if err != nil {
		return 0, err
	}
	return -v, nil
}

// Basis returns the canonical column index basic in each row, in row order.
// The returned slice must not be mutated.
func (t *Tableau) Basis() []int {
	return t.basis
}

// IsBasic reports whether column j is currently basic.
func (t *Tableau) IsBasic(col int) bool {
	return t.inBasis.Test(uint(col))
}

// SetBasis installs basis as the current basic set without performing any
// row operations: callers must only use this for an initial basis whose
// columns are already unit vectors in the constraint rows (true for every
// slack/artificial column this module's standardize package emits, since
// each is added with a single ±1 entry in exactly its own row).
func (t *Tableau) SetBasis(basis []int) {
	t.inBasis.ClearAll()
	t.basis = append([]int(nil), basis...)
	for _, j := range t.basis {
		t.inBasis.Set(uint(j))
	}
}

// SetObjective (re)initializes the z-row for cost vector c (length n) against
// the current basis, eliminating every basic column's entry so the
// reduced-objective invariant holds immediately: T[z,j] is seeded to -c[j],
// then for every basic row i with basic column B[i], the z-row has
// T[z,B[i]]·row_i subtracted from it (row_i[B[i]] == 1 by the unit-column
// invariant, so this zeroes exactly that entry).
//
// Complexity: O(m·n).
func (t *Tableau) SetObjective(c []float64) {
	width := t.n + 1
	zRow := t.data[t.zRow()*width : t.zRow()*width+width]
	for j := 0; j < t.n; j++ {
		zRow[j] = -c[j]
	}
	zRow[t.n] = 0

	for i, j := range t.basis {
		factor := zRow[j]
		if factor == 0 {
			continue
		}
		row := t.data[i*width : i*width+width]
		for col := 0; col < width; col++ {
			zRow[col] -= factor * row[col]
		}
	}
	t.roundZRow()
}

func (t *Tableau) roundZRow() {
	width := t.n + 1
	zRow := t.data[t.zRow()*width : t.zRow()*width+width]
	for col := 0; col < width; col++ {
		if zRow[col] < t.zeroTolerance && zRow[col] > -t.zeroTolerance {
			zRow[col] = 0
		}
	}
}

// Pivot performs a Gauss-Jordan pivot on (r, j): row r is scaled so
// T[r,j]==1, then T[i,j]·row_r is subtracted from every other row
// (including the z-row), and column j replaces row r's previous basic
// column in the basis. Entries with |v| < zeroTolerance are rounded to 0
// afterward to suppress denormal drift.
//
// Complexity: O(m·n).
func (t *Tableau) Pivot(r, j int) error {
	if r < 0 || r >= t.m {
		return ErrRowOutOfRange
	}
	if j < 0 || j >= t.n {
		return ErrColumnOutOfRange
	}

	width := t.n + 1
	pivotVal, err := t.Entry(r, j)
	if err != nil {
		return err
	}
	if pivotVal < t.pivotTolerance && pivotVal > -t.pivotTolerance {
		return ErrZeroPivot
	}

	pivotRow := t.data[r*width : r*width+width]
	inv := 1.0 / pivotVal
	for col := range pivotRow {
		pivotRow[col] *= inv
	}
	pivotRow[j] = 1 // force exact unit entry despite floating-point scaling

	for i := 0; i <= t.m; i++ {
		if i == r {
			continue
		}
		row := t.data[i*width : i*width+width]
		factor := row[j]
		if factor == 0 {
			continue
		}
		for col := 0; col < width; col++ {
			row[col] -= factor * pivotRow[col]
		}
		row[j] = 0 // force exact zero despite floating-point subtraction
	}

	t.inBasis.Clear(uint(t.basis[r]))
	t.basis[r] = j
	t.inBasis.Set(uint(j))
	t.iterations++

	t.roundAll()

	return nil
}

func (t *Tableau) roundAll() {
	for i := range t.data {
		if t.data[i] < t.zeroTolerance && t.data[i] > -t.zeroTolerance {
			t.data[i] = 0
		}
	}
}

// DropColumn removes column j from future entering-variable consideration
// by marking it permanently basic-ineligible; used by Phase I to retire an
// artificial column once it is no longer needed. It does not shrink the
// underlying storage.
func (t *Tableau) DropColumn(j int) {
	t.inBasis.Set(uint(j))
}
