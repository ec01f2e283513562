// Package tableau implements the dense (m+1)×(n+1) slack dictionary the
// simplex engine pivots against: m rows for constraints, one row for the
// reduced objective (z), n columns for canonical variables, one column for
// the current RHS/objective value.
//
// The representation uses flat row-major storage with explicit bounds
// checking, plus a dedicated Pivot hot path and basis tracking.
//
// Invariants maintained by every exported method:
//
//  1. len(basis) == m, every basic column index is unique and in [0,n).
//  2. Every basic column, after row operations, is a unit vector with the 1
//     in its basis row.
//  3. The z-row satisfies z + Σ_j c̄_j·x_j = current objective, so a
//     non-basic column's reduced cost is read as -T[z,j].
package tableau
