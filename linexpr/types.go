package linexpr

import "errors"

// DefaultPruneTolerance is the minimum absolute coefficient magnitude kept by
// NewExpr and the arithmetic helpers. Coefficients smaller than this are
// treated as numerical noise and dropped.
const DefaultPruneTolerance = 1e-10

// Sentinel errors returned by this package.
var (
	// ErrDuplicateKey indicates NewExpr was given more than one term for the
	// same VariableKey; callers must pre-sum duplicates or use Add instead.
	ErrDuplicateKey = errors.New("linexpr: duplicate variable key")
)

// VariableKey is the opaque identity of a user-space decision variable.
// The modeling layer (out of scope for this module) is responsible for
// minting and resolving keys through its own arena; this package only
// requires that keys be comparable and totally ordered.
type VariableKey int

// Term is a single (key, coefficient) pair of a linear expression.
type Term struct {
	Key  VariableKey
	Coef float64
}

// Expr is a sparse linear expression Σ aᵢ·xᵢ + k.
//
// Invariants (maintained by every exported constructor/method):
//   - terms is sorted by Key ascending.
//   - no two terms share a Key.
//   - no term has |Coef| < its governing prune tolerance.
type Expr struct {
	terms []Term
	k     float64
}
