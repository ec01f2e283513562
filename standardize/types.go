package standardize

import "github.com/katalvlaran/lpsimplex/lpmodel"

// VarTransformKind enumerates how a user variable decomposes into canonical
// columns.
type VarTransformKind int

const (
	// Direct: user var equals canonical var Col (lo=0, hi=+∞).
	Direct VarTransformKind = iota
	// Shifted: user var = x_Col + Shift (lo finite, hi=+∞, or both finite).
	Shifted
	// Negated: user var = −x_Col + Shift (lo=−∞, hi finite).
	Negated
	// FreeSplit: user var = x_PosCol − x_NegCol (lo=−∞, hi=+∞).
	FreeSplit
)

// VarTransform records how one user variable maps onto canonical columns.
type VarTransform struct {
	Kind VarTransformKind

	// Col is the canonical column index for Direct, Shifted, and Negated.
	Col int

	// PosCol, NegCol are the canonical column indices for FreeSplit.
	PosCol, NegCol int

	// Shift is the constant offset for Shifted and Negated.
	Shift float64
}

// VariableBackMap maps each user variable key to its VarTransform.
type VariableBackMap map[lpmodel.VariableKey]VarTransform

// SlackKind classifies an auxiliary canonical column introduced by
// standardization.
type SlackKind int

const (
	SlackColumn SlackKind = iota
	SurplusColumn
	ArtificialColumn
)

// SlackEntry records one auxiliary column: its kind, canonical column
// index, and the row (constraint) it belongs to.
type SlackEntry struct {
	Kind SlackKind
	Col  int
	Row  int
}

// SlackMap lists every slack, surplus, and artificial column introduced
// during standardization, in column order.
type SlackMap []SlackEntry

// CanonicalForm is the Standardizer's output: a maximization problem in
// equality-constraint standard form with an implicit x ≥ 0 on every column.
type CanonicalForm struct {
	N int // number of canonical columns
	M int // number of canonical rows

	A [][]float64 // M x N
	B []float64   // length M, B[i] ≥ 0
	C []float64   // length N, maximization coefficients

	// ArtificialCols lists the canonical column index of every artificial
	// variable, for Phase I setup.
	ArtificialCols []int

	// ObjectiveNegated records whether the user's objective was a
	// minimization (and thus negated to produce C).
	ObjectiveNegated bool

	// ConstantOffset is the accumulated constant contribution from the
	// objective's own constant term plus every Shifted/Negated variable
	// substitution's constant contribution.
	ConstantOffset float64
}
