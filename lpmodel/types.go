package lpmodel

import (
	"math"

	"github.com/katalvlaran/lpsimplex/linexpr"
)

// VariableKey re-exports linexpr's opaque variable identity so callers of
// this package never need to import linexpr directly for plain model
// construction.
type VariableKey = linexpr.VariableKey

// Variable is a user-space decision variable: an identity, an optional
// display name, a bound interval [Lo, Hi], and a continuity tag.
//
// Lo may be math.Inf(-1) (free below) and Hi may be math.Inf(1) (free
// above). Only Continuous is in scope; the Continuity field exists so a
// future mixed-integer extension has somewhere to live without breaking
// this type.
type Variable struct {
	Key        VariableKey
	Name       string
	Lo, Hi     float64
	Continuity Continuity
}

// Continuity tags a Variable's domain. Only Continuous is implemented by
// this module; the other values are reserved for a future branch-and-bound
// extension explicitly out of scope here.
type Continuity int

const (
	Continuous Continuity = iota
	Integer
	Binary
)

// Sense is the relational operator of a Constraint.
type Sense int

const (
	LE Sense = iota // lhs ≤ rhs
	EQ              // lhs = rhs
	GE              // lhs ≥ rhs
)

// String implements fmt.Stringer for diagnostic output.
func (s Sense) String() string {
	switch s {
	case LE:
		return "<="
	case EQ:
		return "="
	case GE:
		return ">="
	default:
		return "?"
	}
}

// Constraint is lhs <sense> rhs over a LinearExpr.
type Constraint struct {
	Name  string
	LHS   linexpr.Expr
	Sense Sense
	RHS   float64
}

// ObjSense selects maximize or minimize.
type ObjSense int

const (
	Maximize ObjSense = iota
	Minimize
)

// Objective is the sense and expression to optimize.
type Objective struct {
	Sense ObjSense
	Expr  linexpr.Expr
}

// Model is an immutable snapshot of variables, constraints, and the
// objective, as produced by the (out of scope) modeling layer. Ordering of
// Variables and Constraints is significant: standardize.Standardize derives
// its deterministic canonical-column ordering from it.
type Model struct {
	Variables   []Variable
	Constraints []Constraint
	Objective   Objective
}

// VarByKey returns the Variable with the given key and true, or the zero
// Variable and false if absent. Linear in len(Variables); Model is expected
// to hold at most a few thousand variables, well within the "hundreds of
// variables/constraints" scale target of this solver.
func (m Model) VarByKey(key VariableKey) (Variable, bool) {
	for _, v := range m.Variables {
		if v.Key == key {
			return v, true
		}
	}
	return Variable{}, false
}

// isFree reports whether v has no finite lower or upper bound.
func (v Variable) isFree() bool {
	return math.IsInf(v.Lo, -1) && math.IsInf(v.Hi, 1)
}
