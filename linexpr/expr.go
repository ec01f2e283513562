package linexpr

import "sort"

// NewExpr builds an Expr from the given terms and constant, sorting by key,
// pruning coefficients below DefaultPruneTolerance, and folding duplicate
// keys by summation (a duplicate does not error: it is a convenience for
// callers assembling terms incrementally, e.g. from repeated Add calls).
//
// Complexity: O(t·log t) for t = len(terms).
func NewExpr(terms []Term, k float64) Expr {
	return NewExprTol(terms, k, DefaultPruneTolerance)
}

// NewExprTol is NewExpr with an explicit prune tolerance, for callers that
// honor a caller-configured SolverConfig.PruneTolerance.
func NewExprTol(terms []Term, k float64, tol float64) Expr {
	cp := make([]Term, len(terms))
	copy(cp, terms)
	sort.Slice(cp, func(i, j int) bool { return cp[i].Key < cp[j].Key })

	merged := make([]Term, 0, len(cp))
	for i := 0; i < len(cp); {
		j := i + 1
		sum := cp[i].Coef
		for j < len(cp) && cp[j].Key == cp[i].Key {
			sum += cp[j].Coef
			j++
		}
		if abs(sum) >= tol {
			merged = append(merged, Term{Key: cp[i].Key, Coef: sum})
		}
		i = j
	}
	return Expr{terms: merged, k: k}
}

// Zero returns the empty expression with the given constant.
func Zero(k float64) Expr {
	return Expr{k: k}
}

// Terms returns the expression's terms in key order. The returned slice must
// not be mutated by the caller.
func (e Expr) Terms() []Term {
	return e.terms
}

// Constant returns the expression's constant term.
func (e Expr) Constant() float64 {
	return e.k
}

// Len returns the number of non-zero terms.
func (e Expr) Len() int {
	return len(e.terms)
}

// Coef returns the coefficient of key, or 0 if absent.
func (e Expr) Coef(key VariableKey) float64 {
	i := sort.Search(len(e.terms), func(i int) bool { return e.terms[i].Key >= key })
	if i < len(e.terms) && e.terms[i].Key == key {
		return e.terms[i].Coef
	}
	return 0
}

// Eval evaluates the expression given a full assignment of variable values.
// A key with no entry in values is treated as 0.
func (e Expr) Eval(values map[VariableKey]float64) float64 {
	sum := e.k
	for _, t := range e.terms {
		sum += t.Coef * values[t.Key]
	}
	return sum
}

// Equal reports whether e and o are structurally equal after normalization
// (same constant, same sorted pruned terms) within tol.
func (e Expr) Equal(o Expr, tol float64) bool {
	if abs(e.k-o.k) > tol {
		return false
	}
	if len(e.terms) != len(o.terms) {
		return false
	}
	for i := range e.terms {
		if e.terms[i].Key != o.terms[i].Key || abs(e.terms[i].Coef-o.terms[i].Coef) > tol {
			return false
		}
	}
	return true
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
