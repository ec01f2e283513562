package linexpr

// Add returns e + o, re-sorted, re-pruned at DefaultPruneTolerance.
//
// Complexity: O(len(e)+len(o)).
func (e Expr) Add(o Expr) Expr {
	return e.AddTol(o, DefaultPruneTolerance)
}

// AddTol is Add with an explicit prune tolerance.
func (e Expr) AddTol(o Expr, tol float64) Expr {
	out := make([]Term, 0, len(e.terms)+len(o.terms))
	i, j := 0, 0
	for i < len(e.terms) && j < len(o.terms) {
		switch {
		case e.terms[i].Key < o.terms[j].Key:
			out = append(out, e.terms[i])
			i++
		case e.terms[i].Key > o.terms[j].Key:
			out = append(out, o.terms[j])
			j++
		default:
			sum := e.terms[i].Coef + o.terms[j].Coef
			if abs(sum) >= tol {
				out = append(out, Term{Key: e.terms[i].Key, Coef: sum})
			}
			i++
			j++
		}
	}
	out = append(out, e.terms[i:]...)
	out = append(out, o.terms[j:]...)
	return Expr{terms: out, k: e.k + o.k}
}

// Sub returns e - o.
func (e Expr) Sub(o Expr) Expr {
	return e.Add(o.Scale(-1))
}

// Scale returns k·e, re-pruned at DefaultPruneTolerance. Scaling by 0.0
// yields the zero expression with only the constant (also scaled) preserved.
func (e Expr) Scale(k float64) Expr {
	return e.ScaleTol(k, DefaultPruneTolerance)
}

// ScaleTol is Scale with an explicit prune tolerance.
func (e Expr) ScaleTol(k float64, tol float64) Expr {
	if k == 0 {
		return Zero(0)
	}
	out := make([]Term, 0, len(e.terms))
	for _, t := range e.terms {
		c := t.Coef * k
		if abs(c) >= tol {
			out = append(out, Term{Key: t.Key, Coef: c})
		}
	}
	return Expr{terms: out, k: e.k * k}
}

// AddConstant returns e with its constant increased by k.
func (e Expr) AddConstant(k float64) Expr {
	out := make([]Term, len(e.terms))
	copy(out, e.terms)
	return Expr{terms: out, k: e.k + k}
}

// WithTerm returns a copy of e with coefficient delta added to key (creating
// the term if absent, dropping it if the result falls below tol).
func (e Expr) WithTerm(key VariableKey, delta float64, tol float64) Expr {
	if e.Coef(key) == 0 && abs(delta) < tol {
		return e.AddConstant(0)
	}
	return e.AddTol(Expr{terms: []Term{{Key: key, Coef: delta}}}, tol)
}
