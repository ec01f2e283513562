package solution

import (
	"github.com/katalvlaran/lpsimplex/lpmodel"
	"github.com/katalvlaran/lpsimplex/simplex"
	"github.com/katalvlaran/lpsimplex/standardize"
)

// Map reconstructs a user-facing lpmodel.SolverSolution from the engine's
// raw cs, reversing backMap's per-variable transform and re-deriving the
// user-space objective from negated and constOffset.
//
// slacks is accepted for interface symmetry with the Standardizer's output
// triple; reconstructing user variable values only requires backMap, since
// slack/surplus/artificial columns never correspond to a user variable.
//
// Contract: if cs.Status is not Optimal, ObjectiveValue is left nil; Values
// is still populated from cs.X's last iterate, which is the engine's best
// information at termination even when infeasible, unbounded, or
// iteration-limited.
func Map(cs simplex.CanonicalSolution, backMap standardize.VariableBackMap, slacks standardize.SlackMap, negated bool, constOffset float64) lpmodel.SolverSolution {
	_ = slacks

	values := make(map[lpmodel.VariableKey]float64, len(backMap))
	for key, tr := range backMap {
		values[key] = reconstruct(tr, cs.X)
	}

	sol := lpmodel.SolverSolution{
		Status:     cs.Status,
		Values:     values,
		Iterations: cs.Iterations,
		PivotLog:   cs.PivotLog,
	}

	if cs.Status == lpmodel.Optimal {
		z := cs.Objective + constOffset
		if negated {
			z = -z
		}
		sol.ObjectiveValue = &z
	}

	return sol
}

// reconstruct applies tr's inverse transform to canonical values x.
func reconstruct(tr standardize.VarTransform, x []float64) float64 {
	switch tr.Kind {
	case standardize.Direct:
		return x[tr.Col]
	case standardize.Shifted:
		return x[tr.Col] + tr.Shift
	case standardize.Negated:
		return tr.Shift - x[tr.Col]
	case standardize.FreeSplit:
		return x[tr.PosCol] - x[tr.NegCol]
	default:
		return 0
	}
}
