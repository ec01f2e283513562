package lpsolve_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lpsimplex/linexpr"
	"github.com/katalvlaran/lpsimplex/lpmodel"
	"github.com/katalvlaran/lpsimplex/lpsolve"
	"github.com/stretchr/testify/require"
)

func e(terms ...linexpr.Term) linexpr.Expr {
	return linexpr.NewExpr(terms, 0)
}

func t1(key linexpr.VariableKey) linexpr.Term { return linexpr.Term{Key: key, Coef: 1} }

// S1 — Basic maximization: x1,x2,x3 ≥ 0; maximize x1+x2+x3; x1≤10, x2+x3≤5.
func TestSolveS1BasicMaximization(t *testing.T) {
	model := lpmodel.Model{
		Variables: []lpmodel.Variable{
			{Key: 1, Lo: 0, Hi: math.Inf(1)},
			{Key: 2, Lo: 0, Hi: math.Inf(1)},
			{Key: 3, Lo: 0, Hi: math.Inf(1)},
		},
		Constraints: []lpmodel.Constraint{
			{LHS: e(t1(1)), Sense: lpmodel.LE, RHS: 10},
			{LHS: e(t1(2), t1(3)), Sense: lpmodel.LE, RHS: 5},
		},
		Objective: lpmodel.Objective{Sense: lpmodel.Maximize, Expr: e(t1(1), t1(2), t1(3))},
	}

	sol, err := lpsolve.Solve(model, lpmodel.DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, lpmodel.Optimal, sol.Status)
	require.NotNil(t, sol.ObjectiveValue)
	require.InDelta(t, 15.0, *sol.ObjectiveValue, 1e-6)
	require.InDelta(t, 10.0, sol.Values[1], 1e-6)
	require.InDelta(t, 5.0, sol.Values[2]+sol.Values[3], 1e-6)
}

// S2 — Range-bound and free variable.
func TestSolveS2RangeBoundAndFreeVariable(t *testing.T) {
	model := lpmodel.Model{
		Variables: []lpmodel.Variable{
			{Key: 1, Lo: 2, Hi: 5},
			{Key: 2, Lo: 0, Hi: math.Inf(1)},
			{Key: 3, Lo: math.Inf(-1), Hi: 1},
			{Key: 4, Lo: math.Inf(-1), Hi: math.Inf(1)},
		},
		Constraints: []lpmodel.Constraint{
			// x1+x3 <= x2  =>  x1 - x2 + x3 <= 0
			{LHS: linexpr.NewExpr([]linexpr.Term{{Key: 1, Coef: 1}, {Key: 2, Coef: -1}, {Key: 3, Coef: 1}}, 0), Sense: lpmodel.LE, RHS: 0},
			{LHS: e(t1(2), t1(3)), Sense: lpmodel.EQ, RHS: 5},
			{LHS: e(t1(4), t1(1)), Sense: lpmodel.GE, RHS: 10},
		},
		Objective: lpmodel.Objective{
			Sense: lpmodel.Maximize,
			Expr:  linexpr.NewExpr([]linexpr.Term{{Key: 1, Coef: 1}, {Key: 2, Coef: 1}, {Key: 3, Coef: 1}, {Key: 4, Coef: -1}}, 0),
		},
	}

	sol, err := lpsolve.Solve(model, lpmodel.DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, lpmodel.Optimal, sol.Status)
	require.NotNil(t, sol.ObjectiveValue)
	require.InDelta(t, 5.0, *sol.ObjectiveValue, 1e-6)
	require.InDelta(t, 5.0, sol.Values[1], 1e-6)
	require.InDelta(t, 5.0, sol.Values[2], 1e-6)
	require.InDelta(t, 0.0, sol.Values[3], 1e-6)
	require.InDelta(t, 5.0, sol.Values[4], 1e-6)
}

// S3 — Infeasible: x≥0; x≤1, x≥2.
func TestSolveS3Infeasible(t *testing.T) {
	model := lpmodel.Model{
		Variables: []lpmodel.Variable{{Key: 1, Lo: 0, Hi: math.Inf(1)}},
		Constraints: []lpmodel.Constraint{
			{LHS: e(t1(1)), Sense: lpmodel.LE, RHS: 1},
			{LHS: e(t1(1)), Sense: lpmodel.GE, RHS: 2},
		},
		Objective: lpmodel.Objective{Sense: lpmodel.Maximize, Expr: e(t1(1))},
	}

	sol, err := lpsolve.Solve(model, lpmodel.DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, lpmodel.Infeasible, sol.Status)
	require.Nil(t, sol.ObjectiveValue)
}

// S4 — Unbounded: x≥0; maximize x; no upper constraint.
func TestSolveS4Unbounded(t *testing.T) {
	model := lpmodel.Model{
		Variables: []lpmodel.Variable{{Key: 1, Lo: 0, Hi: math.Inf(1)}},
		Objective: lpmodel.Objective{Sense: lpmodel.Maximize, Expr: e(t1(1))},
	}

	sol, err := lpsolve.Solve(model, lpmodel.DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, lpmodel.Unbounded, sol.Status)
	require.Nil(t, sol.ObjectiveValue)
}

// S5 — Minimization sign: x ∈ [0,10]; minimize −x.
func TestSolveS5MinimizationSign(t *testing.T) {
	model := lpmodel.Model{
		Variables: []lpmodel.Variable{{Key: 1, Lo: 0, Hi: 10}},
		Objective: lpmodel.Objective{Sense: lpmodel.Minimize, Expr: linexpr.NewExpr([]linexpr.Term{{Key: 1, Coef: -1}}, 0)},
	}

	sol, err := lpsolve.Solve(model, lpmodel.DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, lpmodel.Optimal, sol.Status)
	require.NotNil(t, sol.ObjectiveValue)
	require.InDelta(t, -10.0, *sol.ObjectiveValue, 1e-6)
	require.InDelta(t, 10.0, sol.Values[1], 1e-6)
}

// S6 — Degeneracy/Bland: Beale's classic cycling instance. Dantzig-only
// selection cycles on this instance; the engine's Bland's-rule leaving-
// variable tie-break must still terminate at the known optimum (0) within
// max_iterations.
func TestSolveS6BealeCyclingInstanceTerminatesViaBland(t *testing.T) {
	model := lpmodel.Model{
		Variables: []lpmodel.Variable{
			{Key: 1, Lo: 0, Hi: math.Inf(1)},
			{Key: 2, Lo: 0, Hi: math.Inf(1)},
			{Key: 3, Lo: 0, Hi: math.Inf(1)},
			{Key: 4, Lo: 0, Hi: math.Inf(1)},
		},
		Constraints: []lpmodel.Constraint{
			{LHS: linexpr.NewExpr([]linexpr.Term{{Key: 1, Coef: 0.25}, {Key: 2, Coef: -60}, {Key: 3, Coef: -0.04}, {Key: 4, Coef: 9}}, 0), Sense: lpmodel.LE, RHS: 0},
			{LHS: linexpr.NewExpr([]linexpr.Term{{Key: 1, Coef: 0.5}, {Key: 2, Coef: -90}, {Key: 3, Coef: -0.02}, {Key: 4, Coef: 3}}, 0), Sense: lpmodel.LE, RHS: 0},
			{LHS: e(t1(3)), Sense: lpmodel.LE, RHS: 1},
		},
		Objective: lpmodel.Objective{
			Sense: lpmodel.Maximize,
			Expr:  linexpr.NewExpr([]linexpr.Term{{Key: 1, Coef: 0.75}, {Key: 2, Coef: -150}, {Key: 3, Coef: 0.02}, {Key: 4, Coef: -6}}, 0),
		},
	}

	config := lpmodel.DefaultConfig()
	sol, err := lpsolve.Solve(model, config)
	require.NoError(t, err)
	require.Equal(t, lpmodel.Optimal, sol.Status)
	require.LessOrEqual(t, sol.Iterations, config.MaxIterations)
	require.NotNil(t, sol.ObjectiveValue)
	require.InDelta(t, 0.0, *sol.ObjectiveValue, 1e-6)
}

func TestSolveRejectsEmptyModel(t *testing.T) {
	_, err := lpsolve.Solve(lpmodel.Model{}, lpmodel.DefaultConfig())
	require.ErrorIs(t, err, lpmodel.ErrEmptyModel)
}

func TestSolveRejectsInvalidBounds(t *testing.T) {
	model := lpmodel.Model{
		Variables: []lpmodel.Variable{{Key: 1, Lo: 5, Hi: 2}},
		Objective: lpmodel.Objective{Sense: lpmodel.Maximize, Expr: e(t1(1))},
	}

	_, err := lpsolve.Solve(model, lpmodel.DefaultConfig())
	require.Error(t, err)
}
