// Package lpmodel_test contains unit tests for Model validation.
package lpmodel_test

import (
	"testing"

	"github.com/katalvlaran/lpsimplex/linexpr"
	"github.com/katalvlaran/lpsimplex/lpmodel"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestValidateEmptyModel(t *testing.T) {
	var m lpmodel.Model
	err := m.Validate()
	require.ErrorIs(t, err, lpmodel.ErrEmptyModel)
}

func TestValidateInvalidBoundsAggregatesAll(t *testing.T) {
	m := lpmodel.Model{
		Variables: []lpmodel.Variable{
			{Key: 1, Lo: 5, Hi: 1},
			{Key: 2, Lo: 0, Hi: 10},
			{Key: 3, Lo: 2, Hi: -2},
		},
		Objective: lpmodel.Objective{
			Sense: lpmodel.Maximize,
			Expr:  linexpr.NewExpr([]linexpr.Term{{Key: 2, Coef: 1}}, 0),
		},
	}
	err := m.Validate()
	require.Error(t, err)

	// Both offending variables (1 and 3) must be present, not just the first
	// one encountered.
	errs := multierr.Errors(err)
	require.Len(t, errs, 2)

	var keys []lpmodel.VariableKey
	for _, e := range errs {
		var ib *lpmodel.InvalidBoundsError
		require.ErrorAs(t, e, &ib)
		keys = append(keys, ib.Key)
	}
	require.ElementsMatch(t, []lpmodel.VariableKey{1, 3}, keys)
}

func TestValidateAcceptsWellFormedModel(t *testing.T) {
	m := lpmodel.Model{
		Variables: []lpmodel.Variable{{Key: 1, Lo: 0, Hi: 10}},
		Objective: lpmodel.Objective{
			Sense: lpmodel.Maximize,
			Expr:  linexpr.NewExpr([]linexpr.Term{{Key: 1, Coef: 1}}, 0),
		},
	}
	require.NoError(t, m.Validate())
}

func TestValidateRejectsMissingObjective(t *testing.T) {
	m := lpmodel.Model{
		Variables: []lpmodel.Variable{{Key: 1, Lo: 0, Hi: 10}},
	}
	err := m.Validate()
	require.ErrorIs(t, err, lpmodel.ErrEmptyModel)
}
