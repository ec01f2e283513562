package lpsolve

import (
	"time"

	"github.com/katalvlaran/lpsimplex/lpmodel"
	"github.com/katalvlaran/lpsimplex/simplex"
	"github.com/katalvlaran/lpsimplex/solution"
	"github.com/katalvlaran/lpsimplex/standardize"
	"go.uber.org/zap"
)

// Solve validates model, compiles it to canonical form, runs the two-phase
// simplex engine, and maps the result back into user space.
//
// Stage 1 — standardize: validates model and produces (CanonicalForm,
// VariableBackMap, SlackMap); returns early on EmptyModel/InvalidBounds.
//
// Stage 2 — simplex: runs Phase I (if artificials were introduced) then
// Phase II against the compiled form, honoring config's tolerances and
// max_iterations.
//
// Stage 3 — solution: reconstructs user variable values and the
// user-space objective (applying the negation/offset recorded during
// standardization).
//
// Complexity: dominated by Stage 2, O(iterations · M · N).
func Solve(model lpmodel.Model, config lpmodel.SolverConfig) (lpmodel.SolverSolution, error) {
	start := time.Now()
	logger := config.EffectiveLogger()

	cf, backMap, slacks, err := standardize.Standardize(model, config)
	if err != nil {
		logger.Debug("lpsolve: standardize failed", zap.Error(err))

		return lpmodel.SolverSolution{}, err
	}

	cs, err := simplex.Solve(cf, slacks, config)
	if err != nil {
		logger.Debug("lpsolve: simplex failed", zap.Error(err))

		return lpmodel.SolverSolution{}, err
	}

	sol := solution.Map(cs, backMap, slacks, cf.ObjectiveNegated, cf.ConstantOffset)
	sol.SolveTime = time.Since(start)

	logger.Info("lpsolve: solve complete",
		zap.String("status", sol.Status.String()),
		zap.Int("iterations", sol.Iterations),
		zap.Duration("solve_time", sol.SolveTime),
	)

	return sol, nil
}
