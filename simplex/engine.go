package simplex

import (
	"math"

	"github.com/katalvlaran/lpsimplex/lpmodel"
	"github.com/katalvlaran/lpsimplex/standardize"
	"github.com/katalvlaran/lpsimplex/tableau"
	"go.uber.org/zap"
)

// zeroRoundTolerance is the engine's ε_zero: entries with
// |v| below this are rounded to 0 after every pivot. It is an internal
// numerical-hygiene constant, distinct from the caller-tunable tolerances
// in lpmodel.SolverConfig.
const zeroRoundTolerance = 1e-12

// Solve runs the two-phase simplex method against canonical form cf using
// the initial basis implied by slacks (each row's artificial column if
// present, otherwise its slack column), honoring config's tolerances and
// iteration limit.
//
// Complexity: O(iterations · M · N); iterations is bounded by
// config.MaxIterations across Phase I and Phase II combined.
func Solve(cf standardize.CanonicalForm, slacks standardize.SlackMap, config lpmodel.SolverConfig) (CanonicalSolution, error) {
	logger := config.EffectiveLogger()

	if cf.M == 0 {
		return solveUnconstrained(cf), nil
	}

	tb, err := tableau.New(cf.A, cf.B, cf.N, config.PivotTolerance, zeroRoundTolerance)
	if err != nil {
		return CanonicalSolution{}, lpmodel.NewNumericalFailure(err.Error())
	}
	tb.SetBasis(initialBasis(cf, slacks))

	var pivotLog []lpmodel.PivotRecord

	if len(cf.ArtificialCols) > 0 {
		logger.Debug("simplex: phase I starting", zap.Int("artificials", len(cf.ArtificialCols)))

		status, err := runPhaseI(tb, cf, config, logger, &pivotLog)
		if err != nil {
			return CanonicalSolution{}, err
		}
		if status == lpmodel.Infeasible || status == lpmodel.IterationLimit {
			return CanonicalSolution{
				Status:     status,
				X:          extractValues(tb, cf.N),
				Iterations: tb.Iterations(),
				PivotLog:   pivotLog,
			}, nil
		}

		retireArtificials(tb, cf, config)
	}

	logger.Debug("simplex: phase II starting")
	tb.SetObjective(cf.C)

	status, err := runPhaseII(tb, config, logger, &pivotLog)
	if err != nil {
		return CanonicalSolution{}, err
	}

	return CanonicalSolution{
		Status:     status,
		X:          extractValues(tb, cf.N),
		Objective:  tb.ObjectiveValue(),
		Iterations: tb.Iterations(),
		PivotLog:   pivotLog,
	}, nil
}

// solveUnconstrained handles the degenerate case of zero constraint rows
// (no user constraints and no bounded-both-sides range rows): every
// canonical column is free to grow from 0 with nothing to pivot against,
// so the tableau machinery does not apply. Optimal iff every cost is
// non-positive; otherwise the first positive-cost column is an unbounded
// direction.
func solveUnconstrained(cf standardize.CanonicalForm) CanonicalSolution {
	for _, c := range cf.C {
		if c > 0 {
			return CanonicalSolution{Status: lpmodel.Unbounded, X: make([]float64, cf.N)}
		}
	}

	return CanonicalSolution{Status: lpmodel.Optimal, X: make([]float64, cf.N), Objective: 0}
}

// initialBasis derives the natural starting basic variable for each row:
// the row's artificial column if one was introduced (EQ and GE rows),
// otherwise its slack column (LE rows). Every row has exactly one of the
// two by construction (standardize.assignAuxiliaryColumns).
func initialBasis(cf standardize.CanonicalForm, slacks standardize.SlackMap) []int {
	basis := make([]int, cf.M)
	for i := range basis {
		basis[i] = -1
	}
	for _, e := range slacks {
		switch e.Kind {
		case standardize.SlackColumn:
			if basis[e.Row] == -1 {
				basis[e.Row] = e.Col
			}
		case standardize.ArtificialColumn:
			basis[e.Row] = e.Col
		}
	}

	return basis
}

// runPhaseI drives the auxiliary objective w = −Σ artificials to its
// optimum and classifies the result into the Phase I outcome cases:
// Unbounded is a structural bug (w is bounded above by 0), IterationLimit
// passes through, and otherwise the sign of w* distinguishes
// Infeasible from a feasible basis ready for Phase II.
func runPhaseI(tb *tableau.Tableau, cf standardize.CanonicalForm, config lpmodel.SolverConfig, logger *zap.Logger, pivotLog *[]lpmodel.PivotRecord) (lpmodel.Status, error) {
	w := make([]float64, cf.N)
	for _, col := range cf.ArtificialCols {
		w[col] = -1
	}
	tb.SetObjective(w)

	status, err := runPivotLoop(tb, config, 1, logger, pivotLog)
	if err != nil {
		return lpmodel.NotStarted, err
	}
	switch status {
	case lpmodel.Unbounded:
		// w is bounded above by 0 by construction; an unbounded ray here
		// indicates a structural bug upstream, not a valid LP outcome.
		return lpmodel.NotStarted, lpmodel.NewNumericalFailure("phase I auxiliary objective reported unbounded")
	case lpmodel.IterationLimit:
		return lpmodel.IterationLimit, nil
	}

	if tb.ObjectiveValue() < -config.Tolerance {
		return lpmodel.Infeasible, nil
	}

	return lpmodel.Optimal, nil
}

// retireArtificials implements the artificial-basic-at-zero policy: any
// artificial still basic at (near) zero is pivoted out onto a
// non-artificial column with a nonzero entry in its row, if one exists;
// otherwise the row is redundant and the artificial is left in place,
// pinned at zero cost. Every artificial column, basic or not, is then
// excluded from Phase II's entering-variable candidates.
func retireArtificials(tb *tableau.Tableau, cf standardize.CanonicalForm, config lpmodel.SolverConfig) {
	artificial := make(map[int]bool, len(cf.ArtificialCols))
	for _, col := range cf.ArtificialCols {
		artificial[col] = true
	}

	basis := tb.Basis()
	for row, col := range basis {
		if !artificial[col] {
			continue
		}
		rhs, _ := tb.RHS(row)
		if rhs > config.Tolerance || rhs < -config.Tolerance {
			continue // structurally shouldn't happen post phase-I-optimal, but not our call to fail here
		}
		for j := 0; j < cf.N; j++ {
			if artificial[j] || tb.IsBasic(j) {
				continue
			}
			entry, _ := tb.Entry(row, j)
			if entry > config.PivotTolerance || entry < -config.PivotTolerance {
				_ = tb.Pivot(row, j)
				break
			}
		}
	}

	for _, col := range cf.ArtificialCols {
		tb.DropColumn(col)
	}
}

// runPhaseII optimizes the real objective already installed via
// Tableau.SetObjective, honoring the artificial-column exclusion
// established by retireArtificials.
func runPhaseII(tb *tableau.Tableau, config lpmodel.SolverConfig, logger *zap.Logger, pivotLog *[]lpmodel.PivotRecord) (lpmodel.Status, error) {
	return runPivotLoop(tb, config, 2, logger, pivotLog)
}

// runPivotLoop is the shared Phase I / Phase II pivot loop: entering
// variable by Dantzig's rule (smallest-index tie-break), unbounded
// check, leaving variable by minimum ratio (Bland's-rule tie-break),
// pivot, iteration-limit check.
func runPivotLoop(tb *tableau.Tableau, config lpmodel.SolverConfig, phase int, logger *zap.Logger, pivotLog *[]lpmodel.PivotRecord) (lpmodel.Status, error) {
	for {
		entering, rc, found := selectEntering(tb, config.Tolerance)
		if !found {
			return lpmodel.Optimal, nil
		}

		leaving, ratio, ok := selectLeaving(tb, entering, config.PivotTolerance)
		if !ok {
			return lpmodel.Unbounded, nil
		}

		leavingCol := tb.Basis()[leaving]
		if err := tb.Pivot(leaving, entering); err != nil {
			return lpmodel.NotStarted, lpmodel.NewNumericalFailure(err.Error())
		}
		if err := checkFinite(tb); err != nil {
			return lpmodel.NotStarted, err
		}

		obj := tb.ObjectiveValue()
		logger.Debug("simplex: pivot",
			zap.Int("phase", phase),
			zap.Int("entering", entering),
			zap.Int("leaving_row", leaving),
			zap.Float64("reduced_cost", rc),
			zap.Float64("ratio", ratio),
			zap.Float64("objective", obj),
			zap.Int("iteration", tb.Iterations()),
		)
		if config.RecordPivots {
			*pivotLog = append(*pivotLog, lpmodel.PivotRecord{
				Phase:     phase,
				Entering:  entering,
				Leaving:   leavingCol,
				Ratio:     ratio,
				Objective: obj,
			})
		}

		if tb.Iterations() >= config.MaxIterations {
			return lpmodel.IterationLimit, nil
		}
	}
}

// selectEntering picks the non-basic column with the most positive reduced
// cost (Dantzig's rule), breaking ties by smallest column index for
// determinism. Columns marked basic-ineligible via Tableau.DropColumn are
// skipped because Tableau.IsBasic reports them as occupied.
func selectEntering(tb *tableau.Tableau, tolerance float64) (col int, reducedCost float64, found bool) {
	best := tolerance
	found = false
	for j := 0; j < tb.Cols(); j++ {
		if tb.IsBasic(j) {
			continue
		}
		rc, _ := tb.ReducedCost(j)
		if rc > best {
			best = rc
			col = j
			found = true
		}
	}

	return col, best, found
}

// selectLeaving runs the minimum-ratio test among rows where entering has a
// positive coefficient, breaking ties by the smallest basic canonical
// column index (Bland's rule) to guarantee finite
// termination on degenerate instances.
func selectLeaving(tb *tableau.Tableau, entering int, pivotTolerance float64) (row int, ratio float64, ok bool) {
	basis := tb.Basis()
	best := math.Inf(1)
	bestBasisCol := math.MaxInt
	ok = false

	for i := 0; i < tb.Rows(); i++ {
		a, _ := tb.Entry(i, entering)
		if a <= pivotTolerance {
			continue
		}
		rhs, _ := tb.RHS(i)
		r := rhs / a
		switch {
		case r < best-pivotTolerance:
			best = r
			row = i
			bestBasisCol = basis[i]
			ok = true
		case r < best+pivotTolerance && basis[i] < bestBasisCol:
			row = i
			bestBasisCol = basis[i]
			ok = true
		}
	}

	return row, best, ok
}

// extractValues reads the current basic feasible solution out of tb: basic
// columns take their row's RHS, non-basic columns are 0.
func extractValues(tb *tableau.Tableau, n int) []float64 {
	x := make([]float64, n)
	for i, col := range tb.Basis() {
		v, _ := tb.RHS(i)
		x[col] = v
	}

	return x
}

// checkFinite guards against NaN/Inf entering the tableau from an
// ill-conditioned pivot.
func checkFinite(tb *tableau.Tableau) error {
	for i := 0; i <= tb.Rows(); i++ {
		for j := 0; j <= tb.Cols(); j++ {
			v, _ := tb.Entry(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return lpmodel.NewNumericalFailure("pivot produced a non-finite tableau entry")
			}
		}
	}

	return nil
}
