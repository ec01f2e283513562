package lpmodel

import "go.uber.org/zap"

// Default tolerance and iteration-limit knobs.
const (
	// DefaultMaxIterations bounds the number of simplex pivots across both
	// phases before the engine reports IterationLimit.
	DefaultMaxIterations = 1_000

	// DefaultTolerance is ε_feas / ε_opt: the feasibility and optimality
	// tolerance used by the simplex engine.
	DefaultTolerance = 1e-9

	// DefaultPivotTolerance is ε_pivot: values below this magnitude are
	// treated as zero during entering/leaving-variable selection.
	DefaultPivotTolerance = 1e-9

	// DefaultPruneTolerance is ε_prune: the linexpr default coefficient
	// pruning threshold, re-exported here so SolverConfig can override it.
	DefaultPruneTolerance = 1e-10
)

// SolverConfig tunes the standardizer and simplex engine. The zero value is
// not meaningful; construct with DefaultConfig() and override fields as
// needed.
type SolverConfig struct {
	// MaxIterations bounds total pivots (Phase I + Phase II combined) before
	// the engine reports Status = IterationLimit.
	MaxIterations int

	// Tolerance is ε_feas / ε_opt.
	Tolerance float64

	// PivotTolerance is ε_pivot.
	PivotTolerance float64

	// PruneTolerance is ε_prune, applied by standardize when pruning the
	// coefficients of canonical constraint rows.
	PruneTolerance float64

	// RecordPivots, if true, has simplex.Solve populate a bounded PivotLog
	// of (entering, leaving, ratio, objective) per iteration on the returned
	// CanonicalSolution. Default false: no allocation on the common path.
	RecordPivots bool

	// Logger receives structured per-pivot/per-phase trace entries at Debug
	// and Info level. Defaults to a no-op logger so production callers pay
	// nothing; pass zap.NewDevelopment() (or any *zap.Logger) to observe the
	// engine's behavior.
	Logger *zap.Logger
}

// DefaultConfig returns a SolverConfig with conservative default tolerances
// and iteration limit, pivot recording disabled, and a no-op logger.
func DefaultConfig() SolverConfig {
	return SolverConfig{
		MaxIterations:  DefaultMaxIterations,
		Tolerance:      DefaultTolerance,
		PivotTolerance: DefaultPivotTolerance,
		PruneTolerance: DefaultPruneTolerance,
		RecordPivots:   false,
		Logger:         zap.NewNop(),
	}
}

// EffectiveLogger returns c.Logger, or a no-op logger if c.Logger is nil —
// callers may construct SolverConfig by literal rather than DefaultConfig().
func (c SolverConfig) EffectiveLogger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
