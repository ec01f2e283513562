// Package linexpr provides a sorted, pruned sparse representation of a
// linear expression Σ aᵢ·xᵢ + k over opaque variable keys, with arithmetic
// that preserves both invariants.
//
// An Expr never carries duplicate keys, never carries a zero-ish coefficient
// (|c| below the configured prune tolerance is dropped), and always keeps
// its terms sorted by key. Every constructor and arithmetic method restores
// these invariants before returning, so callers never need to re-normalize.
//
// Default pruning tolerance is 1e-10, matching SolverConfig.PruneTolerance
// in lpmodel; NewExprTol, AddTol, ScaleTol and WithTerm take an explicit
// tolerance instead of the default.
package linexpr
