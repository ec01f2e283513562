// Package solution reconstructs a user-facing lpmodel.SolverSolution from
// the simplex engine's raw CanonicalSolution, reversing the variable
// transforms standardize.Standardize applied and re-deriving the
// user-space objective value from its negation flag and constant offset.
package solution
