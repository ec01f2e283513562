// Package lpmodel defines the user-facing input and output types consumed
// and produced by the solver core: Variable, Constraint, Objective, and
// Model on the input side; SolverConfig as the tuning surface; Status,
// SolverSolution, and SolverError on the output side.
//
// lpmodel owns no solving logic. It is the stable contract between the
// (out of scope) modeling layer and the standardize/simplex/solution
// packages: those packages consume a validated Model and SolverConfig and
// produce a SolverSolution, never touching anything lpmodel does not
// declare.
package lpmodel
