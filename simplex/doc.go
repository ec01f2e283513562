// Package simplex implements the two-phase tableau simplex engine: Phase I
// searches for a basic feasible solution using an auxiliary objective over
// artificial variables, Phase II optimizes the real objective using
// Dantzig's rule with a Bland's-rule tie-break.
//
// The engine pivots a single tableau.Tableau instance across both phases,
// swapping the z-row via Tableau.SetObjective between the auxiliary
// objective w and the real objective c.
package simplex
