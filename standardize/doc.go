// Package standardize compiles a validated lpmodel.Model — arbitrary
// objective sense, arbitrary per-variable bound intervals (free, negative,
// ranged, or single-sided) — into the canonical form required by the
// simplex engine:
//
//	maximize c·x  subject to  A·x = b,  x ≥ 0,  b ≥ 0
//
// alongside a VariableBackMap that records, for every user variable, how to
// recover its user-space value from the canonical solution, and a SlackMap
// that records which canonical columns are slack, surplus, or artificial
// and to which constraint each belongs.
//
// Column ordering is deterministic and contractual: original
// variables in Model order (with FreeSplit expansions emitted in-line),
// then one slack/surplus column per ≤/≥ row in row order, then one
// artificial column per =/≥ row in row order. Range rows
// introduced by a bounded variable (l finite, h finite) are appended after
// all user-declared constraint rows, in variable order, since they have no
// corresponding entry in Model.Constraints.
package standardize
