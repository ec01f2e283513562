// Package lpsolve is the single entry point tying the core together:
// lpmodel.Model validation, standardize.Standardize compilation,
// simplex.Solve optimization, and solution.Map reconstruction.
//
// Solve is the only exported symbol; everything upstream (variable/
// constraint builders, arena keying, pretty-printing) lives outside this
// module's scope.
package lpsolve
