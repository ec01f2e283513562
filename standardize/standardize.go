package standardize

import (
	"math"

	"github.com/katalvlaran/lpsimplex/lpmodel"
)

// rangeVar records a bounded-both-sides user variable that needs an
// additional ≤ row once all variable
// columns have been assigned.
type rangeVar struct {
	col   int
	limit float64 // h - l, always ≥ 0
}

// row is a constraint row under construction: canonical coefficients keyed
// by column, the (possibly sign-flipped) sense and RHS, and whether it
// originated from a user Constraint (origIndex ≥ 0) or a range row
// (origIndex == -1).
type row struct {
	coef      map[int]float64
	sense     lpmodel.Sense
	rhs       float64
	origIndex int
}

// Standardize compiles model into canonical form.
//
// Complexity: O(V + Σ|terms|) for variable/constraint processing, where V is
// len(model.Variables), plus O(M·N) to materialize the dense A matrix.
func Standardize(model lpmodel.Model, config lpmodel.SolverConfig) (CanonicalForm, VariableBackMap, SlackMap, error) {
	if err := model.Validate(); err != nil {
		return CanonicalForm{}, nil, nil, err
	}

	backMap, ranges, nextCol := assignVariableColumns(model.Variables)

	rows := make([]row, 0, len(model.Constraints)+len(ranges))
	for ci, c := range model.Constraints {
		rows = append(rows, buildConstraintRow(c, backMap, ci, config.PruneTolerance))
	}
	for _, rv := range ranges {
		rows = append(rows, row{
			coef:      map[int]float64{rv.col: 1},
			sense:     lpmodel.LE,
			rhs:       rv.limit,
			origIndex: -1,
		})
	}

	slackMap, auxColOf, totalCols := assignAuxiliaryColumns(rows, nextCol)

	m := len(rows)
	a := make([][]float64, m)
	b := make([]float64, m)
	artificials := make([]int, 0)
	for i, r := range rows {
		a[i] = make([]float64, totalCols)
		for col, coef := range r.coef {
			a[i][col] = coef
		}
		if aux, ok := auxColOf[i]; ok {
			if aux.hasSlack {
				a[i][aux.slackCol] = aux.slackCoef
			}
			if aux.hasArtificial {
				a[i][aux.artificialCol] = 1
				artificials = append(artificials, aux.artificialCol)
			}
		}
		b[i] = r.rhs
	}

	c, constOffset := buildObjective(model.Objective, backMap, totalCols)

	return CanonicalForm{
		N:                totalCols,
		M:                m,
		A:                a,
		B:                b,
		C:                c,
		ArtificialCols:   artificials,
		ObjectiveNegated: model.Objective.Sense == lpmodel.Minimize,
		ConstantOffset:   constOffset,
	}, backMap, slackMap, nil
}

// assignVariableColumns walks model's variables in order, choosing a
// VarTransform per the variable transformation table and allocating canonical columns
// in-line. It returns the resulting back-map, the list of bounded-both-sides
// variables needing a range row, and the next free column index.
func assignVariableColumns(vars []lpmodel.Variable) (VariableBackMap, []rangeVar, int) {
	backMap := make(VariableBackMap, len(vars))
	var ranges []rangeVar
	col := 0

	for _, v := range vars {
		loFinite := !math.IsInf(v.Lo, -1)
		hiFinite := !math.IsInf(v.Hi, 1)

		switch {
		case v.Lo == 0 && !hiFinite:
			backMap[v.Key] = VarTransform{Kind: Direct, Col: col}
			col++
		case loFinite && !hiFinite:
			backMap[v.Key] = VarTransform{Kind: Shifted, Col: col, Shift: v.Lo}
			col++
		case !loFinite && hiFinite:
			backMap[v.Key] = VarTransform{Kind: Negated, Col: col, Shift: v.Hi}
			col++
		case loFinite && hiFinite:
			backMap[v.Key] = VarTransform{Kind: Shifted, Col: col, Shift: v.Lo}
			ranges = append(ranges, rangeVar{col: col, limit: v.Hi - v.Lo})
			col++
		default: // !loFinite && !hiFinite
			backMap[v.Key] = VarTransform{Kind: FreeSplit, PosCol: col, NegCol: col + 1}
			col += 2
		}
	}

	return backMap, ranges, col
}

// buildConstraintRow substitutes c's variables per backMap, folds constants
// into the RHS, and flips sign so rhs ≥ 0.
func buildConstraintRow(c lpmodel.Constraint, backMap VariableBackMap, origIndex int, pruneTol float64) row {
	coef := make(map[int]float64)
	rowConst := c.LHS.Constant()

	for _, t := range c.LHS.Terms() {
		tr, ok := backMap[t.Key]
		if !ok {
			// A term referencing a variable absent from the Model is a
			// modeling-layer invariant violation (out of scope here); it is
			// silently dropped rather than panicking the solver core.
			continue
		}
		switch tr.Kind {
		case Direct:
			coef[tr.Col] += t.Coef
		case Shifted:
			coef[tr.Col] += t.Coef
			rowConst += t.Coef * tr.Shift
		case Negated:
			coef[tr.Col] += -t.Coef
			rowConst += t.Coef * tr.Shift
		case FreeSplit:
			coef[tr.PosCol] += t.Coef
			coef[tr.NegCol] += -t.Coef
		}
	}

	rhs := c.RHS - rowConst
	sense := c.Sense
	if rhs < 0 {
		for col := range coef {
			coef[col] = -coef[col]
		}
		rhs = -rhs
		sense = flipSense(sense)
	}

	if pruneTol > 0 {
		for col, v := range coef {
			if v < pruneTol && v > -pruneTol {
				delete(coef, col)
			}
		}
	}

	return row{coef: coef, sense: sense, rhs: rhs, origIndex: origIndex}
}

func flipSense(s lpmodel.Sense) lpmodel.Sense {
	switch s {
	case lpmodel.LE:
		return lpmodel.GE
	case lpmodel.GE:
		return lpmodel.LE
	default:
		return lpmodel.EQ
	}
}

// auxCols records the auxiliary column(s) attached to one canonical row.
type auxCols struct {
	hasSlack      bool
	slackCol      int
	slackCoef     float64
	hasArtificial bool
	artificialCol int
}

// assignAuxiliaryColumns implements the two-pass contiguous-block column
// order: every slack/surplus column (one pass, in
// row order) followed by every artificial column (a second pass, in row
// order).
func assignAuxiliaryColumns(rows []row, nextCol int) (SlackMap, map[int]auxCols, int) {
	auxColOf := make(map[int]auxCols, len(rows))
	var slackMap SlackMap

	for i, r := range rows {
		switch r.sense {
		case lpmodel.LE:
			ac := auxCols{hasSlack: true, slackCol: nextCol, slackCoef: 1}
			auxColOf[i] = ac
			slackMap = append(slackMap, SlackEntry{Kind: SlackColumn, Col: nextCol, Row: i})
			nextCol++
		case lpmodel.GE:
			ac := auxCols{hasSlack: true, slackCol: nextCol, slackCoef: -1}
			auxColOf[i] = ac
			slackMap = append(slackMap, SlackEntry{Kind: SurplusColumn, Col: nextCol, Row: i})
			nextCol++
		case lpmodel.EQ:
			// No slack/surplus column; an artificial is assigned below.
		}
	}

	for i, r := range rows {
		if r.sense == lpmodel.EQ {
			ac := auxColOf[i]
			ac.hasArtificial = true
			ac.artificialCol = nextCol
			auxColOf[i] = ac
			slackMap = append(slackMap, SlackEntry{Kind: ArtificialColumn, Col: nextCol, Row: i})
			nextCol++
		} else if r.sense == lpmodel.GE {
			ac := auxColOf[i]
			ac.hasArtificial = true
			ac.artificialCol = nextCol
			auxColOf[i] = ac
			slackMap = append(slackMap, SlackEntry{Kind: ArtificialColumn, Col: nextCol, Row: i})
			nextCol++
		}
	}

	return slackMap, auxColOf, nextCol
}

// buildObjective negates the objective on Minimize, substitutes variables
// per backMap, and accumulates the constant offset from every
// Shifted/Negated substitution plus the objective's own constant term.
func buildObjective(obj lpmodel.Objective, backMap VariableBackMap, totalCols int) ([]float64, float64) {
	sign := 1.0
	if obj.Sense == lpmodel.Minimize {
		sign = -1.0
	}

	c := make([]float64, totalCols)
	subConst := 0.0
	for _, t := range obj.Expr.Terms() {
		tr, ok := backMap[t.Key]
		if !ok {
			continue
		}
		ck := sign * t.Coef
		switch tr.Kind {
		case Direct:
			c[tr.Col] += ck
		case Shifted:
			c[tr.Col] += ck
			subConst += ck * tr.Shift
		case Negated:
			c[tr.Col] += -ck
			subConst += ck * tr.Shift
		case FreeSplit:
			c[tr.PosCol] += ck
			c[tr.NegCol] += -ck
		}
	}

	totalConst := sign*obj.Expr.Constant() + subConst
	return c, totalConst
}
