package lpmodel

import (
	"go.uber.org/multierr"
)

// Validate performs the eager structural checks required before any
// Tableau is allocated: a model with no variables or no objective is
// rejected outright, and every variable with Lo > Hi is collected — not just
// the first one — so a caller fixing a malformed model sees every offending
// variable in one pass instead of iterating on EmptyModel/InvalidBounds one
// at a time.
//
// Complexity: O(len(Variables)).
func (m Model) Validate() error {
	if len(m.Variables) == 0 {
		return ErrEmptyModel
	}
	if m.Objective.Expr.Len() == 0 {
		return ErrEmptyModel
	}

	var err error
	for _, v := range m.Variables {
		if v.Lo > v.Hi {
			err = multierr.Append(err, &InvalidBoundsError{Key: v.Key, Lo: v.Lo, Hi: v.Hi})
		}
	}
	return err
}
