package catenary

import "errors"

// Solver error taxonomy. Every failure surfaced by Solve wraps exactly one
// of these sentinels, so callers can dispatch with errors.Is instead of
// matching message text.
var (
	// ErrInvalidInput indicates a non-physical or out-of-domain configuration.
	ErrInvalidInput = errors.New("catenary: invalid input")

	// ErrStepLimit indicates the requested span/step combination exceeds the
	// configured integration step budget.
	ErrStepLimit = errors.New("catenary: integration step limit exceeded")

	// ErrNonPhysicalTension indicates total tension dropped to zero or below
	// mid-integration (degenerate loading, e.g. extreme negative point loads).
	ErrNonPhysicalTension = errors.New("catenary: non-physical tension")

	// ErrNotBracketed indicates bracket expansion exhausted its budget
	// without finding a sign change.
	ErrNotBracketed = errors.New("catenary: root not bracketed")

	// ErrNoConvergence indicates bisection exceeded its iteration budget.
	ErrNoConvergence = errors.New("catenary: root did not converge")
)
