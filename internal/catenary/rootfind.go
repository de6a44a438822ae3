package catenary

import (
	"fmt"
	"math"
)

// evalFunc is a residual function evaluated during root finding. Evaluation
// may fail (the underlying integration can reject a trial value); failures
// are captured and reported alongside bracketing failures.
type evalFunc func(x float64) (float64, error)

const (
	bracketGrowth    = 1.6
	bracketMaxExpand = 60
	bisectMaxIter    = 120
)

// bracket expands the interval [x0-step, x0+step] geometrically until the
// residual changes sign across it. The lower end is clamped to lo. If every
// expansion fails to evaluate, the last evaluation error is returned
// directly; otherwise a bracketing failure reports the last evaluated range
// and its endpoint residuals, wrapping the last evaluation error if any.
func bracket(f evalFunc, x0, step, lo float64) (a, b, fa, fb float64, err error) {
	var lastErr error
	evaluated := false
	// Interval of the last expansion where both endpoints evaluated, so the
	// failure report pairs residuals with the range they came from.
	var lastA, lastB, lastFa, lastFb float64

	for i := 0; i < bracketMaxExpand; i++ {
		a = math.Max(x0-step, lo)
		b = x0 + step

		va, errA := f(a)
		if errA != nil {
			lastErr = errA
		}
		vb, errB := f(b)
		if errB != nil {
			lastErr = errB
		}

		if errA == nil && errB == nil {
			evaluated = true
			if va == 0 {
				return a, a, va, va, nil
			}
			if vb == 0 {
				return b, b, vb, vb, nil
			}
			if va*vb < 0 {
				return a, b, va, vb, nil
			}
			lastA, lastB, lastFa, lastFb = a, b, va, vb
		}

		step *= bracketGrowth
	}

	if !evaluated {
		if lastErr != nil {
			return 0, 0, 0, 0, lastErr
		}
		return 0, 0, 0, 0, fmt.Errorf("%w: no successful evaluation around x0=%g", ErrNotBracketed, x0)
	}
	if lastErr != nil {
		return 0, 0, 0, 0, fmt.Errorf("%w: no sign change in [%g, %g], f(a)=%g, f(b)=%g (last evaluation error: %w)",
			ErrNotBracketed, lastA, lastB, lastFa, lastFb, lastErr)
	}
	return 0, 0, 0, 0, fmt.Errorf("%w: no sign change in [%g, %g], f(a)=%g, f(b)=%g",
		ErrNotBracketed, lastA, lastB, lastFa, lastFb)
}

// bisect narrows [a, b] (with residuals fa, fb of opposite sign, as produced
// by bracket) until either the residual magnitude or the interval width
// drops below tol.
func bisect(f evalFunc, a, b, fa, fb, tol float64) (float64, error) {
	if a == b {
		return a, nil
	}
	if math.Abs(fa) < tol {
		return a, nil
	}
	if math.Abs(fb) < tol {
		return b, nil
	}

	for i := 0; i < bisectMaxIter; i++ {
		m := 0.5 * (a + b)
		fm, err := f(m)
		if err != nil {
			return 0, err
		}
		if math.Abs(fm) < tol || math.Abs(b-a) < tol {
			return m, nil
		}
		if fa*fm < 0 {
			b, fb = m, fm
		} else {
			a, fa = m, fm
		}
	}

	return 0, fmt.Errorf("%w: interval [%g, %g] after %d bisections, tol %g",
		ErrNoConvergence, a, b, bisectMaxIter, tol)
}

// solveRoot is the bracket-then-bisect composition used for every root in
// the solver.
func solveRoot(f evalFunc, x0, step, lo, tol float64) (float64, error) {
	a, b, fa, fb, err := bracket(f, x0, step, lo)
	if err != nil {
		return 0, err
	}
	if a == b {
		return a, nil
	}
	return bisect(f, a, b, fa, fb, tol)
}
