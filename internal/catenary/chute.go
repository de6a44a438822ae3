package catenary

import "math"

const (
	chuteMaxIter = 6
	chuteTol     = 1e-3 // m
	chuteDampOld = 0.6
	chuteDampNew = 0.4
	maxExitAngle = math.Pi / 2 // chute arc is a quarter circle
)

// runCoupled integrates the free span at horizontal tension H with the
// chute-contact length iterated to self-consistency: the exit angle mapped
// onto the quarter-circle chute (Lc = R*theta) must match the contact length
// fed into the load lookup. A damped fixed point with a fixed budget is
// enough; it short-circuits as soon as the update falls below tolerance.
// The returned result is always integrated at the returned contact length.
// With no chute (R = 0) the contact length is identically zero.
func runCoupled(cfg *Config, H, freeSpan float64) (*integResult, float64, error) {
	lc := 0.0
	if cfg.ChuteRadius > 0 {
		for i := 0; i < chuteMaxIter; i++ {
			r, err := integrate(cfg, H, freeSpan, lc)
			if err != nil {
				return nil, 0, err
			}

			theta := clampAngle(r.ExitAngle)
			lcNew := cfg.ChuteRadius * theta
			if math.Abs(lcNew-lc) < chuteTol {
				lc = lcNew
				break
			}
			lc = chuteDampOld*lc + chuteDampNew*lcNew
		}
	}

	res, err := integrate(cfg, H, freeSpan, lc)
	if err != nil {
		return nil, 0, err
	}
	return res, lc, nil
}

// departureHeight is the elevation of the free-span departure point on the
// chute arc, for exit angle theta (radians): the chute exit sits at
// ChuteExitHeight, and the contact point drops R*(1-cos(theta)) below it.
// Reduces to ChuteExitHeight when R = 0.
func departureHeight(cfg *Config, theta float64) float64 {
	theta = clampAngle(theta)
	return cfg.ChuteExitHeight - cfg.ChuteRadius + cfg.ChuteRadius*math.Cos(theta)
}

func clampAngle(theta float64) float64 {
	if theta < 0 {
		return 0
	}
	if theta > maxExitAngle {
		return maxExitAngle
	}
	return theta
}
