package catenary

import (
	"fmt"
	"math"
)

// Shape is the solved cable geometry: the sampled free-span polyline from
// the touchdown point to the chute departure point, plus scalar results.
type Shape struct {
	// Sampled profile. Sea level is y = 0, the seabed is y = -Depth.
	S []float64 // arc length from the touchdown point (m)
	X []float64 // horizontal position (m)
	Y []float64 // elevation (m)

	H               float64 // horizontal tension component (N)
	FreeSpan        float64 // freely suspended arc length (m)
	ChuteContactLen float64 // arc length in contact with the chute (m)
	STotal          float64 // free span + chute contact (m)
	Layback         float64 // horizontal distance, touchdown point to chute top (m)
	ExitAngleDeg    float64 // departure angle from horizontal (degrees)
	TopTensionKN    float64
	BottomTensionKN float64
	MinBendRadius   float64 // m, +Inf for a straight profile

	// Arc length where the profile crosses sea level, if it does.
	SurfaceCrossingS float64
	Crossed          bool
}

// Root tolerances. The outer tension root is loosest for the tension modes
// and tightest for exit angle, which is very sensitive to H.
const (
	spanTol       = 1e-4 // m, inner free-span root
	topTensionTol = 1e-3 // kN residual
	exitAngleTol  = 1e-6 // degrees residual
	lengthTol     = 1e-4 // m residual
	laybackTol    = 1e-4 // m residual

	// hMin keeps trial horizontal tensions strictly positive during
	// bracket expansion; a suspended cable under gravity cannot carry
	// H <= 0.
	hMin = 1e-6
)

// solveSpan root-finds the free-span arc length at horizontal tension H so
// that the coupled integration ends at its departure height on the chute.
// In exit-angle mode the departure height is held fixed (fixedDep); in every
// other mode it tracks the computed exit angle. Returns the converged span
// together with a fresh integration at it.
func solveSpan(cfg *Config, H float64, fixedDep float64, useFixedDep bool) (float64, *integResult, float64, error) {
	residual := func(span float64) (float64, error) {
		res, _, err := runCoupled(cfg, H, span)
		if err != nil {
			return 0, err
		}
		target := fixedDep
		if !useFixedDep {
			target = departureHeight(cfg, res.ExitAngle)
		}
		return res.YEnd - target, nil
	}

	// The vertical rise bounds the span from below; 1.35x of it is a good
	// starting guess for the bracket.
	vert := cfg.Depth + cfg.ChuteExitHeight
	span, err := solveRoot(residual, 1.35*vert, 0.5*vert, 1e-2, spanTol)
	if err != nil {
		return 0, nil, 0, fmt.Errorf("free span solve at H=%g N: %w", H, err)
	}

	res, lc, err := runCoupled(cfg, H, span)
	if err != nil {
		return 0, nil, 0, err
	}
	return span, res, lc, nil
}

// layback projects the free-span endpoint forward along the chute arc to
// the chute top. With no chute it is the endpoint itself.
func layback(cfg *Config, res *integResult) float64 {
	return res.XEnd + cfg.ChuteRadius*math.Sin(clampAngle(res.ExitAngle))
}

// solveH root-finds the horizontal tension for the indirect solve modes.
func solveH(cfg *Config) (float64, error) {
	vert := cfg.Depth + cfg.ChuteExitHeight

	switch cfg.Mode {
	case ModeTopTension:
		targetN := cfg.Target * 1000
		residual := func(H float64) (float64, error) {
			_, res, _, err := solveSpan(cfg, H, 0, false)
			if err != nil {
				return 0, err
			}
			return res.TopTension/1000 - cfg.Target, nil
		}
		// Top tension always exceeds H, so start below the target.
		return solveRoot(residual, 0.5*targetN, 0.4*targetN, hMin, topTensionTol)

	case ModeExitAngle:
		thetaT := cfg.Target * math.Pi / 180
		fixedDep := departureHeight(cfg, thetaT)
		residual := func(H float64) (float64, error) {
			_, res, _, err := solveSpan(cfg, H, fixedDep, true)
			if err != nil {
				return 0, err
			}
			return res.ExitAngle*180/math.Pi - cfg.Target, nil
		}
		// tan(theta) ~ V/H with V of order q*rise gives the scale of H.
		h0 := cfg.QWater * vert / math.Max(math.Tan(thetaT), 0.05)
		return solveRoot(residual, h0, 0.75*h0, hMin, exitAngleTol)

	case ModeLength:
		residual := func(H float64) (float64, error) {
			span, _, lc, err := solveSpan(cfg, H, 0, false)
			if err != nil {
				return 0, err
			}
			return span + lc - cfg.Target, nil
		}
		// Uniform-catenary estimate: S^2 ~ vert^2 + 2*vert*(H/q).
		a0 := (cfg.Target*cfg.Target - vert*vert) / (2 * vert)
		h0 := math.Max(cfg.QWater*a0, 1)
		return solveRoot(residual, h0, 0.6*h0, hMin, lengthTol)

	case ModeLayback:
		residual := func(H float64) (float64, error) {
			_, res, _, err := solveSpan(cfg, H, 0, false)
			if err != nil {
				return 0, err
			}
			return layback(cfg, res) - cfg.Target, nil
		}
		h0 := cfg.QWater * cfg.Target
		return solveRoot(residual, h0, 0.75*h0, hMin, laybackTol)
	}

	return 0, fmt.Errorf("%w: unknown solve mode %q", ErrInvalidInput, cfg.Mode)
}

// Solve computes the unique consistent shape of a suspended cable for the
// configured target. It is reentrant and never mutates cfg; every call
// recomputes the shape from scratch.
func Solve(cfg *Config) (*Shape, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var H float64
	if cfg.Mode == ModeBottomTension {
		H = cfg.Target
	} else {
		var err error
		H, err = solveH(cfg)
		if err != nil {
			return nil, fmt.Errorf("%s solve for target %g: %w", cfg.Mode, cfg.Target, err)
		}
	}

	// One definitive pass at the converged tension, so the reported arrays
	// are not whatever the root-finder last evaluated.
	fixedDep := 0.0
	useFixedDep := false
	if cfg.Mode == ModeExitAngle {
		fixedDep = departureHeight(cfg, cfg.Target*math.Pi/180)
		useFixedDep = true
	}
	span, res, lc, err := solveSpan(cfg, H, fixedDep, useFixedDep)
	if err != nil {
		return nil, fmt.Errorf("%s solve for target %g: %w", cfg.Mode, cfg.Target, err)
	}

	shape := &Shape{
		S:                res.S,
		X:                res.X,
		Y:                res.Y,
		H:                H,
		FreeSpan:         span,
		ChuteContactLen:  lc,
		STotal:           span + lc,
		Layback:          layback(cfg, res),
		ExitAngleDeg:     res.ExitAngle * 180 / math.Pi,
		TopTensionKN:     res.TopTension / 1000,
		BottomTensionKN:  H / 1000,
		MinBendRadius:    minBendRadius(res.X, res.Y, cfg.clipPercentile(), cfg.ChuteRadius),
		SurfaceCrossingS: res.SurfaceCrossingS,
		Crossed:          res.Crossed,
	}
	return shape, nil
}
