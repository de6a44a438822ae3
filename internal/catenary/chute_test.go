package catenary

import (
	"math"
	"testing"
)

func TestRunCoupled_NoChute(t *testing.T) {
	cfg := uniformConfig()

	res, lc, err := runCoupled(cfg, 50000, 700)
	if err != nil {
		t.Fatalf("runCoupled failed: %v", err)
	}
	if lc != 0 {
		t.Fatalf("contact length = %g, want exactly 0 without a chute", lc)
	}
	if res == nil {
		t.Fatal("no integration result")
	}
}

func TestRunCoupled_ContactLengthConsistent(t *testing.T) {
	cfg := &Config{
		Depth:           100,
		ChuteExitHeight: 5,
		ChuteRadius:     3,
		QWater:          22,
		QAir:            28,
		DS:              0.5,
		Mode:            ModeBottomTension,
		Target:          50000,
	}

	res, lc, err := runCoupled(cfg, 50000, 700)
	if err != nil {
		t.Fatalf("runCoupled failed: %v", err)
	}

	if lc < 0 || lc > math.Pi/2*cfg.ChuteRadius {
		t.Fatalf("contact length %g outside [0, pi/2*R]", lc)
	}

	// From a cold start the damped update retains chuteDampOld of the
	// remaining gap per iteration, so the fixed budget leaves at most
	// chuteDampOld^chuteMaxIter of the converged contact length.
	want := cfg.ChuteRadius * clampAngle(res.ExitAngle)
	bound := want*math.Pow(chuteDampOld, chuteMaxIter) + chuteTol
	if math.Abs(lc-want) > bound {
		t.Errorf("contact length %g not consistent with exit angle (want %g within %g)", lc, want, bound)
	}
}

func TestDepartureHeight(t *testing.T) {
	cfg := &Config{ChuteExitHeight: 20, ChuteRadius: 0}
	if got := departureHeight(cfg, 0.5); got != 20 {
		t.Errorf("departure height = %g, want 20 with no chute", got)
	}

	cfg = &Config{ChuteExitHeight: 20, ChuteRadius: 4}
	if got := departureHeight(cfg, 0); got != 20 {
		t.Errorf("departure height = %g, want 20 at zero exit angle", got)
	}
	if got := departureHeight(cfg, math.Pi/2); math.Abs(got-16) > 1e-12 {
		t.Errorf("departure height = %g, want 16 at vertical exit", got)
	}
	// Angles beyond the quarter circle clamp to its end.
	if got := departureHeight(cfg, 2); math.Abs(got-16) > 1e-12 {
		t.Errorf("departure height = %g, want clamp to 16", got)
	}
}
