package catenary

import (
	"errors"
	"math"
	"testing"
)

// uniformConfig is an all-water reference cable: 100 m depth, 22 N/m.
func uniformConfig() *Config {
	return &Config{
		Depth:  100,
		QWater: 22,
		QAir:   22,
		DS:     0.5,
		Mode:   ModeBottomTension,
		Target: 50000,
	}
}

// For a uniform catenary integrated from a horizontal touchdown point the
// closed form gives, at H = 50000 N and q = 22 N/m over 100 m of rise:
// a = H/q, S = a*sqrt((1+D/a)^2-1), x = a*asinh(S/a), V = q*S.
func TestIntegrate_UniformCatenaryClosedForm(t *testing.T) {
	cfg := uniformConfig()
	const (
		h = 50000.0
		q = 22.0
	)
	a := h / q
	span := a * math.Sqrt(math.Pow(1+cfg.Depth/a, 2)-1)
	wantX := a * math.Asinh(span/a)
	wantV := q * span

	res, err := integrate(cfg, h, span, 0)
	if err != nil {
		t.Fatalf("integrate failed: %v", err)
	}

	if math.Abs(res.YEnd) > 0.02 {
		t.Errorf("yEnd = %g, want 0 within 0.02", res.YEnd)
	}
	if math.Abs(res.XEnd-wantX) > 0.5 {
		t.Errorf("xEnd = %g, want %g", res.XEnd, wantX)
	}
	if math.Abs(res.VEnd-wantV) > 0.1 {
		t.Errorf("vEnd = %g, want %g", res.VEnd, wantV)
	}
	wantAngle := math.Atan2(wantV, h) * 180 / math.Pi
	gotAngle := res.ExitAngle * 180 / math.Pi
	if math.Abs(gotAngle-wantAngle) > 0.05 {
		t.Errorf("exit angle = %g deg, want %g", gotAngle, wantAngle)
	}
	if res.Crossed {
		t.Errorf("fully submerged profile reported a surface crossing at s=%g", res.SurfaceCrossingS)
	}
	if len(res.S) != len(res.X) || len(res.S) != len(res.Y) {
		t.Fatalf("sample arrays disagree in length: %d/%d/%d", len(res.S), len(res.X), len(res.Y))
	}
}

func TestIntegrate_StepLimit(t *testing.T) {
	cfg := uniformConfig()
	cfg.DS = 0.001

	_, err := integrate(cfg, 50000, 10000, 0)
	if !errors.Is(err, ErrStepLimit) {
		t.Fatalf("want ErrStepLimit, got %v", err)
	}
}

func TestIntegrate_PointLoad(t *testing.T) {
	cfg := uniformConfig()
	cfg.Components = []Component{
		{Position: 200, PointLoadKN: 2},
	}

	const span = 600.0
	res, err := integrate(cfg, 50000, span, 0)
	if err != nil {
		t.Fatalf("integrate failed: %v", err)
	}

	// V integrates the distributed weight exactly plus the point load.
	want := 22*span + 2000
	if math.Abs(res.VEnd-want) > 1e-6 {
		t.Errorf("vEnd = %g, want %g", res.VEnd, want)
	}
}

func TestIntegrate_AssemblyLoadMapping(t *testing.T) {
	// Two segments measured from the chute top: the lower 200 m of a 600 m
	// span falls in the second segment, the upper 400 m in the first.
	cfg := &Config{
		Depth:  1000,
		QWater: 22,
		QAir:   28,
		DS:     0.5,
		Mode:   ModeBottomTension,
		Target: 100000,
		Assembly: []AssemblyItem{
			{Kind: "segment", Length: 400, QWater: 30, QAir: 35},
			{Kind: "segment", Length: 400, QWater: 20, QAir: 25},
		},
	}

	res, err := integrate(cfg, 100000, 600, 0)
	if err != nil {
		t.Fatalf("integrate failed: %v", err)
	}

	want := 400*30.0 + 200*20.0
	if math.Abs(res.VEnd-want) > 1e-6 {
		t.Errorf("vEnd = %g, want %g", res.VEnd, want)
	}
}

func TestIntegrate_AssemblyBody(t *testing.T) {
	cfg := &Config{
		Depth:  1000,
		QWater: 22,
		QAir:   28,
		DS:     0.5,
		Mode:   ModeBottomTension,
		Target: 100000,
		Assembly: []AssemblyItem{
			{Kind: "segment", Length: 300, QWater: 22, QAir: 28},
			{Kind: "body", PointLoadKN: 5},
			{Kind: "segment", Length: 300, QWater: 22, QAir: 28},
		},
	}

	res, err := integrate(cfg, 100000, 600, 0)
	if err != nil {
		t.Fatalf("integrate failed: %v", err)
	}

	want := 22*600.0 + 5000
	if math.Abs(res.VEnd-want) > 1e-6 {
		t.Errorf("vEnd = %g, want %g", res.VEnd, want)
	}
}

func TestBuildEvents_MergesNearbyPointLoads(t *testing.T) {
	cfg := uniformConfig()
	cfg.Components = []Component{
		{Position: 100, PointLoadKN: 1},
		{Position: 100.05, PointLoadKN: 2},
	}

	events := buildEvents(cfg, 600, 0, 0.5)
	if len(events) != 1 {
		t.Fatalf("want 1 merged event, got %d", len(events))
	}
	if math.Abs(events[0].load-3000) > 1e-9 {
		t.Errorf("merged load = %g N, want 3000", events[0].load)
	}
	if math.Abs(events[0].s-100) > 1e-9 {
		t.Errorf("merged event at s=%g, want 100", events[0].s)
	}
}

func TestIntegrate_SurfaceCrossing(t *testing.T) {
	cfg := &Config{
		Depth:  50,
		QWater: 22,
		QAir:   28,
		DS:     0.5,
		Mode:   ModeBottomTension,
		Target: 500,
	}

	// At H = 500 N the closed-form water catenary reaches the surface at
	// s = a*sqrt((1+D/a)^2-1) with a = H/q_water.
	a := 500.0 / 22.0
	wantCross := a * math.Sqrt(math.Pow(1+50/a, 2)-1)

	res, err := integrate(cfg, 500, 90, 0)
	if err != nil {
		t.Fatalf("integrate failed: %v", err)
	}
	if !res.Crossed {
		t.Fatal("expected a sea-surface crossing")
	}
	if math.Abs(res.SurfaceCrossingS-wantCross) > 0.2 {
		t.Errorf("crossing at s=%g, want %g", res.SurfaceCrossingS, wantCross)
	}
	if res.YEnd <= 0 {
		t.Errorf("yEnd = %g, want above sea level", res.YEnd)
	}

	// The sampled profile must change sign exactly once.
	crossings := 0
	for i := 1; i < len(res.Y); i++ {
		if (res.Y[i-1] < 0) != (res.Y[i] < 0) {
			crossings++
		}
	}
	if crossings != 1 {
		t.Errorf("profile crosses sea level %d times, want 1", crossings)
	}
}

func TestIntegrate_RejectsNonPositiveH(t *testing.T) {
	cfg := uniformConfig()
	if _, err := integrate(cfg, 0, 100, 0); !errors.Is(err, ErrNonPhysicalTension) {
		t.Fatalf("want ErrNonPhysicalTension for H=0, got %v", err)
	}
	if _, err := integrate(cfg, -100, 100, 0); !errors.Is(err, ErrNonPhysicalTension) {
		t.Fatalf("want ErrNonPhysicalTension for H<0, got %v", err)
	}
}
