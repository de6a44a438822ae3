package catenary

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestSolveRoot_Sqrt2(t *testing.T) {
	f := func(x float64) (float64, error) { return x*x - 2, nil }

	root, err := solveRoot(f, 1, 0.5, 0, 1e-9)
	if err != nil {
		t.Fatalf("solveRoot failed: %v", err)
	}
	if math.Abs(root-math.Sqrt2) > 1e-4 {
		t.Fatalf("root = %g, want %g", root, math.Sqrt2)
	}
}

func TestSolveRoot_FarBracket(t *testing.T) {
	// Root far outside the initial interval; bracket expansion must find it.
	f := func(x float64) (float64, error) { return x - 5000, nil }

	root, err := solveRoot(f, 1, 1, 0, 1e-6)
	if err != nil {
		t.Fatalf("solveRoot failed: %v", err)
	}
	if math.Abs(root-5000) > 1e-3 {
		t.Fatalf("root = %g, want 5000", root)
	}
}

func TestBracket_NoSignChange(t *testing.T) {
	f := func(x float64) (float64, error) { return x*x + 1, nil }

	_, _, _, _, err := bracket(f, 0, 1, -math.MaxFloat64)
	if !errors.Is(err, ErrNotBracketed) {
		t.Fatalf("want ErrNotBracketed, got %v", err)
	}
}

func TestBracket_LowerClamp(t *testing.T) {
	// The residual is only defined for positive x; the clamp keeps every
	// trial on the valid side.
	f := func(x float64) (float64, error) {
		if x <= 0 {
			return 0, errors.New("negative trial")
		}
		return math.Log(x), nil
	}

	root, err := solveRoot(f, 0.5, 1, 1e-9, 1e-9)
	if err != nil {
		t.Fatalf("solveRoot failed: %v", err)
	}
	if math.Abs(root-1) > 1e-4 {
		t.Fatalf("root = %g, want 1", root)
	}
}

func TestBracket_ReportsEvaluatedInterval(t *testing.T) {
	// No sign change below x = 100, evaluation errors above it: the failure
	// must report the last interval both residuals were computed on, not the
	// final expansion that never evaluated.
	f := func(x float64) (float64, error) {
		if x > 100 {
			return 0, errors.New("out of range")
		}
		return 5.0, nil
	}

	_, _, _, _, err := bracket(f, 1, 1, 1)
	if !errors.Is(err, ErrNotBracketed) {
		t.Fatalf("want ErrNotBracketed, got %v", err)
	}

	// Replay the expansion to find the last fully evaluated upper endpoint.
	step := 1.0
	lastB := 0.0
	for i := 0; i < bracketMaxExpand; i++ {
		if b := 1 + step; b <= 100 {
			lastB = b
		}
		step *= bracketGrowth
	}
	want := fmt.Sprintf("[%g, %g]", 1.0, lastB)
	if !strings.Contains(err.Error(), want) {
		t.Errorf("error %q does not report the evaluated interval %s", err, want)
	}
}

func TestBracket_AllEvaluationsFail(t *testing.T) {
	sentinel := errors.New("integration blew up")
	f := func(x float64) (float64, error) { return 0, sentinel }

	_, _, _, _, err := bracket(f, 1, 1, 0)
	if !errors.Is(err, sentinel) {
		t.Fatalf("want the evaluation error surfaced, got %v", err)
	}
}
