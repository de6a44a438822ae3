package catenary

import (
	"encoding/json"
	"fmt"
	"os"
)

// Mode selects which scalar target the solver drives the cable shape to.
type Mode string

const (
	// ModeBottomTension takes the horizontal tension component H (N) directly.
	ModeBottomTension Mode = "bottom-tension"
	// ModeTopTension solves for the tension at the departure point (kN).
	ModeTopTension Mode = "top-tension"
	// ModeExitAngle solves for the departure angle from horizontal (degrees).
	ModeExitAngle Mode = "exit-angle"
	// ModeLength solves for the total suspended length, free span plus
	// chute contact (m).
	ModeLength Mode = "length"
	// ModeLayback solves for the horizontal distance from the touchdown
	// point to the chute top (m).
	ModeLayback Mode = "layback"
)

// DefaultMaxSteps bounds the integration step count when the configuration
// does not specify a limit. It exists to bound worst-case latency for
// interactive callers requesting a very fine step over a long span.
const DefaultMaxSteps = 25000

// DefaultClipPercentile is the curvature clip applied before taking the
// maximum, suppressing point-load kink singularities.
const DefaultClipPercentile = 99.5

// AssemblyItem is one entry of a cable assembly, ordered from the chute top
// down to the seabed. A "segment" contributes distributed weight over its
// length; a "body" is a point load at its position in the assembly.
type AssemblyItem struct {
	Kind string `json:"kind"` // "segment" or "body"

	// Segment fields (m, N/m)
	Length float64 `json:"length_m,omitempty"`
	QWater float64 `json:"q_water_npm,omitempty"`
	QAir   float64 `json:"q_air_npm,omitempty"`

	// Body field (kN, positive downward)
	PointLoadKN float64 `json:"point_load_kn,omitempty"`
}

// Component is the legacy cable attachment model: a distributed weight delta
// over [Position, Position+Length) layered on the base weights, plus an
// optional point load at Position. Positions are arc length from the
// touchdown point.
type Component struct {
	Position    float64 `json:"position_m"`
	Length      float64 `json:"length_m"`
	DeltaQWater float64 `json:"delta_q_water_npm"`
	DeltaQAir   float64 `json:"delta_q_air_npm"`
	PointLoadKN float64 `json:"point_load_kn"`
}

// Config describes one cable case. Sea level is y = 0, the seabed is
// y = -Depth, up is positive. The configuration is never mutated by the
// solver; every Solve call is a pure function of its Config.
type Config struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`

	// Geometry (m)
	Depth           float64 `json:"water_depth_m"`
	ChuteExitHeight float64 `json:"chute_exit_height_m"`
	ChuteRadius     float64 `json:"chute_radius_m"` // 0 disables chute coupling

	// Base cable weight per length (N/m, positive downward)
	QWater float64 `json:"q_water_npm"`
	QAir   float64 `json:"q_air_npm"`

	// Integration controls
	DS       float64 `json:"ds_m"`
	MaxSteps int     `json:"max_integration_steps,omitempty"`

	// At most one of Assembly (chute-top to seabed order) or the legacy
	// Components list may be supplied.
	Assembly   []AssemblyItem `json:"assembly,omitempty"`
	Components []Component    `json:"components,omitempty"`

	// Solve target
	Mode   Mode    `json:"input_mode"`
	Target float64 `json:"target"`

	// Curvature clip percentile, default 99.5.
	CurvatureClipPercentile float64 `json:"curvature_clip_percentile,omitempty"`
}

// LoadFromFile loads a cable case definition from a JSON file.
func LoadFromFile(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) maxSteps() int {
	if c.MaxSteps > 0 {
		return c.MaxSteps
	}
	return DefaultMaxSteps
}

func (c *Config) clipPercentile() float64 {
	if c.CurvatureClipPercentile > 0 {
		return c.CurvatureClipPercentile
	}
	return DefaultClipPercentile
}

// minFeasibleLength is a lower bound on the total suspended length: the
// departure point sits at least Depth + ChuteExitHeight - ChuteRadius above
// the touchdown point.
func (c *Config) minFeasibleLength() float64 {
	return c.Depth + c.ChuteExitHeight - c.ChuteRadius
}

// Validate checks the configuration against physical and domain limits.
// All violations are reported as ErrInvalidInput.
func (c *Config) Validate() error {
	if c.Depth <= 0 {
		return fmt.Errorf("%w: water depth must be positive, got %g m", ErrInvalidInput, c.Depth)
	}
	if c.ChuteExitHeight < 0 {
		return fmt.Errorf("%w: chute exit height must not be negative, got %g m", ErrInvalidInput, c.ChuteExitHeight)
	}
	if c.ChuteRadius < 0 {
		return fmt.Errorf("%w: chute radius must not be negative, got %g m", ErrInvalidInput, c.ChuteRadius)
	}
	if c.QWater <= 0 {
		return fmt.Errorf("%w: weight in water must be positive, got %g N/m", ErrInvalidInput, c.QWater)
	}
	if c.QAir <= 0 {
		return fmt.Errorf("%w: weight in air must be positive, got %g N/m", ErrInvalidInput, c.QAir)
	}
	if c.DS <= 0 {
		return fmt.Errorf("%w: integration step must be positive, got %g m", ErrInvalidInput, c.DS)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("%w: max integration steps must not be negative, got %d", ErrInvalidInput, c.MaxSteps)
	}
	if len(c.Assembly) > 0 && len(c.Components) > 0 {
		return fmt.Errorf("%w: assembly and legacy components are mutually exclusive", ErrInvalidInput)
	}

	for i, item := range c.Assembly {
		switch item.Kind {
		case "segment":
			if item.Length <= 0 {
				return fmt.Errorf("%w: assembly item %d: segment length must be positive, got %g m", ErrInvalidInput, i+1, item.Length)
			}
			if item.QWater <= 0 || item.QAir <= 0 {
				return fmt.Errorf("%w: assembly item %d: segment weights must be positive", ErrInvalidInput, i+1)
			}
		case "body":
			// Negative point loads (buoyancy modules) are allowed.
		default:
			return fmt.Errorf("%w: assembly item %d: unknown kind %q", ErrInvalidInput, i+1, item.Kind)
		}
	}

	for i, comp := range c.Components {
		if comp.Position < 0 {
			return fmt.Errorf("%w: component %d: position must not be negative, got %g m", ErrInvalidInput, i+1, comp.Position)
		}
		if comp.Length < 0 {
			return fmt.Errorf("%w: component %d: length must not be negative, got %g m", ErrInvalidInput, i+1, comp.Length)
		}
	}

	switch c.Mode {
	case ModeBottomTension:
		if c.Target <= 0 {
			return fmt.Errorf("%w: horizontal tension must be positive, got %g N", ErrInvalidInput, c.Target)
		}
	case ModeTopTension:
		if c.Target <= 0 {
			return fmt.Errorf("%w: top tension must be positive, got %g kN", ErrInvalidInput, c.Target)
		}
	case ModeExitAngle:
		if c.Target <= 0 || c.Target >= 90 {
			return fmt.Errorf("%w: exit angle must be between 0 and 90 degrees exclusive, got %g", ErrInvalidInput, c.Target)
		}
	case ModeLength:
		if min := c.minFeasibleLength(); c.Target <= min {
			return fmt.Errorf("%w: total length %g m is below the minimum feasible length %g m", ErrInvalidInput, c.Target, min)
		}
	case ModeLayback:
		if c.Target <= 0 {
			return fmt.Errorf("%w: layback must be positive, got %g m", ErrInvalidInput, c.Target)
		}
	default:
		return fmt.Errorf("%w: unknown solve mode %q", ErrInvalidInput, c.Mode)
	}

	return nil
}
