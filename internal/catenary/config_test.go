package catenary

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestValidate_RejectsNonPhysicalInputs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero depth", func(c *Config) { c.Depth = 0 }},
		{"negative depth", func(c *Config) { c.Depth = -5 }},
		{"zero weight in water", func(c *Config) { c.QWater = 0 }},
		{"negative weight in air", func(c *Config) { c.QAir = -1 }},
		{"zero step", func(c *Config) { c.DS = 0 }},
		{"negative chute height", func(c *Config) { c.ChuteExitHeight = -1 }},
		{"negative chute radius", func(c *Config) { c.ChuteRadius = -1 }},
		{"zero bottom tension", func(c *Config) { c.Target = 0 }},
		{"unknown mode", func(c *Config) { c.Mode = "sideways" }},
		{"exit angle at 90", func(c *Config) { c.Mode = ModeExitAngle; c.Target = 90 }},
		{"exit angle negative", func(c *Config) { c.Mode = ModeExitAngle; c.Target = -10 }},
		{"assembly and components", func(c *Config) {
			c.Assembly = []AssemblyItem{{Kind: "segment", Length: 10, QWater: 20, QAir: 25}}
			c.Components = []Component{{Position: 5, Length: 1}}
		}},
		{"assembly segment without length", func(c *Config) {
			c.Assembly = []AssemblyItem{{Kind: "segment", QWater: 20, QAir: 25}}
		}},
		{"assembly unknown kind", func(c *Config) {
			c.Assembly = []AssemblyItem{{Kind: "widget"}}
		}},
		{"component negative position", func(c *Config) {
			c.Components = []Component{{Position: -1}}
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := referenceConfig(ModeBottomTension, 50000)
			tc.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("want ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestValidate_AcceptsReferenceCase(t *testing.T) {
	if err := referenceConfig(ModeBottomTension, 50000).Validate(); err != nil {
		t.Fatalf("reference case rejected: %v", err)
	}
}

func TestValidate_BuoyantBodyAllowed(t *testing.T) {
	cfg := referenceConfig(ModeBottomTension, 50000)
	cfg.Assembly = []AssemblyItem{
		{Kind: "segment", Length: 50, QWater: 22, QAir: 28},
		{Kind: "body", PointLoadKN: -1.5},
		{Kind: "segment", Length: 200, QWater: 22, QAir: 28},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("buoyancy module rejected: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	data := `{
		"name": "shore end pull-in",
		"water_depth_m": 42,
		"chute_exit_height_m": 8,
		"chute_radius_m": 4,
		"q_water_npm": 18.5,
		"q_air_npm": 24.0,
		"ds_m": 0.25,
		"input_mode": "layback",
		"target": 120,
		"assembly": [
			{"kind": "segment", "length_m": 60, "q_water_npm": 18.5, "q_air_npm": 24.0},
			{"kind": "body", "point_load_kn": 3.2},
			{"kind": "segment", "length_m": 500, "q_water_npm": 16.0, "q_air_npm": 21.0}
		]
	}`

	path := filepath.Join(t.TempDir(), "cable.json")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Name != "shore end pull-in" || cfg.Depth != 42 || cfg.Mode != ModeLayback {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if len(cfg.Assembly) != 3 || cfg.Assembly[1].PointLoadKN != 3.2 {
		t.Errorf("assembly not parsed: %+v", cfg.Assembly)
	}
}

func TestLoadFromFile_InvalidRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"water_depth_m": -1, "input_mode": "layback"}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFromFile(path); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := &Config{}
	if got := cfg.maxSteps(); got != DefaultMaxSteps {
		t.Errorf("default max steps = %d, want %d", got, DefaultMaxSteps)
	}
	if got := cfg.clipPercentile(); got != DefaultClipPercentile {
		t.Errorf("default clip percentile = %g, want %g", got, DefaultClipPercentile)
	}
	cfg.MaxSteps = 100
	cfg.CurvatureClipPercentile = 95
	if cfg.maxSteps() != 100 || cfg.clipPercentile() != 95 {
		t.Error("explicit limits not honored")
	}
}
