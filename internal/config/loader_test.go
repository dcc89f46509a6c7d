package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) failed: %v", err)
	}
	if cfg != DefaultDragonConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultDragonConfig())
	}
}

func TestLoadDragonFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := LoadDragon("")
	if err != nil {
		t.Fatalf("LoadDragon() failed: %v", err)
	}
	if cfg != DefaultDragonConfig() {
		t.Errorf("LoadDragon() = %+v, expected defaults", cfg)
	}
}

func TestLoadDragonLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("timing:\n  frame_duration_ms: 40\n")
	if err := os.WriteFile(filepath.Join(dir, "configs", "dragon.yaml"), data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDragon("")
	if err != nil {
		t.Fatalf("LoadDragon() failed: %v", err)
	}
	if cfg.Timing.FrameDurationMs != 40 {
		t.Errorf("FrameDurationMs = %g, expected 40", cfg.Timing.FrameDurationMs)
	}
}

func TestLoadDragonCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  flap_velocity: -3.5\nobstacles:\n  base_size: 12\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDragon(path)
	if err != nil {
		t.Fatalf("LoadDragon(%q) failed: %v", path, err)
	}

	if cfg.Physics.FlapVelocity != -3.5 {
		t.Errorf("FlapVelocity = %g, expected -3.5", cfg.Physics.FlapVelocity)
	}
	if cfg.Obstacles.BaseSize != 12 {
		t.Errorf("BaseSize = %d, expected 12", cfg.Obstacles.BaseSize)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.Gravity != 0.2 {
		t.Errorf("Gravity = %g, expected default 0.2", cfg.Physics.Gravity)
	}
	if cfg.Screen.Width != 80 || cfg.Screen.Height != 50 {
		t.Errorf("Screen = %dx%d, expected default 80x50", cfg.Screen.Width, cfg.Screen.Height)
	}
}

func TestLoadDragonCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadDragon(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadDragon should fail for a missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("screen: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDragon(bad); err == nil {
		t.Error("LoadDragon should fail for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("obstacles:\n  gap_min: 40\n  gap_max: 10\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadDragon(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadDragon error = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DragonConfig)
		valid  bool
	}{
		{"defaults", func(*DragonConfig) {}, true},
		{"zero width", func(c *DragonConfig) { c.Screen.Width = 0 }, false},
		{"negative height", func(c *DragonConfig) { c.Screen.Height = -1 }, false},
		{"zero frame duration", func(c *DragonConfig) { c.Timing.FrameDurationMs = 0 }, false},
		{"downward flap", func(c *DragonConfig) { c.Physics.FlapVelocity = 1 }, false},
		{"empty gap range", func(c *DragonConfig) { c.Obstacles.GapMax = c.Obstacles.GapMin }, false},
		{"zero min size", func(c *DragonConfig) { c.Obstacles.MinSize = 0 }, false},
		{"base below min", func(c *DragonConfig) { c.Obstacles.BaseSize = 1 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDragonConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestGapSize(t *testing.T) {
	o := DefaultDragonConfig().Obstacles

	tests := []struct {
		score, expected int
	}{
		{0, 20},
		{1, 19},
		{10, 10},
		{17, 3},
		{18, 2},
		{19, 2},
		{500, 2},
	}

	for _, tc := range tests {
		if got := o.GapSize(tc.score); got != tc.expected {
			t.Errorf("GapSize(%d) = %d, expected %d", tc.score, got, tc.expected)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultDragonConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if cfg != DefaultDragonConfig() {
		t.Errorf("round trip = %+v, expected defaults", cfg)
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
