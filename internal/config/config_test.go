package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg BounceConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("Unmarshal(embedded) error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultBounceConfig()) {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultBounceConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultBounceConfig().Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BounceConfig)
		substr string
	}{
		{"zero radius", func(c *BounceConfig) { c.Ball.Radius = 0 }, "ball radius"},
		{"zero speed", func(c *BounceConfig) { c.Ball.Speed = 0 }, "ball speed"},
		{"max below speed", func(c *BounceConfig) { c.Ball.MaxSpeed = 3 }, "max_speed"},
		{"zero paddle", func(c *BounceConfig) { c.Paddle.Width = 0 }, "paddle width"},
		{"negative paddle height", func(c *BounceConfig) { c.Paddle.Height = -1 }, "paddle height"},
		{"inverted cone", func(c *BounceConfig) { c.Steering.ConeMin, c.Steering.ConeMax = 1.9, 1.1 }, "cone_min"},
		{"cone past a turn", func(c *BounceConfig) { c.Steering.ConeMax = 2.5 }, "steering cone"},
		{"negative block size", func(c *BounceConfig) { c.Blocks.Width = -1 }, "block size"},
		{"chance above one", func(c *BounceConfig) { c.Bonus.Chance = 1.5 }, "bonus chance"},
		{"no lives", func(c *BounceConfig) { c.Gameplay.Lives = 0 }, "lives"},
		{"empty field", func(c *BounceConfig) { c.Field.Width = 0 }, "field size"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBounceConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, expected error")
			}
			if !strings.Contains(err.Error(), tc.substr) {
				t.Errorf("Validate() = %q, expected it to mention %q", err, tc.substr)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("ball:\n  radius: 6\nblocks:\n  rows: 2\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Ball.Radius != 6 {
		t.Errorf("Ball.Radius = %v, expected 6", cfg.Ball.Radius)
	}
	if cfg.Blocks.Rows != 2 {
		t.Errorf("Blocks.Rows = %d, expected 2", cfg.Blocks.Rows)
	}
	// Keys not in the file keep their defaults.
	if cfg.Ball.Speed != DefaultBounceConfig().Ball.Speed {
		t.Errorf("Ball.Speed = %d, expected default", cfg.Ball.Speed)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Load() with missing file = nil, expected error")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("ball:\n  radius: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() with negative radius = nil, expected error")
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte("ball: [")); err == nil {
		t.Error("Parse() malformed = nil, expected error")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestApplyBouncePreset(t *testing.T) {
	cfg := DefaultBounceConfig()
	ApplyBouncePreset(&cfg, DifficultyHard)
	if cfg.Gameplay.Lives != 2 || cfg.Ball.Speed != 9 {
		t.Errorf("hard preset = lives %d speed %d, expected 2 and 9", cfg.Gameplay.Lives, cfg.Ball.Speed)
	}
	if cfg.Difficulty.InitialLevel != 0.7 || !cfg.Difficulty.Enabled {
		t.Errorf("hard preset difficulty = %+v", cfg.Difficulty)
	}

	cfg = DefaultBounceConfig()
	ApplyBouncePreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset left progression enabled")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() after preset = %v", err)
	}
}
