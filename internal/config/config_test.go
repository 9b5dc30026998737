package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	if Default() != DefaultTableTennisConfig() {
		t.Error("defaults/tabletennis.yaml and DefaultTableTennisConfig() have drifted apart")
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadWithoutFilesUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultTableTennisConfig() {
		t.Error("Load(\"\") should return the defaults when no file exists")
	}
}

func TestLoadCustomPathOverridesPartially(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("match:\n  target_score: 21\nai:\n  skill: 0.5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Match.TargetScore != 21 {
		t.Errorf("TargetScore = %d, expected 21", cfg.Match.TargetScore)
	}
	if cfg.AI.Skill != 0.5 {
		t.Errorf("AI.Skill = %f, expected 0.5", cfg.AI.Skill)
	}
	// Untouched keys keep their defaults
	if cfg.Ball.Radius != 10 || cfg.Match.WinMargin != 2 {
		t.Errorf("partial config should keep defaults, got radius=%f margin=%d", cfg.Ball.Radius, cfg.Match.WinMargin)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing explicit path should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("match: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(broken); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("ball:\n  radius: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(invalid)
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Load() of invalid config should wrap ValidationError, got %v", err)
	}
	if verr.Field != "ball.radius" {
		t.Errorf("ValidationError.Field = %q, expected ball.radius", verr.Field)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TableTennisConfig)
		field  string
	}{
		{"table outside arena", func(c *TableTennisConfig) { c.Table.X = 200 }, "table"},
		{"paddle wider than table", func(c *TableTennisConfig) { c.Paddles.Width = 800 }, "paddles.width"},
		{"min speed above ceiling", func(c *TableTennisConfig) { c.Ball.MinSpeed = 20 }, "ball.min_speed"},
		{"skill above one", func(c *TableTennisConfig) { c.AI.Skill = 1.5 }, "ai.skill"},
		{"strategy chances overflow", func(c *TableTennisConfig) { c.AI.PlacementChance = 0.9 }, "ai"},
		{"zero target", func(c *TableTennisConfig) { c.Match.TargetScore = 0 }, "match"},
		{"zero duration", func(c *TableTennisConfig) { c.PowerUps.Duration = 0 }, "powerups"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTableTennisConfig()
			tc.mutate(&cfg)

			var verr ValidationError
			if err := cfg.Validate(); !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, expected ValidationError", err)
			}
			if verr.Field != tc.field {
				t.Errorf("Field = %q, expected %q", verr.Field, tc.field)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		input string
		skill float64
	}{
		{"easy", 0.7},
		{"normal", 0.82},
		{"hard", 0.92},
	}

	for _, tc := range tests {
		preset, err := ParsePreset(tc.input)
		if err != nil {
			t.Fatalf("ParsePreset(%q) failed: %v", tc.input, err)
		}
		cfg := DefaultTableTennisConfig()
		cfg.AI.Skill = 0.1
		ApplyPreset(&cfg, preset)
		if cfg.AI.Skill != tc.skill {
			t.Errorf("preset %q: skill = %f, expected %f", tc.input, cfg.AI.Skill, tc.skill)
		}
	}

	// Empty preset keeps the configured skill
	cfg := DefaultTableTennisConfig()
	cfg.AI.Skill = 0.4
	ApplyPreset(&cfg, "")
	if cfg.AI.Skill != 0.4 {
		t.Errorf("empty preset changed skill to %f", cfg.AI.Skill)
	}

	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestMarshalRoundTripsThroughLoad(t *testing.T) {
	cfg := DefaultTableTennisConfig()
	cfg.Match.TargetScore = 7

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded != cfg {
		t.Error("marshalled config did not load back identically")
	}
}

func TestDifficultyFormulas(t *testing.T) {
	d := NewDifficulty(DefaultTableTennisConfig().Difficulty)

	almost := func(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

	if got := d.InitialLevel(); got != 1 {
		t.Errorf("InitialLevel() = %f, expected 1", got)
	}
	if got := d.MaxBallSpeed(2); !almost(got, 16) {
		t.Errorf("MaxBallSpeed(2) = %f, expected 16", got)
	}
	if got := d.PredictionGain(5); !almost(got, 0.9) {
		t.Errorf("PredictionGain(5) = %f, expected 0.9", got)
	}
	if got := d.AccuracyMultiplier(10); !almost(got, 1.0) {
		t.Errorf("AccuracyMultiplier(10) = %f, expected 1.0", got)
	}
	if got := d.StepMultiplier(2); !almost(got, 1.2) {
		t.Errorf("StepMultiplier(2) = %f, expected 1.2", got)
	}
	if got := d.StepMultiplier(40); !almost(got, 1.5) {
		t.Errorf("StepMultiplier(40) = %f, expected cap 1.5", got)
	}

	if got := d.AfterPlayerPoint(1); !almost(got, 1.3) {
		t.Errorf("AfterPlayerPoint(1) = %f, expected 1.3", got)
	}
	if got := d.AfterAIPoint(2, true); !almost(got, 1.8) {
		t.Errorf("AfterAIPoint(2, true) = %f, expected 1.8", got)
	}
	if got := d.AfterAIPoint(2, false); got != 2 {
		t.Errorf("AfterAIPoint(2, false) = %f, expected unchanged 2", got)
	}
	if got := d.AfterAIPoint(1.1, true); got != 1 {
		t.Errorf("AfterAIPoint(1.1, true) = %f, expected floor 1", got)
	}
}
