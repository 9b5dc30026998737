package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ValidationError describes a configuration value that cannot be simulated.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Load loads the table tennis configuration.
// Search order: customPath -> ~/.neonpong/config.yaml -> ./configs/tabletennis.yaml -> embedded default.
// Only an explicit customPath may fail; discovered files that do not parse
// or validate are skipped.
func Load(customPath string) (TableTennisConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: invalid %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "tabletennis.yaml")} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	return Default(), nil
}

// Default returns the embedded default configuration.
func Default() TableTennisConfig {
	cfg := DefaultTableTennisConfig()
	if err := yaml.Unmarshal(defaultTableTennisYAML, &cfg); err != nil {
		return DefaultTableTennisConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// loadFile reads a YAML file over the defaults, so partial files only
// override the keys they name.
func loadFile(path string) (TableTennisConfig, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".neonpong", filename)
}

// ApplyPreset sets the AI skill from a difficulty preset.
// An empty preset keeps the configured skill.
func ApplyPreset(cfg *TableTennisConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.AI.Skill = SkillForPreset(preset)
}

// Marshal renders the configuration as YAML.
func Marshal(cfg TableTennisConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// Validate checks that the configuration describes a playable table.
func (c TableTennisConfig) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return ValidationError{Field: "arena", Message: "width and height must be positive"}
	case c.Table.Width <= 0 || c.Table.Height <= 0:
		return ValidationError{Field: "table", Message: "width and height must be positive"}
	case c.Table.X < 0 || c.Table.Y < 0 ||
		c.Table.X+c.Table.Width > c.Arena.Width || c.Table.Y+c.Table.Height > c.Arena.Height:
		return ValidationError{Field: "table", Message: "table must lie inside the arena"}
	case c.Paddles.Width <= 0 || c.Paddles.Width >= c.Table.Width:
		return ValidationError{Field: "paddles.width", Message: "must be positive and narrower than the table"}
	case c.Paddles.Height <= 0:
		return ValidationError{Field: "paddles.height", Message: "must be positive"}
	case c.Paddles.MaxEnergy <= 0:
		return ValidationError{Field: "paddles.max_energy", Message: "must be positive"}
	case c.Ball.Radius <= 0:
		return ValidationError{Field: "ball.radius", Message: "must be positive"}
	case c.Ball.TrailLength < 0:
		return ValidationError{Field: "ball.trail_length", Message: "must not be negative"}
	case c.Ball.MinSpeed <= 0 || c.Ball.MinSpeed >= c.Difficulty.MaxSpeedBase:
		return ValidationError{Field: "ball.min_speed", Message: "must be positive and below difficulty.max_speed_base"}
	case c.AI.Skill < 0 || c.AI.Skill > 1:
		return ValidationError{Field: "ai.skill", Message: "must be within [0, 1]"}
	case c.AI.AggressiveChance < 0 || c.AI.PlacementChance < 0 || c.AI.AggressiveChance+c.AI.PlacementChance > 1:
		return ValidationError{Field: "ai", Message: "strategy chances must be non-negative and sum to at most 1"}
	case c.PowerUps.SpawnChance < 0 || c.PowerUps.SpawnChance > 1:
		return ValidationError{Field: "powerups.spawn_chance", Message: "must be within [0, 1]"}
	case c.PowerUps.MaxAlive < 0 || c.PowerUps.Lifetime <= 0 || c.PowerUps.Duration <= 0:
		return ValidationError{Field: "powerups", Message: "max_alive must not be negative, lifetime and duration must be positive"}
	case c.Match.TargetScore <= 0 || c.Match.WinMargin <= 0:
		return ValidationError{Field: "match", Message: "target_score and win_margin must be positive"}
	case c.Difficulty.MinLevel < 0:
		return ValidationError{Field: "difficulty.min_level", Message: "must not be negative"}
	}
	return nil
}
