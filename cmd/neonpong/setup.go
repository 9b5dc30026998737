package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-pong/internal/config"
)

// loadGameConfig loads the configuration and applies --difficulty.
// It returns the preset name recorded with finished matches.
func loadGameConfig() (config.TableTennisConfig, string, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, "", err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, "", err
	}
	config.ApplyPreset(&cfg, preset)
	if preset == "" {
		preset = config.DifficultyNormal
		if cfg.AI.Skill != config.SkillForPreset(preset) {
			preset = "custom"
		}
	}

	return cfg, string(preset), cfg.Validate()
}

// openLogger returns a logger writing to --log-file, or a discarding
// logger when no file was requested. The returned func closes the file.
func openLogger(prefix string) (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
