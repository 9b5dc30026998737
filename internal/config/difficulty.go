package config

import "math"

// Difficulty calculates level-dependent game parameters.
// The level itself lives in the match state; Difficulty only knows how the
// level moves and what it scales.
type Difficulty struct {
	cfg DifficultyConfig
}

// NewDifficulty creates a difficulty calculator.
func NewDifficulty(cfg DifficultyConfig) Difficulty {
	return Difficulty{cfg: cfg}
}

// InitialLevel returns the starting level, never below the floor.
func (d Difficulty) InitialLevel() float64 {
	return math.Max(d.cfg.MinLevel, d.cfg.InitialLevel)
}

// AfterPlayerPoint returns the level after the player scores.
func (d Difficulty) AfterPlayerPoint(level float64) float64 {
	return level + d.cfg.PlayerPointStep
}

// AfterAIPoint returns the level after the AI scores. The level only drops
// when the player was the last to touch the ball.
func (d Difficulty) AfterAIPoint(level float64, playerTouchedLast bool) float64 {
	if !playerTouchedLast {
		return level
	}
	return math.Max(d.cfg.MinLevel, level-d.cfg.AIPointStep)
}

// MaxBallSpeed returns the ball speed ceiling at the given level.
func (d Difficulty) MaxBallSpeed(level float64) float64 {
	return d.cfg.MaxSpeedBase + level*d.cfg.MaxSpeedPerLevel
}

// PredictionGain scales the AI's projected ball travel.
func (d Difficulty) PredictionGain(level float64) float64 {
	return d.cfg.PredictionBase + level*d.cfg.PredictionPerLevel
}

// AccuracyMultiplier scales the AI skill; a higher product means a smaller
// aiming error.
func (d Difficulty) AccuracyMultiplier(level float64) float64 {
	return d.cfg.AccuracyBase + level*d.cfg.AccuracyPerLevel
}

// StepMultiplier scales the AI paddle step, capped at 1 + StepCap.
func (d Difficulty) StepMultiplier(level float64) float64 {
	return 1 + math.Min(level*d.cfg.StepPerLevel, d.cfg.StepCap)
}
