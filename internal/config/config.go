// Package config provides YAML-based game configuration loading and
// difficulty management for the table tennis simulation.
package config

// TableTennisConfig contains all configuration for the table tennis game.
// Distances are simulation units, durations are ticks (60 ticks = 1 second).
type TableTennisConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Table      TableConfig      `yaml:"table"`
	Paddles    PaddlesConfig    `yaml:"paddles"`
	Ball       BallConfig       `yaml:"ball"`
	Player     PlayerConfig     `yaml:"player"`
	AI         AIConfig         `yaml:"ai"`
	PowerUps   PowerUpsConfig   `yaml:"powerups"`
	Particles  ParticlesConfig  `yaml:"particles"`
	Match      MatchConfig      `yaml:"match"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArenaConfig is the full simulation surface. The ball is scored once it
// leaves this area vertically by more than Ball.ScoreMargin.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// TableConfig places the table inside the arena.
type TableConfig struct {
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	NetHeight  float64 `yaml:"net_height"`  // Net overhang above and below the table
	GlowFrames int     `yaml:"glow_frames"` // Border glow after a wall hit
}

// PaddlesConfig defines the shared paddle geometry.
type PaddlesConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	PlayerOffset float64 `yaml:"player_offset"` // Gap below the table bottom
	AIOffset     float64 `yaml:"ai_offset"`     // Distance above the table top
	MaxEnergy    float64 `yaml:"max_energy"`
}

// BallConfig defines ball physics parameters.
type BallConfig struct {
	Radius          float64    `yaml:"radius"`
	TrailLength     int        `yaml:"trail_length"`
	MinSpeed        float64    `yaml:"min_speed"`
	SpinCoupling    float64    `yaml:"spin_coupling"`
	SpinDecay       float64    `yaml:"spin_decay"`
	WallRestitution float64    `yaml:"wall_restitution"`
	NetRestitution  float64    `yaml:"net_restitution"`
	NetClearance    float64    `yaml:"net_clearance"`
	PaddleRepulsion float64    `yaml:"paddle_repulsion"`
	ScoreMargin     float64    `yaml:"score_margin"`
	ServeSpeedX     SpeedRange `yaml:"serve_speed_x"`
	ServeSpeedY     SpeedRange `yaml:"serve_speed_y"`
}

// SpeedRange is a magnitude drawn uniformly from [Min, Min+Spread).
type SpeedRange struct {
	Min    float64 `yaml:"min"`
	Spread float64 `yaml:"spread"`
}

// PlayerConfig defines the pointer-controlled paddle and its shots.
type PlayerConfig struct {
	Speed               float64 `yaml:"speed"`
	Smoothing           float64 `yaml:"smoothing"` // Fraction of the pointer gap closed per tick
	EnergyGain          float64 `yaml:"energy_gain"`
	EnergyMoveThreshold float64 `yaml:"energy_move_threshold"`
	HitOffsetKick       float64 `yaml:"hit_offset_kick"`
	InputSpeedScale     float64 `yaml:"input_speed_scale"`
	InputSpeedKick      float64 `yaml:"input_speed_kick"`
	HitOffsetSpin       float64 `yaml:"hit_offset_spin"`
	InputSpeedSpin      float64 `yaml:"input_speed_spin"`
	PowerHitThreshold   float64 `yaml:"power_hit_threshold"`
	PowerHitBoost       float64 `yaml:"power_hit_boost"`
	PowerHitCost        float64 `yaml:"power_hit_cost"`
}

// AIConfig defines the scripted opponent.
type AIConfig struct {
	Speed               float64 `yaml:"speed"`
	Skill               float64 `yaml:"skill"` // 0-1, higher aims better
	DeadZone            float64 `yaml:"dead_zone"`
	ErrorRange          float64 `yaml:"error_range"`
	EnergyGain          float64 `yaml:"energy_gain"`
	EnergyMoveThreshold float64 `yaml:"energy_move_threshold"`
	AggressiveChance    float64 `yaml:"aggressive_chance"`
	PlacementChance     float64 `yaml:"placement_chance"`
	AggressiveKick      float64 `yaml:"aggressive_kick"`
	AggressiveSpin      float64 `yaml:"aggressive_spin"`
	PlacementKick       float64 `yaml:"placement_kick"`
	PlacementSpin       float64 `yaml:"placement_spin"`
	PowerThreshold      float64 `yaml:"power_threshold"`
	PowerBoost          float64 `yaml:"power_boost"`
	PowerCost           float64 `yaml:"power_cost"`
}

// PowerUpsConfig defines power-up spawning and effects.
type PowerUpsConfig struct {
	MaxAlive    int     `yaml:"max_alive"`
	SpawnChance float64 `yaml:"spawn_chance"` // Per tick while below MaxAlive
	Radius      float64 `yaml:"radius"`
	Lifetime    int     `yaml:"lifetime"` // Ticks before an uncollected power-up vanishes
	Duration    int     `yaml:"duration"` // Ticks an activated effect lasts
	SpeedBoost  float64 `yaml:"speed_boost"`
	SizeScale   float64 `yaml:"size_scale"`
	FreezeScale float64 `yaml:"freeze_scale"`
}

// ParticlesConfig defines the cosmetic particle bursts.
type ParticlesConfig struct {
	BurstSize   int     `yaml:"burst_size"` // Particles per unit of intensity
	ScoreBurst  int     `yaml:"score_burst"`
	MaxVelocity float64 `yaml:"max_velocity"`
	Drag        float64 `yaml:"drag"`
	MinDecay    float64 `yaml:"min_decay"`
	DecaySpread float64 `yaml:"decay_spread"`
	MinSize     float64 `yaml:"min_size"`
	SizeSpread  float64 `yaml:"size_spread"`
	MaxSpin     float64 `yaml:"max_spin"`
}

// MatchConfig defines the win condition.
type MatchConfig struct {
	TargetScore int `yaml:"target_score"`
	WinMargin   int `yaml:"win_margin"`
}

// DifficultyConfig defines the continuous level and everything it scales.
type DifficultyConfig struct {
	InitialLevel       float64 `yaml:"initial_level"`
	MinLevel           float64 `yaml:"min_level"`
	PlayerPointStep    float64 `yaml:"player_point_step"` // Level gained when the player scores
	AIPointStep        float64 `yaml:"ai_point_step"`     // Level lost when the player's return goes out
	MaxSpeedBase       float64 `yaml:"max_speed_base"`
	MaxSpeedPerLevel   float64 `yaml:"max_speed_per_level"`
	PredictionBase     float64 `yaml:"prediction_base"`
	PredictionPerLevel float64 `yaml:"prediction_per_level"`
	AccuracyBase       float64 `yaml:"accuracy_base"`
	AccuracyPerLevel   float64 `yaml:"accuracy_per_level"`
	StepPerLevel       float64 `yaml:"step_per_level"`
	StepCap            float64 `yaml:"step_cap"`
}

// DifficultyPreset represents a named AI skill.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. Empty input yields "" and
// leaves the configured skill untouched.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", ValidationError{Field: "difficulty", Message: "unknown preset " + s + " (want easy, normal or hard)"}
	}
}

// SkillForPreset returns the AI skill constant for a difficulty preset.
func SkillForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.7
	case DifficultyHard:
		return 0.92
	default:
		return 0.82
	}
}
