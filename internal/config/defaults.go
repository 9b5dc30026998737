package config

import (
	_ "embed"
)

//go:embed defaults/tabletennis.yaml
var defaultTableTennisYAML []byte

// DefaultTableTennisConfig returns the default configuration.
// It mirrors defaults/tabletennis.yaml and is used when the embedded file
// cannot be parsed.
func DefaultTableTennisConfig() TableTennisConfig {
	return TableTennisConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Table: TableConfig{
			X:          50,
			Y:          220,
			Width:      700,
			Height:     160,
			NetHeight:  25,
			GlowFrames: 30,
		},
		Paddles: PaddlesConfig{
			Width:        90,
			Height:       14,
			PlayerOffset: 50,
			AIOffset:     64,
			MaxEnergy:    100,
		},
		Ball: BallConfig{
			Radius:          10,
			TrailLength:     12,
			MinSpeed:        4,
			SpinCoupling:    0.15,
			SpinDecay:       0.98,
			WallRestitution: 1.02,
			NetRestitution:  0.95,
			NetClearance:    3,
			PaddleRepulsion: 0.8,
			ScoreMargin:     50,
			ServeSpeedX:     SpeedRange{Min: 4, Spread: 2},
			ServeSpeedY:     SpeedRange{Min: 3, Spread: 2},
		},
		Player: PlayerConfig{
			Speed:               9,
			Smoothing:           0.18,
			EnergyGain:          0.5,
			EnergyMoveThreshold: 2,
			HitOffsetKick:       3,
			InputSpeedScale:     0.4,
			InputSpeedKick:      0.4,
			HitOffsetSpin:       0.08,
			InputSpeedSpin:      0.02,
			PowerHitThreshold:   80,
			PowerHitBoost:       1.2,
			PowerHitCost:        20,
		},
		AI: AIConfig{
			Speed:               6.5,
			Skill:               0.82,
			DeadZone:            8,
			ErrorRange:          120,
			EnergyGain:          0.3,
			EnergyMoveThreshold: 5,
			AggressiveChance:    0.3,
			PlacementChance:     0.4,
			AggressiveKick:      4,
			AggressiveSpin:      0.12,
			PlacementKick:       3,
			PlacementSpin:       0.1,
			PowerThreshold:      70,
			PowerBoost:          1.15,
			PowerCost:           15,
		},
		PowerUps: PowerUpsConfig{
			MaxAlive:    2,
			SpawnChance: 0.003,
			Radius:      15,
			Lifetime:    300,
			Duration:    180,
			SpeedBoost:  1.5,
			SizeScale:   1.5,
			FreezeScale: 0.3,
		},
		Particles: ParticlesConfig{
			BurstSize:   12,
			ScoreBurst:  25,
			MaxVelocity: 5,
			Drag:        0.97,
			MinDecay:    0.01,
			DecaySpread: 0.02,
			MinSize:     3,
			SizeSpread:  6,
			MaxSpin:     0.1,
		},
		Match: MatchConfig{
			TargetScore: 11,
			WinMargin:   2,
		},
		Difficulty: DifficultyConfig{
			InitialLevel:       1,
			MinLevel:           1,
			PlayerPointStep:    0.3,
			AIPointStep:        0.2,
			MaxSpeedBase:       15,
			MaxSpeedPerLevel:   0.5,
			PredictionBase:     0.8,
			PredictionPerLevel: 0.02,
			AccuracyBase:       0.7,
			AccuracyPerLevel:   0.03,
			StepPerLevel:       0.1,
			StepCap:            0.5,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTableTennisYAML
}
