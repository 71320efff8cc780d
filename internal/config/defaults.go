package config

import (
	_ "embed"
)

//go:embed defaults/bounce.yaml
var defaultBounceYAML []byte

// DefaultBounceConfig returns the default bounce configuration.
func DefaultBounceConfig() BounceConfig {
	return BounceConfig{
		Field: FieldConfig{
			Width:  1000,
			Height: 600,
		},
		Ball: BallConfig{
			Radius:    10,
			Speed:     7,
			MaxSpeed:  14,
			Direction: 0.5,
		},
		Paddle: PaddleConfig{
			Width:  80,
			Height: 10,
			Speed:  8,
			Offset: 40,
		},
		Steering: SteeringConfig{
			ConeMin: 1.1,
			ConeMax: 1.9,
		},
		Walls: WallsConfig{
			Left:  true,
			Right: true,
			Top:   true,
		},
		Blocks: BlocksConfig{
			AreaX:    20,
			AreaY:    40,
			AreaW:    960,
			AreaH:    200,
			Columns:  16,
			Rows:     8,
			Width:    56,
			Height:   20,
			HardRows: 2,
			Points:   10,
		},
		Bonus: BonusConfig{
			Chance:    0.1,
			FallSpeed: 1,
			Size:      20,
		},
		Gameplay: GameplayConfig{
			Lives:      3,
			ServeDelay: 60,
			MaxBalls:   8,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				PaddleShrink:    20,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBounceYAML
}
