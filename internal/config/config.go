// Package config provides YAML-based game configuration loading and
// difficulty management for the bounce game.
package config

import (
	"errors"
	"fmt"
)

// BounceConfig contains all configuration for the bouncing-ball game.
type BounceConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Ball       BallConfig       `yaml:"ball"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Steering   SteeringConfig   `yaml:"steering"`
	Walls      WallsConfig      `yaml:"walls"`
	Blocks     BlocksConfig     `yaml:"blocks"`
	Bonus      BonusConfig      `yaml:"bonus"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the playing area in world units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines ball parameters.
type BallConfig struct {
	Radius    float64 `yaml:"radius"`
	Speed     int     `yaml:"speed"`     // Unit sub-steps per tick
	MaxSpeed  int     `yaml:"max_speed"` // Cap applied by difficulty progression
	Direction float64 `yaml:"direction"` // Serve direction, multiples of π
}

// PaddleConfig defines the player paddle.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`  // Units moved per tick while a key is held
	Offset float64 `yaml:"offset"` // Distance of the paddle's top from the field bottom
}

// SteeringConfig bounds paddle rebound directions. Values are multiples of π.
type SteeringConfig struct {
	ConeMin float64 `yaml:"cone_min"`
	ConeMax float64 `yaml:"cone_max"`
}

// WallsConfig selects which field edges reflect balls.
type WallsConfig struct {
	Left  bool `yaml:"left"`
	Right bool `yaml:"right"`
	Top   bool `yaml:"top"`
}

// BlocksConfig defines the block grid.
type BlocksConfig struct {
	AreaX    float64 `yaml:"area_x"`
	AreaY    float64 `yaml:"area_y"`
	AreaW    float64 `yaml:"area_width"`
	AreaH    float64 `yaml:"area_height"`
	Columns  int     `yaml:"columns"`
	Rows     int     `yaml:"rows"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	HardRows int     `yaml:"hard_rows"` // Top rows that take two hits
	Points   int     `yaml:"points"`
}

// BonusConfig defines falling bonus items.
type BonusConfig struct {
	Chance    float64 `yaml:"chance"`
	FallSpeed float64 `yaml:"fall_speed"`
	Size      float64 `yaml:"size"`
}

// GameplayConfig defines lives and serving.
type GameplayConfig struct {
	Lives      int `yaml:"lives"`
	ServeDelay int `yaml:"serve_delay"` // Ticks before a new ball is served
	MaxBalls   int `yaml:"max_balls"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
	PaddleShrink    float64 `yaml:"paddle_shrink"`    // Paddle width removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate checks the geometric invariants the physics engine relies on.
// All violations are joined into one error.
func (c BounceConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Field.Width > 0 && c.Field.Height > 0, "field size must be positive, got %vx%v", c.Field.Width, c.Field.Height)
	check(c.Ball.Radius > 0, "ball radius must be positive, got %v", c.Ball.Radius)
	check(c.Ball.Speed >= 1, "ball speed must be at least 1, got %d", c.Ball.Speed)
	check(c.Ball.MaxSpeed == 0 || c.Ball.MaxSpeed >= c.Ball.Speed, "ball max_speed %d below speed %d", c.Ball.MaxSpeed, c.Ball.Speed)
	check(c.Paddle.Width > 0, "paddle width must be positive, got %v", c.Paddle.Width)
	check(c.Paddle.Height >= 0, "paddle height must not be negative, got %v", c.Paddle.Height)
	check(c.Paddle.Width <= c.Field.Width, "paddle width %v exceeds field width %v", c.Paddle.Width, c.Field.Width)
	check(c.Steering.ConeMin >= 0 && c.Steering.ConeMax < 2, "steering cone must lie in [0, 2), got [%v, %v]", c.Steering.ConeMin, c.Steering.ConeMax)
	check(c.Steering.ConeMin < c.Steering.ConeMax, "steering cone_min %v must be below cone_max %v", c.Steering.ConeMin, c.Steering.ConeMax)
	check(c.Blocks.Columns >= 0 && c.Blocks.Rows >= 0, "block grid must not be negative, got %dx%d", c.Blocks.Columns, c.Blocks.Rows)
	check(c.Blocks.Width >= 0 && c.Blocks.Height >= 0, "block size must not be negative, got %vx%v", c.Blocks.Width, c.Blocks.Height)
	check(c.Blocks.AreaW >= 0 && c.Blocks.AreaH >= 0, "block area must not be negative, got %vx%v", c.Blocks.AreaW, c.Blocks.AreaH)
	check(c.Bonus.Chance >= 0 && c.Bonus.Chance <= 1, "bonus chance must be in [0, 1], got %v", c.Bonus.Chance)
	check(c.Bonus.Size >= 0, "bonus size must not be negative, got %v", c.Bonus.Size)
	check(c.Gameplay.Lives >= 1, "lives must be at least 1, got %d", c.Gameplay.Lives)
	check(c.Gameplay.ServeDelay >= 0, "serve_delay must not be negative, got %d", c.Gameplay.ServeDelay)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
}
