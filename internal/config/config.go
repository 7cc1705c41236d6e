// Package config provides YAML-based game configuration loading and
// difficulty presets for brickball.
package config

import (
	"errors"
	"fmt"
)

// BrickballConfig contains all tunables for a brickball session.
type BrickballConfig struct {
	Physics  PhysicsConfig  `yaml:"physics"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Field    FieldConfig    `yaml:"field"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Audio    AudioConfig    `yaml:"audio"`
}

// PhysicsConfig defines ball motion parameters. Distances are world units,
// times are seconds.
type PhysicsConfig struct {
	NormalSpeed        float64 `yaml:"normal_speed"`
	WarpSpeed          float64 `yaml:"warp_speed"`
	BallRadius         float64 `yaml:"ball_radius"`
	ReflectionCooldown float64 `yaml:"reflection_cooldown"`
	SpinPower          float64 `yaml:"spin_power"`
	RenormalizeSpin    bool    `yaml:"renormalize_spin"`
	LaunchSpread       float64 `yaml:"launch_spread"` // Max |x| of the launch direction before normalizing
}

// PaddleConfig defines paddle geometry and steering.
type PaddleConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Y             float64 `yaml:"y"`
	BallOffset    float64 `yaml:"ball_offset"` // Height of the parked ball above the paddle
	KeyboardSpeed float64 `yaml:"keyboard_speed"`
	MouseSpeed    float64 `yaml:"mouse_speed"`
	MinX          float64 `yaml:"min_x"`
	MaxX          float64 `yaml:"max_x"`
}

// FieldConfig defines the play field bounds and the block layout.
type FieldConfig struct {
	HalfWidth   float64 `yaml:"half_width"` // Side walls sit at ±HalfWidth
	Ceiling     float64 `yaml:"ceiling"`
	DeathLine   float64 `yaml:"death_line"` // Top of the death zone below the paddle
	BlockRows   int     `yaml:"block_rows"`
	BlockCols   int     `yaml:"block_cols"`
	BlockWidth  float64 `yaml:"block_width"`
	BlockHeight float64 `yaml:"block_height"`
	BlockGap    float64 `yaml:"block_gap"`
	BlockTop    float64 `yaml:"block_top"` // Center Y of the first (red) row
}

// GameplayConfig defines session rules.
type GameplayConfig struct {
	Lives     int     `yaml:"lives"`
	Countdown float64 `yaml:"countdown"`
}

// AudioConfig defines synthesized sound settings.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	SampleRate   int     `yaml:"sample_rate"`
	MasterVolume float64 `yaml:"master_volume"`
}

// BlockTotal returns how many blocks a full board holds.
func (c FieldConfig) BlockTotal() int {
	return c.BlockRows * c.BlockCols
}

// Validate reports configuration values the simulation cannot run with.
func (c BrickballConfig) Validate() error {
	var errs []error
	if c.Physics.NormalSpeed <= 0 {
		errs = append(errs, fmt.Errorf("physics.normal_speed must be positive, got %v", c.Physics.NormalSpeed))
	}
	if c.Physics.WarpSpeed <= 0 {
		errs = append(errs, fmt.Errorf("physics.warp_speed must be positive, got %v", c.Physics.WarpSpeed))
	}
	if c.Physics.BallRadius <= 0 {
		errs = append(errs, fmt.Errorf("physics.ball_radius must be positive, got %v", c.Physics.BallRadius))
	}
	if c.Physics.ReflectionCooldown < 0 {
		errs = append(errs, fmt.Errorf("physics.reflection_cooldown must not be negative, got %v", c.Physics.ReflectionCooldown))
	}
	if c.Paddle.Width <= 0 {
		errs = append(errs, fmt.Errorf("paddle.width must be positive, got %v", c.Paddle.Width))
	}
	if c.Paddle.MinX > c.Paddle.MaxX {
		errs = append(errs, fmt.Errorf("paddle.min_x %v exceeds paddle.max_x %v", c.Paddle.MinX, c.Paddle.MaxX))
	}
	if c.Field.HalfWidth <= 0 || c.Field.Ceiling <= c.Field.DeathLine {
		errs = append(errs, errors.New("field bounds are empty"))
	}
	if c.Field.BlockTotal() <= 0 {
		errs = append(errs, fmt.Errorf("field needs at least one block, got %dx%d", c.Field.BlockRows, c.Field.BlockCols))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be positive, got %d", c.Gameplay.Lives))
	}
	if c.Gameplay.Countdown < 0 {
		errs = append(errs, fmt.Errorf("gameplay.countdown must not be negative, got %v", c.Gameplay.Countdown))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid brickball config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty maps a CLI value to a preset. Empty means no preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}
