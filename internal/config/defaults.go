package config

import (
	_ "embed"
)

//go:embed defaults/brickball.yaml
var defaultBrickballYAML []byte

// DefaultBrickballConfig returns the built-in brickball configuration.
// It mirrors defaults/brickball.yaml and backs it up if the embed fails to parse.
func DefaultBrickballConfig() BrickballConfig {
	return BrickballConfig{
		Physics: PhysicsConfig{
			NormalSpeed:        3.0,
			WarpSpeed:          5.0,
			BallRadius:         0.2,
			ReflectionCooldown: 0.01,
			SpinPower:          0.25,
			RenormalizeSpin:    false,
			LaunchSpread:       1.0,
		},
		Paddle: PaddleConfig{
			Width:         2.5,
			Height:        0.3,
			Y:             -4.5,
			BallOffset:    0.5,
			KeyboardSpeed: 10.0,
			MouseSpeed:    25.0,
			MinX:          -6.25,
			MaxX:          6.25,
		},
		Field: FieldConfig{
			HalfWidth:   7.5,
			Ceiling:     6.0,
			DeathLine:   -5.5,
			BlockRows:   5,
			BlockCols:   9,
			BlockWidth:  1.5,
			BlockHeight: 0.5,
			BlockGap:    0.1,
			BlockTop:    5.0,
		},
		Gameplay: GameplayConfig{
			Lives:     3,
			Countdown: 3.0,
		},
		Audio: AudioConfig{
			Enabled:      true,
			SampleRate:   44100,
			MasterVolume: 0.5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBrickballYAML
}
