package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: WorldConfig{
			Width:        900,
			Height:       700,
			GroundHeight: 80,
			BirdStartX:   150,
			BirdStartY:   300,
			ScrollPlay:   0.5,
			ScrollIdle:   0.2,
		},
		Physics: PhysicsConfig{
			RiseGravity:   0.45,
			FallGravity:   0.8,
			Drag:          0.995,
			JumpCutFactor: 0.6,
			JumpPower:     -10,
			MinVelocity:   -12,
			MaxVelocity:   8,
			Size:          35,
			HitboxInset:   5,
			WingStep:      0.3,
			MinRotation:   -20,
			MaxRotation:   90,
		},
		Obstacles: ObstaclesConfig{
			PipeWidth:          70,
			InitialCount:       4,
			SpawnOffset:        50,
			OffscreenThreshold: -50,
			ScoreThreshold:     120,
			TopMargin:          120,
			BottomMargin:       120,
			HitboxInset:        0,
		},
		Effects: EffectsConfig{
			BurstCount:     20,
			ShakeFrames:    20,
			ShakeAmplitude: 4,
			SpreadX:        3,
			LaunchY:        6,
			Gravity:        0.3,
			LifeDecay:      0.03,
		},
		Tiers: TiersConfig{
			Easy:   EasyProfile(),
			Normal: NormalProfile(),
			Hard:   HardProfile(),
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
