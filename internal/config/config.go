// Package config provides YAML-based tuning configuration and difficulty
// tiers for the flappy simulation.
package config

import (
	"errors"
	"fmt"
)

// FlappyConfig contains all tuning for the game.
type FlappyConfig struct {
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Effects   EffectsConfig   `yaml:"effects"`
	Tiers     TiersConfig     `yaml:"tiers"`
}

// WorldConfig defines the playfield in world units.
type WorldConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	GroundHeight int     `yaml:"ground_height"`
	BirdStartX   float64 `yaml:"bird_start_x"`
	BirdStartY   float64 `yaml:"bird_start_y"`
	ScrollPlay   float64 `yaml:"scroll_play"` // Background offset per tick while playing
	ScrollIdle   float64 `yaml:"scroll_idle"` // Background offset per tick in menus
}

// PhysicsConfig defines the bird's movement model.
type PhysicsConfig struct {
	RiseGravity   float64 `yaml:"rise_gravity"`    // Applied while ascending
	FallGravity   float64 `yaml:"fall_gravity"`    // Applied while descending
	Drag          float64 `yaml:"drag"`            // Velocity multiplier per tick
	JumpCutFactor float64 `yaml:"jump_cut_factor"` // Share of fall gravity withheld while the jump is held
	JumpPower     float64 `yaml:"jump_power"`      // Velocity set by a jump (negative = up)
	MinVelocity   float64 `yaml:"min_velocity"`
	MaxVelocity   float64 `yaml:"max_velocity"`
	Size          float64 `yaml:"size"`         // Sprite extent
	HitboxInset   float64 `yaml:"hitbox_inset"` // Margin removed from every side for collisions
	WingStep      float64 `yaml:"wing_step"`
	MinRotation   float64 `yaml:"min_rotation"` // Degrees at MinVelocity
	MaxRotation   float64 `yaml:"max_rotation"` // Degrees at MaxVelocity
}

// ObstaclesConfig defines pipe geometry and the thresholds used by the pipeline.
type ObstaclesConfig struct {
	PipeWidth          float64 `yaml:"pipe_width"`
	InitialCount       int     `yaml:"initial_count"`
	SpawnOffset        float64 `yaml:"spawn_offset"`        // Distance past the right edge for new pipes
	OffscreenThreshold float64 `yaml:"offscreen_threshold"` // Trailing edge left of this is recycled
	ScoreThreshold     float64 `yaml:"score_threshold"`     // Trailing edge left of this scores
	TopMargin          int     `yaml:"top_margin"`
	BottomMargin       int     `yaml:"bottom_margin"`
	HitboxInset        float64 `yaml:"hitbox_inset"` // Horizontal margin removed from pipe collision rects
}

// EffectsConfig defines collision feedback.
type EffectsConfig struct {
	BurstCount     int     `yaml:"burst_count"`
	ShakeFrames    int     `yaml:"shake_frames"`
	ShakeAmplitude float64 `yaml:"shake_amplitude"`
	SpreadX        float64 `yaml:"spread_x"` // Horizontal speed range is [-SpreadX, SpreadX)
	LaunchY        float64 `yaml:"launch_y"` // Vertical speed range is (-LaunchY, 0]
	Gravity        float64 `yaml:"gravity"`  // Added to particle vertical speed per tick
	LifeDecay      float64 `yaml:"life_decay"`
}

// TiersConfig holds one profile per difficulty tier.
type TiersConfig struct {
	Easy   Profile `yaml:"easy"`
	Normal Profile `yaml:"normal"`
	Hard   Profile `yaml:"hard"`
}

// Validate reports tuning values the simulation cannot work with.
func (c FlappyConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world: size must be positive, got %dx%d", c.World.Width, c.World.Height))
	}
	if c.World.GroundHeight < 0 {
		errs = append(errs, fmt.Errorf("world: ground_height must not be negative"))
	}
	if c.Physics.Drag <= 0 || c.Physics.Drag > 1 {
		errs = append(errs, fmt.Errorf("physics: drag must be in (0, 1], got %v", c.Physics.Drag))
	}
	if c.Physics.MinVelocity >= c.Physics.MaxVelocity {
		errs = append(errs, fmt.Errorf("physics: min_velocity %v must be below max_velocity %v",
			c.Physics.MinVelocity, c.Physics.MaxVelocity))
	}
	if c.Physics.Size <= 0 {
		errs = append(errs, fmt.Errorf("physics: size must be positive"))
	}
	if c.Obstacles.PipeWidth <= 0 {
		errs = append(errs, fmt.Errorf("obstacles: pipe_width must be positive"))
	}
	if c.Obstacles.InitialCount <= 0 {
		errs = append(errs, fmt.Errorf("obstacles: initial_count must be positive"))
	}
	if c.Effects.BurstCount < 0 || c.Effects.ShakeFrames < 0 {
		errs = append(errs, fmt.Errorf("effects: counts must not be negative"))
	}
	for _, tier := range Tiers() {
		if err := c.Profile(tier).Validate(); err != nil {
			errs = append(errs, fmt.Errorf("tiers.%s: %w", tier, err))
		}
	}

	return errors.Join(errs...)
}
