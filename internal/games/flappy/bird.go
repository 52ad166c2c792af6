package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Bird is the player-controlled entity. It only moves vertically; the
// world scrolls past it.
type Bird struct {
	X, Y      float64
	Velocity  float64
	Costume   Costume
	WingPhase float64 // Cosmetic flap animation phase

	phys config.PhysicsConfig
}

// NewBird creates a bird at rest at (x, y).
func NewBird(x, y float64, costume Costume, phys config.PhysicsConfig) *Bird {
	return &Bird{
		X:       x,
		Y:       y,
		Costume: costume,
		phys:    phys,
	}
}

// Update advances the bird by one tick.
// held reports whether the jump control is still down; releasing it while
// ascending adds extra gravity for this tick so the jump is cut short.
func (b *Bird) Update(held bool) {
	ascending := b.Velocity < 0

	gravity := b.phys.FallGravity
	if ascending {
		gravity = b.phys.RiseGravity
		if !held {
			gravity += b.phys.FallGravity * (1 - b.phys.JumpCutFactor)
		}
	}

	b.Velocity += gravity
	b.Velocity *= b.phys.Drag
	b.Velocity = core.ClampF(b.Velocity, b.phys.MinVelocity, b.phys.MaxVelocity)
	b.Y += b.Velocity

	b.WingPhase += b.phys.WingStep
}

// Jump sets the upward velocity unconditionally and restarts the wing animation.
func (b *Bird) Jump() {
	b.Velocity = b.phys.JumpPower
	b.WingPhase = 0
}

// Rotation returns the visual tilt in degrees derived from the current velocity.
func (b *Bird) Rotation() float64 {
	return RotationFor(b.Velocity, b.phys)
}

// RotationFor maps velocity linearly from [MinVelocity, MaxVelocity] to
// [MinRotation, MaxRotation]. Velocities outside the domain are clamped first.
func RotationFor(velocity float64, phys config.PhysicsConfig) float64 {
	span := phys.MaxVelocity - phys.MinVelocity
	if span <= 0 {
		return phys.MinRotation
	}
	t := core.ClampF((velocity-phys.MinVelocity)/span, 0, 1)
	return phys.MinRotation + t*(phys.MaxRotation-phys.MinRotation)
}

// Size returns the rendered sprite extent.
func (b *Bird) Size() float64 {
	return b.phys.Size
}

// Sprite returns the full rendered extent of the bird.
func (b *Bird) Sprite() core.Rect {
	return core.NewRect(b.X, b.Y, b.phys.Size, b.phys.Size)
}

// Bounds returns the collision hitbox, inset from the sprite on every side.
func (b *Bird) Bounds() core.Rect {
	return b.Sprite().Inset(b.phys.HitboxInset)
}
