package flappy

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func testBird() *Bird {
	cfg := config.DefaultFlappyConfig()
	return NewBird(150, 300, CostumeClassic, cfg.Physics)
}

func TestBirdVelocityBound(t *testing.T) {
	b := testBird()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 10000; i++ {
		if rng.Intn(8) == 0 {
			b.Jump()
		}
		b.Update(rng.Intn(2) == 0)

		if b.Velocity < -12 || b.Velocity > 8 {
			t.Fatalf("tick %d: velocity %v escaped [-12, 8]", i, b.Velocity)
		}
	}
}

func TestBirdVelocityClampsExtremes(t *testing.T) {
	b := testBird()

	b.Velocity = -40
	b.Update(true)
	if b.Velocity != -12 {
		t.Errorf("velocity should clamp to -12, got %v", b.Velocity)
	}

	b.Velocity = 40
	b.Update(false)
	if b.Velocity != 8 {
		t.Errorf("velocity should clamp to 8, got %v", b.Velocity)
	}
}

func TestBirdAsymmetricGravity(t *testing.T) {
	b := testBird()
	b.Velocity = 0
	b.Update(false)

	// At rest the bird counts as falling: fall gravity, then drag.
	expected := 0.8 * 0.995
	if math.Abs(b.Velocity-expected) > 1e-12 {
		t.Errorf("velocity after one tick from rest = %v, expected %v", b.Velocity, expected)
	}
	if math.Abs(b.Y-(300+expected)) > 1e-12 {
		t.Errorf("y should integrate the new velocity, got %v", b.Y)
	}

	rising := testBird()
	rising.Velocity = -5
	rising.Update(true)
	expected = (-5 + 0.45) * 0.995
	if math.Abs(rising.Velocity-expected) > 1e-12 {
		t.Errorf("held ascent velocity = %v, expected %v", rising.Velocity, expected)
	}
}

func TestBirdJumpCut(t *testing.T) {
	held := testBird()
	released := testBird()
	held.Jump()
	released.Jump()

	held.Update(true)
	released.Update(false)

	if released.Velocity <= held.Velocity {
		t.Errorf("releasing mid-ascent should slow the climb: held=%v released=%v", held.Velocity, released.Velocity)
	}

	expected := (-10 + 0.45 + 0.8*(1-0.6)) * 0.995
	if math.Abs(released.Velocity-expected) > 1e-12 {
		t.Errorf("jump-cut velocity = %v, expected %v", released.Velocity, expected)
	}
}

func TestBirdJump(t *testing.T) {
	b := testBird()
	b.WingPhase = 4.2
	b.Velocity = 6

	b.Jump()
	if b.Velocity != -10 {
		t.Errorf("Jump should set velocity to jump power, got %v", b.Velocity)
	}
	if b.WingPhase != 0 {
		t.Errorf("Jump should reset wing phase, got %v", b.WingPhase)
	}

	// No cooldown: a second jump on the next tick applies again.
	b.Update(true)
	b.Jump()
	if b.Velocity != -10 {
		t.Errorf("repeated Jump should reset velocity, got %v", b.Velocity)
	}
}

func TestBirdWingPhaseAdvances(t *testing.T) {
	b := testBird()
	for i := 0; i < 10; i++ {
		b.Update(false)
	}
	if math.Abs(b.WingPhase-3.0) > 1e-9 {
		t.Errorf("wing phase after 10 ticks = %v, expected 3.0", b.WingPhase)
	}
}

func TestRotationScenario(t *testing.T) {
	phys := config.DefaultFlappyConfig().Physics

	tests := []struct {
		velocity float64
		expected float64
	}{
		{-12, -20},
		{8, 90},
		{-2, 35},
		{-30, -20}, // clamped below
		{25, 90},   // clamped above
	}

	for _, tc := range tests {
		if got := RotationFor(tc.velocity, phys); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("RotationFor(%v) = %v, expected %v", tc.velocity, got, tc.expected)
		}
	}
}

func TestRotationMonotonic(t *testing.T) {
	phys := config.DefaultFlappyConfig().Physics

	prev := RotationFor(-15, phys)
	for v := -15.0; v <= 12; v += 0.25 {
		got := RotationFor(v, phys)
		if got < prev {
			t.Fatalf("rotation decreased at velocity %v: %v < %v", v, got, prev)
		}
		prev = got
	}
}

func TestBirdRotationFollowsVelocity(t *testing.T) {
	b := testBird()
	b.Velocity = -12
	if b.Rotation() != -20 {
		t.Errorf("Rotation() = %v, expected -20", b.Rotation())
	}
	b.Velocity = 8
	if b.Rotation() != 90 {
		t.Errorf("Rotation() = %v, expected 90", b.Rotation())
	}
}

func TestBirdBounds(t *testing.T) {
	b := testBird()
	r := b.Bounds()

	if r.X != 155 || r.Y != 305 || r.W != 25 || r.H != 25 {
		t.Errorf("Bounds() = %+v, expected hitbox {155 305 25 25}", r)
	}

	sprite := b.Sprite()
	if sprite.W != 35 || sprite.H != 35 {
		t.Errorf("Sprite() = %+v, expected 35x35", sprite)
	}
}
