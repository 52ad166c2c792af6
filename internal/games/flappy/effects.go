package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Particle is a single spark of a collision burst.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // 1 when spawned, removed at or below 0
	Color  core.RGB
}

// Alpha returns the particle's opacity in [0, 1].
func (p Particle) Alpha() float64 {
	return core.ClampF(p.Life, 0, 1)
}

// Effects holds transient collision feedback: a particle burst and a
// screen-shake countdown. None of it affects the simulation.
type Effects struct {
	cfg       config.EffectsConfig
	rng       *rand.Rand
	shakeRng  *rand.Rand // drawn by renders, never by bursts
	shake     int
	particles []Particle
}

// NewEffects creates an empty effects state.
func NewEffects(cfg config.EffectsConfig, rng *rand.Rand) *Effects {
	return &Effects{
		cfg:      cfg,
		rng:      rng,
		shakeRng: rand.New(rand.NewSource(rng.Int63())),
	}
}

// SpawnBurst adds a burst of warm-colored particles at (x, y), flung
// sideways and upward.
func (e *Effects) SpawnBurst(x, y float64) {
	for i := 0; i < e.cfg.BurstCount; i++ {
		e.particles = append(e.particles, Particle{
			X:    x,
			Y:    y,
			VX:   (e.rng.Float64()*2 - 1) * e.cfg.SpreadX,
			VY:   -e.rng.Float64() * e.cfg.LaunchY,
			Life: 1,
			Color: core.RGB{
				R: uint8(180 + e.rng.Intn(75)),
				G: uint8(e.rng.Intn(100)),
			},
		})
	}
}

// StartShake restarts the shake countdown.
func (e *Effects) StartShake() {
	e.shake = e.cfg.ShakeFrames
}

// Update decays the shake countdown and advances every particle by one tick.
// Particles whose life runs out are dropped.
func (e *Effects) Update() {
	if e.shake > 0 {
		e.shake--
	}

	live := e.particles[:0]
	for _, p := range e.particles {
		p.X += p.VX
		p.Y += p.VY
		p.VY += e.cfg.Gravity
		p.Life -= e.cfg.LifeDecay
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	e.particles = live
}

// ShakeOffset returns a random offset within the shake amplitude while the
// countdown is running, or zero once it has expired.
func (e *Effects) ShakeOffset() (dx, dy float64) {
	if e.shake <= 0 {
		return 0, 0
	}
	amp := e.cfg.ShakeAmplitude
	return (e.shakeRng.Float64()*2 - 1) * amp, (e.shakeRng.Float64()*2 - 1) * amp
}

// Particles returns a copy of the live particles.
func (e *Effects) Particles() []Particle {
	out := make([]Particle, len(e.particles))
	copy(out, e.particles)
	return out
}
