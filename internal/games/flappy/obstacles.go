package flappy

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Pipe represents a vertical obstacle with a gap for the bird to pass through.
type Pipe struct {
	X         float64 // Horizontal position (left edge)
	TopHeight float64 // Height of the top segment; the gap starts here
	Gap       float64 // Height of the passable gap
	Width     float64
	Speed     float64 // Leftward movement per tick
	Scored    bool    // Set once when the trailing edge passes the score threshold
}

// BottomY returns the y position where the bottom segment starts.
func (p Pipe) BottomY() float64 {
	return p.TopHeight + p.Gap
}

// TrailingEdge returns the x position of the pipe's right edge.
func (p Pipe) TrailingEdge() float64 {
	return p.X + p.Width
}

// TopRect returns the collision rectangle for the top segment.
// inset is removed from both horizontal sides.
func (p Pipe) TopRect(inset float64) core.Rect {
	return core.NewRect(p.X+inset, 0, p.Width-2*inset, p.TopHeight)
}

// BottomRect returns the collision rectangle for the bottom segment,
// which extends without limit below the gap.
func (p Pipe) BottomRect(inset float64) core.Rect {
	return core.NewRect(p.X+inset, p.BottomY(), p.Width-2*inset, math.Inf(1))
}

// PipeManager handles spawning, movement, scoring and removal of pipes.
type PipeManager struct {
	pipes     []Pipe
	rng       *rand.Rand
	profile   config.Profile
	obstacles config.ObstaclesConfig
	screenW   int
	screenH   int
	speed     float64       // Current effective speed, ratchets upward
	rampTimer time.Duration // Time accumulated toward the next speedup
	score     int
}

// NewPipeManager creates a pipe manager and places the initial pipes.
// rng drives gap placement; pass a seeded source for reproducible layouts.
func NewPipeManager(profile config.Profile, obstacles config.ObstaclesConfig, screenW, screenH int, rng *rand.Rand) *PipeManager {
	pm := &PipeManager{
		pipes:     make([]Pipe, 0, 8),
		rng:       rng,
		obstacles: obstacles,
		screenW:   screenW,
		screenH:   screenH,
	}
	pm.Reset(profile)
	return pm
}

// Reset clears all pipes, restores the base speed and score, and places
// the initial pipes for profile.
func (pm *PipeManager) Reset(profile config.Profile) {
	pm.profile = profile
	pm.pipes = pm.pipes[:0]
	pm.speed = profile.BaseSpeed
	pm.rampTimer = 0
	pm.score = 0

	for i := 0; i < pm.obstacles.InitialCount; i++ {
		x := float64(pm.screenW) + float64(i)*profile.Spacing
		pm.pipes = append(pm.pipes, pm.newPipe(x))
	}
}

// SetWindowSize updates the world dimensions used for future spawns.
func (pm *PipeManager) SetWindowSize(screenW, screenH int) {
	pm.screenW = screenW
	pm.screenH = screenH
}

// Update advances the pipes by one tick of dt.
func (pm *PipeManager) Update(dt time.Duration) {
	pm.rampTimer += dt
	if pm.rampTimer >= pm.profile.SecondsPerSpeedup {
		pm.speed += pm.profile.SpeedupDelta
		pm.rampTimer = 0
	}

	for i := range pm.pipes {
		pm.pipes[i].Speed = pm.speed
		pm.pipes[i].X -= pm.speed
	}

	// Remove pipes that have moved off the left side
	live := pm.pipes[:0]
	for _, p := range pm.pipes {
		if p.TrailingEdge() >= pm.obstacles.OffscreenThreshold {
			live = append(live, p)
		}
	}
	pm.pipes = live

	spawnBefore := float64(pm.screenW) - pm.profile.Spacing
	if len(pm.pipes) == 0 || pm.pipes[len(pm.pipes)-1].X < spawnBefore {
		pm.pipes = append(pm.pipes, pm.newPipe(float64(pm.screenW)+pm.obstacles.SpawnOffset))
	}
}

// Score marks every pipe that has just been passed and returns the running total.
// Call it at most once per tick.
func (pm *PipeManager) Score() int {
	for i := range pm.pipes {
		p := &pm.pipes[i]
		if !p.Scored && p.TrailingEdge() < pm.obstacles.ScoreThreshold {
			p.Scored = true
			pm.score++
		}
	}
	return pm.score
}

// Speed returns the current effective speed.
func (pm *PipeManager) Speed() float64 {
	return pm.speed
}

// Profile returns the difficulty profile the pipeline runs with.
func (pm *PipeManager) Profile() config.Profile {
	return pm.profile
}

// Pipes returns a copy of the live pipes, ordered left to right.
func (pm *PipeManager) Pipes() []Pipe {
	out := make([]Pipe, len(pm.pipes))
	copy(out, pm.pipes)
	return out
}

// GapRange returns the inclusive range of valid top heights for the current
// window and profile. When the window is too short the range collapses to
// its minimum.
func (pm *PipeManager) GapRange() (lo, hi int) {
	lo = pm.obstacles.TopMargin + 1
	hi = int(math.Floor(float64(pm.screenH) - pm.profile.Gap - float64(pm.obstacles.BottomMargin)))
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

func (pm *PipeManager) newPipe(x float64) Pipe {
	lo, hi := pm.GapRange()
	top := lo + pm.rng.Intn(hi-lo+1)

	return Pipe{
		X:         x,
		TopHeight: float64(top),
		Gap:       pm.profile.Gap,
		Width:     pm.obstacles.PipeWidth,
		Speed:     pm.speed,
	}
}
