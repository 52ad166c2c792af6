package flappy

import "github.com/vovakirdan/tui-flappy/internal/config"

// BirdView is the renderable state of the bird.
type BirdView struct {
	X, Y      float64
	Size      float64
	Velocity  float64
	Rotation  float64 // Degrees, positive tilts the beak down
	WingPhase float64
	Costume   Costume
}

// Snapshot captures everything a host needs to draw one frame.
// It shares no memory with the session.
type Snapshot struct {
	State        State
	Tier         config.Tier
	Costume      Costume
	Bird         BirdView
	Pipes        []Pipe
	Speed        float64
	Score        int
	Best         int
	Ranked       []int
	Particles    []Particle
	ShakeX       float64
	ShakeY       float64
	Background   float64
	WorldW       int
	WorldH       int
	GroundHeight int
}

// Snapshot returns the current renderable state.
// The shake offset is freshly randomized on every call from its own source,
// so drawing frames never changes later particle bursts.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:   s.state,
		Tier:    s.tier,
		Costume: s.costume,
		Bird: BirdView{
			X:         s.bird.X,
			Y:         s.bird.Y,
			Size:      s.bird.Size(),
			Velocity:  s.bird.Velocity,
			Rotation:  s.bird.Rotation(),
			WingPhase: s.bird.WingPhase,
			Costume:   s.bird.Costume,
		},
		Pipes:        s.pipes.Pipes(),
		Speed:        s.pipes.Speed(),
		Score:        s.score,
		Particles:    s.effects.Particles(),
		Background:   s.background,
		WorldW:       s.screenW,
		WorldH:       s.screenH,
		GroundHeight: s.cfg.World.GroundHeight,
	}
	snap.ShakeX, snap.ShakeY = s.effects.ShakeOffset()

	if s.board != nil {
		snap.Best = s.board.Best()
		snap.Ranked = s.board.Ranked()
	}
	return snap
}
