// Package flappy implements the simulation core of a Flappy Bird-style game:
// bird physics, the pipe pipeline, collision, collision effects, and the
// session state machine that drives them. It does no rendering or I/O.
package flappy

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// TickDuration is the nominal simulation step. Physics constants are tuned per tick at this rate.
const TickDuration = 16 * time.Millisecond

// State is the session's current screen.
type State int

const (
	StateMainMenu State = iota
	StateDifficultySelection
	StateCostumeSelection
	StatePlaying
	StateGameOver
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "main_menu"
	case StateDifficultySelection:
		return "difficulty_selection"
	case StateCostumeSelection:
		return "costume_selection"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// ScoreBoard records finished runs and reports the persisted records.
// storage.Store satisfies it.
type ScoreBoard interface {
	RecordRun(score int)
	Best() int
	Ranked() []int
}

// TickResult reports what happened during one tick, for hosts that play
// sounds or count metrics.
type TickResult struct {
	Scored  int  // Pipes passed this tick
	Crashed bool // The run ended this tick
	Score   int  // Run score after this tick
}

// Session owns one player's game: the state machine plus the bird, pipes
// and effects it drives. It is not safe for concurrent use; a host owns it
// and calls Handle and Tick from a single goroutine.
type Session struct {
	cfg     config.FlappyConfig
	board   ScoreBoard
	state   State
	tier    config.Tier
	costume Costume

	bird    *Bird
	pipes   *PipeManager
	effects *Effects

	score      int
	held       bool
	runs       int
	screenW    int
	screenH    int
	background float64
}

// NewSession creates a session in the main menu. rng seeds pipe layout and
// effects; board may be nil, in which case runs are not recorded.
// The frozen background shows a normal-tier layout until the first run.
func NewSession(cfg config.FlappyConfig, board ScoreBoard, rng *rand.Rand) *Session {
	fxRng := rand.New(rand.NewSource(rng.Int63()))

	s := &Session{
		cfg:     cfg,
		board:   board,
		state:   StateMainMenu,
		tier:    config.TierNormal,
		costume: CostumeClassic,
		screenW: cfg.World.Width,
		screenH: cfg.World.Height,
		effects: NewEffects(cfg.Effects, fxRng),
	}
	s.bird = s.newBird()
	s.pipes = NewPipeManager(cfg.Profile(s.tier), cfg.Obstacles, s.screenW, s.screenH, rng)
	return s
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Score returns the current run's score.
func (s *Session) Score() int {
	return s.score
}

// Runs returns how many runs have been started in this session.
func (s *Session) Runs() int {
	return s.runs
}

// Handle applies a control event. Events with no meaning in the current
// state are ignored.
func (s *Session) Handle(ev core.Event) {
	// Release is input state, not a transition: track it everywhere so a
	// key let go during a pause does not stay held after resuming.
	if ev.Kind == core.EventJumpReleased {
		s.held = false
		return
	}

	switch s.state {
	case StateMainMenu:
		if ev.Kind == core.EventConfirm {
			s.state = StateDifficultySelection
		}

	case StateDifficultySelection:
		switch ev.Kind {
		case core.EventSelectTier:
			if tier := config.Tier(ev.Value); tier.Valid() {
				s.tier = tier
				s.state = StateCostumeSelection
			}
		case core.EventCancel:
			s.state = StateMainMenu
		}

	case StateCostumeSelection:
		switch ev.Kind {
		case core.EventSelectCostume:
			if costume := Costume(ev.Value); costume.Valid() {
				s.costume = costume
				s.startRun()
			}
		case core.EventCancel:
			s.state = StateMainMenu
		}

	case StatePlaying:
		switch ev.Kind {
		case core.EventJumpPressed:
			s.bird.Jump()
			s.held = true
		case core.EventCancel:
			s.state = StatePaused
		}

	case StatePaused:
		switch ev.Kind {
		case core.EventCancel:
			s.state = StatePlaying
		case core.EventRestart:
			s.startRun()
		case core.EventToMenu:
			s.state = StateMainMenu
		}

	case StateGameOver:
		switch ev.Kind {
		case core.EventConfirm, core.EventRestart:
			s.startRun()
		case core.EventCancel:
			s.state = StateMainMenu
		}
	}
}

// Tick advances the session by one step of elapsed time.
// The bird and pipes only move while playing; effects decay in every state.
func (s *Session) Tick(elapsed time.Duration) TickResult {
	var res TickResult

	switch s.state {
	case StatePlaying:
		s.bird.Update(s.held)
		s.pipes.Update(elapsed)
		s.background += s.cfg.World.ScrollPlay

		before := s.score
		s.score = s.pipes.Score()
		res.Scored = s.score - before

		if s.crashed() {
			s.endRun()
			res.Crashed = true
		}

	case StatePaused:
		// Frozen.

	default:
		s.background += s.cfg.World.ScrollIdle
	}

	s.effects.Update()
	res.Score = s.score
	return res
}

// Resize updates the world dimensions. Pipes already on screen keep their
// geometry; new pipes and the ground check use the new size.
func (s *Session) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.screenW = width
	s.screenH = height
	s.pipes.SetWindowSize(width, height)
}

func (s *Session) crashed() bool {
	if OutOfBounds(s.bird.Y, s.screenH, s.cfg.World.GroundHeight) {
		return true
	}
	return Collides(s.bird.Bounds(), s.pipes.pipes, s.cfg.Obstacles.HitboxInset)
}

func (s *Session) startRun() {
	s.bird = s.newBird()
	s.pipes.SetWindowSize(s.screenW, s.screenH)
	s.pipes.Reset(s.cfg.Profile(s.tier))
	s.score = 0
	s.held = false
	s.runs++
	s.state = StatePlaying
}

func (s *Session) endRun() {
	s.state = StateGameOver
	s.effects.StartShake()
	cx, cy := s.bird.Sprite().Center()
	s.effects.SpawnBurst(cx, cy)
	if s.board != nil {
		s.board.RecordRun(s.score)
	}
}

func (s *Session) newBird() *Bird {
	return NewBird(s.cfg.World.BirdStartX, s.cfg.World.BirdStartY, s.costume, s.cfg.Physics)
}
