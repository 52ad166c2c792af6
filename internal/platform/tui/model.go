package tui

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// DefaultHoldWindow is how long a jump counts as held after the last key press.
const DefaultHoldWindow = 120 * time.Millisecond

// Options configures a game model.
type Options struct {
	Game          config.FlappyConfig
	Runtime       core.RuntimeConfig
	Store         *storage.Store // Nil disables score persistence
	HoldWindow    time.Duration
	ScreenshotDir string // Empty disables screenshots
	Logger        *log.Logger
	Metrics       *Metrics
	Player        string // Shown in log lines
}

// Model is the Bubble Tea model hosting one flappy session.
type Model struct {
	session  *flappy.Session
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	hold     *holdTracker
	opts     Options
	runs     int
	status   string
	quitting bool
}

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
)

// NewModel creates a model in the main menu.
func NewModel(opts Options) Model {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.HoldWindow <= 0 {
		opts.HoldWindow = DefaultHoldWindow
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	var board flappy.ScoreBoard
	if opts.Store != nil {
		board = opts.Store
	}
	rng := rand.New(rand.NewSource(opts.Runtime.Seed))

	m := Model{
		session: flappy.NewSession(opts.Game, board, rng),
		screen:  core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		hold:    &holdTracker{},
		opts:    opts,
	}
	m.resize(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case releaseMsg:
		if m.hold.Release(msg.gen) {
			m.session.Handle(core.JumpReleased())
		}
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	ev, ok := m.keys.Translate(msg, m.session.State())
	if !ok {
		return m, nil
	}

	var cmd tea.Cmd
	if ev.Kind == core.EventJumpPressed && m.session.State() == flappy.StatePlaying {
		cmd = releaseCmd(m.opts.HoldWindow, m.hold.Press())
	}

	m.session.Handle(ev)
	m.status = ""
	if runs := m.session.Runs(); runs != m.runs {
		m.runs = runs
		m.opts.Metrics.runStarted()
		m.opts.Logger.Debug("run started", "player", m.opts.Player, "run", runs)
	}
	return m, cmd
}

// handleTick advances the simulation by one fixed step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	start := time.Now()
	res := m.session.Tick(flappy.TickDuration)
	m.opts.Metrics.observeTick(time.Since(start), res)

	if res.Crashed {
		m.opts.Logger.Info("run finished", "player", m.opts.Player, "score", res.Score)
	}

	return m, tickCmd(m.opts.Runtime.TickInterval())
}

// resize fits the world to the terminal. World height stays fixed and
// width follows the terminal's aspect, taking cells as twice as tall as wide.
// The last row is reserved for the help line.
func (m *Model) resize(width, height int) {
	rows := height - 1
	if width <= 0 || rows <= 0 {
		return
	}
	m.opts.Runtime.ScreenW = width
	m.opts.Runtime.ScreenH = height
	m.screen.Resize(width, rows)
	m.help.Width = width

	worldH := m.opts.Game.World.Height
	worldW := worldH * width / (rows * 2)
	m.session.Resize(worldW, worldH)
}

// saveScreenshot writes a PNG of the current frame.
func (m *Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}
	path, err := SaveScreenshot(m.opts.ScreenshotDir, m.session.Snapshot())
	if err != nil {
		m.opts.Logger.Warn("screenshot failed", "err", err)
		m.status = "screenshot failed"
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
	m.status = "saved " + path
}

// Session exposes the hosted session.
func (m Model) Session() *flappy.Session {
	return m.session
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawSnapshot(m.screen, m.session.Snapshot())

	footer := helpStyle.Render(m.help.View(m.keys.ForState(m.session.State())))
	if m.status != "" {
		footer = statusStyle.Render(m.status)
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// Run starts a local Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
