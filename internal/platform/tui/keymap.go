package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Confirm    key.Binding
	Cancel     key.Binding
	Tier       key.Binding
	Costume    key.Binding
	Jump       key.Binding
	Restart    key.Binding
	Menu       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "p"),
			key.WithHelp("esc", "back/pause"),
		),
		Tier: key.NewBinding(
			key.WithKeys("1", "2", "3"),
			key.WithHelp("1-3", "difficulty"),
		),
		Costume: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7"),
			key.WithHelp("1-7", "costume"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "flap"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Translate maps a key to the control event it means in state.
// Digits select a tier or a costume depending on the screen, and jump
// retries after a game over.
func (k KeyMap) Translate(msg tea.KeyMsg, state flappy.State) (core.Event, bool) {
	switch {
	case key.Matches(msg, k.Confirm):
		return core.Confirm(), true
	case key.Matches(msg, k.Cancel):
		return core.Cancel(), true
	case key.Matches(msg, k.Jump):
		if state == flappy.StateGameOver {
			return core.Restart(), true
		}
		return core.JumpPressed(), true
	case key.Matches(msg, k.Restart):
		return core.Restart(), true
	case key.Matches(msg, k.Menu):
		return core.ToMenu(), true
	}

	switch state {
	case flappy.StateDifficultySelection:
		if key.Matches(msg, k.Tier) {
			return core.SelectTier(digit(msg)), true
		}
	case flappy.StateCostumeSelection:
		if key.Matches(msg, k.Costume) {
			return core.SelectCostume(digit(msg)), true
		}
	}

	return core.Event{}, false
}

// ForState returns the bindings worth showing on the given screen.
func (k KeyMap) ForState(state flappy.State) help.KeyMap {
	switch state {
	case flappy.StateMainMenu:
		return bindings{k.Confirm, k.Quit}
	case flappy.StateDifficultySelection:
		return bindings{k.Tier, k.Cancel, k.Quit}
	case flappy.StateCostumeSelection:
		return bindings{k.Costume, k.Cancel, k.Quit}
	case flappy.StatePlaying:
		return bindings{k.Jump, k.Cancel, k.Screenshot, k.Quit}
	case flappy.StatePaused:
		return bindings{k.Cancel, k.Restart, k.Menu, k.Quit}
	case flappy.StateGameOver:
		retry := k.Confirm
		retry.SetHelp("enter/space", "retry")
		return bindings{retry, k.Cancel, k.Screenshot, k.Quit}
	}
	return bindings{k.Quit}
}

// bindings is a flat help.KeyMap.
type bindings []key.Binding

func (b bindings) ShortHelp() []key.Binding {
	return b
}

func (b bindings) FullHelp() [][]key.Binding {
	return [][]key.Binding{b}
}

func digit(msg tea.KeyMsg) int {
	n, err := strconv.Atoi(msg.String())
	if err != nil {
		return 0
	}
	return n
}
