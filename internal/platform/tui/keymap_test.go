package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapTranslate(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		state    flappy.State
		expected core.Event
		ok       bool
	}{
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, flappy.StateMainMenu, core.Confirm(), true},
		{"esc cancels", tea.KeyMsg{Type: tea.KeyEscape}, flappy.StatePlaying, core.Cancel(), true},
		{"p pauses", runeKey('p'), flappy.StatePlaying, core.Cancel(), true},
		{"space jumps", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, flappy.StatePlaying, core.JumpPressed(), true},
		{"up jumps", tea.KeyMsg{Type: tea.KeyUp}, flappy.StatePlaying, core.JumpPressed(), true},
		{"r restarts", runeKey('r'), flappy.StatePaused, core.Restart(), true},
		{"space retries after game over", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, flappy.StateGameOver, core.Restart(), true},
		{"up retries after game over", tea.KeyMsg{Type: tea.KeyUp}, flappy.StateGameOver, core.Restart(), true},
		{"m goes to menu", runeKey('m'), flappy.StatePaused, core.ToMenu(), true},
		{"digit selects tier", runeKey('3'), flappy.StateDifficultySelection, core.SelectTier(3), true},
		{"digit beyond tiers unbound", runeKey('5'), flappy.StateDifficultySelection, core.Event{}, false},
		{"digit selects costume", runeKey('7'), flappy.StateCostumeSelection, core.SelectCostume(7), true},
		{"digit ignored while playing", runeKey('2'), flappy.StatePlaying, core.Event{}, false},
		{"unbound key", runeKey('x'), flappy.StatePlaying, core.Event{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ev, ok := keys.Translate(tc.msg, tc.state)
			if ok != tc.ok || ev != tc.expected {
				t.Errorf("Translate(%q) = %v, %v; expected %v, %v", tc.msg.String(), ev, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestKeyMapHelpPerState(t *testing.T) {
	keys := DefaultKeyMap()
	states := []flappy.State{
		flappy.StateMainMenu,
		flappy.StateDifficultySelection,
		flappy.StateCostumeSelection,
		flappy.StatePlaying,
		flappy.StatePaused,
		flappy.StateGameOver,
	}

	for _, s := range states {
		if len(keys.ForState(s).ShortHelp()) == 0 {
			t.Errorf("no help bindings for %v", s)
		}
	}

	retry := keys.ForState(flappy.StateGameOver).ShortHelp()[0]
	if retry.Help().Desc != "retry" {
		t.Errorf("game over help should offer retry, got %q", retry.Help().Desc)
	}
	if keys.Confirm.Help().Desc != "start" {
		t.Error("per-state help must not modify the shared binding")
	}
}
