// Package tui hosts the flappy simulation in a Bubble Tea program, locally
// or over SSH. It maps keys to control events, drives the tick loop, and
// renders snapshots to the terminal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// releaseMsg ends a synthesized jump hold. gen identifies the press that
// scheduled it; stale releases are dropped.
type releaseMsg struct {
	gen int
}

// tickCmd returns a Bubble Tea command that sends a tick message after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// releaseCmd schedules the end of the hold started by press gen.
func releaseCmd(window time.Duration, gen int) tea.Cmd {
	return tea.Tick(window, func(time.Time) tea.Msg {
		return releaseMsg{gen: gen}
	})
}

// holdTracker turns key presses into press/release pairs. Terminals report
// no key-up events, so a hold lasts for a fixed window after the most recent
// press; auto-repeat keeps extending it.
type holdTracker struct {
	gen  int
	held bool
}

// Press records a press and returns the generation its release must carry.
func (h *holdTracker) Press() int {
	h.gen++
	h.held = true
	return h.gen
}

// Release reports whether a release for gen should be delivered.
func (h *holdTracker) Release(gen int) bool {
	if !h.held || gen != h.gen {
		return false
	}
	h.held = false
	return true
}

// Held reports whether a hold is in progress.
func (h *holdTracker) Held() bool {
	return h.held
}
