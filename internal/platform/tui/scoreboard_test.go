package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func TestScoreRows(t *testing.T) {
	rows := ScoreRows([]int{10, 7})
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "#1" || rows[0][1] != "10" || rows[1][0] != "#2" || rows[1][1] != "7" {
		t.Errorf("unexpected rows: %v", rows)
	}
}

func TestScoreboardView(t *testing.T) {
	store := storage.New(storage.NewTextBackend(t.TempDir()), nil)

	empty := NewScoreboardModel(store, 60).View()
	if !strings.Contains(empty, "No scores recorded yet") {
		t.Error("empty scoreboard should say so")
	}

	store.RecordRun(9)
	store.RecordRun(14)

	view := NewScoreboardModel(store, 60).View()
	for _, want := range []string{"HIGH SCORES", "Best: 14", "#1", "14", "#2", "9"} {
		if !strings.Contains(view, want) {
			t.Errorf("scoreboard missing %q", want)
		}
	}
}
