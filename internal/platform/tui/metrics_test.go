package tui

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func TestMetricsRouterHealthz(t *testing.T) {
	ts := httptest.NewServer(NewMetricsRouter(NewMetrics()))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != "ok\n" {
		t.Errorf("healthz = %d %q", resp.StatusCode, body)
	}
}

func TestMetricsExposeGameCounters(t *testing.T) {
	m := NewMetrics()
	m.sessionStarted()
	m.runStarted()
	m.observeTick(time.Millisecond, flappy.TickResult{Scored: 1, Score: 1})
	m.observeTick(time.Millisecond, flappy.TickResult{Crashed: true, Score: 1})
	m.connectionRejected("rate_limit")

	rec := httptest.NewRecorder()
	NewMetricsRouter(m).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	for _, want := range []string{
		"flappy_sessions_active 1",
		"flappy_runs_started_total 1",
		"flappy_runs_finished_total 1",
		"flappy_pipes_passed_total 1",
		"flappy_run_score_count 1",
		"flappy_tick_duration_seconds_count 2",
		`flappy_connections_rejected_total{reason="rate_limit"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

func TestNilMetricsAreNoOps(t *testing.T) {
	var m *Metrics
	m.sessionStarted()
	m.sessionEnded()
	m.runStarted()
	m.connectionRejected("no_pty")
	m.observeTick(time.Millisecond, flappy.TickResult{Crashed: true})
}
