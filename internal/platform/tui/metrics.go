package tui

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Metrics collects server-wide game metrics. Labels are bounded; nothing
// is keyed by user or remote address. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	activeSessions prometheus.Gauge
	runsStarted    prometheus.Counter
	runsFinished   prometheus.Counter
	pipesPassed    prometheus.Counter
	runScore       prometheus.Histogram
	tickDuration   prometheus.Histogram
	rejected       *prometheus.CounterVec
}

// NewMetrics registers the game metrics on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Name: "flappy_sessions_active",
			Help: "Currently connected SSH sessions",
		}),
		runsStarted: factory.NewCounter(prometheus.CounterOpts{
			Name: "flappy_runs_started_total",
			Help: "Runs started across all sessions",
		}),
		runsFinished: factory.NewCounter(prometheus.CounterOpts{
			Name: "flappy_runs_finished_total",
			Help: "Runs that ended in a crash",
		}),
		pipesPassed: factory.NewCounter(prometheus.CounterOpts{
			Name: "flappy_pipes_passed_total",
			Help: "Pipes scored across all sessions",
		}),
		runScore: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "flappy_run_score",
			Help:    "Final score of finished runs",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
		}),
		tickDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "flappy_tick_duration_seconds",
			Help:    "Time spent in a simulation tick",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005},
		}),
		rejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "flappy_connections_rejected_total",
			Help: "SSH connections rejected before a session started",
		}, []string{"reason"}), // Bounded: "rate_limit", "no_pty"
	}
}

// Registry returns the registry the metrics are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) sessionStarted() {
	if m == nil {
		return
	}
	m.activeSessions.Inc()
}

func (m *Metrics) sessionEnded() {
	if m == nil {
		return
	}
	m.activeSessions.Dec()
}

func (m *Metrics) runStarted() {
	if m == nil {
		return
	}
	m.runsStarted.Inc()
}

func (m *Metrics) connectionRejected(reason string) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(reason).Inc()
}

// observeTick records one tick's duration and outcome.
func (m *Metrics) observeTick(d time.Duration, res flappy.TickResult) {
	if m == nil {
		return
	}
	m.tickDuration.Observe(d.Seconds())
	if res.Scored > 0 {
		m.pipesPassed.Add(float64(res.Scored))
	}
	if res.Crashed {
		m.runsFinished.Inc()
		m.runScore.Observe(float64(res.Score))
	}
}

// NewMetricsRouter serves /metrics and /healthz.
func NewMetricsRouter(m *Metrics) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok\n")) //nolint:errcheck
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))

	return r
}
