package tui

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.flappy/host_key.
	HostKeyPath string

	// MetricsAddress serves /metrics and /healthz when set.
	MetricsAddress string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// RateLimit bounds new sessions per remote host.
	RateLimit RateLimitConfig

	// TickRate and HoldWindow configure each session's game model.
	TickRate   int
	HoldWindow time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		RateLimit:   DefaultRateLimitConfig,
		TickRate:    60,
		HoldWindow:  DefaultHoldWindow,
	}
}

// SSHServer serves one flappy session per SSH connection. All sessions
// share the score store.
type SSHServer struct {
	config  SSHServerConfig
	game    config.FlappyConfig
	server  *ssh.Server
	metrics *http.Server
	store   *storage.Store
	stats   *Metrics
	limiter *ConnLimiter
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server. store may be nil.
func NewSSHServer(cfg SSHServerConfig, game config.FlappyConfig, store *storage.Store, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "flappy-ssh",
		})
	}

	srv := &SSHServer{
		config:  cfg,
		game:    game,
		store:   store,
		stats:   NewMetrics(),
		limiter: NewConnLimiter(cfg.RateLimit),
		logger:  logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".flappy", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if err := os.MkdirAll(hostKeyDir, 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	// Middlewares run last to first: logging wraps rate limiting wraps the game.
	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.rateLimitMiddleware,
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		srv.limiter.Stop()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}
	srv.server = server

	if cfg.MetricsAddress != "" {
		srv.metrics = &http.Server{
			Addr:              cfg.MetricsAddress,
			Handler:           NewMetricsRouter(srv.stats),
			ReadHeaderTimeout: 5 * time.Second,
		}
	}

	return srv, nil
}

// teaHandler creates a game model for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		s.stats.connectionRejected("no_pty")
		wish.Fatalln(sess, "flappy needs an interactive terminal: connect with ssh -t")
		return nil, nil
	}

	model := NewModel(Options{
		Game: s.game,
		Runtime: core.RuntimeConfig{
			ScreenW:  pty.Window.Width,
			ScreenH:  pty.Window.Height,
			TickRate: s.config.TickRate,
			Seed:     time.Now().UnixNano(),
		},
		Store:      s.store,
		HoldWindow: s.config.HoldWindow,
		Logger:     s.logger,
		Metrics:    s.stats,
		Player:     sess.User(),
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// rateLimitMiddleware turns away hosts that reconnect too quickly.
func (s *SSHServer) rateLimitMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		if !s.limiter.Allow(sess.RemoteAddr()) {
			s.logger.Warn("rate limited",
				"user", sess.User(),
				"remote", sess.RemoteAddr().String(),
			)
			s.stats.connectionRejected("rate_limit")
			wish.Fatalln(sess, "too many connections, try again in a minute")
			return
		}
		next(sess)
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		s.stats.sessionStarted()
		next(sess)
		s.stats.sessionEnded()
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	if s.metrics != nil {
		s.logger.Info("serving metrics", "address", s.config.MetricsAddress)
		go func() {
			if err := s.metrics.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("metrics server error", "error", err)
			}
		}()
	}

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the servers.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.limiter.Stop()

	var errs []error
	if s.metrics != nil {
		errs = append(errs, s.metrics.Shutdown(ctx))
	}
	errs = append(errs, s.server.Shutdown(ctx))
	return errors.Join(errs...)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// Metrics returns the server's metrics.
func (s *SSHServer) Metrics() *Metrics {
	return s.stats
}
