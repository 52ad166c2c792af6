package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagMetricsAddr string
	flagIdleTimeout int
	flagRatePerMin  float64
	flagRateBurst   int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the flappy SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game. Scores are stored per server
(all users share the same best score and top 5).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.flappy/host_key

Examples:
  flappy serve                             # Listen on :23234 with auto-generated key
  flappy serve --ssh :2222                 # Listen on port 2222
  flappy serve --metrics 127.0.0.1:9100    # Expose /metrics and /healthz
  flappy serve --store sqlite              # Keep scores in SQLite

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagMetricsAddr, "metrics", "", "Address for the metrics HTTP server (disabled if empty)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().Float64Var(&flagRatePerMin, "rate", defaults.RateLimit.PerMinute, "New sessions allowed per minute per host")
	serveCmd.Flags().IntVar(&flagRateBurst, "rate-burst", defaults.RateLimit.Burst, "Session burst allowed per host")
	serveCmd.Flags().IntVar(&flagHoldMS, "hold-ms", int(defaults.HoldWindow/time.Millisecond), "How long a flap counts as held, in milliseconds")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "flappy-ssh")
	if err != nil {
		return err
	}

	game, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openStore(logger)
	if err != nil {
		logger.Warn("could not open score store", "error", err)
		store = nil
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.MetricsAddress = flagMetricsAddr
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.RateLimit.PerMinute = flagRatePerMin
	cfg.RateLimit.Burst = flagRateBurst
	cfg.TickRate = flagFPS
	cfg.HoldWindow = time.Duration(flagHoldMS) * time.Millisecond

	server, err := tui.NewSSHServer(cfg, game, store, logger)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return fmt.Errorf("error creating server: %w", err)
	}
	if store != nil {
		defer store.Close()
	}

	fmt.Printf("Starting flappy SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
