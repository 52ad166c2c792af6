// flappy is a Flappy Bird-style game for the terminal.
//
// Usage:
//
//	flappy play              - Play in this terminal
//	flappy scores            - Show the best score and the top 5 runs
//	flappy serve             - Start SSH server for remote play
//	flappy config dump       - Print the effective tuning config
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible pipe layouts
//	--config <path>     - Load tuning from a YAML file
//	--data-dir <path>   - Where scores are kept (default: ~/.flappy)
//	--store <kind>      - Score backend: text or sqlite (default: text)
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagDataDir  string
	flagStore    string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - guide a bird through the pipes in your terminal",
	Long: `Flappy is a terminal take on the one-button pipe dodging game.

Available commands:
  play     - Play in this terminal
  scores   - View the best score and top runs
  serve    - Start SSH server for remote play
  config   - Inspect the tuning configuration

Examples:
  flappy play
  flappy play --seed 42
  flappy scores
  flappy serve --ssh :2222 --metrics 127.0.0.1:9100
  flappy config dump > ~/.flappy/configs/flappy.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "~/.flappy", "Directory for scores and logs")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "text", "Score backend: text or sqlite")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// dataDir returns the expanded data directory.
func dataDir() (string, error) {
	return storage.ExpandHome(flagDataDir)
}

// openLogFile opens <data-dir>/flappy.log for appending.
func openLogFile() (*os.File, error) {
	dir, err := dataDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return os.OpenFile(filepath.Join(dir, "flappy.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

// loadConfig loads the tuning config following the standard search order.
func loadConfig() (config.FlappyConfig, error) {
	return config.Load(flagConfig)
}

// openStore opens the configured score backend.
func openStore(logger *log.Logger) (*storage.Store, error) {
	return storage.Open(storage.Kind(flagStore), flagDataDir, logger)
}
