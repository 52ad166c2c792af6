package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var flagHoldMS int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in the current terminal.

Controls:
  Enter        - Start / retry
  1-3          - Pick difficulty (easy, normal, hard)
  1-7          - Pick costume
  Space/Up/W   - Flap (hold for a higher climb), retry after game over
  Esc/P        - Pause / resume / back
  R            - Restart (paused or after game over)
  M            - Back to menu (paused)
  Ctrl+S       - Save a PNG screenshot
  Q/Ctrl+C     - Quit

Terminals do not report key releases, so a flap counts as held for
--hold-ms after the last key press.

Examples:
  flappy play
  flappy play --seed 7
  flappy play --store sqlite
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHoldMS, "hold-ms", int(tui.DefaultHoldWindow/time.Millisecond), "How long a flap counts as held, in milliseconds")
}

func runPlay(_ *cobra.Command, _ []string) error {
	game, err := loadConfig()
	if err != nil {
		return err
	}

	// The alt screen owns stdout; logs go to a file.
	var logOut io.Writer = io.Discard
	if f, fileErr := openLogFile(); fileErr == nil {
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "flappy")
	if err != nil {
		return err
	}

	runtime := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}
	if flagFPS > 0 {
		runtime.TickRate = flagFPS
	}
	runtime.Seed = flagSeed

	store, err := openStore(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open score store: %v\n", err)
		store = nil
	}

	dir, err := dataDir()
	if err != nil {
		return err
	}

	runErr := tui.Run(tui.Options{
		Game:          game,
		Runtime:       runtime,
		Store:         store,
		HoldWindow:    time.Duration(flagHoldMS) * time.Millisecond,
		ScreenshotDir: filepath.Join(dir, "screenshots"),
		Logger:        logger,
		Player:        os.Getenv("USER"),
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}
