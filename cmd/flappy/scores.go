package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best score and the top 5 runs",
	Long: `Display the best score and the ranked top 5 runs from the score store.

An interactive table is shown on a terminal; use --plain for text output.

Examples:
  flappy scores
  flappy scores --plain
  flappy scores --store sqlite`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain text instead of the interactive table")
}

func runScores(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "flappy")
	if err != nil {
		return err
	}

	store, err := openStore(logger)
	if err != nil {
		return fmt.Errorf("error opening score store: %w", err)
	}
	defer store.Close()

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, _, sizeErr := term.GetSize(int(os.Stdout.Fd()))
		if sizeErr != nil {
			width = 80
		}
		return tui.RunScoreboard(store, width)
	}

	ranked := store.Ranked()

	fmt.Println("High Scores")
	fmt.Println()

	if len(ranked) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappy play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %s\n", "Rank", "Score")
	fmt.Printf("  %-4s  %s\n", "----", "-----")
	for i, score := range ranked {
		fmt.Printf("  %-4d  %d\n", i+1, score)
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", store.Best())
	return nil
}
