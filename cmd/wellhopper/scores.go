package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wellhopper/wellhopper/internal/platform/tui"
	"github.com/wellhopper/wellhopper/internal/registry"
	"github.com/wellhopper/wellhopper/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show run history",
	Long: `Display recorded runs. With no argument, opens an interactive
browser. With a mode, prints the top 10 runs for that mode.

Examples:
  wellhopper scores
  wellhopper scores campaign
  wellhopper scores daily`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// No mode: interactive browser
	if len(args) == 0 {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	mode := args[0]
	if !registry.Exists(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Run 'wellhopper list' to see available modes.")
		os.Exit(1)
	}

	runs, err := store.TopRuns(mode, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Run History - %s\n", mode)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'wellhopper play %s' to put one on the board!\n", mode)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %s\n", "Rank", "Score", "Level", "Time", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %s\n", "----", "-----", "-----", "----", "----")

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		timeStr := fmt.Sprintf("%d:%02d", r.DurationSecs/60, r.DurationSecs%60)
		fmt.Printf("  %-4d  %-10d  %-6d  %-6s  %s\n", i+1, r.Score, r.LevelReached, timeStr, dateStr)
	}

	fmt.Println()
	if stats, statsErr := store.Stats(mode); statsErr == nil && stats.Runs > 0 {
		fmt.Printf("Runs: %d  Best score: %d  Deepest level: %d\n",
			stats.Runs, stats.BestScore, stats.BestLevel)
	}
}
