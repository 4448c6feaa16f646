package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wellhopper/wellhopper/internal/core"
	"github.com/wellhopper/wellhopper/internal/game"
	"github.com/wellhopper/wellhopper/internal/platform/tui"
	"github.com/wellhopper/wellhopper/internal/registry"
	"github.com/wellhopper/wellhopper/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a session",
	Long: `Start a session in the given mode (default: campaign).

Modes:
  campaign - Progress through levels with limited lives
  daily    - One attempt at today's level, same for everyone
  practice - Unlimited lives on a level of your choosing

Controls:
  A/D, Left/Right - Run along the surface
  Space/W/Up      - Launch
  P               - Pause
  R               - Restart (after game over)
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Gentler gravity scaling, starts at level 1
  normal - Default scaling
  hard   - Steeper gravity and time scaling
  fixed  - No scaling at all

Examples:
  wellhopper play
  wellhopper play daily
  wellhopper play practice --level 12
  wellhopper play campaign --difficulty hard
  wellhopper play --config ./my-tuning.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Starting level for practice mode")
}

func runPlay(cmd *cobra.Command, args []string) {
	mode := "campaign"
	if len(args) > 0 {
		mode = args[0]
	}

	if !registry.Exists(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Run 'wellhopper list' to see available modes.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Configure the session before creation
	game.SetConfigPath(flagConfig)
	game.SetDifficultyPreset(flagDifficulty)
	game.SetPracticeLevel(flagLevel)

	g, err := registry.Create(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating session: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(g, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", runErr)
		os.Exit(1)
	}
}
