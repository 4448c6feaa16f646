// wellhopper is a terminal gravity-well platformer. Hop between planets,
// build up launch speed, and reach the goal ring without falling into a
// black hole.
//
// Usage:
//
//	wellhopper play [mode]      - Play (campaign, daily, or practice)
//	wellhopper list             - List available session modes
//	wellhopper scores [mode]    - Show run history
//	wellhopper gen <level>      - Preview a generated level
//	wellhopper serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Override the level seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.wellhopper/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game to register session modes
	_ "github.com/wellhopper/wellhopper/internal/game"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wellhopper",
	Short: "Well Hopper - a gravity-well platformer in your terminal",
	Long: `Well Hopper is a terminal game about momentum. Run along planet
surfaces to build angular speed, launch into ballistic flight, and hop
from well to well until you reach the goal ring.

Available commands:
  play     - Play a session (campaign, daily, or practice)
  list     - Show available session modes
  scores   - View run history
  gen      - Preview a generated level
  serve    - Start SSH server for remote play

Examples:
  wellhopper play
  wellhopper play daily
  wellhopper play practice --level 12
  wellhopper gen 7
  wellhopper serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Level seed override (0 = derive from level number)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.wellhopper/runs.db", "Path to run database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(serveCmd)
}
