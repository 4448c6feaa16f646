package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wellhopper/wellhopper/internal/core"
	"github.com/wellhopper/wellhopper/internal/game"
	"github.com/wellhopper/wellhopper/internal/levelgen"
)

var genCmd = &cobra.Command{
	Use:   "gen <level>",
	Short: "Preview a generated level",
	Long: `Generate a level and print an ASCII preview without playing it.
The same level number always produces the same layout.

Examples:
  wellhopper gen 1
  wellhopper gen 42`,
	Args: cobra.ExactArgs(1),
	Run:  runGen,
}

func runGen(cmd *cobra.Command, args []string) {
	number, err := strconv.Atoi(args[0])
	if err != nil || number < 1 {
		fmt.Fprintf(os.Stderr, "Error: level must be a positive integer, got %q\n", args[0])
		os.Exit(1)
	}

	lvl := levelgen.Generate(number)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h - 1 // Leave the prompt line
	}

	screen := core.NewScreen(width, height)
	game.DrawLevel(screen, lvl, lvl.Start)
	screen.DrawText(1, 0, fmt.Sprintf("LEVEL %d  %s  planets:%d  holes:%d  seed:%d",
		lvl.Number, lvl.Archetype, len(lvl.World.Planets), len(lvl.World.BlackHoles), lvl.Seed))

	fmt.Println(screen.String())
}
