// chicken is Psychic Chicken, a terminal arcade game: steer the chicken,
// bounce the bag into falling eggs and never let an egg land on your head.
//
// Usage:
//
//	chicken                  - Play the game
//	chicken config           - Print the effective configuration as YAML
//	chicken sprites          - List the sprite catalog
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Custom game config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--sprites <path>     - Custom sprite catalog YAML
//	--log <path>         - Write logs to a file
//	--trace <path>       - Write a CSV trace of level and game-over events
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagSprites    string
	flagLogPath    string
	flagDebug      bool
	flagTracePath  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chicken",
	Short: "Psychic Chicken - catch the eggs with your mind",
	Long: `Psychic Chicken is a terminal arcade game. The chicken walks along the
ground while a bag bounces around the screen. Steer the chicken so the bag
catches falling eggs. The game ends when the bag touches the ground or an egg
lands on the chicken.

Controls:
  Left/A, Right/D       - Move the chicken
  Shift+Arrows, A/D     - Sprint (uppercase letters)
  Space                 - Boost the bag
  Enter                 - Restart (after game over)
  Ctrl+S                - Save a screenshot
  Esc/Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slower bag, gentle escalation
  normal - Default settings
  hard   - Faster bag, steep escalation
  fixed  - No escalation between levels

Examples:
  chicken
  chicken --difficulty hard
  chicken --seed 42 --trace ./runs/trace.csv
  chicken --config ./my-chicken.yaml
  chicken config --difficulty easy`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagSprites, "sprites", "", "Path to custom sprite catalog YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagTracePath, "trace", "", "Write a CSV event trace to this file")

	// Add subcommands
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(spritesCmd)
}
