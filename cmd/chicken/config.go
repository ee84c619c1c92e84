package main

import (
	"os"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Prints the configuration the game would run with, after the search
order (--config, ~/.chicken/config.yaml, ./configs/chicken.yaml, built-in
defaults) and the --difficulty preset are applied.

Examples:
  chicken config
  chicken config --difficulty hard > ~/.chicken/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
