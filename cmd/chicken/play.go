package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/psychic-chicken/internal/assets"
	"github.com/vovakirdan/psychic-chicken/internal/config"
	"github.com/vovakirdan/psychic-chicken/internal/core"
	"github.com/vovakirdan/psychic-chicken/internal/games/chicken"
	"github.com/vovakirdan/psychic-chicken/internal/platform/tui"
	"github.com/vovakirdan/psychic-chicken/internal/telemetry"
)

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	trace, err := telemetry.NewTrace(flagTracePath)
	if err != nil {
		return err
	}
	defer trace.Close()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game, err := chicken.New(cfg, catalog, seed, chicken.WithLogger(logger))
	if err != nil {
		return err
	}

	// Get terminal size for the initial screen
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger.Info("new run", "seed", seed, "difficulty", flagDifficulty)
	return tui.Run(game, tui.Options{
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     seed,
		},
		Logger: logger,
		Trace:  trace,
	})
}

// loadConfig loads the game config and applies the difficulty preset.
func loadConfig() (config.ChickenConfig, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.ChickenConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.ChickenConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

func loadCatalog() (*assets.Catalog, error) {
	if flagSprites != "" {
		return assets.LoadCatalog(flagSprites)
	}
	return assets.DefaultCatalog()
}

// openLogger returns a logger writing to the --log file. The terminal belongs
// to the game screen, so without a file the logs are discarded.
func openLogger() (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "chicken",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
