package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-survival/internal/config"
	"github.com/vovakirdan/space-survival/internal/core"
	"github.com/vovakirdan/space-survival/internal/games/survival"
	"github.com/vovakirdan/space-survival/internal/ledger"
	"github.com/vovakirdan/space-survival/internal/platform/tui"
	"github.com/vovakirdan/space-survival/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a Space Survival session.

Controls:
  W/Up       - Thrust
  S/Down     - Brake
  A/Left     - Turn left
  D/Right    - Turn right
  Space      - Fire
  P/Esc      - Pause
  R          - Restart (after death)
  Ctrl+S     - Screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower spawns and more starting ammo
  normal - Default tuning
  hard   - Faster spawns and fewer ammo drops
  fixed  - Spawn rate never ramps up

Examples:
  survival play
  survival play --difficulty easy
  survival play --config ./my-survival.yaml
  survival play --seed 42 --fps 30`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	cfg, err := config.LoadSurvival(flagConfig)
	if err != nil {
		return err
	}
	config.ApplySurvivalPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: difficulty %s: %w", preset, err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	opts := []survival.Option{survival.WithLogger(logger)}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		logger.Warn("could not open highscore database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open highscore database: %v\n", err)
	} else {
		defer store.Close()
		opts = append(opts, survival.WithHighscores(ledger.New(store, logger)))
	}

	logger.Info("starting game", "difficulty", string(preset), "screen", fmt.Sprintf("%dx%d", width, height))
	game := survival.New(cfg, opts...)
	if err := tui.Run(game, rc, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
