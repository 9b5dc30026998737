package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-pong/internal/core"
	"github.com/vovakirdan/neon-pong/internal/platform/tui"
	"github.com/vovakirdan/neon-pong/internal/storage"
	"github.com/vovakirdan/neon-pong/internal/tabletennis"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match against the AI",
	Long: `Start a table tennis match against the cyber AI in this terminal.

Controls:
  Mouse        - Move paddle
  Left/Right   - Nudge paddle (also A/D, H/L)
  P/Space      - Pause
  N            - New match
  R            - Reset score
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Sloppy AI, forgiving returns
  normal - Default AI skill
  hard   - Sharp AI with accurate prediction

Examples:
  neonpong play
  neonpong play --difficulty hard
  neonpong play --config ./my-table.yaml --seed 42
  neonpong play --db ~/.neonpong/matches.db --log-file ./pong.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, preset, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger("neonpong")
	if err != nil {
		return err
	}
	defer closeLog()

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

	opts := tui.Options{
		Player:     localUser(),
		Difficulty: preset,
		Logger:     logger,
	}
	if flagDBPath != "" {
		store, storeErr := storage.Open(flagDBPath)
		if storeErr != nil {
			// Continue without history, the game still works
			fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", storeErr)
			logger.Warn("history disabled", "error", storeErr)
		} else {
			defer store.Close()
			opts.Store = store
		}
	}

	if err := tui.Run(tabletennis.New(gameCfg), cfg, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func localUser() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return "player"
}
