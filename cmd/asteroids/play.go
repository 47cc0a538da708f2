package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var flagLeaderboardURL string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play the game",
	Long: `Start the game. Without an argument it opens on the main menu;
pass asteroids-game to jump straight into a round or asteroids-sandbox
for the diagnostic scene.

Controls:
  Left/A, Right/D  - Turn
  Up/W             - Thrust
  Space            - Fire
  Up/Down, Enter   - Navigate menus
  Esc              - Back to menu
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, slow progression
  normal - Default tuning
  hard   - Starts further along the progression
  fixed  - No progression

Examples:
  asteroids play
  asteroids play asteroids-game --difficulty hard
  asteroids play --name maverick --leaderboard http://localhost:8080/
  asteroids play --leaderboard off`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLeaderboardURL, "leaderboard", "", `Leaderboard URL, "off" to disable (default from config)`)
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := asteroids.IDMenu
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'asteroids list' to see available games", gameID)
	}

	logger, logFile, err := newFileLogger(flagLogPath)
	if err != nil {
		return err
	}
	defer logFile.Close()

	configureGames(logger, flagLeaderboardURL)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting", "game", gameID, "fps", flagFPS, "seed", flagSeed)
	if err := tui.Run(game, store, runtimeConfig(), tui.WithPlayer(playerName()), tui.WithLogger(logger)); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
