// asteroids is a vector-style asteroids game for the terminal.
//
// Usage:
//
//	asteroids play [game]     - Play (menu by default)
//	asteroids list            - List game entry points
//	asteroids scores [game]   - Show local high scores
//	asteroids serve           - Host the game over SSH
//	asteroids leaderboard     - Run the HTTP leaderboard server
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.asteroids/scores.db)
//	--config <path>       - Game config YAML
//	--difficulty <preset> - easy, normal, hard, fixed
//	--name <nickname>     - Pilot name for scores and the leaderboard
//	--assets <dir>        - Directory of mesh files overriding the built-ins
//	--log <path>          - Log file for interactive runs
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagName       string
	flagAssets     string
	flagLogPath    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Asteroids - a vector arcade shooter in your terminal",
	Long: `Asteroids renders a wrap-around vector playfield in the terminal.
Fly, shoot rocks and saucers, and post your best score to a shared leaderboard.

Available commands:
  play         - Play the game
  list         - Show the game entry points
  scores       - View local high scores
  serve        - Host the game over SSH
  leaderboard  - Run the HTTP leaderboard server

Examples:
  asteroids play
  asteroids play asteroids-game --difficulty hard
  asteroids scores
  asteroids serve --ssh :2222 --http :8080
  asteroids leaderboard --addr :8080`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.asteroids/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagName, "name", "", "Pilot name (2-16 letters) for scores and the leaderboard")
	pf.StringVar(&flagAssets, "assets", "", "Directory of *.yaml mesh files")
	pf.StringVar(&flagLogPath, "log", "~/.asteroids/asteroids.log", "Log file for interactive runs")
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(leaderboardCmd)
}
