package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/leaderboard"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var flagBoardAddr string

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Run the HTTP leaderboard server",
	Long: `Serve the shared leaderboard over HTTP, keeping the best score per name
in the scores database.

  GET  /?action=top   - top 20 as {"ok":true,"top":[{"name":..,"score":..}]}
  POST /              - {"name":"..","score":N} as JSON or form data

Examples:
  asteroids leaderboard
  asteroids leaderboard --addr :9000 --db ./board.db`,
	Args: cobra.NoArgs,
	RunE: runLeaderboard,
}

func init() {
	leaderboardCmd.Flags().StringVar(&flagBoardAddr, "addr", ":8080", "HTTP listen address")
}

func runLeaderboard(_ *cobra.Command, _ []string) error {
	logger := newStderrLogger("leaderboard")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return leaderboard.ListenAndServe(ctx, flagBoardAddr, leaderboard.NewServer(store, logger), logger)
}

// localAddr turns a listen address into one a local client can dial.
func localAddr(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return net.JoinHostPort(host, port)
}

func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
