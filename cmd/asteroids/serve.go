package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/leaderboard"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagHTTPAddr    string
	flagServeGame   string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host the game over SSH",
	Long: `Start an SSH server where every connection gets its own game.

The SSH user name is the pilot name. Local scores go to the server's
database. With --http, the same database also backs an HTTP leaderboard
that sessions can submit to.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.asteroids/host_key

Examples:
  asteroids serve                           # Listen on :23234
  asteroids serve --ssh :2222               # Listen on port 2222
  asteroids serve --http :8080              # Also serve the leaderboard
  asteroids serve --host-key ./my_host_key  # Use specific host key

Players connect with:
  ssh -p 23234 pilot@localhost`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "Also serve the HTTP leaderboard on this address")
	serveCmd.Flags().StringVar(&flagServeGame, "game", asteroids.IDMenu, "Entry point every session starts")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := newStderrLogger("asteroids-ssh")

	// Sessions submit to the local leaderboard when it runs here.
	boardURL := "off"
	if flagHTTPAddr != "" {
		boardURL = "http://" + localAddr(flagHTTPAddr) + "/"
	}
	configureGames(logger.WithPrefix("asteroids"), boardURL)

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.GameID = flagServeGame
	cfg.TickRate = flagFPS
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.ListenAndServe(ctx)
	})
	if flagHTTPAddr != "" && server.Store() != nil {
		httpLogger := logger.WithPrefix("leaderboard")
		handler := leaderboard.NewServer(server.Store(), httpLogger)
		g.Go(func() error {
			return leaderboard.ListenAndServe(ctx, flagHTTPAddr, handler, httpLogger)
		})
	}

	logger.Info("connect with", "cmd", "ssh -p "+portOf(flagSSHAddr)+" <name>@localhost")
	return g.Wait()
}
