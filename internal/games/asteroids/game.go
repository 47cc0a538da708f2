// Package asteroids wires the scene core into a playable game: the menu,
// the round itself and a diagnostic sandbox, registered with the platform
// registry under three ids.
package asteroids

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/assets"
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/leaderboard"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/render"
	"github.com/vovakirdan/tui-asteroids/internal/scene"
)

// Registry ids.
const (
	IDMenu    = "asteroids"
	IDGame    = "asteroids-game"
	IDSandbox = "asteroids-sandbox"
)

// Options are the process-wide settings the CLI hands to every new game.
type Options struct {
	ConfigPath     string // empty: search order of config.Load
	Config         *config.Config
	Preset         config.DifficultyPreset
	AssetsDir      string // extra *.yaml mesh files overriding the built-ins
	Logger         *log.Logger
	Nickname       string
	LeaderboardURL string // overrides config; "off" disables the client
}

var defaults Options

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	defaults.ConfigPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// config file's settings.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		defaults.Preset = ""
		return
	}
	defaults.Preset = p
}

// SetAssetsDir adds a directory of mesh files loaded over the built-ins.
func SetAssetsDir(dir string) {
	defaults.AssetsDir = dir
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	defaults.Logger = l
}

// SetNickname sets the pilot name used for leaderboard submissions.
func SetNickname(name string) {
	defaults.Nickname = name
}

// SetLeaderboardURL overrides the configured leaderboard endpoint.
func SetLeaderboardURL(url string) {
	defaults.LeaderboardURL = url
}

// Game adapts a scene Director to the registry.Game interface.
type Game struct {
	id    string
	title string
	start scene.SceneID
	opts  Options

	logger   *log.Logger
	runtime  core.RuntimeConfig
	cfg      config.Config
	director *scene.Director
	board    *leaderboard.Client
	err      error
}

// New creates a game that opens on the given scene, using the package
// defaults set through the Set* functions.
func New(start scene.SceneID) *Game {
	return NewWithOptions(start, defaults)
}

// NewWithOptions creates a game with explicit options.
func NewWithOptions(start scene.SceneID, opts Options) *Game {
	g := &Game{start: start, opts: opts}
	switch start {
	case scene.SceneGame:
		g.id, g.title = IDGame, "Asteroids (quick play)"
	case scene.SceneSandbox:
		g.id, g.title = IDSandbox, "Asteroids Sandbox"
	default:
		g.id, g.title = IDMenu, "Asteroids"
	}
	return g
}

func (g *Game) ID() string    { return g.id }
func (g *Game) Title() string { return g.title }

// Director returns the running director, nil before Reset.
func (g *Game) Director() *scene.Director { return g.director }

// Leaderboard returns the client, nil when disabled.
func (g *Game) Leaderboard() *leaderboard.Client { return g.board }

// Err reports why the last Reset could not start a scene.
func (g *Game) Err() error { return g.err }

// SetNickname sets the pilot name for this game only. It takes effect
// immediately when the leaderboard client already exists.
func (g *Game) SetNickname(name string) {
	g.opts.Nickname = name
	if g.board != nil {
		g.board.SetNickname(name)
	}
}

// Reset loads configuration and assets and builds the start scene.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.logger = g.opts.Logger
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	g.cfg = g.loadConfig()
	lib := g.loadAssets()

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewPCG(uint64(seed), 0x9e3779b97f4a7c15))

	g.Close()
	g.board = g.newBoard()

	env := &scene.Env{
		IDs:    scene.NewIDAllocator(),
		Config: &g.cfg,
		Assets: lib,
		Rand:   rng,
	}
	g.director, g.err = scene.NewDirector(env, NewFactory(g.board, g.logger), g.start)
	if g.err != nil {
		g.logger.Error("cannot start scene", "scene", g.start, "error", g.err)
	}
}

func (g *Game) loadConfig() config.Config {
	var cfg config.Config
	switch {
	case g.opts.Config != nil:
		cfg = *g.opts.Config
	case g.opts.ConfigPath != "":
		cfg = config.LoadOrInit(g.opts.ConfigPath, g.logger)
	default:
		var err error
		if cfg, err = config.Load(""); err != nil {
			g.logger.Warn("config unusable, using defaults", "error", err)
			cfg = config.Default()
		}
	}
	if g.opts.Preset != "" {
		config.ApplyPreset(&cfg, g.opts.Preset)
	}
	return cfg
}

func (g *Game) loadAssets() *assets.Library {
	lib, err := assets.Builtin()
	if err != nil {
		g.logger.Error("built-in meshes unusable", "error", err)
		lib = assets.New()
	}
	if g.opts.AssetsDir != "" {
		if err := lib.LoadDir(g.opts.AssetsDir); err != nil {
			g.logger.Warn("cannot load mesh directory", "dir", g.opts.AssetsDir, "error", err)
		}
	}
	lib.Register(g.cfg)
	return lib
}

func (g *Game) newBoard() *leaderboard.Client {
	url := g.cfg.Leaderboard.URL
	if g.opts.LeaderboardURL != "" {
		url = g.opts.LeaderboardURL
	}
	if url == "" || url == "off" {
		return nil
	}
	c := leaderboard.NewClient(url, g.cfg.Leaderboard.Timeout, g.logger)
	name := g.cfg.Leaderboard.Nickname
	if g.opts.Nickname != "" {
		name = g.opts.Nickname
	}
	c.SetNickname(name)
	return c
}

// Step advances one frame and runs the UI pass.
func (g *Game) Step(dt float32, in *core.Input, ui scene.UI) core.StepResult {
	if g.director == nil {
		return core.StepResult{State: g.State()}
	}
	sw, err := g.director.Frame(dt, in, nil, ui)
	if err != nil {
		g.logger.Error("scene switch failed", "switch", sw, "error", err)
	} else if !sw.IsNone() {
		g.logger.Debug("scene switch", "switch", sw)
	}
	return core.StepResult{State: g.State(), Quit: g.director.Done()}
}

// Render draws the current scene into dst, scaling the world onto its cells.
func (g *Game) Render(dst *core.Screen) {
	if g.director == nil {
		if g.err != nil {
			dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("asteroids: %v", g.err), core.ColorBrightRed)
		}
		return
	}
	g.director.Current().Draw(render.NewCanvas(dst, g.cfg.Bounds()))
}

// State returns the summary of the active scene.
func (g *Game) State() core.GameState {
	if g.director == nil {
		return core.GameState{}
	}
	cur := g.director.Current()
	if r, ok := cur.(interface{ State() core.GameState }); ok {
		return r.State()
	}
	return core.GameState{Scene: cur.Name()}
}

// Close abandons any leaderboard request in flight.
func (g *Game) Close() error {
	if g.board != nil {
		g.board.Close()
	}
	return nil
}

// NewFactory builds the scenes of the game. board may be nil.
func NewFactory(board *leaderboard.Client, logger *log.Logger) scene.Factory {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return func(id scene.SceneID, env *scene.Env) (scene.Scene, error) {
		switch id {
		case scene.SceneMenu:
			return newMenuScene(env, board), nil
		case scene.SceneGame:
			return newGameScene(env, board, logger), nil
		case scene.SceneSandbox:
			return newSandboxScene(env), nil
		}
		return nil, fmt.Errorf("asteroids: unknown scene %s", id)
	}
}

// Register the games with the registry
func init() {
	registry.Register(IDMenu, func() registry.Game { return New(scene.SceneMenu) })
	registry.Register(IDGame, func() registry.Game { return New(scene.SceneGame) })
	registry.Register(IDSandbox, func() registry.Game { return New(scene.SceneSandbox) })
}
