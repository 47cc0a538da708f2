package asteroids

import (
	"fmt"

	"github.com/vovakirdan/tui-asteroids/internal/leaderboard"
	"github.com/vovakirdan/tui-asteroids/internal/mesh"
	"github.com/vovakirdan/tui-asteroids/internal/scene"
)

type menuTab uint8

const (
	tabMain menuTab = iota
	tabScores
	tabCredits
)

// backdropRocks is how many rocks drift behind the menu.
const backdropRocks = 3

// MenuScene is the title screen with the leaderboard and credits tabs.
type MenuScene struct {
	world *scene.World
	board *leaderboard.Client
	tab   menuTab
}

func newMenuScene(env *scene.Env, board *leaderboard.Client) *MenuScene {
	return &MenuScene{
		world: scene.NewWorld(env.IDs, nil),
		board: board,
	}
}

func (s *MenuScene) Name() string { return "menu" }

// World exposes the backdrop objects.
func (s *MenuScene) World() *scene.World { return s.world }

func (s *MenuScene) Create(ctx *scene.Context) {
	if ctx.Rand == nil {
		return
	}
	cfg := envConfig(ctx.Env).Asteroids
	b := ctx.Bounds()
	rocks := make([]*mesh.Mesh, 0, len(AsteroidMeshes))
	for _, name := range AsteroidMeshes {
		m, _ := lookupMesh(ctx.Assets, name)
		rocks = append(rocks, m)
	}
	for range backdropRocks {
		scale := randRange(ctx.Rand, cfg.MinScale, cfg.MaxScale)
		vel := asteroidVelocity(ctx.Rand, cfg, 0.5)
		s.world.Add(newAsteroid(ctx.Rand, rocks, randomPoint(ctx.Rand, b), scale, b, vel))
	}
}

func (s *MenuScene) Update(ctx *scene.Context) {
	s.world.Step(ctx)
}

func (s *MenuScene) Draw(c scene.Canvas) {
	s.world.Draw(c)
}

func (s *MenuScene) UI(_ *scene.Context, ui scene.UI) scene.Switch {
	switch s.tab {
	case tabScores:
		s.scoresUI(ui)
	case tabCredits:
		s.creditsUI(ui)
	default:
		return s.mainUI(ui)
	}
	return scene.None()
}

func (s *MenuScene) mainUI(ui scene.UI) scene.Switch {
	ui.Label("A S T E R O I D S")
	ui.Separator()
	if ui.Button("Play") {
		return scene.SwitchTo(scene.SceneGame)
	}
	if ui.Button("Scores") {
		s.tab = tabScores
		if s.board != nil && s.board.State() == leaderboard.StateIdle {
			s.board.FetchTop()
		}
	}
	if ui.Button("Sandbox") {
		return scene.SwitchTo(scene.SceneSandbox)
	}
	if ui.Button("Credits") {
		s.tab = tabCredits
	}
	if ui.Button("Exit") {
		return scene.Quit()
	}
	return scene.None()
}

func (s *MenuScene) scoresUI(ui scene.UI) {
	ui.Label("LEADERBOARD")
	ui.Separator()

	if s.board == nil {
		ui.Label("Leaderboard disabled")
	} else {
		switch s.board.Poll() {
		case leaderboard.StateIdle:
			ui.Label("Press Refresh to load scores")
		case leaderboard.StateLoading:
			ui.Label("Loading...")
		case leaderboard.StateReady:
			top := s.board.Top()
			if len(top) == 0 {
				ui.Label("No scores yet")
			}
			for i, e := range top {
				ui.Label(fmt.Sprintf("%2d. %-16s %8d", i+1, e.Name, e.Score))
			}
		case leaderboard.StateError:
			ui.Label("Error: " + s.board.Err())
		}
		ui.Separator()
		if ui.Button("Refresh") {
			s.board.FetchTop()
		}
	}
	if ui.Button("Back") {
		s.tab = tabMain
	}
}

func (s *MenuScene) creditsUI(ui scene.UI) {
	ui.Label("CREDITS")
	ui.Separator()
	ui.Label("Vector asteroids for the terminal")
	ui.Label("Arrows or WASD to fly, Space to fire, Esc for the menu")
	ui.Separator()
	if ui.Button("Back") {
		s.tab = tabMain
	}
}
