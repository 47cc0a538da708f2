package asteroids

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-asteroids/internal/assets"
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/scene"
)

func newTestGame(t *testing.T, start scene.SceneID, seed int64) *Game {
	t.Helper()
	cfg := config.Default()
	g := NewWithOptions(start, Options{Config: &cfg, LeaderboardURL: "off"})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	require.NoError(t, g.Err())
	t.Cleanup(func() { g.Close() })
	return g
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDMenu, IDGame, IDSandbox} {
		require.True(t, registry.Exists(id), id)
		g, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())
	}
}

func TestGameMenuToRound(t *testing.T) {
	g := newTestGame(t, scene.SceneMenu, 42)
	assert.Equal(t, "menu", g.State().Scene)
	assert.Nil(t, g.Leaderboard())

	res := g.Step(1.0/60, core.NewInput(), pressing("Play"))
	assert.False(t, res.Quit)
	assert.Equal(t, "game", res.State.Scene)
	assert.Equal(t, 3, res.State.Lives)
}

func TestGameQuit(t *testing.T) {
	g := newTestGame(t, scene.SceneMenu, 42)

	res := g.Step(1.0/60, core.NewInput(), pressing("Exit"))
	assert.True(t, res.Quit)
	assert.True(t, g.Director().Done())
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, scene.SceneGame, 42)
	g.Step(1.0/60, core.NewInput(), nil)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	drawn := 0
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if screen.Get(x, y) != ' ' {
				drawn++
			}
		}
	}
	assert.Positive(t, drawn)
}

func TestGameRegistersConfig(t *testing.T) {
	g := newTestGame(t, scene.SceneSandbox, 1)

	cfg, ok := assets.AnyOf[config.Config](g.Director().Env().Assets)
	require.True(t, ok)
	assert.Equal(t, 800, cfg.WindowSize.X)
}

func TestGamePresetApplied(t *testing.T) {
	cfg := config.Default()
	g := NewWithOptions(scene.SceneGame, Options{Config: &cfg, Preset: config.DifficultyEasy, LeaderboardURL: "off"})
	g.Reset(core.RuntimeConfig{Seed: 1})
	defer g.Close()

	assert.Equal(t, 5, g.State().Lives)
}

func TestGameDeterminism(t *testing.T) {
	run := func() (core.GameState, []core.Vec2) {
		g := newTestGame(t, scene.SceneGame, 12345)
		in := core.NewInput()
		for i := range 600 {
			in.SetKey(core.KeySpace, i%3 == 0)
			in.SetKey(core.KeyLeft, i%50 < 20)
			in.SetKey(core.KeyUp, i%90 < 30)
			g.Step(1.0/60, in, nil)
		}
		var pos []core.Vec2
		for _, o := range g.Director().Current().(*GameScene).World().Objects() {
			pos = append(pos, o.Position())
		}
		return g.State(), pos
	}

	s1, p1 := run()
	s2, p2 := run()
	assert.Equal(t, s1, s2)
	assert.Equal(t, p1, p2)
}

func TestGameSetNickname(t *testing.T) {
	cfg := config.Default()
	g := NewWithOptions(scene.SceneMenu, Options{Config: &cfg, LeaderboardURL: "http://127.0.0.1:1/"})
	t.Cleanup(func() { g.Close() })

	g.SetNickname("maverick")
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	require.NotNil(t, g.Leaderboard())
	assert.Equal(t, "maverick", g.Leaderboard().Nickname())

	g.SetNickname("goose")
	assert.Equal(t, "goose", g.Leaderboard().Nickname())
}
