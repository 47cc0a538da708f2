package asteroids

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/assets"
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/entity"
	"github.com/vovakirdan/tui-asteroids/internal/leaderboard"
	"github.com/vovakirdan/tui-asteroids/internal/mesh"
	"github.com/vovakirdan/tui-asteroids/internal/scene"
)

// GameScene is a round of asteroids: one ship, a field of rocks that split
// when shot, and a saucer that shows up on a timer.
type GameScene struct {
	world      *scene.World
	cfg        config.Config
	difficulty *config.DifficultyManager
	board      *leaderboard.Client
	logger     *log.Logger

	rocks     []*mesh.Mesh
	player    *entity.Player
	asteroids map[scene.ID]struct{}
	enemies   map[scene.ID]struct{}

	score      int
	lives      int
	wave       int
	shots      int
	elapsed    float64
	enemyTimer float32
	gameOver   bool
}

func newGameScene(env *scene.Env, board *leaderboard.Client, logger *log.Logger) *GameScene {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := envConfig(env)
	return &GameScene{
		world:      scene.NewWorld(env.IDs, nil),
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		board:      board,
		logger:     logger,
		asteroids:  make(map[scene.ID]struct{}),
		enemies:    make(map[scene.ID]struct{}),
		lives:      cfg.Gameplay.Lives,
	}
}

func (s *GameScene) Name() string { return "game" }

// World exposes the live objects.
func (s *GameScene) World() *scene.World { return s.world }

// Player returns the ship.
func (s *GameScene) Player() *entity.Player { return s.player }

func (s *GameScene) Score() int         { return s.score }
func (s *GameScene) Lives() int         { return s.lives }
func (s *GameScene) Wave() int          { return s.wave }
func (s *GameScene) Shots() int         { return s.shots }
func (s *GameScene) GameOver() bool     { return s.gameOver }
func (s *GameScene) AsteroidCount() int { return len(s.asteroids) }
func (s *GameScene) EnemyCount() int    { return len(s.enemies) }

// State summarises the round for the platform.
func (s *GameScene) State() core.GameState {
	return core.GameState{
		Scene:    s.Name(),
		Score:    s.score,
		Lives:    s.lives,
		GameOver: s.gameOver,
	}
}

func (s *GameScene) Create(ctx *scene.Context) {
	b := ctx.Bounds()
	tr := core.NewTransform(b.Center(), core.V(entity.PlayerScale, entity.PlayerScale), 0, b)
	s.player = entity.NewPlayer(tr, assets.MeshOr(ctx.Assets, "player"), s.cfg.Player)
	s.world.Add(s.player)

	for _, name := range AsteroidMeshes {
		m, ok := lookupMesh(ctx.Assets, name)
		if !ok {
			s.logger.Debug("asteroid mesh missing", "name", name)
		}
		s.rocks = append(s.rocks, m)
	}
	s.spawnWave(ctx)

	if s.board != nil {
		s.board.ResetSubmit()
	}
}

func (s *GameScene) Update(ctx *scene.Context) {
	if s.gameOver {
		return
	}
	s.elapsed += float64(ctx.DT)
	events := s.world.Step(ctx)
	s.resolve(ctx, events)
}

// resolve applies the domain side of the frame's events.
func (s *GameScene) resolve(ctx *scene.Context, events []scene.Event) {
	for _, ev := range events {
		switch e := ev.(type) {
		case scene.DestroyEvent:
			delete(s.asteroids, e.ID)
			if _, ok := s.enemies[e.ID]; ok {
				delete(s.enemies, e.ID)
				s.score += s.cfg.Enemy.Score
			}
		case scene.DemolishEvent:
			s.score += s.cfg.Asteroids.Score
			s.splitAsteroid(ctx, e)
		case scene.PlayerDeathEvent:
			s.lives--
			if s.lives <= 0 {
				s.lives = 0
				s.gameOver = true
				s.logger.Debug("round over", "score", s.score, "wave", s.wave, "shots", s.shots)
			}
		case scene.SpawnDebrisEvent:
			for _, d := range newDebrisBurst(ctx.Rand, assets.MeshOr(ctx.Assets, "debris"), e.Pos, ctx.Bounds()) {
				s.world.Add(d)
			}
		case scene.ShootEvent:
			if s.player != nil && e.ID == s.player.ID() {
				s.shots++
			}
		}
	}

	if s.gameOver {
		return
	}
	if len(s.asteroids) == 0 {
		s.spawnWave(ctx)
	}
	s.tickEnemySpawn(ctx)
}

func (s *GameScene) speedMult() float32 {
	return s.difficulty.Speed(1, s.score, s.elapsed)
}

// spawnWave fills the field with fresh rocks away from the ship.
func (s *GameScene) spawnWave(ctx *scene.Context) {
	s.wave++
	b := ctx.Bounds()
	avoid := []core.Vec2{s.player.Position()}
	target := s.difficulty.AsteroidTarget(s.cfg.Asteroids.TargetCount, s.score, s.elapsed)
	for range target {
		pos, ok := pointAwayFrom(ctx.Rand, b, avoid, s.cfg.Asteroids.SafeRadius, safeSpawnAttempts)
		if !ok {
			pos = randomPoint(ctx.Rand, b)
		}
		scale := randRange(ctx.Rand, s.cfg.Asteroids.MinScale, s.cfg.Asteroids.MaxScale)
		s.addAsteroid(ctx, pos, scale)
	}
}

func (s *GameScene) splitAsteroid(ctx *scene.Context, e scene.DemolishEvent) {
	for _, scale := range Fragments(ctx.Rand, e.Scale) {
		s.addAsteroid(ctx, e.Pos, scale)
	}
}

func (s *GameScene) addAsteroid(ctx *scene.Context, pos core.Vec2, scale float32) {
	vel := asteroidVelocity(ctx.Rand, s.cfg.Asteroids, s.speedMult())
	a := newAsteroid(ctx.Rand, s.rocks, pos, scale, ctx.Bounds(), vel)
	s.asteroids[s.world.Add(a)] = struct{}{}
}

// tickEnemySpawn launches a saucer each interval when there is room for one
// and a spot far enough from everything else.
func (s *GameScene) tickEnemySpawn(ctx *scene.Context) {
	s.enemyTimer += ctx.DT
	interval := s.difficulty.SpawnInterval(s.cfg.Enemy.SpawnInterval, s.score, s.elapsed)
	if s.enemyTimer < interval {
		return
	}
	s.enemyTimer = 0
	if len(s.enemies) >= s.cfg.Enemy.MaxAlive {
		return
	}

	objects := s.world.Objects()
	avoid := make([]core.Vec2, 0, len(objects))
	for _, o := range objects {
		avoid = append(avoid, o.Position())
	}
	pos, ok := pointAwayFrom(ctx.Rand, ctx.Bounds(), avoid, s.cfg.Enemy.MinSpawnDistance, enemySpawnAttempts)
	if !ok {
		return
	}
	tr := core.NewTransform(pos, core.V(enemyScale, enemyScale), 0, ctx.Bounds())
	e := entity.NewEnemy(tr, assets.MeshOr(ctx.Assets, "ufo_01"), entity.RandomDirection(ctx.Rand), s.cfg.Enemy)
	s.enemies[s.world.Add(e)] = struct{}{}
}

func (s *GameScene) Draw(c scene.Canvas) {
	s.world.Draw(c)
}

func (s *GameScene) UI(ctx *scene.Context, ui scene.UI) scene.Switch {
	if !s.gameOver {
		ui.Label(fmt.Sprintf("SCORE %d   LIVES %d   WAVE %d", s.score, s.lives, s.wave))
		if ctx.Input != nil && ctx.Input.IsKeyDown(core.KeyEscape) {
			return scene.SwitchTo(scene.SceneMenu)
		}
		return scene.None()
	}

	ui.Label("GAME OVER")
	ui.Label(fmt.Sprintf("Score: %d", s.score))
	ui.Separator()
	s.submitUI(ui)
	ui.Separator()
	if ui.Button("Retry") {
		return scene.SwitchTo(scene.SceneGame)
	}
	if ui.Button("Menu") {
		return scene.SwitchTo(scene.SceneMenu)
	}
	return scene.None()
}

func (s *GameScene) submitUI(ui scene.UI) {
	if s.board == nil {
		ui.Label("Leaderboard disabled")
		return
	}
	s.board.Poll()

	if !s.board.NameAvailable() {
		ui.Label("Set a nickname (2+ letters) to submit")
		return
	}
	ui.Label("Pilot: " + s.board.Nickname())

	switch s.board.SubmitState() {
	case leaderboard.StateLoading:
		ui.Label("Submitting...")
		return
	case leaderboard.StateReady:
		if r := s.board.Submitted(); r != nil {
			if r.Updated {
				ui.Label(fmt.Sprintf("New best: %d", r.Score))
			} else {
				ui.Label(fmt.Sprintf("Best stays %d", r.Score))
			}
		}
		return
	case leaderboard.StateError:
		ui.Label("Submit failed: " + s.board.SubmitErr())
	}

	if ui.Button("Submit") {
		if _, err := s.board.Submit(uint32(s.score)); err != nil {
			s.logger.Warn("cannot submit score", "error", err)
		}
	}
}

// lookupMesh resolves name, falling back to an empty mesh.
func lookupMesh(l assets.Lookup, name string) (*mesh.Mesh, bool) {
	if l != nil {
		if m, ok := l.Mesh(name); ok {
			return m, true
		}
	}
	return mesh.Empty(), false
}

// envConfig returns the shared configuration, the one registered in the
// asset library, or the defaults.
func envConfig(env *scene.Env) config.Config {
	if env == nil {
		return config.Default()
	}
	if env.Config != nil {
		return *env.Config
	}
	if cfg, ok := assets.AnyOf[config.Config](env.Assets); ok {
		return cfg
	}
	return config.Default()
}
