package asteroids

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-asteroids/internal/assets"
	"github.com/vovakirdan/tui-asteroids/internal/collision"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/entity"
	"github.com/vovakirdan/tui-asteroids/internal/mesh"
	"github.com/vovakirdan/tui-asteroids/internal/scene"
)

// tracerSpeed is how fast the sandbox tracer crosses the field.
const tracerSpeed float32 = 300

// SandboxScene is a diagnostic playground: a saucer parked in the middle and
// a long-lived tracer bullet that is relaunched whenever it expires.
type SandboxScene struct {
	world  *scene.World
	enemy  *entity.Enemy
	tracer scene.ID
	meshes []string
	frames int
}

func newSandboxScene(env *scene.Env) *SandboxScene {
	return &SandboxScene{world: scene.NewWorld(env.IDs, nil)}
}

func (s *SandboxScene) Name() string { return "sandbox" }

// World exposes the live objects.
func (s *SandboxScene) World() *scene.World { return s.world }

func (s *SandboxScene) Create(ctx *scene.Context) {
	b := ctx.Bounds()
	cfg := envConfig(ctx.Env)

	tr := core.NewTransform(b.Center(), core.V(enemyScale, enemyScale), 0, b)
	s.enemy = entity.NewEnemy(tr, assets.MeshOr(ctx.Assets, "ufo_01"), 1, cfg.Enemy)
	s.world.Add(s.enemy)
	s.launchTracer(ctx)

	for _, m := range assets.AllOf[*mesh.Mesh](ctx.Assets) {
		s.meshes = append(s.meshes, fmt.Sprintf("%s(%d)", m.Name(), m.Len()))
	}
}

func (s *SandboxScene) launchTracer(ctx *scene.Context) {
	b := ctx.Bounds()
	start := core.V(b.Min.X, b.Center().Y/2)
	tr := core.NewTransform(start, core.V(entity.BulletScale, entity.BulletScale), 0, b)
	bullet := entity.NewBullet(tr, assets.MeshOr(ctx.Assets, "bullet"),
		tracerSpeed, collision.LayerBulletFromPlayer, entity.BulletTracer)
	s.tracer = s.world.Add(bullet)
}

func (s *SandboxScene) Update(ctx *scene.Context) {
	s.frames++
	for _, ev := range s.world.Step(ctx) {
		if d, ok := ev.(scene.DestroyEvent); ok && d.ID == s.tracer {
			s.launchTracer(ctx)
		}
	}
}

func (s *SandboxScene) Draw(c scene.Canvas) {
	s.world.Draw(c)
}

func (s *SandboxScene) UI(_ *scene.Context, ui scene.UI) scene.Switch {
	ui.Label("SANDBOX")
	ui.Label(fmt.Sprintf("objects %d  frames %d", s.world.Len(), s.frames))
	if len(s.meshes) > 0 {
		ui.Label("meshes: " + strings.Join(s.meshes, " "))
	}
	ui.Separator()
	if ui.Button("Back") {
		return scene.SwitchTo(scene.SceneMenu)
	}
	return scene.None()
}
