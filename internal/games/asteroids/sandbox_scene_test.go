package asteroids

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/entity"
	"github.com/vovakirdan/tui-asteroids/internal/scene"
)

func TestSandboxCreate(t *testing.T) {
	env := testEnv(t, config.Default())
	s := newSandboxScene(env)
	s.Create(frame(env, 0))

	require.Equal(t, 2, s.World().Len())
	enemy, ok := s.World().Objects()[0].(*entity.Enemy)
	require.True(t, ok)
	assert.Equal(t, env.Bounds().Center(), enemy.Position())

	tracer, ok := s.World().Objects()[1].(*entity.Bullet)
	require.True(t, ok)
	assert.Equal(t, entity.BulletTracer, tracer.Kind())
	assert.False(t, tracer.CanCollide())

	ui := pressing()
	s.UI(frame(env, 0), ui)
	assert.Contains(t, ui.text(), "ufo_01(10)")
}

func TestSandboxRelaunchesTracer(t *testing.T) {
	env := testEnv(t, config.Default())
	s := newSandboxScene(env)
	s.Create(frame(env, 0))
	first := s.tracer

	for range 29 {
		s.Update(frame(env, 0.1))
	}
	_, alive := s.World().Find(first)
	assert.True(t, alive)

	for range 3 {
		s.Update(frame(env, 0.1))
	}
	_, alive = s.World().Find(first)
	assert.False(t, alive)
	assert.NotEqual(t, first, s.tracer)
	_, alive = s.World().Find(s.tracer)
	assert.True(t, alive)
}

func TestSandboxBack(t *testing.T) {
	env := testEnv(t, config.Default())
	s := newSandboxScene(env)
	s.Create(frame(env, 0))

	target, ok := s.UI(frame(env, 0), pressing("Back")).Target()
	require.True(t, ok)
	assert.Equal(t, scene.SceneMenu, target)
}
