package scene

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

type fakeScene struct {
	name    string
	created int
	dts     []float32
	next    Switch
}

func (s *fakeScene) Name() string               { return s.name }
func (s *fakeScene) Create(*Context)            { s.created++ }
func (s *fakeScene) Update(ctx *Context)        { s.dts = append(s.dts, ctx.DT) }
func (s *fakeScene) Draw(Canvas)                {}
func (s *fakeScene) UI(_ *Context, _ UI) Switch { return s.next }

type nopUI struct{}

func (nopUI) Label(string)       {}
func (nopUI) Button(string) bool { return false }
func (nopUI) Separator()         {}

func newFakeDirector(t *testing.T) (*Director, map[SceneID][]*fakeScene) {
	t.Helper()
	built := map[SceneID][]*fakeScene{}
	factory := func(id SceneID, _ *Env) (Scene, error) {
		if id == SceneSandbox {
			return nil, errors.New("no sandbox")
		}
		s := &fakeScene{name: id.String()}
		built[id] = append(built[id], s)
		return s, nil
	}
	d, err := NewDirector(&Env{}, factory, SceneMenu)
	require.NoError(t, err)
	return d, built
}

func TestDirectorClampsFrameTime(t *testing.T) {
	d, built := newFakeDirector(t)
	in := core.NewInput()

	_, err := d.Frame(0.5, in, nil, nopUI{})
	require.NoError(t, err)
	_, err = d.Frame(0.02, in, nil, nopUI{})
	require.NoError(t, err)
	_, err = d.Frame(-1, in, nil, nopUI{})
	require.NoError(t, err)

	assert.Equal(t, []float32{MaxFrameTime, 0.02, 0}, built[SceneMenu][0].dts)
}

func TestDirectorSwitchReplacesScene(t *testing.T) {
	d, built := newFakeDirector(t)
	menu := built[SceneMenu][0]
	menu.next = SwitchTo(SceneGame)

	sw, err := d.Frame(0.016, core.NewInput(), nil, nopUI{})
	require.NoError(t, err)

	target, ok := sw.Target()
	assert.True(t, ok)
	assert.Equal(t, SceneGame, target)
	assert.Equal(t, SceneGame, d.CurrentID())
	require.Len(t, built[SceneGame], 1)
	assert.Equal(t, 1, built[SceneGame][0].created)

	// Switching to the same kind again builds a new instance.
	built[SceneGame][0].next = SwitchTo(SceneGame)
	_, err = d.Frame(0.016, core.NewInput(), nil, nopUI{})
	require.NoError(t, err)
	assert.Len(t, built[SceneGame], 2)
}

func TestDirectorQuit(t *testing.T) {
	d, built := newFakeDirector(t)
	built[SceneMenu][0].next = Quit()

	sw, err := d.Frame(0.016, core.NewInput(), nil, nopUI{})
	require.NoError(t, err)
	assert.True(t, sw.IsQuit())
	assert.True(t, d.Done())

	// Further frames do nothing.
	sw, err = d.Frame(0.016, core.NewInput(), nil, nopUI{})
	require.NoError(t, err)
	assert.True(t, sw.IsQuit())
	assert.Len(t, built[SceneMenu][0].dts, 1)
}

func TestDirectorFactoryError(t *testing.T) {
	d, _ := newFakeDirector(t)
	err := d.Switch(SwitchTo(SceneSandbox))
	assert.Error(t, err)
	assert.Equal(t, SceneMenu, d.CurrentID())
}

func TestDirectorSharesAllocator(t *testing.T) {
	d, _ := newFakeDirector(t)
	require.NotNil(t, d.Env().IDs)
	first := d.Env().IDs.Next()
	require.NoError(t, d.Switch(SwitchTo(SceneGame)))
	assert.Greater(t, d.Env().IDs.Next(), first)
}

func TestSwitchString(t *testing.T) {
	assert.Equal(t, "none", None().String())
	assert.Equal(t, "quit", Quit().String())
	assert.Equal(t, "switch(game)", SwitchTo(SceneGame).String())
}
