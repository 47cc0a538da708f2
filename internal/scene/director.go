package scene

import (
	"fmt"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// MaxFrameTime caps the elapsed time fed into a frame so a stalled terminal
// does not cause objects to tunnel or jump across the field.
const MaxFrameTime float32 = 0.1

// UI is the immediate-mode widget surface a scene draws its controls on.
// Button reports whether it was activated this frame.
type UI interface {
	Label(text string)
	Button(label string) bool
	Separator()
}

// Scene is one state of the program: menu, game or sandbox.
type Scene interface {
	// Name identifies the scene in logs and state summaries.
	Name() string
	// Create populates the initial objects. It runs once, right after construction.
	Create(ctx *Context)
	// Update runs the whole simulation frame including domain resolution.
	Update(ctx *Context)
	// Draw issues draw calls for the live objects.
	Draw(c Canvas)
	// UI builds the widgets and reports the switch intent.
	UI(ctx *Context, ui UI) Switch
}

// Factory builds a fresh scene instance.
type Factory func(id SceneID, env *Env) (Scene, error)

// Director owns the active scene and executes switch intents.
// It is driven by the platform loop, one Frame call per tick.
type Director struct {
	env     *Env
	factory Factory
	current Scene
	id      SceneID
	quit    bool
}

// NewDirector creates a director and builds the start scene.
// env.IDs is created when nil.
func NewDirector(env *Env, factory Factory, start SceneID) (*Director, error) {
	if env.IDs == nil {
		env.IDs = NewIDAllocator()
	}
	d := &Director{env: env, factory: factory}
	if err := d.enter(start, core.NewInput()); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Director) enter(id SceneID, in *core.Input) error {
	s, err := d.factory(id, d.env)
	if err != nil {
		return fmt.Errorf("scene: create %s: %w", id, err)
	}
	s.Create(&Context{Env: d.env, Input: in})
	d.current = s
	d.id = id
	return nil
}

// Current returns the active scene.
func (d *Director) Current() Scene { return d.current }

// CurrentID returns which scene is active.
func (d *Director) CurrentID() SceneID { return d.id }

// Env returns the shared collaborators.
func (d *Director) Env() *Env { return d.env }

// Done reports whether a scene asked to quit.
func (d *Director) Done() bool { return d.quit }

// Frame runs one tick: update, draw, UI, then the switch the UI asked for.
// dt is clamped to MaxFrameTime and the input axes advance by the clamped dt.
// The returned switch is what the scene reported; by the time Frame returns
// it has already been applied.
func (d *Director) Frame(dt float32, in *core.Input, c Canvas, ui UI) (Switch, error) {
	if d.quit {
		return Quit(), nil
	}
	dt = ClampFrameTime(dt)
	if in == nil {
		in = core.NewInput()
	}
	in.Update(dt)
	ctx := &Context{Env: d.env, DT: dt, Input: in}

	d.current.Update(ctx)
	if c != nil {
		d.current.Draw(c)
	}
	sw := None()
	if ui != nil {
		sw = d.current.UI(ctx, ui)
	}
	return sw, d.apply(sw, in)
}

// Switch applies an intent coming from outside the UI pass.
func (d *Director) Switch(sw Switch) error {
	return d.apply(sw, core.NewInput())
}

func (d *Director) apply(sw Switch, in *core.Input) error {
	if sw.IsQuit() {
		d.quit = true
		return nil
	}
	if target, ok := sw.Target(); ok {
		return d.enter(target, in)
	}
	return nil
}

// ClampFrameTime limits dt to [0, MaxFrameTime].
func ClampFrameTime(dt float32) float32 {
	return core.ClampF32(dt, 0, MaxFrameTime)
}
