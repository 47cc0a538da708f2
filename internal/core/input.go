package core

// Key names understood by Input. They match Bubble Tea key strings so the
// platform layer can forward them without translation.
const (
	KeyLeft   = "left"
	KeyRight  = "right"
	KeyUp     = "up"
	KeyA      = "a"
	KeyD      = "d"
	KeyW      = "w"
	KeySpace  = " "
	KeyEnter  = "enter"
	KeyEscape = "esc"
)

// InputAxis is a continuous control smoothed toward its raw discrete value.
type InputAxis struct {
	Raw    int
	Lerp   float32
	Weight float32 // smoothing rate per second
}

// NewInputAxis creates an axis with the given smoothing weight.
func NewInputAxis(weight float32) InputAxis {
	return InputAxis{Weight: weight}
}

func (a *InputAxis) add(v int) { a.Raw += v }
func (a *InputAxis) reset()    { a.Raw = 0 }

// update moves Lerp toward Raw by dt*Weight, clamped so it never overshoots.
func (a *InputAxis) update(dt float32) {
	t := ClampF32(dt*a.Weight, 0, 1)
	a.Lerp += (float32(a.Raw) - a.Lerp) * t
}

// Input is the per-frame control snapshot consumed by object updates.
// The platform layer reports key state with SetKey; Update derives the axes.
type Input struct {
	keys       map[string]bool
	horizontal InputAxis
	vertical   InputAxis
	fire       InputAxis
}

// NewInput creates an input with the default axis weights.
func NewInput() *Input {
	return &Input{
		keys:       make(map[string]bool),
		horizontal: NewInputAxis(10),
		vertical:   NewInputAxis(5),
		fire:       NewInputAxis(100),
	}
}

// SetKey records whether a key is held.
func (in *Input) SetKey(key string, down bool) {
	in.keys[key] = down
}

// IsKeyDown reports whether a key is currently held.
func (in *Input) IsKeyDown(key string) bool {
	return in.keys[key]
}

// ReleaseAll marks every key as up.
func (in *Input) ReleaseAll() {
	clear(in.keys)
}

// Horizontal returns the smoothed turn axis in [-1, 1].
func (in *Input) Horizontal() float32 { return in.horizontal.Lerp }

// Vertical returns the smoothed thrust axis in [0, 1].
func (in *Input) Vertical() float32 { return in.vertical.Lerp }

// Fire reports whether the fire key is down this frame.
func (in *Input) Fire() bool { return in.fire.Raw >= 1 }

// Update recomputes raw axis values from key state and advances smoothing.
func (in *Input) Update(dt float32) {
	in.horizontal.reset()
	in.vertical.reset()
	in.fire.reset()

	if in.IsKeyDown(KeyA) || in.IsKeyDown(KeyLeft) {
		in.horizontal.add(-1)
	}
	if in.IsKeyDown(KeyD) || in.IsKeyDown(KeyRight) {
		in.horizontal.add(1)
	}
	if in.IsKeyDown(KeyW) || in.IsKeyDown(KeyUp) {
		in.vertical.add(1)
	}
	if in.IsKeyDown(KeySpace) {
		in.fire.add(1)
	}

	in.horizontal.update(dt)
	in.vertical.update(dt)
	in.fire.update(dt)
}
