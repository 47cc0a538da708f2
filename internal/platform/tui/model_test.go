package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/scene"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// stubGame records what the model feeds it.
type stubGame struct {
	resets  int
	dts     []float32
	held    map[string]bool
	buttons []string
	fired   []string
	state   core.GameState
	quit    bool
	closed  bool
}

func (g *stubGame) ID() string               { return "stub" }
func (g *stubGame) Title() string            { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *stubGame) State() core.GameState    { return g.state }
func (g *stubGame) Render(s *core.Screen)    { s.DrawText(0, 1, "ship", core.ColorWhite) }

func (g *stubGame) Close() error {
	g.closed = true
	return nil
}

func (g *stubGame) Step(dt float32, in *core.Input, ui scene.UI) core.StepResult {
	g.dts = append(g.dts, dt)
	g.held = map[string]bool{
		core.KeyLeft: in.IsKeyDown(core.KeyLeft),
		core.KeyUp:   in.IsKeyDown(core.KeyUp),
	}
	ui.Label("STUB")
	for _, b := range g.buttons {
		if ui.Button(b) {
			g.fired = append(g.fired, b)
		}
	}
	return core.StepResult{State: g.state, Quit: g.quit}
}

func newTestModel(g *stubGame, store *storage.Store) Model {
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 30}
	return NewModel(g, store, cfg, WithPlayer("tester"))
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelTickMeasuresDT(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, nil)
	t0 := time.Now()

	m, cmd := step(t, m, TickMsg(t0))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	m, _ = step(t, m, TickMsg(t0.Add(50*time.Millisecond)))

	if len(g.dts) != 2 {
		t.Fatalf("steps = %d, want 2", len(g.dts))
	}
	if g.dts[0] != 0 {
		t.Errorf("first dt = %v, want 0", g.dts[0])
	}
	if d := g.dts[1]; d < 0.049 || d > 0.051 {
		t.Errorf("second dt = %v, want 0.05", d)
	}
}

func TestModelHeldKeysReachGame(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, nil)

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = step(t, m, TickMsg(time.Now()))
	if !g.held[core.KeyLeft] {
		t.Fatal("left should be held right after the press")
	}

	m, _ = step(t, m, TickMsg(time.Now().Add(time.Second)))
	if g.held[core.KeyLeft] {
		t.Error("left should be released once repeats stop")
	}
}

func TestModelMenuNavigation(t *testing.T) {
	g := &stubGame{buttons: []string{"Play", "Quit"}}
	m := newTestModel(g, nil)
	now := time.Now()

	m, _ = step(t, m, TickMsg(now))
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = step(t, m, TickMsg(now.Add(30*time.Millisecond)))

	if len(g.fired) != 1 || g.fired[0] != "Quit" {
		t.Errorf("fired = %v, want [Quit]", g.fired)
	}
	if g.held[core.KeyUp] {
		t.Error("menu keys should not reach the ship while buttons are shown")
	}
}

func TestModelSavesScoreOnceOnGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	g := &stubGame{state: core.GameState{Score: 42, GameOver: true}}
	m := newTestModel(g, store)
	now := time.Now()
	for i := range 3 {
		m, _ = step(t, m, TickMsg(now.Add(time.Duration(i)*time.Millisecond)))
	}

	scores, err := store.AllScores("stub")
	if err != nil {
		t.Fatalf("AllScores: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}
	if scores[0].Score != 42 || scores[0].Name != "tester" {
		t.Errorf("saved %+v", scores[0])
	}

	// a new round that ends again is saved again
	g.state = core.GameState{Score: 7}
	m, _ = step(t, m, TickMsg(now.Add(time.Second)))
	g.state = core.GameState{Score: 7, GameOver: true}
	step(t, m, TickMsg(now.Add(2*time.Second)))

	scores, _ = store.AllScores("stub")
	if len(scores) != 2 {
		t.Errorf("saved %d scores after second round, want 2", len(scores))
	}
}

func TestModelQuitFromGame(t *testing.T) {
	g := &stubGame{quit: true}
	m := newTestModel(g, nil)

	m, cmd := step(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit result should end the program")
	}
	if !g.closed {
		t.Error("game should be closed on quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelQuitKey(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, nil)

	_, cmd := step(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should produce a quit message")
	}
}

func TestModelViewDrawsGameAndUI(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, nil)
	m, _ = step(t, m, TickMsg(time.Now()))

	out := m.View()
	if !strings.Contains(out, "STUB") || !strings.Contains(out, "ship") {
		t.Errorf("view missing game or HUD:\n%s", out)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, nil)
	m.Init()

	m, _ = step(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if m.screen.Width() != 80 || m.screen.Height() != 24 {
		t.Errorf("screen = %dx%d, want 80x24", m.screen.Width(), m.screen.Height())
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
}
