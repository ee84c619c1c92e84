package tui

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/psychic-chicken/internal/core"
)

// fakeGame records what the loop feeds it.
type fakeGame struct {
	steps  []core.InputFrame
	deltas []time.Duration
	state  core.GameState
}

func (g *fakeGame) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	g.steps = append(g.steps, in)
	g.deltas = append(g.deltas, dt)
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "EGGS", core.ColorBrightWhite)
}

func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Eligible() int { return 10 }
func (g *fakeGame) Title() string { return "Psychic Chicken" }

func newTestModel(g *fakeGame) Model {
	cfg := core.DefaultConfig()
	cfg.TickRate = 50
	return NewModel(g, Options{Config: cfg, HoldWindow: time.Hour})
}

func TestTickFeedsHeldKeys(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(Model)

	now := time.Now()
	next, cmd := m.Update(TickMsg(now))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}

	if len(g.steps) != 1 {
		t.Fatalf("steps = %d, want 1", len(g.steps))
	}
	if !g.steps[0].Has(core.ActionLeft) {
		t.Error("held left key should reach the game")
	}
	if g.deltas[0] != 20*time.Millisecond {
		t.Errorf("first dt = %v, want the frame target", g.deltas[0])
	}

	m.Update(TickMsg(now.Add(35 * time.Millisecond)))
	if g.deltas[1] != 35*time.Millisecond {
		t.Errorf("second dt = %v, want 35ms", g.deltas[1])
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(&fakeGame{})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc should quit")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestGameOverClearsHeldKeys(t *testing.T) {
	g := &fakeGame{state: core.GameState{GameOver: true}}
	m := newTestModel(g)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(Model)
	now := time.Now()
	next, _ = m.Update(TickMsg(now))
	m = next.(Model)
	m.Update(TickMsg(now.Add(time.Millisecond)))

	if g.steps[1].Has(core.ActionRight) {
		t.Error("held keys should be dropped once the game is over")
	}
}

func TestViewIncludesHelp(t *testing.T) {
	m := newTestModel(&fakeGame{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, want 100x29", m.screen.Width(), m.screen.Height())
	}

	view := m.View()
	if !strings.Contains(view, "EGGS") {
		t.Error("view should contain the rendered game")
	}
	if !strings.Contains(view, "quit") {
		t.Error("view should contain the help line")
	}
}

func TestScreenshot(t *testing.T) {
	dir := t.TempDir()
	g := &fakeGame{}
	cfg := core.DefaultConfig()
	m := NewModel(g, Options{Config: cfg, ScreenshotDir: dir})

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "chicken_") {
		t.Fatalf("screenshot files = %v", entries)
	}
	if len(g.steps) != 0 {
		t.Error("screenshot should not step the game")
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab", core.ColorDefault)
	s.DrawText(0, 1, "cd", core.ColorDefault)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[1], "cd") {
		t.Errorf("RenderScreen = %q", out)
	}
}

func TestKeyPressIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	m := NewModel(&fakeGame{}, Options{Config: core.DefaultConfig(), Logger: logger})

	m.Update(tea.KeyMsg{Type: tea.KeyShiftLeft})

	if !strings.Contains(buf.String(), "actions=Left+Sprint") {
		t.Errorf("log = %q, want the held actions by name", buf.String())
	}
}
