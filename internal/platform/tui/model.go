package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/psychic-chicken/internal/core"
	"github.com/vovakirdan/psychic-chicken/internal/telemetry"
)

// Game is the simulation driven by the terminal loop.
type Game interface {
	Step(in core.InputFrame, dt time.Duration) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	Eligible() int
	Title() string
}

// Options configures the terminal runner.
type Options struct {
	Config        core.RuntimeConfig
	Logger        *log.Logger
	Trace         *telemetry.Trace
	HoldWindow    time.Duration
	ScreenshotDir string // Defaults to ~/.chicken/screenshots
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game     Game
	screen   *core.Screen
	config   core.RuntimeConfig
	pacer    core.Pacer
	keys     KeyMap
	mapper   *KeyMapper
	held     *heldKeys
	help     help.Model
	logger   *log.Logger
	trace    *telemetry.Trace
	shotDir  string
	lastTick time.Time
	state    core.GameState
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, opts Options) Model {
	cfg := opts.Config
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		config:  cfg,
		pacer:   core.NewPacer(cfg.TickRate),
		keys:    keys,
		mapper:  NewKeyMapper(keys),
		held:    newHeldKeys(opts.HoldWindow),
		help:    help.New(),
		logger:  logger,
		trace:   opts.Trace,
		shotDir: opts.ScreenshotDir,
		state:   game.State(),
	}
}

// playfieldHeight leaves the bottom row for the help line.
func playfieldHeight(rows int) int {
	return max(rows-1, 1)
}

// Init sets the window title and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("starting", "game", m.game.Title(), "tick_rate", m.config.TickRate,
		"screen", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH))
	return tea.Batch(
		tea.SetWindowTitle(m.game.Title()),
		tickCmd(m.pacer.Target()),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	actions, isQuit := m.mapper.MapKey(msg)
	if isQuit {
		m.logger.Info("quit", "level", m.state.Level, "score", m.state.Score)
		m.quitting = true
		return m, tea.Quit
	}
	if len(actions) > 0 {
		m.held.Press(time.Now(), actions...)

		names := make([]string, len(actions))
		for i, a := range actions {
			names[i] = a.String()
		}
		m.logger.Debug("key", "actions", strings.Join(names, "+"))
	}
	return m, nil
}

// handleResize processes window resize events. The world keeps its size;
// only the projection onto cells changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width

	m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick runs one simulation step and schedules the next one for the
// remainder of the frame budget.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	dt := m.pacer.Target()
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	result := m.game.Step(m.held.Frame(now), dt)
	m.state = result.State

	if err := m.trace.Record(result.Events, result.State, m.game.Eligible()); err != nil {
		m.logger.Error("trace write failed", "err", err)
	}
	if result.State.GameOver {
		// Movement keys held at the moment of death should not carry into the restart.
		m.held.Clear()
	}

	return m, tickCmd(m.pacer.Remaining(now, time.Now()))
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Error("screenshot failed", "err", err)
			return
		}
		dir = filepath.Join(home, ".chicken", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Error("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("chicken_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Error("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the game.
func Run(game Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
