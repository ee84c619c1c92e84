package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/psychic-chicken/internal/core"
)

// DefaultHoldWindow is how long a key counts as held after its last press.
// Terminals only report presses and auto-repeats, never releases.
const DefaultHoldWindow = 250 * time.Millisecond

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Left        key.Binding
	Right       key.Binding
	SprintLeft  key.Binding
	SprintRight key.Binding
	Boost       key.Binding
	Restart     key.Binding
	Screenshot  key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Boost, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.SprintLeft, k.SprintRight},
		{k.Boost, k.Restart, k.Screenshot},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		SprintLeft: key.NewBinding(
			key.WithKeys("shift+left", "A"),
			key.WithHelp("S-←/A", "sprint left"),
		),
		SprintRight: key.NewBinding(
			key.WithKeys("shift+right", "D"),
			key.WithHelp("S-→/D", "sprint right"),
		),
		Boost: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "boost bag"),
		),
		Restart: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc/q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message to the game actions it holds.
// Returns nil for keys the game does not use, and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (actions []core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return []core.Action{core.ActionQuit}, true
	case key.Matches(msg, km.keys.SprintLeft):
		return []core.Action{core.ActionLeft, core.ActionSprint}, false
	case key.Matches(msg, km.keys.SprintRight):
		return []core.Action{core.ActionRight, core.ActionSprint}, false
	case key.Matches(msg, km.keys.Left):
		return []core.Action{core.ActionLeft}, false
	case key.Matches(msg, km.keys.Right):
		return []core.Action{core.ActionRight}, false
	case key.Matches(msg, km.keys.Boost):
		return []core.Action{core.ActionBoost}, false
	case key.Matches(msg, km.keys.Restart):
		return []core.Action{core.ActionRestart}, false
	}
	return nil, false
}

// heldKeys approximates key state from press events. Each press keeps its
// actions alive until the hold window passes without another press.
// Restart is one-shot and is consumed by the first frame that sees it.
type heldKeys struct {
	window time.Duration
	until  map[core.Action]time.Time
}

func newHeldKeys(window time.Duration) *heldKeys {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &heldKeys{
		window: window,
		until:  make(map[core.Action]time.Time),
	}
}

// Press records actions as held from now.
func (h *heldKeys) Press(now time.Time, actions ...core.Action) {
	for _, a := range actions {
		// Opposite directions cancel so a quick reversal does not stall the chicken.
		switch a {
		case core.ActionLeft:
			delete(h.until, core.ActionRight)
		case core.ActionRight:
			delete(h.until, core.ActionLeft)
		}
		h.until[a] = now.Add(h.window)
	}
}

// Frame returns the actions held at now and forgets expired ones.
func (h *heldKeys) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, until := range h.until {
		if now.After(until) {
			delete(h.until, a)
			continue
		}
		frame.Set(a)
	}
	delete(h.until, core.ActionRestart)
	return frame
}

// Clear forgets every held key.
func (h *heldKeys) Clear() {
	clear(h.until)
}
