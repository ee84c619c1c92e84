// Package chicken implements Psychic Chicken: the player moves a chicken along
// the ground while a bouncing bag catches falling eggs. An egg landing on the
// chicken or the bag touching the ground ends the game.
package chicken

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/psychic-chicken/internal/assets"
	"github.com/vovakirdan/psychic-chicken/internal/config"
	"github.com/vovakirdan/psychic-chicken/internal/core"
)

// State is the top-level game state.
type State int

const (
	StatePlaying       State = iota // Simulation runs every tick
	StateGameOver                   // Waiting for restart
	StateLevelComplete              // Skips exactly one tick after a level-up
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	case StateLevelComplete:
		return "level_complete"
	default:
		return "unknown"
	}
}

// Game over reasons.
const (
	ReasonBallGrounded = "bag hit the ground"
	ReasonEggOnChicken = "egg hit the chicken"
)

// SpriteLoader resolves sprite names to drawables with intrinsic sizes.
type SpriteLoader interface {
	Load(name string) (assets.Sprite, error)
}

// sprites holds the drawables the renderer needs.
type sprites struct {
	bag, chicken, egg, meteor, ground assets.Sprite
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// Game holds the whole world: entities, the egg pool and session state.
type Game struct {
	cfg    config.ChickenConfig
	policy config.LevelPolicy
	rng    *rand.Rand
	logger *log.Logger
	sprite sprites

	// Entities
	ball     Ball
	platform Platform
	ground   Ground
	meteor   Meteor
	eggs     *Pool

	// Session
	state        State
	level        int
	collected    int
	quota        int
	score        int
	tick         uint64
	speedScale   float64 // Accumulated speed escalation
	gravityScale float64 // Accumulated egg gravity escalation
	overReason   string

	events []core.Event
}

// New loads sprites, builds the world and sets up level 1.
// A missing sprite is a fatal initialization error.
func New(cfg config.ChickenConfig, loader SpriteLoader, seed int64, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("chicken: %w", err)
	}

	g := &Game{
		cfg:          cfg,
		policy:       cfg.Levels,
		rng:          rand.New(rand.NewSource(seed)),
		logger:       log.New(io.Discard),
		eggs:         NewPool(cfg.Levels.PoolCapacity),
		level:        1,
		speedScale:   1,
		gravityScale: 1,
	}
	for _, opt := range opts {
		opt(g)
	}

	if err := g.loadSprites(loader); err != nil {
		return nil, err
	}

	g.ground = Ground{
		X: 0,
		Y: cfg.World.Height - cfg.World.GroundHeight,
		W: cfg.World.Width,
		H: cfg.World.GroundHeight,
	}
	g.ball.W, g.ball.H = g.sprite.bag.Width, g.sprite.bag.Height
	g.platform.W, g.platform.H = g.sprite.chicken.Width, g.sprite.chicken.Height
	g.meteor.W, g.meteor.H = cfg.Meteor.Width, cfg.Meteor.Height

	g.setupLevel()
	g.state = StatePlaying
	return g, nil
}

// loadSprites resolves every sprite named in the config.
func (g *Game) loadSprites(loader SpriteLoader) error {
	if loader == nil {
		return fmt.Errorf("chicken: no sprite loader")
	}
	targets := []struct {
		name string
		dst  *assets.Sprite
	}{
		{g.cfg.Ball.Sprite, &g.sprite.bag},
		{g.cfg.Platform.Sprite, &g.sprite.chicken},
		{g.cfg.Eggs.Sprite, &g.sprite.egg},
		{g.cfg.Meteor.Sprite, &g.sprite.meteor},
		{"ground", &g.sprite.ground},
	}
	for _, t := range targets {
		s, err := loader.Load(t.name)
		if err != nil {
			return fmt.Errorf("chicken: cannot load sprite: %w", err)
		}
		*t.dst = s
	}
	return nil
}

// Step advances the game by one tick. dt is the wall-clock time since the
// previous tick; it is clamped to the configured maximum.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	g.events = nil
	g.tick++

	switch g.state {
	case StatePlaying:
		g.update(in, g.clampDelta(dt))
	case StateGameOver:
		if in.Has(core.ActionRestart) {
			g.ResetGame()
			g.emit(core.EventRestart)
		}
	case StateLevelComplete:
		g.state = StatePlaying
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

// clampDelta converts dt to seconds within [0, max_delta].
func (g *Game) clampDelta(dt time.Duration) float64 {
	return core.ClampF(dt.Seconds(), 0, g.cfg.Physics.MaxDelta)
}

// emit records an event for the current tick.
func (g *Game) emit(kind core.EventKind) {
	ev := core.Event{
		Kind:  kind,
		Tick:  g.tick,
		Level: g.level,
	}
	if kind == core.EventGameOver {
		ev.Reason = g.overReason
	}
	g.events = append(g.events, ev)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		Level:     g.level,
		Collected: g.collected,
		Quota:     g.quota,
		GameOver:  g.state == StateGameOver,
	}
}

// Phase returns the state machine's current state.
func (g *Game) Phase() State {
	return g.state
}

// Eligible returns the number of egg slots currently simulated.
func (g *Game) Eligible() int {
	return g.eggs.Eligible()
}

// OverReason returns why the last game ended, or "" while playing.
func (g *Game) OverReason() string {
	return g.overReason
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Psychic Chicken"
}
