package chicken

import "github.com/vovakirdan/psychic-chicken/internal/core"

// Ball is the bag the player bounces into falling eggs.
// Positive VY moves it up the screen.
type Ball struct {
	X, Y   float64 // Top-left position
	VX, VY float64 // Velocity in world units per second
	W, H   float64 // Size, from the sprite
}

// Rect returns the ball's bounding box.
func (b *Ball) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.VX = -b.VX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.VY = -b.VY
}

// Platform is the player-controlled chicken sitting on the ground.
type Platform struct {
	X, Y   float64
	VX, VY float64 // VX is the speed magnitude for input-driven motion; VY is unused
	W, H   float64
}

// Rect returns the platform's bounding box.
func (p *Platform) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Ground is the static strip along the bottom of the world.
type Ground struct {
	X, Y float64
	W, H float64
}

// Rect returns the ground's bounding box.
func (g Ground) Rect() core.Rect {
	return core.NewRect(g.X, g.Y, g.W, g.H)
}

// Meteor falls under constant gravity and rests on the ground.
// It does not interact with anything else.
type Meteor struct {
	X, Y   float64
	VX, VY float64 // Per-tick velocity, positive VY moves it down
	W, H   float64
}

// Rect returns the meteor's bounding box.
func (m *Meteor) Rect() core.Rect {
	return core.NewRect(m.X, m.Y, m.W, m.H)
}

// Egg is a collectible falling under its own gravity.
type Egg struct {
	X, Y    float64
	SpeedY  float64 // Per-tick vertical speed
	Gravity float64 // Added to SpeedY every tick
	W, H    float64
	Active  bool
}

// Rect returns the egg's bounding box.
func (e *Egg) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.W, e.H)
}

// Pool is a fixed-capacity arena of egg slots. Only slots [0, Eligible())
// take part in the simulation; the rest stay parked.
type Pool struct {
	slots    []Egg
	eligible int
}

// NewPool creates a pool with the given number of slots, all eligible.
func NewPool(capacity int) *Pool {
	if capacity < 0 {
		capacity = 0
	}
	return &Pool{
		slots:    make([]Egg, capacity),
		eligible: capacity,
	}
}

// Cap returns the number of physical slots.
func (p *Pool) Cap() int {
	return len(p.slots)
}

// Eligible returns how many leading slots are simulated.
func (p *Pool) Eligible() int {
	return p.eligible
}

// SetEligible sets the eligible window, clamped to [0, Cap()].
// Returns the value actually applied.
func (p *Pool) SetEligible(n int) int {
	p.eligible = core.Clamp(n, 0, len(p.slots))
	return p.eligible
}

// clampEligible re-applies the capacity bound and reports whether it had to act.
func (p *Pool) clampEligible() bool {
	before := p.eligible
	return p.SetEligible(before) != before
}

// Slot returns the egg in slot i, or nil if i is out of range.
func (p *Pool) Slot(i int) *Egg {
	if i < 0 || i >= len(p.slots) {
		return nil
	}
	return &p.slots[i]
}

// CountActive returns the number of active eggs among eligible slots.
func (p *Pool) CountActive() int {
	count := 0
	for i := 0; i < p.eligible; i++ {
		if p.slots[i].Active {
			count++
		}
	}
	return count
}
