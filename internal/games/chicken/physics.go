package chicken

import (
	"github.com/vovakirdan/psychic-chicken/internal/core"
)

// CollisionSide indicates which side of the platform the ball ended up on.
type CollisionSide int

const (
	CollisionNone CollisionSide = iota
	CollisionTop
	CollisionBottom
	CollisionLeft
	CollisionRight
)

// update runs one Playing tick. dt is in seconds.
func (g *Game) update(in core.InputFrame, dt float64) {
	g.movePlatform(in, dt)
	g.moveBall(in, dt)

	BounceOffPlatform(&g.ball, g.platform.Rect())
	// The chicken can push the bag into a wall; the flip already happened.
	g.ball.X = core.ClampF(g.ball.X, 0, g.cfg.World.Width-g.ball.W)
	g.ball.Y = core.ClampF(g.ball.Y, 0, g.cfg.World.Height-g.ball.H)

	if g.ball.Rect().Overlaps(g.ground.Rect()) {
		g.ball.Y = g.ground.Y - g.ball.H
		g.endGame(ReasonBallGrounded)
	}

	g.fallMeteor()

	if g.eggs.clampEligible() {
		g.logger.Warn("egg window exceeded pool capacity", "capacity", g.eggs.Cap())
	}
	g.updateEggs()

	if g.state == StateGameOver {
		g.logger.Info("game over", "level", g.level, "score", g.score, "reason", g.overReason)
		g.logger.Debug("final state", "snapshot", g.Snapshot())
		g.emit(core.EventGameOver)
		return
	}

	if g.collected >= g.quota {
		g.advanceLevel()
		return
	}

	g.backfill()
}

// movePlatform applies input-driven horizontal motion and keeps the chicken on screen.
func (g *Game) movePlatform(in core.InputFrame, dt float64) {
	speed := g.platform.VX
	if in.Has(core.ActionSprint) {
		speed *= g.cfg.Physics.SprintMultiplier
	}

	if in.Has(core.ActionLeft) {
		g.platform.X -= speed * dt
	}
	if in.Has(core.ActionRight) {
		g.platform.X += speed * dt
	}

	g.platform.X = core.ClampF(g.platform.X, 0, g.cfg.World.Width-g.platform.W)
	g.platform.Y = core.ClampF(g.platform.Y, 0, g.cfg.World.Height-g.platform.H)
}

// moveBall integrates the ball and bounces it off the window edges.
// Positive VY moves up, so the vertical term is subtracted.
func (g *Game) moveBall(in core.InputFrame, dt float64) {
	mult := 1.0
	if in.Has(core.ActionBoost) {
		mult = g.cfg.Physics.BoostMultiplier
	}

	g.ball.X += g.ball.VX * mult * dt
	g.ball.Y -= g.ball.VY * mult * dt

	BounceOffWalls(&g.ball, g.cfg.World.Width, g.cfg.World.Height)
}

// BounceOffWalls flips the ball's velocity on contact with the window edges
// and clamps it back inside.
func BounceOffWalls(b *Ball, width, height float64) {
	if b.X < 0 || b.X+b.W > width {
		b.BounceX()
		b.X = core.ClampF(b.X, 0, width-b.W)
	}
	if b.Y < 0 || b.Y+b.H > height {
		b.BounceY()
		b.Y = core.ClampF(b.Y, 0, height-b.H)
	}
}

// BounceOffPlatform resolves an overlap between the ball and the platform
// along the axis of least penetration. The ball is moved flush against the
// platform edge and the matching velocity component is flipped. Equal
// penetration on both axes resolves vertically.
func BounceOffPlatform(b *Ball, p core.Rect) CollisionSide {
	if !b.Rect().Overlaps(p) {
		return CollisionNone
	}

	overlapLeft := (b.X + b.W) - p.X
	overlapRight := p.Right() - b.X
	overlapTop := (b.Y + b.H) - p.Y
	overlapBottom := p.Bottom() - b.Y

	minX := min(overlapLeft, overlapRight)
	minY := min(overlapTop, overlapBottom)

	if minX < minY {
		b.BounceX()
		if overlapLeft < overlapRight {
			b.X = p.X - b.W
			return CollisionLeft
		}
		b.X = p.Right()
		return CollisionRight
	}

	b.BounceY()
	if overlapTop < overlapBottom {
		b.Y = p.Y - b.H
		return CollisionTop
	}
	b.Y = p.Bottom()
	return CollisionBottom
}

// fallMeteor applies per-tick gravity to the meteor and rests it on the ground.
func (g *Game) fallMeteor() {
	g.meteor.VY += g.cfg.Physics.MeteorGravity
	g.meteor.Y += g.meteor.VY

	floor := g.cfg.World.Height - g.ground.H
	if g.meteor.Y+g.meteor.H > floor {
		g.meteor.Y = floor - g.meteor.H
		g.meteor.VY = 0
	}
}

// updateEggs moves every active eligible egg and resolves its collisions.
func (g *Game) updateEggs() {
	ballRect := g.ball.Rect()
	platformRect := g.platform.Rect()

	for i := 0; i < g.eggs.Eligible(); i++ {
		egg := g.eggs.Slot(i)
		if !egg.Active {
			continue
		}

		egg.SpeedY += egg.Gravity
		egg.Y += egg.SpeedY

		eggRect := egg.Rect()
		if ballRect.Overlaps(eggRect) {
			egg.Active = false
			g.collected++
			g.score++
		}

		if egg.Active && platformRect.Overlaps(eggRect) {
			g.endGame(ReasonEggOnChicken)
		}

		// Eggs that fall past the ground come back from the top.
		if egg.Y+egg.H > g.ground.Y {
			g.respawn(i)
		}
	}
}

// endGame moves to the game-over state. The first reason in a tick wins.
func (g *Game) endGame(reason string) {
	if g.state != StateGameOver {
		g.overReason = reason
	}
	g.state = StateGameOver
}

// backfill respawns every inactive eligible slot once fewer eggs are falling
// than the window allows.
func (g *Game) backfill() {
	if g.eggs.CountActive() >= g.eggs.Eligible() {
		return
	}
	for i := 0; i < g.eggs.Eligible(); i++ {
		if !g.eggs.Slot(i).Active {
			g.respawn(i)
		}
	}
}
