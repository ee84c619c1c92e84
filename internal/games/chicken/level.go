package chicken

import "github.com/vovakirdan/psychic-chicken/internal/core"

// initEgg places an egg above the screen at a random column with fresh
// gravity. Slots are staggered vertically so a refill does not drop a wall.
func (g *Game) initEgg(egg *Egg, slot int) {
	if egg == nil {
		g.logger.Error("cannot init egg: nil slot", "slot", slot)
		return
	}

	eggs := g.cfg.Eggs
	span := int(g.cfg.World.Width - eggs.Size)
	if span < 1 {
		span = 1
	}
	steps := max(eggs.GravitySteps, 1)

	egg.W, egg.H = eggs.Size, eggs.Size
	egg.X = float64(g.rng.Intn(span))
	egg.Y = eggs.SpawnY - float64(slot)*eggs.Stagger
	egg.SpeedY = 0
	egg.Gravity = float64(g.rng.Intn(steps)+1) / eggs.GravityDivisor * g.gravityScale
	egg.Active = true
}

// respawn reinitializes the egg in the given slot.
func (g *Game) respawn(slot int) {
	egg := g.eggs.Slot(slot)
	if egg == nil {
		g.logger.Error("cannot respawn egg: slot out of range", "slot", slot, "capacity", g.eggs.Cap())
		return
	}
	g.initEgg(egg, slot)
}

// setupLevel places every entity for the current level and refills the pool.
// Speeds carry the escalation accumulated so far.
func (g *Game) setupLevel() {
	g.quota = g.policy.Quota(g.level)
	g.collected = 0

	g.ball.X, g.ball.Y = g.cfg.Ball.StartX, g.cfg.Ball.StartY
	g.ball.VX = g.cfg.Ball.SpeedX * g.speedScale
	g.ball.VY = g.cfg.Ball.SpeedY * g.speedScale

	g.platform.X = g.cfg.Platform.StartX
	g.platform.Y = g.cfg.World.Height - g.platform.H - g.ground.H
	g.platform.VX = g.cfg.Platform.Speed * g.speedScale
	g.platform.VY = 0

	g.meteor.X, g.meteor.Y = g.cfg.Meteor.StartX, g.cfg.Meteor.StartY

	n := g.eggs.SetEligible(g.policy.PoolSize(g.level))
	for i := 0; i < g.eggs.Cap(); i++ {
		if i < n {
			g.respawn(i)
		} else {
			g.eggs.Slot(i).Active = false
		}
	}
}

// Escalate raises the difficulty for the given level: it widens the egg
// window, makes the reactivated eggs fall faster and speeds up the ball,
// the chicken and the meteor.
func (g *Game) Escalate(level int) {
	target := g.policy.EscalationTarget(level)
	n := g.eggs.SetEligible(target)

	for i := 0; i < g.eggs.Cap(); i++ {
		egg := g.eggs.Slot(i)
		if i >= n {
			egg.Active = false
			continue
		}
		g.respawn(i)
		egg.Gravity *= g.policy.GravityFactor
	}

	g.ball.VX *= g.policy.SpeedFactor
	g.ball.VY *= g.policy.SpeedFactor
	g.platform.VX *= g.policy.SpeedFactor
	g.meteor.VY *= g.policy.SpeedFactor

	g.speedScale *= g.policy.SpeedFactor
	g.gravityScale *= g.policy.GravityFactor
	g.collected = 0

	if n < target {
		g.logger.Debug("escalation capped by pool capacity", "target", target, "capacity", g.eggs.Cap())
	}
	g.logger.Info("difficulty escalated", "level", level, "eggs", n, "speed_scale", g.speedScale)
}

// advanceLevel moves to the next level once the quota is met. The following
// tick is skipped while in StateLevelComplete.
func (g *Game) advanceLevel() {
	g.overReason = ""
	g.level++
	g.Escalate(g.level)
	g.setupLevel()
	g.state = StateLevelComplete

	g.logger.Info("level complete", "level", g.level, "quota", g.quota, "score", g.score)
	g.emit(core.EventLevelComplete)
}

// ResetGame restores a fresh session: level 1, every entity at its start
// position and every pool slot refilled.
func (g *Game) ResetGame() {
	g.level = 1
	g.quota = g.policy.Quota(1)
	g.collected = 0
	g.score = 0
	g.speedScale = 1
	g.gravityScale = 1
	g.overReason = ""

	g.ball.X, g.ball.Y = g.cfg.Ball.StartX, g.cfg.Ball.StartY
	g.ball.VX, g.ball.VY = g.cfg.Ball.SpeedX, g.cfg.Ball.SpeedY

	g.platform.X = g.cfg.Platform.StartX
	g.platform.Y = g.cfg.World.Height - g.platform.H - g.ground.H
	g.platform.VX, g.platform.VY = g.cfg.Platform.Speed, 0

	g.meteor.X, g.meteor.Y = g.cfg.Meteor.StartX, g.cfg.Meteor.StartY
	g.meteor.VX, g.meteor.VY = 0, 0

	g.eggs.SetEligible(g.eggs.Cap())
	for i := 0; i < g.eggs.Cap(); i++ {
		g.respawn(i)
	}

	g.state = StatePlaying
	g.logger.Info("game reset")
}
