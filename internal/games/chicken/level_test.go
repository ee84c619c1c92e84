package chicken

import (
	"testing"

	"github.com/vovakirdan/psychic-chicken/internal/config"
	"github.com/vovakirdan/psychic-chicken/internal/core"
)

func wideConfig(cfg *config.ChickenConfig) {
	cfg.Levels.PoolCapacity = 20
}

func TestSetupLevelOne(t *testing.T) {
	g := newTestGame(t, nil)

	if g.level != 1 || g.quota != 10 || g.collected != 0 {
		t.Errorf("level=%d quota=%d collected=%d, want 1/10/0", g.level, g.quota, g.collected)
	}
	if g.ball.X != 500 || g.ball.Y != 500 {
		t.Errorf("ball at (%v,%v), want (500,500)", g.ball.X, g.ball.Y)
	}
	if g.ball.W != 24 || g.platform.H != 48 {
		t.Errorf("entity sizes not taken from sprites: ball W=%v platform H=%v", g.ball.W, g.platform.H)
	}
	if g.platform.Y != 600-48-20 {
		t.Errorf("platform Y = %v, want %v", g.platform.Y, 600-48-20)
	}
	if g.Eligible() != 10 || g.eggs.CountActive() != 10 {
		t.Errorf("eligible=%d active=%d, want 10/10", g.Eligible(), g.eggs.CountActive())
	}
	for i := 0; i < g.Eligible(); i++ {
		egg := g.eggs.Slot(i)
		if egg.Y != -100-float64(i)*50 {
			t.Errorf("slot %d Y = %v, want %v", i, egg.Y, -100-float64(i)*50)
		}
		if egg.X < 0 || egg.X > 780 {
			t.Errorf("slot %d X = %v outside [0,780]", i, egg.X)
		}
		assertBaseGravity(t, egg.Gravity, 1)
	}
}

func TestSetupLevelDeactivatesBeyondPoolSize(t *testing.T) {
	g := newTestGame(t, wideConfig)

	if g.Eligible() != 10 {
		t.Fatalf("level 1 eligible = %d, want 10", g.Eligible())
	}
	for i := 10; i < g.eggs.Cap(); i++ {
		if g.eggs.Slot(i).Active {
			t.Errorf("slot %d should be parked at level 1", i)
		}
	}
}

func TestEscalateActiveCount(t *testing.T) {
	g := newTestGame(t, wideConfig)

	for level := 2; level <= 8; level++ {
		scale := g.gravityScale
		g.Escalate(level)

		want := min(10+level*2, 20)
		if got := g.eggs.CountActive(); got != want {
			t.Errorf("level %d: active = %d, want %d", level, got, want)
		}
		if g.Eligible() != want {
			t.Errorf("level %d: eligible = %d, want %d", level, g.Eligible(), want)
		}
		for i := 0; i < g.Eligible(); i++ {
			// Freshly respawned gravity at the old scale, times 1.1.
			assertBaseGravity(t, g.eggs.Slot(i).Gravity/1.1, scale)
		}
		for i := g.Eligible(); i < g.eggs.Cap(); i++ {
			if g.eggs.Slot(i).Active {
				t.Errorf("level %d: slot %d should be inactive", level, i)
			}
		}
	}
}

func TestEscalateCappedByCapacity(t *testing.T) {
	g := newTestGame(t, nil)
	g.Escalate(3)

	if g.Eligible() != 10 || g.eggs.CountActive() != 10 {
		t.Errorf("eligible=%d active=%d, want 10/10", g.Eligible(), g.eggs.CountActive())
	}
}

func TestEscalateScalesSpeeds(t *testing.T) {
	g := newTestGame(t, nil)
	g.collected = 7
	g.meteor.VY = 2

	g.Escalate(2)

	if !approx(g.ball.VX, 220) || !approx(g.ball.VY, 165) {
		t.Errorf("ball velocity = (%v,%v), want (220,165)", g.ball.VX, g.ball.VY)
	}
	if !approx(g.platform.VX, 440) {
		t.Errorf("platform speed = %v, want 440", g.platform.VX)
	}
	if !approx(g.meteor.VY, 2.2) {
		t.Errorf("meteor VY = %v, want 2.2", g.meteor.VY)
	}
	if g.collected != 0 {
		t.Errorf("collected = %d, want 0", g.collected)
	}
}

func TestLevelUpKeepsEscalation(t *testing.T) {
	g := newTestGame(t, nil)
	g.ball.VX = -200

	g.advanceLevel()

	if g.level != 2 || g.quota != 12 {
		t.Errorf("level=%d quota=%d, want 2/12", g.level, g.quota)
	}
	if !approx(g.ball.VX, 220) || !approx(g.ball.VY, 165) {
		t.Errorf("ball velocity after setup = (%v,%v), want (220,165)", g.ball.VX, g.ball.VY)
	}
	if !approx(g.platform.VX, 440) {
		t.Errorf("platform speed after setup = %v, want 440", g.platform.VX)
	}
	if g.ball.X != 500 || g.ball.Y != 500 {
		t.Errorf("ball not reset to start: (%v,%v)", g.ball.X, g.ball.Y)
	}
	for i := 0; i < g.Eligible(); i++ {
		assertBaseGravity(t, g.eggs.Slot(i).Gravity, 1.1)
	}
}

func TestFixedPresetDisablesEscalation(t *testing.T) {
	g := newTestGame(t, func(cfg *config.ChickenConfig) {
		config.ApplyPreset(cfg, config.DifficultyFixed)
	})

	g.advanceLevel()

	if g.ball.VX != 200 || g.platform.VX != 400 {
		t.Errorf("fixed preset changed speeds: ball=%v platform=%v", g.ball.VX, g.platform.VX)
	}
}

func TestCollectQuotaCompletesLevel(t *testing.T) {
	g := quietGame(t)
	g.eggs.SetEligible(10)

	prev := 0
	var res core.StepResult
	for i := 0; i < 10; i++ {
		egg := g.eggs.Slot(0)
		egg.X, egg.Y = g.ball.X+2, g.ball.Y+2
		egg.SpeedY, egg.Gravity = 0, 0
		egg.Active = true

		res = g.Step(core.NewInputFrame(), frame)

		if i < 9 {
			if g.Phase() != StatePlaying {
				t.Fatalf("egg %d: state = %v, want playing", i+1, g.Phase())
			}
			if res.State.Collected < prev {
				t.Fatalf("collected decreased from %d to %d", prev, res.State.Collected)
			}
			prev = res.State.Collected
		}
	}

	if g.Phase() != StateLevelComplete {
		t.Fatalf("state = %v, want level_complete", g.Phase())
	}
	if res.State.Level != 2 || res.State.Collected != 0 || res.State.Quota != 12 {
		t.Errorf("state = %+v, want level 2, collected 0, quota 12", res.State)
	}
	if res.State.Score != 10 {
		t.Errorf("score = %d, want 10", res.State.Score)
	}
	if len(res.Events) != 1 || res.Events[0].Kind != core.EventLevelComplete || res.Events[0].Level != 2 {
		t.Errorf("events = %+v, want one level_complete for level 2", res.Events)
	}

	// The next tick only collapses back to playing.
	before := g.Snapshot()
	res = g.Step(core.NewInputFrame(core.ActionRight), frame)
	if g.Phase() != StatePlaying {
		t.Errorf("state = %v after pass-through, want playing", g.Phase())
	}
	after := g.Snapshot()
	if after.BallX != before.BallX || after.BallY != before.BallY || after.PlatformX != before.PlatformX {
		t.Error("pass-through tick should not simulate")
	}
	if len(res.Events) != 0 {
		t.Errorf("pass-through tick emitted %+v", res.Events)
	}
}
