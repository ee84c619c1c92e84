package chicken

import (
	"fmt"

	"github.com/vovakirdan/psychic-chicken/internal/assets"
	"github.com/vovakirdan/psychic-chicken/internal/core"
)

// Render draws the world scaled onto dst. It only reads game state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	v := newViewport(g.cfg.World.Width, g.cfg.World.Height, dst.Width(), dst.Height())

	// Draw ground
	v.drawSprite(dst, g.sprite.ground, g.ground.Rect())

	// Draw eggs
	for i := 0; i < g.eggs.Cap(); i++ {
		egg := g.eggs.Slot(i)
		if !egg.Active {
			continue
		}
		v.drawSprite(dst, g.sprite.egg, egg.Rect())
	}

	v.drawSprite(dst, g.sprite.meteor, g.meteor.Rect())
	v.drawSprite(dst, g.sprite.chicken, g.platform.Rect())
	v.drawSprite(dst, g.sprite.bag, g.ball.Rect())

	g.renderHUD(dst)

	if g.state == StateGameOver {
		g.renderGameOver(dst)
	}
}

// renderHUD draws the level and egg counters along the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("LEVEL: %d", g.level), core.ColorBrightWhite)

	eggs := fmt.Sprintf("EGGS: %d/%d", g.collected, g.quota)
	dst.DrawText(dst.Width()-len(eggs)-1, 0, eggs, core.ColorBrightWhite)
}

// renderGameOver draws the boxed game-over message in the middle of the screen.
func (g *Game) renderGameOver(dst *core.Screen) {
	lines := []string{
		fmt.Sprintf("GAME OVER - LEVEL %d", g.level),
		g.overReason,
		"PRESS ENTER TO RESTART",
	}

	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 2

	x := (dst.Width() - boxW) / 2
	y := (dst.Height() - boxH) / 2
	dst.DrawRect(x, y, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(x, y, boxW, boxH, core.ColorBrightRed)

	cx := dst.Width() / 2
	dst.DrawTextCentered(cx, y+1, lines[0], core.ColorBrightRed)
	dst.DrawTextCentered(cx, y+2, lines[1], core.ColorYellow)
	dst.DrawTextCentered(cx, y+3, lines[2], core.ColorWhite)
}

// viewport maps world units to terminal cells.
type viewport struct {
	sx, sy float64
}

func newViewport(worldW, worldH float64, cols, rows int) viewport {
	return viewport{
		sx: float64(cols) / worldW,
		sy: float64(rows) / worldH,
	}
}

// cell converts a world rectangle to a cell rectangle at least one cell in size.
func (v viewport) cell(r core.Rect) (x, y, w, h int) {
	x = int(r.X * v.sx)
	y = int(r.Y * v.sy)
	w = core.Max(int(r.W*v.sx), 1)
	h = core.Max(int(r.H*v.sy), 1)
	return x, y, w, h
}

func (v viewport) drawSprite(dst *core.Screen, s assets.Sprite, r core.Rect) {
	x, y, w, h := v.cell(r)
	dst.DrawRect(x, y, w, h, s.Glyph, s.Color)
}
