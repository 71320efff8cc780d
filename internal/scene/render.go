package scene

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/geom"
)

// Visual characters for rendering
const (
	PaddleChar      = '='
	BallChar        = '●'
	BonusChar       = '+'
	BlockChar       = '█'
	HardBlockChar   = '▓'
	SeparatorChar   = '─'
	hudRows         = 2
	minScreenWidth  = 30
	minScreenHeight = 12
)

// viewport maps field coordinates onto screen cells below the HUD.
type viewport struct {
	sx, sy float64
	top    int
}

func (v viewport) col(x float64) int { return int(math.Round(x * v.sx)) }
func (v viewport) row(y float64) int { return v.top + int(math.Round(y*v.sy)) }

// span returns the first and last cell covered by [start, start+length),
// always at least one cell wide.
func span(start, length, scale float64) (int, int) {
	first := int(math.Round(start * scale))
	last := int(math.Round((start+length)*scale)) - 1
	return first, max(first, last)
}

// Render draws the current scene to the screen, scaled to fit.
func (s *Scene) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenWidth || dst.Height() < minScreenHeight {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenWidth, minScreenHeight))
		return
	}

	v := viewport{
		sx:  float64(dst.Width()) / s.cfg.Field.Width,
		sy:  float64(dst.Height()-hudRows) / s.cfg.Field.Height,
		top: hudRows,
	}

	s.renderHUD(dst)
	for _, o := range s.objects {
		switch o.Kind {
		case KindBlock:
			glyph := BlockChar
			if o.HP > 1 {
				glyph = HardBlockChar
			}
			s.renderRect(dst, v, o.Rect, glyph, o.Color)
		case KindPaddle:
			s.renderRect(dst, v, o.Rect, PaddleChar, core.ColorBrightWhite)
		case KindBonus:
			c := o.Rect.Center()
			dst.SetColored(v.col(c.X), v.row(c.Y), BonusChar, core.ColorOrange)
		}
	}
	// Balls last so they stay visible over everything else.
	for _, o := range s.objects {
		if o.Kind == KindBall {
			c := o.Body.Circle
			dst.SetColored(v.col(c.X), v.row(c.Y), BallChar, core.ColorBrightCyan)
		}
	}
	s.renderOverlay(dst)
}

func (s *Scene) renderRect(dst *core.Screen, v viewport, r geom.Rect, glyph rune, c core.Color) {
	x0, x1 := span(r.X, r.W, v.sx)
	y0, y1 := span(r.Y, r.H, v.sy)
	dst.DrawRect(x0, v.top+y0, x1-x0+1, y1-y0+1, glyph, c)
}

// renderHUD draws the score, lives and object counts.
func (s *Scene) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", s.score))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", s.lives))

	right := fmt.Sprintf("Balls: %d  Blocks: %d", s.count(KindBall), s.count(KindBlock))
	dst.DrawText(dst.Width()-len(right)-1, 0, right)

	for x := range dst.Width() {
		dst.SetColored(x, 1, SeparatorChar, core.ColorGray)
	}
}

// renderOverlay draws status messages over the field.
func (s *Scene) renderOverlay(dst *core.Screen) {
	mid := dst.Height() / 2
	switch s.status {
	case core.StatusServing:
		dst.DrawTextCentered(mid, "Get ready! SPACE to serve")
	case core.StatusPaused:
		dst.DrawTextCentered(mid, "PAUSED")
		dst.DrawTextCentered(mid+1, "P to resume")
	case core.StatusWon:
		dst.DrawTextCentered(mid, "YOU WIN!")
		dst.DrawTextCentered(mid+1, fmt.Sprintf("Final score: %d", s.score))
		dst.DrawTextCentered(mid+2, "R to restart")
	case core.StatusGameOver:
		dst.DrawTextCentered(mid, "GAME OVER")
		dst.DrawTextCentered(mid+1, fmt.Sprintf("Final score: %d", s.score))
		dst.DrawTextCentered(mid+2, "R to restart")
	}
}
