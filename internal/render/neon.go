package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"neonescape/internal/arena"
	"neonescape/internal/assets"
	"neonescape/internal/entity"
	"neonescape/internal/palette"
)

// Arena paints the whole playfield: background, bursts, trail, ball,
// obstacles and the score, in that order.
func Arena(screen *ebiten.Image, a *arena.Arena) {
	screen.Fill(palette.ColBackground)

	// 1. Scenery
	for _, m := range a.Motes {
		vector.DrawFilledCircle(screen, float32(int(m.X)), float32(int(m.Y)), float32(m.Radius), palette.Neon[m.Color%len(palette.Neon)], true)
	}

	// 2. Collision sparks
	for _, p := range a.Particles {
		vector.DrawFilledCircle(screen, float32(int(p.X)), float32(int(p.Y)), entity.ParticleRadius, palette.ColBall, true)
	}

	// 3. Player
	if a.Ball.Visible {
		trailR := float32(a.Ball.Radius / 2)
		for _, pt := range a.Trail.Points() {
			vector.StrokeCircle(screen, float32(pt.X), float32(pt.Y), trailR, 1, palette.ColTrail, true)
		}
		GlowCircle(screen, float32(a.Ball.X), float32(a.Ball.Y), float32(a.Ball.Radius), palette.ColBall, palette.BallGlowWidth)
	}

	// 4. Obstacles
	for _, o := range a.Obstacles {
		GlowRect(screen, float32(o.X), float32(o.Y), entity.ObstacleWidth, entity.ObstacleHeight, palette.ColObstacle, palette.ObstacleGlowWidth)
	}

	// 5. HUD
	Score(screen, a.Score)
}

// GlowCircle draws a solid circle wrapped in glow rings that fade outwards.
func GlowCircle(screen *ebiten.Image, x, y, r float32, c color.RGBA, glow int) {
	for i := glow; i > 0; i-- {
		f := 1 - float64(i)/float64(glow+1)
		vector.DrawFilledCircle(screen, x, y, r+float32(i), palette.Fade(c, f*0.35), true)
	}
	vector.DrawFilledCircle(screen, x, y, r, c, true)
}

// GlowRect draws a solid rectangle with a halo of glow pixels around it.
func GlowRect(screen *ebiten.Image, x, y, w, h float32, c color.RGBA, glow int) {
	for i := glow; i > 0; i-- {
		f := 1 - float64(i)/float64(glow+1)
		g := float32(i)
		vector.DrawFilledRect(screen, x-g, y-g, w+2*g, h+2*g, palette.Fade(c, f*0.25), false)
	}
	vector.DrawFilledRect(screen, x, y, w, h, c, false)
}

func Score(screen *ebiten.Image, score int) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(10, 10)
	op.ColorScale.ScaleWithColor(palette.ColText)
	text.Draw(screen, fmt.Sprintf("Score: %d", score), assets.Face(palette.ScoreTextSize), op)
}
