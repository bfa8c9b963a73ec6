package gamemode

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"neonescape/internal/assets"
	"neonescape/internal/palette"
)

const (
	GameOverMessage = "Game Over! Press R to Restart or Q to Quit"
	bannerTextSize  = 28
)

var colDim = color.RGBA{0x00, 0x00, 0x00, 0xc0}

// DrawGameOver dims whatever is on screen and shows the final score.
func DrawGameOver(screen *ebiten.Image, score int) {
	b := screen.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), colDim, false)

	face := assets.Face(bannerTextSize)
	drawCentered(screen, GameOverMessage, face, w/2, h/2-50, palette.ColText)
	drawCentered(screen, fmt.Sprintf("Final Score: %d", score), face, w/2, h/2, palette.ColHighlight)
}

func drawCentered(screen *ebiten.Image, msg string, face text.Face, cx, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, msg, face, op)
}
