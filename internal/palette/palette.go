// Package palette holds the neon colours and glow sizes the game is drawn with.
package palette

import "image/color"

var (
	ColBackground = color.RGBA{0x00, 0x00, 0x00, 0xff}
	ColBall       = color.RGBA{0xff, 0x32, 0xc8, 0xff} // neon pink
	ColObstacle   = color.RGBA{0x32, 0xff, 0x64, 0xff} // neon green
	ColText       = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColHighlight  = color.RGBA{0xff, 0xff, 0x00, 0xff}
)

// Neon is the palette background motes pick from.
var Neon = []color.RGBA{
	{0xff, 0x32, 0xc8, 0xff},
	{0x32, 0xc8, 0xff, 0xff},
	{0xff, 0xff, 0x32, 0xff},
}

// ColTrail is white at alpha 0x32, premultiplied.
var ColTrail = color.RGBA{0x32, 0x32, 0x32, 0x32}

const (
	BallGlowWidth     = 10
	ObstacleGlowWidth = 8
	ScoreTextSize     = 28
)

// Fade scales c's alpha by f in [0, 1]. color.RGBA is premultiplied, so the
// channels scale with it.
func Fade(c color.RGBA, f float64) color.RGBA {
	if f <= 0 {
		return color.RGBA{}
	}
	if f > 1 {
		f = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}
