package tracking

import "gonum.org/v1/gonum/floats"

// HandPosition is a detected hand mapped onto the screen.
type HandPosition struct {
	X, Y  int     // wrist, in pixels
	Pinch float64 // thumb tip to index tip, in pixels
}

// Locate maps the first detected hand onto a w×h screen. It returns nil when
// no hand was detected. With mirror set, x is flipped so that moving the
// hand right moves the ball right on a camera facing the player.
func Locate(hands []Hand, w, h int, mirror bool) *HandPosition {
	if len(hands) == 0 {
		return nil
	}
	lm := hands[0].Landmarks
	wx, wy := toPixels(lm[Wrist], w, h, mirror)
	tx, ty := toPixels(lm[ThumbTip], w, h, mirror)
	ix, iy := toPixels(lm[IndexTip], w, h, mirror)

	return &HandPosition{
		X:     wx,
		Y:     wy,
		Pinch: floats.Distance([]float64{float64(tx), float64(ty)}, []float64{float64(ix), float64(iy)}, 2),
	}
}

func toPixels(l Landmark, w, h int, mirror bool) (int, int) {
	x := l.X
	if mirror {
		x = 1 - x
	}
	return int(x * float64(w)), int(l.Y * float64(h))
}
