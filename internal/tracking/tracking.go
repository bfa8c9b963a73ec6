// Package tracking describes the two collaborators the game reads from every
// tick: a camera that produces frames and an estimator that finds hands in
// them. Both are opaque to the game; this package only fixes their shape and
// turns a detected hand into a screen position and pinch distance.
package tracking

import (
	"context"
	"errors"
	"image"
	"time"
)

// ErrNoFrame is returned by a Camera that can't produce any more frames.
// The game treats it as the end of play.
var ErrNoFrame = errors.New("tracking: no frame")

// Landmark indices in the 21-point hand model.
const (
	Wrist    = 0
	ThumbTip = 4
	IndexTip = 8

	NumLandmarks = 21
)

// Landmark is a point on a hand, normalised so that (0, 0) is the top-left
// and (1, 1) the bottom-right corner of the frame.
type Landmark struct {
	X, Y, Z float64
}

type Hand struct {
	Landmarks [NumLandmarks]Landmark
}

// Frame is one captured image. Image may be nil for sources that don't
// produce pixels.
type Frame struct {
	Seq      uint64
	Captured time.Time
	Image    image.Image
}

type Camera interface {
	Read(ctx context.Context) (Frame, error)
}

// Estimator finds zero or more hands in a frame. Finding none is not an error.
type Estimator interface {
	Estimate(ctx context.Context, f Frame) ([]Hand, error)
}
