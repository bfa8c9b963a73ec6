// Package pointer stands in for a webcam and hand tracker using the mouse.
// The cursor is the wrist and the wheel opens or closes the pinch.
package pointer

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"neonescape/internal/tracking"
)

// Camera produces an empty frame on every read. It only fails once ctx is done.
type Camera struct {
	seq atomic.Uint64
}

func NewCamera() *Camera { return &Camera{} }

func (c *Camera) Read(ctx context.Context) (tracking.Frame, error) {
	if err := ctx.Err(); err != nil {
		return tracking.Frame{}, fmt.Errorf("read frame: %w", err)
	}
	return tracking.Frame{Seq: c.seq.Add(1), Captured: time.Now()}, nil
}

// Spread limits, in screen pixels between thumb tip and index tip.
const (
	minSpread     = 0
	maxSpread     = 120
	defaultSpread = 40
	spreadPerStep = 8
)

// Estimator reports one hand under the cursor while the cursor is inside
// the window.
type Estimator struct {
	width, height int
	spread        float64
}

func NewEstimator(w, h int) *Estimator {
	return &Estimator{width: w, height: h, spread: defaultSpread}
}

func (e *Estimator) Estimate(ctx context.Context, _ tracking.Frame) ([]tracking.Hand, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	_, dy := ebiten.Wheel()
	e.spread = min(max(e.spread+dy*spreadPerStep, minSpread), maxSpread)

	x, y := ebiten.CursorPosition()
	if x < 0 || y < 0 || x >= e.width || y >= e.height {
		return nil, nil
	}
	return []tracking.Hand{e.hand(x, y)}, nil
}

// hand places the thumb and index tips either side of the wrist, spread
// pixels apart.
func (e *Estimator) hand(x, y int) tracking.Hand {
	w, h := float64(e.width), float64(e.height)
	cx, cy := float64(x), float64(y)
	half := e.spread / 2

	var hand tracking.Hand
	hand.Landmarks[tracking.Wrist] = tracking.Landmark{X: cx / w, Y: cy / h}
	hand.Landmarks[tracking.ThumbTip] = tracking.Landmark{X: (cx - half) / w, Y: (cy - 30) / h}
	hand.Landmarks[tracking.IndexTip] = tracking.Landmark{X: (cx + half) / w, Y: (cy - 30) / h}
	return hand
}
