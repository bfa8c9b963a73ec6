package tracking

import (
	"context"
	"fmt"
	"log"
)

// Tracker pairs a camera with an estimator for a w×h screen.
type Tracker struct {
	Camera    Camera
	Estimator Estimator

	Width, Height int
	Mirror        bool

	// Logf reports estimator failures. Defaults to log.Printf.
	Logf func(format string, args ...any)

	lastErr string
}

// Poll captures one frame and locates the hand in it.
// Only camera failures are returned; an estimator failure counts as no hand
// for this tick. A failure is logged when it first appears or its message
// changes, not on every tick it repeats.
func (t *Tracker) Poll(ctx context.Context) (*HandPosition, error) {
	frame, err := t.Camera.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}

	hands, err := t.Estimator.Estimate(ctx, frame)
	if err != nil {
		if msg := err.Error(); msg != t.lastErr {
			t.lastErr = msg
			t.logf("estimate frame %d: %v", frame.Seq, err)
		}
		return nil, nil
	}
	if t.lastErr != "" {
		t.lastErr = ""
		t.logf("estimator recovered at frame %d", frame.Seq)
	}
	return Locate(hands, t.Width, t.Height, t.Mirror), nil
}

func (t *Tracker) logf(format string, args ...any) {
	if t.Logf != nil {
		t.Logf(format, args...)
		return
	}
	log.Printf(format, args...)
}
