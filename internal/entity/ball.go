package entity

import "neonescape/internal/geom"

// Point is a screen position in whole pixels.
type Point struct {
	X, Y int
}

// Ball is the player's avatar. Visible is only set on ticks where a hand was
// detected; a hidden ball can't collide with anything.
type Ball struct {
	Point
	Radius  int
	Visible bool
}

func NewBall() Ball {
	return Ball{Radius: BallStartRadius}
}

// Bounds is the box the ball occupies for collision purposes.
func (b Ball) Bounds() geom.Rect {
	return geom.Rect{X: b.X - b.Radius, Y: b.Y - b.Radius, W: b.Radius * 2, H: b.Radius * 2}
}

// RadiusFromPinch maps the thumb-to-index distance in pixels to a ball radius.
func RadiusFromPinch(distance float64) int {
	if distance != distance || distance < 0 { // NaN or nonsense from the estimator
		return BallMinRadius
	}
	if distance > float64(4*BallMaxRadius) {
		return BallMaxRadius
	}
	return geom.Clamp(int(distance/2), BallMinRadius, BallMaxRadius)
}

// Trail remembers the most recent ball centres, oldest first.
type Trail struct {
	points []Point
	max    int
}

func NewTrail(max int) *Trail {
	return &Trail{max: max, points: make([]Point, 0, max)}
}

func (t *Trail) Push(p Point) {
	if t.max <= 0 {
		return
	}
	if len(t.points) == t.max {
		copy(t.points, t.points[1:])
		t.points = t.points[:len(t.points)-1]
	}
	t.points = append(t.points, p)
}

// Points returns the stored centres. The slice is only valid until the next Push.
func (t *Trail) Points() []Point { return t.points }

func (t *Trail) Len() int { return len(t.points) }

func (t *Trail) Clear() { t.points = t.points[:0] }
