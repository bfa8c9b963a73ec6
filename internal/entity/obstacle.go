package entity

import (
	"math/rand"

	"neonescape/internal/geom"
)

// Obstacle is a falling bar. (X, Y) is its top-left corner.
type Obstacle struct {
	X, Y int
}

// SpawnObstacle places a new obstacle at the top edge, fully inside a screen
// of the given width.
func SpawnObstacle(rng *rand.Rand, screenW int) Obstacle {
	maxX := screenW - ObstacleWidth
	if maxX < 0 {
		maxX = 0
	}
	return Obstacle{X: intn(rng, 0, maxX), Y: 0}
}

func (o *Obstacle) Fall() { o.Y += ObstacleSpeed }

func (o Obstacle) Bounds() geom.Rect {
	return geom.Rect{X: o.X, Y: o.Y, W: ObstacleWidth, H: ObstacleHeight}
}

// Below reports whether the obstacle's top edge has passed the screen bottom.
func (o Obstacle) Below(screenH int) bool { return o.Y > screenH }
