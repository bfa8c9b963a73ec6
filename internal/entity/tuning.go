// Package entity holds the things that live in the arena and how each of
// them changes from one tick to the next. Nothing here draws.
package entity

// Ball
const (
	BallStartRadius = 20
	BallMinRadius   = 10
	BallMaxRadius   = 50
	TrailLength     = 15
)

// Obstacles
const (
	ObstacleWidth  = 100
	ObstacleHeight = 20
	ObstacleSpeed  = 5
)

// Collision burst
const (
	BurstCount     = 30
	BurstSpread    = 10  // px around the ball centre
	BurstMaxSpeed  = 2.0 // px per tick, either direction
	BurstMinLife   = 20  // ticks
	BurstMaxLife   = 50
	ParticleRadius = 3
)

// Background motes
const (
	MoteCount     = 50
	MoteMaxSpeed  = 0.5
	MoteMinRadius = 1
	MoteMaxRadius = 4
)
