// Package arena owns the state of a round and advances it one tick at a time.
//
// The arena knows nothing about cameras, windows or sound. The caller feeds it
// the hand position for each tick and reacts to the Events it returns.
package arena

import (
	"math/rand"

	"neonescape/internal/entity"
	"neonescape/internal/tracking"
)

// SpawnInterval is the number of ticks between new obstacles.
const SpawnInterval = 30

// PaletteSize is the number of neon colours motes pick from.
const PaletteSize = 3

// Events reports what happened during a single Step.
type Events struct {
	Spawned  bool
	Scored   int // obstacles that left the screen this tick
	Collided bool
}

type Arena struct {
	Width, Height int

	Score    int
	Frame    int
	GameOver bool

	Ball      entity.Ball
	Trail     *entity.Trail
	Obstacles []entity.Obstacle
	Particles []entity.Particle

	// Motes are scenery and survive a reset.
	Motes []entity.Mote

	rng *rand.Rand
}

func New(rng *rand.Rand, w, h int) *Arena {
	return &Arena{
		Width:  w,
		Height: h,
		Ball:   entity.NewBall(),
		Trail:  entity.NewTrail(entity.TrailLength),
		Motes:  entity.NewMotes(rng, entity.MoteCount, w, h, PaletteSize),
		rng:    rng,
	}
}

// Reset starts a new round.
func (a *Arena) Reset() {
	a.Score = 0
	a.Frame = 0
	a.GameOver = false
	a.Ball = entity.NewBall()
	a.Trail.Clear()
	a.Obstacles = nil
	a.Particles = nil
}

// Step plays one tick. hand is nil when no hand was detected. Once the round
// is over Step does nothing; use Settle to keep the scenery moving.
func (a *Arena) Step(hand *tracking.HandPosition) Events {
	var ev Events
	if a.GameOver {
		return ev
	}

	a.animate()
	a.moveBall(hand)

	if a.Frame%SpawnInterval == 0 {
		a.Obstacles = append(a.Obstacles, entity.SpawnObstacle(a.rng, a.Width))
		ev.Spawned = true
	}

	kept := a.Obstacles[:0]
	for _, o := range a.Obstacles {
		o.Fall()
		if a.Ball.Visible && a.Ball.Bounds().Intersects(o.Bounds()) {
			// Only the first hit bursts; the round is over either way.
			if !ev.Collided {
				a.Particles = append(a.Particles, entity.Burst(a.rng, a.Ball.X, a.Ball.Y, entity.BurstCount)...)
			}
			ev.Collided = true
			a.GameOver = true
		}
		if o.Below(a.Height) {
			a.Score++
			ev.Scored++
			continue
		}
		kept = append(kept, o)
	}
	clear(a.Obstacles[len(kept):])
	a.Obstacles = kept

	a.Frame++
	return ev
}

// Settle advances the scenery and the burst particles without playing.
func (a *Arena) Settle() {
	a.animate()
}

func (a *Arena) animate() {
	for i := range a.Motes {
		a.Motes[i].Drift(a.Width, a.Height)
	}
	a.Particles = entity.TickParticles(a.Particles)
}

func (a *Arena) moveBall(hand *tracking.HandPosition) {
	if hand == nil {
		a.Ball.Visible = false
		return
	}
	a.Ball.X, a.Ball.Y = hand.X, hand.Y
	a.Ball.Radius = entity.RadiusFromPinch(hand.Pinch)
	a.Ball.Visible = true
	a.Trail.Push(a.Ball.Point)
}
