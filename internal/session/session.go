// Package session runs rounds: it feeds tracked hand positions into the
// arena, switches between play and game over, and fires sound cues.
package session

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"neonescape/internal/arena"
	"neonescape/internal/tracking"
)

type Mode int

const (
	ModePlay     Mode = iota // Hand drives the ball
	ModeGameOver             // Waiting for restart or quit
)

func (m Mode) String() string {
	switch m {
	case ModePlay:
		return "play"
	case ModeGameOver:
		return "game over"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Cues is told when something worth hearing happens.
type Cues interface {
	Score()
	Crash()
}

type Session struct {
	Mode  Mode
	Arena *arena.Arena

	tracker *tracking.Tracker
	cues    Cues

	roundID    string
	roundStart time.Time
	spawned    int
}

// New starts the first round. cues may be nil for silent play.
func New(a *arena.Arena, tracker *tracking.Tracker, cues Cues) *Session {
	s := &Session{Arena: a, tracker: tracker, cues: cues}
	s.Restart()
	return s
}

func (s *Session) RoundID() string { return s.roundID }

// Restart throws away the current round and begins a new one.
func (s *Session) Restart() {
	s.Arena.Reset()
	s.Mode = ModePlay
	s.roundID = uuid.NewString()
	s.roundStart = time.Now()
	s.spawned = 0
	log.Printf("round %s started", s.roundID)
}

// Tick advances one frame. During play it polls the tracker and steps the
// arena; the only error is a failed camera read, which ends play. After the
// round is over it only lets the scenery settle.
func (s *Session) Tick(ctx context.Context) error {
	if s.Mode == ModeGameOver {
		s.Arena.Settle()
		return nil
	}

	hand, err := s.tracker.Poll(ctx)
	if err != nil {
		return err
	}

	ev := s.Arena.Step(hand)
	if ev.Spawned {
		s.spawned++
	}
	if ev.Scored > 0 && s.cues != nil {
		s.cues.Score()
	}
	if ev.Collided {
		if s.cues != nil {
			s.cues.Crash()
		}
		s.Mode = ModeGameOver
		log.Printf("round %s over: dodged %d of %d obstacles in %d frames (%s)",
			s.roundID, s.Arena.Score, s.spawned, s.Arena.Frame, time.Since(s.roundStart).Round(time.Second))
	}
	return nil
}
