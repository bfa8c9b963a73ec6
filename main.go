package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"neonescape/internal/config"
	"neonescape/internal/tracking"
	"neonescape/internal/tracking/pointer"
)

func main() {
	log.SetPrefix("neon: ")

	// 1. Settings
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// 2. Window Setup
	ebiten.SetWindowSize(config.ScreenWidth*cfg.WindowScale, config.ScreenHeight*cfg.WindowScale)
	ebiten.SetWindowTitle(cfg.WindowTitle)
	ebiten.SetTPS(config.TPS)

	// 3. Collaborators
	camera, estimator := newTracker(cfg)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game := NewGame(ctx, cfg, camera, estimator, rand.New(rand.NewSource(seed)))

	// 4. Run Loop
	err = ebiten.RunGame(game)
	switch {
	case err == nil:
	case ctx.Err() != nil:
		log.Print("interrupted")
	case errors.Is(err, tracking.ErrNoFrame):
		log.Fatal("camera stopped producing frames")
	default:
		log.Fatal(err)
	}
}

func newTracker(cfg config.Config) (tracking.Camera, tracking.Estimator) {
	switch cfg.Input {
	case config.InputPointer:
		return pointer.NewCamera(), pointer.NewEstimator(config.ScreenWidth, config.ScreenHeight)
	}
	// config.Validate rejects anything else.
	log.Fatalf("unsupported input %q", cfg.Input)
	return nil, nil
}
