package main

import (
	"context"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"neonescape/internal/arena"
	"neonescape/internal/config"
	"neonescape/internal/gamemode"
	"neonescape/internal/render"
	"neonescape/internal/session"
	"neonescape/internal/tracking"
)

// Game adapts a session to ebiten: keys in, frames out.
type Game struct {
	ctx     context.Context
	session *session.Session
}

func NewGame(ctx context.Context, cfg config.Config, camera tracking.Camera, estimator tracking.Estimator, rng *rand.Rand) *Game {
	tracker := &tracking.Tracker{
		Camera:    camera,
		Estimator: estimator,
		Width:     config.ScreenWidth,
		Height:    config.ScreenHeight,
		Mirror:    cfg.Mirror,
	}

	// Leave cues as a nil interface when muted.
	var cues session.Cues
	if !cfg.Mute {
		cues = newCues()
	}

	return &Game{
		ctx:     ctx,
		session: session.New(arena.New(rng, config.ScreenWidth, config.ScreenHeight), tracker, cues),
	}
}

// Update: Logic (30 TPS)
func (g *Game) Update() error {
	if g.session.Mode == session.ModeGameOver {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.session.Restart()
			return nil
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			return ebiten.Termination
		}
	}
	return g.session.Tick(g.ctx)
}

// Draw: Rendering
func (g *Game) Draw(screen *ebiten.Image) {
	render.Arena(screen, g.session.Arena)

	if g.session.Mode == session.ModeGameOver {
		gamemode.DrawGameOver(screen, g.session.Arena.Score)
	}
}

// Layout: fixed logical playfield, ebiten scales it to the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}
