// Package config reads the runtime settings from the environment.
// Gameplay rules are fixed and live with the code that applies them.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Input sources.
const (
	InputPointer = "pointer"
)

// Logical screen, matching the playfield the rules are tuned for.
const (
	ScreenWidth  = 640
	ScreenHeight = 480
	TPS          = 30
)

type Config struct {
	WindowTitle string `env:"WINDOW_TITLE" envDefault:"Neon Escape"`
	WindowScale int    `env:"WINDOW_SCALE" envDefault:"1"`

	// Input selects the camera/estimator pair.
	Input string `env:"INPUT" envDefault:"pointer"`
	// Mirror flips landmarks horizontally, for estimators that report
	// camera-space coordinates.
	Mirror bool `env:"MIRROR" envDefault:"false"`

	Mute bool `env:"MUTE" envDefault:"false"`
	// Seed fixes the random source. Zero means seed from the clock.
	Seed int64 `env:"SEED" envDefault:"0"`
}

// Load parses NEON_* variables into a Config and validates it.
func Load() (Config, error) {
	return parse(env.Options{Prefix: "NEON_"})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.WindowScale < 1 {
		return fmt.Errorf("%w: window scale %d, want >= 1", ErrInvalid, c.WindowScale)
	}
	switch c.Input {
	case InputPointer:
	default:
		return fmt.Errorf("%w: unknown input %q", ErrInvalid, c.Input)
	}
	return nil
}
