package config

import (
	"errors"
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := parse(env.Options{Environment: map[string]string{}})
	require.NoError(t, err)
	assert.Equal(t, Config{
		WindowTitle: "Neon Escape",
		WindowScale: 1,
		Input:       InputPointer,
	}, cfg)
}

func TestParseOverrides(t *testing.T) {
	t.Parallel()

	cfg, err := parse(env.Options{
		Prefix: "NEON_",
		Environment: map[string]string{
			"NEON_WINDOW_SCALE": "2",
			"NEON_MIRROR":       "true",
			"NEON_MUTE":         "true",
			"NEON_SEED":         "42",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.WindowScale)
	assert.True(t, cfg.Mirror)
	assert.True(t, cfg.Mute)
	assert.Equal(t, int64(42), cfg.Seed)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		vars    map[string]string
		invalid bool
	}{
		{"bad number", map[string]string{"WINDOW_SCALE": "big"}, false},
		{"zero scale", map[string]string{"WINDOW_SCALE": "0"}, true},
		{"unknown input", map[string]string{"INPUT": "webcam9000"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := parse(env.Options{Environment: tt.vars})
			require.Error(t, err)
			assert.Equal(t, tt.invalid, errors.Is(err, ErrInvalid))
			if !tt.invalid {
				assert.Contains(t, err.Error(), "parse env:")
			}
		})
	}
}
