package main

import (
	"github.com/hajimehoshi/ebiten/v2/audio"

	"neonescape/internal/sound"
)

// newCues plays each cue on a fresh player of a shared audio context.
func newCues() *sound.Cues {
	ctx := audio.NewContext(sound.SampleRate)
	return sound.NewCues(func(pcm []byte) {
		ctx.NewPlayerFromBytes(pcm).Play()
	})
}
