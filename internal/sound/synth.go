// Package sound synthesises the game's sound cues as raw PCM: 16-bit signed
// little-endian stereo, the format ebiten's audio players accept.
package sound

import (
	"math"
	"time"
)

const SampleRate = 44100

const bytesPerFrame = 4

// Sweep renders a square wave gliding from one frequency to another over
// dur, fading out linearly. volume is in [0, 1].
func Sweep(from, to float64, dur time.Duration, volume float64) []byte {
	n := int(dur.Seconds() * SampleRate)
	if n <= 0 {
		return nil
	}
	volume = math.Max(0, math.Min(1, volume))
	buf := make([]byte, n*bytesPerFrame)

	phase := 0.0
	for i := range n {
		t := float64(i) / float64(n)
		freq := from + (to-from)*t
		phase += freq / SampleRate
		phase -= math.Floor(phase)

		val := volume * (1 - t)
		if phase >= 0.5 {
			val = -val
		}

		v := int16(val * math.MaxInt16)
		o := i * bytesPerFrame
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v)
		buf[o+3] = byte(v >> 8)
	}
	return buf
}

// Tone is a fixed-pitch Sweep.
func Tone(freq float64, dur time.Duration, volume float64) []byte {
	return Sweep(freq, freq, dur, volume)
}

// Cues
func Score() []byte { return Tone(880, 60*time.Millisecond, 0.2) }
func Crash() []byte { return Sweep(440, 110, 400*time.Millisecond, 0.3) }
