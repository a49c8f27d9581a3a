// Package cue plays short synthesized sounds for page interactions.
package cue

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// Tone returns a sine burst of the given frequency that decays linearly to
// silence over d.
func Tone(rate beep.SampleRate, freq float64, d time.Duration, gain float64) beep.Streamer {
	total := rate.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				break
			}
			env := 1 - float64(pos)/float64(total)
			v := gain * env * math.Sin(2*math.Pi*freq*float64(pos)/float64(rate))
			samples[i][0] = v
			samples[i][1] = v
			pos++
			n++
		}
		return n, true
	})
}

// Chime is two tones back to back, rising when entering visual mode and
// falling when leaving it.
func Chime(rate beep.SampleRate, rising bool, gain float64) beep.Streamer {
	lo, hi := 523.25, 783.99
	if !rising {
		lo, hi = hi, lo
	}
	step := 70 * time.Millisecond
	return beep.Seq(Tone(rate, lo, step, gain), Tone(rate, hi, 2*step, gain))
}
