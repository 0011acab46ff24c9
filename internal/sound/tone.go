package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// tone streams a sine at freq for d with an exponential decay envelope.
func tone(sr beep.SampleRate, freq float64, d time.Duration, decay float64) beep.Streamer {
	total := sr.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			t := float64(pos) / float64(sr)
			v := math.Sin(2*math.Pi*freq*t) * math.Exp(-decay*t)
			samples[i][0], samples[i][1] = v, v
			pos++
			n++
		}
		return n, true
	})
}

// Click is the short tick played when a sector boundary passes the pointer.
func Click(sr beep.SampleRate) beep.Streamer {
	return tone(sr, 1800, 25*time.Millisecond, 180)
}

// Chime is the two note jingle played when the result is shown.
func Chime(sr beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(sr, 660, 120*time.Millisecond, 12),
		tone(sr, 990, 380*time.Millisecond, 6),
	)
}
