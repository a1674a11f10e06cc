package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// blip is a short downward square-wave sweep, the classic "pew".
type blip struct {
	rate     beep.SampleRate
	phase    float64
	position int
	duration int
}

// NewBlipGenerator returns a 120ms square sweep from 880Hz down to 220Hz.
func NewBlipGenerator(rate beep.SampleRate) beep.Streamer {
	return &blip{
		rate:     rate,
		duration: rate.N(120 * time.Millisecond),
	}
}

func (b *blip) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if b.position >= b.duration {
			return i, false
		}

		progress := float64(b.position) / float64(b.duration)
		freq := 880 - 660*progress

		var val float64
		if b.phase < 0.5 {
			val = 0.4
		} else {
			val = -0.4
		}

		// Fade out over the tail to avoid a click.
		if progress > 0.7 {
			val *= (1 - progress) / 0.3
		}

		samples[i][0] = val
		samples[i][1] = val

		b.phase += freq / float64(b.rate)
		b.phase -= math.Floor(b.phase)
		b.position++
	}
	return len(samples), true
}

func (b *blip) Err() error { return nil }

// boom is a white-noise burst with an exponential decay envelope.
type boom struct {
	rate     beep.SampleRate
	rng      *rand.Rand
	position int
	duration int
}

// NewBoomGenerator returns a 250ms decaying noise burst.
func NewBoomGenerator(rate beep.SampleRate) beep.Streamer {
	return &boom{
		rate:     rate,
		rng:      rand.New(rand.NewSource(0xb00)),
		duration: rate.N(250 * time.Millisecond),
	}
}

func (b *boom) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if b.position >= b.duration {
			return i, false
		}

		progress := float64(b.position) / float64(b.duration)
		envelope := math.Exp(-5 * progress)
		val := (b.rng.Float64()*2 - 1) * 0.5 * envelope

		samples[i][0] = val
		samples[i][1] = val
		b.position++
	}
	return len(samples), true
}

func (b *boom) Err() error { return nil }
