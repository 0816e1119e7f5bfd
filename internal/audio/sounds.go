package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/vancomm/minesweeper/internal/game"
)

const (
	boomLength   = 600 * time.Millisecond
	rumbleLength = 90 * time.Millisecond
	noteLength   = 120 * time.Millisecond
	clickLength  = 25 * time.Millisecond
)

// chimeNotes is a C major arpeggio.
var chimeNotes = []float64{523.25, 659.25, 783.99}

// Sound returns the streamer for ev, or nil if ev is silent.
func Sound(ev game.Event) beep.Streamer {
	switch ev {
	case game.EventDetonated:
		return boom(boomLength, 1)
	case game.EventShockwave:
		return boom(rumbleLength, 0.4)
	case game.EventWon:
		return chime()
	case game.EventFlagged:
		return tone(1200, clickLength, 0.3)
	default:
		return nil
	}
}

// boom is white noise with an exponential decay.
func boom(length time.Duration, gain float64) beep.Streamer {
	total := sampleRate.N(length)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := min(len(samples), total-pos)
		for i := range n {
			amp := gain * math.Exp(-6*float64(pos)/float64(total))
			v := (rand.Float64()*2 - 1) * amp
			samples[i] = [2]float64{v, v}
			pos++
		}
		return n, true
	})
}

func tone(freq float64, length time.Duration, gain float64) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		Log.WithError(err).WithField("freq", freq).Warn("unable to build tone")
		return beep.Silence(sampleRate.N(length))
	}
	return volume(beep.Take(sampleRate.N(length), sine), gain)
}

func chime() beep.Streamer {
	notes := make([]beep.Streamer, 0, len(chimeNotes))
	for _, freq := range chimeNotes {
		notes = append(notes, tone(freq, noteLength, 0.5))
	}
	return beep.Seq(notes...)
}

// volume scales s linearly; effects.Volume works in powers of its base.
func volume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
