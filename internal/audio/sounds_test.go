package audio

import (
	"testing"

	"github.com/gopxl/beep"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper/internal/game"
)

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

// drain streams s to the end and returns the number of samples and the
// largest absolute sample value.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			peak = max(peak, sample[0], -sample[0])
			assert.Equal(t, sample[0], sample[1], "sounds are mono")
		}
		total += n
		if !ok {
			break
		}
		require.Less(t, total, int(sampleRate)*10, "sound never ends")
	}
	require.NoError(t, s.Err())
	return total, peak
}

func TestSoundLengths(t *testing.T) {
	tests := []struct {
		event game.Event
		want  int
	}{
		{game.EventDetonated, sampleRate.N(boomLength)},
		{game.EventShockwave, sampleRate.N(rumbleLength)},
		{game.EventWon, len(chimeNotes) * sampleRate.N(noteLength)},
		{game.EventFlagged, sampleRate.N(clickLength)},
	}

	for _, test := range tests {
		t.Run(test.event.String(), func(t *testing.T) {
			s := Sound(test.event)
			require.NotNil(t, s)

			n, peak := drain(t, s)
			assert.Equal(t, test.want, n)
			assert.Greater(t, peak, 0.0)
			assert.LessOrEqual(t, peak, 1.0)
		})
	}
}

func TestSilentEvents(t *testing.T) {
	for _, ev := range []game.Event{game.EventNone, game.EventRevealed, game.EventReset} {
		assert.Nil(t, Sound(ev), ev.String())
	}
}

func TestBoomDecays(t *testing.T) {
	s := boom(boomLength, 1)
	total := sampleRate.N(boomLength)

	head := make([][2]float64, total/10)
	_, ok := s.Stream(head)
	require.True(t, ok)

	rest := make([][2]float64, total)
	n, _ := s.Stream(rest)
	tail := rest[n-total/10 : n]

	peak := func(samples [][2]float64) float64 {
		p := 0.0
		for _, sample := range samples {
			p = max(p, sample[0], -sample[0])
		}
		return p
	}
	assert.Greater(t, peak(head), peak(tail))
}

func TestNotifyWithoutSpeaker(t *testing.T) {
	p := NewPlayer(false)
	assert.NotPanics(t, func() {
		p.Notify(game.EventDetonated)
		p.Close()
	})
}

func TestMutedPlayerSkipsSpeaker(t *testing.T) {
	p := NewPlayer(true)
	require.NoError(t, p.Init())
	assert.False(t, p.initialized)
	assert.NotPanics(t, func() {
		p.Notify(game.EventWon)
	})
}
