package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/internal/game"
)

var Log = logrus.New()

const sampleRate = beep.SampleRate(44100)

// Player plays a short sound for each game event. It is safe to notify
// a player that was never initialized or failed to initialize.
type Player struct {
	mu          sync.Mutex
	muted       bool
	initialized bool
}

func NewPlayer(muted bool) *Player {
	return &Player{muted: muted}
}

// Init opens the speaker. A muted player never touches the sound
// device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.muted || p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	p.initialized = true
	Log.WithField("sample_rate", int(sampleRate)).Debug("speaker ready")
	return nil
}

func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Close()
	p.initialized = false
}

func (p *Player) Notify(ev game.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := Sound(ev)
	if s == nil {
		return
	}
	Log.WithField("event", ev.String()).Trace("playing sound")
	speaker.Play(s)
}
