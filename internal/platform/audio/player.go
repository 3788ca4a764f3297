package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

var initOnce sync.Once
var initErr error

// Player mixes cues into the system speaker.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	closed bool
}

// NewPlayer opens the speaker and starts an empty mixer. The speaker is shared
// by the whole process and initialized once.
func NewPlayer(volume float64) (*Player, error) {
	initOnce.Do(func() {
		initErr = speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond))
	})
	if initErr != nil {
		return nil, fmt.Errorf("audio: cannot open speaker: %w", initErr)
	}

	p := &Player{mixer: &beep.Mixer{}, volume: volume}
	speaker.Play(p.mixer)
	return p, nil
}

// Play queues cue on the mixer.
func (p *Player) Play(cue Cue) {
	s := Streamer(cue, p.volume)
	if s == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Observe plays the cue for a driver event. Use it with pong.WithObserver.
func (p *Player) Observe(ev pong.Event) {
	p.Play(CueFor(ev))
}

// Close silences the mixer.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
}

// Observer returns an observer for pong.WithObserver that plays cues when sound
// is enabled, or nil when it is disabled or no speaker is available.
func Observer(enabled bool, volume float64, logger *log.Logger) (pong.Observer, func()) {
	if !enabled {
		return nil, func() {}
	}
	p, err := NewPlayer(volume)
	if err != nil {
		logger.Warn("sound disabled", "error", err)
		return nil, func() {}
	}
	return p.Observe, p.Close
}
