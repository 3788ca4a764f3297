// Package history records finished matches into the archive.
package history

import (
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// Saver persists a finished match. *storage.Store implements it.
type Saver interface {
	SaveMatch(m storage.MatchRecord) (int64, error)
}

// Recorder watches driver events and saves each finished match.
type Recorder struct {
	saver   Saver
	player  string
	logger  *log.Logger
	now     func() time.Time
	started time.Time
	saved   int
}

// NewRecorder creates a recorder saving under the given player name.
// A nil saver makes the recorder a no-op.
func NewRecorder(saver Saver, player string, logger *log.Logger) *Recorder {
	return &Recorder{
		saver:  saver,
		player: player,
		logger: logger,
		now:    time.Now,
	}
}

// Observe implements pong.Observer.
func (r *Recorder) Observe(ev pong.Event) {
	switch ev.Kind {
	case pong.EventPhase:
		switch ev.Phase {
		case pong.PhaseRunning:
			if r.started.IsZero() {
				r.started = r.now()
			}
		case pong.PhaseIdle:
			r.started = time.Time{}
		}
	case pong.EventGameOver:
		r.save(ev)
		r.started = time.Time{}
	}
}

// Saved returns how many matches this recorder stored.
func (r *Recorder) Saved() int {
	return r.saved
}

func (r *Recorder) save(ev pong.Event) {
	if r.saver == nil {
		return
	}

	var secs int
	if !r.started.IsZero() {
		secs = int(math.Round(r.now().Sub(r.started).Seconds()))
	}

	rec := storage.MatchRecord{
		Player:       r.player,
		LeftScore:    ev.Score[0],
		RightScore:   ev.Score[1],
		Winner:       ev.Side.String(),
		Returns:      ev.Stats.Returns,
		LongestRally: ev.Stats.LongestRally,
		PeakSpeed:    ev.Stats.PeakSpeed,
		DurationSecs: secs,
	}
	if _, err := r.saver.SaveMatch(rec); err != nil {
		if r.logger != nil {
			r.logger.Warn("could not save match", "error", err)
		}
		return
	}
	r.saved++
}

// SaverFor wraps store as a Saver, returning nil when store is nil so a failed
// database open does not turn into a typed-nil interface.
func SaverFor(store *storage.Store) Saver {
	if store == nil {
		return nil
	}
	return store
}
