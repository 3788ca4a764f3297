// Package audio plays short synthesized cues for game events through beep.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a named sound.
type Cue int

const (
	CueNone Cue = iota
	CueWall
	CuePaddle
	CuePoint
	CueGameOver
)

// CueFor returns the sound for a driver event, or CueNone.
func CueFor(ev pong.Event) Cue {
	switch ev.Kind {
	case pong.EventWallBounce:
		return CueWall
	case pong.EventPaddleHit:
		return CuePaddle
	case pong.EventPoint:
		return CuePoint
	case pong.EventGameOver:
		return CueGameOver
	default:
		return CueNone
	}
}

// tone is a decaying square-ish blip.
type tone struct {
	freq     float64
	phase    float64
	position int
	duration int
	rate     beep.SampleRate
}

func newTone(freq float64, d time.Duration, rate beep.SampleRate) *tone {
	return &tone{freq: freq, duration: rate.N(d), rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, i > 0
		}

		// soft square: sine plus a third harmonic
		val := math.Sin(2*math.Pi*t.phase) + math.Sin(6*math.Pi*t.phase)/3
		decay := 1 - float64(t.position)/float64(t.duration)
		val *= 0.5 * decay

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// withVolume scales s; math.Log2(0) is -Inf, so zero volume is made silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Streamer builds the sound for cue at the given volume (0-1).
// It returns nil for CueNone.
func Streamer(cue Cue, vol float64) beep.Streamer {
	var s beep.Streamer
	switch cue {
	case CueWall:
		s = newTone(220, 40*time.Millisecond, sampleRate)
	case CuePaddle:
		s = newTone(440, 50*time.Millisecond, sampleRate)
	case CuePoint:
		s = beep.Seq(
			newTone(330, 90*time.Millisecond, sampleRate),
			newTone(247, 160*time.Millisecond, sampleRate),
		)
	case CueGameOver:
		s = beep.Seq(
			newTone(523, 120*time.Millisecond, sampleRate),
			newTone(659, 120*time.Millisecond, sampleRate),
			newTone(784, 120*time.Millisecond, sampleRate),
			newTone(1047, 300*time.Millisecond, sampleRate),
		)
	default:
		return nil
	}
	return withVolume(s, vol)
}
