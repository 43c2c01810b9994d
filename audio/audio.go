// Package audio plays short one-shot tones for game feedback. Audio is
// strictly optional: any initialization or playback problem leaves the
// game running silently.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Engine wraps the speaker. A nil or disabled engine is safe to call.
type Engine struct {
	enabled bool
}

// New initializes the speaker. Failure is non-fatal: the returned engine
// is disabled and every Play call becomes a no-op.
func New(enabled bool) (*Engine, error) {
	e := &Engine{}
	if !enabled {
		return e, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return e, err
	}
	e.enabled = true
	return e, nil
}

// Close shuts the speaker down
func (e *Engine) Close() {
	if e != nil && e.enabled {
		speaker.Close()
	}
}

// PlayLock sounds when a piece settles into the stack
func (e *Engine) PlayLock() {
	e.tone(220, 40*time.Millisecond)
}

// PlayClear sounds when lines clear; pitch rises with the line count
func (e *Engine) PlayClear(lines int) {
	e.tone(440+110*float64(lines), 90*time.Millisecond)
}

// PlayLevelUp sounds on a level increment
func (e *Engine) PlayLevelUp() {
	e.tone(880, 150*time.Millisecond)
}

// PlayGameOver sounds once when the session ends in a loss
func (e *Engine) PlayGameOver() {
	e.tone(110, 400*time.Millisecond)
}

func (e *Engine) tone(freq float64, d time.Duration) {
	if e == nil || !e.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}
