// Package engine runs the live-update loop: three producer goroutines
// (gravity ticker, keyboard input, difficulty feed) fan into one event
// queue consumed by a single loop that owns all game mutation.
package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/blockfall/audio"
	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/event"
	"github.com/lixenwraith/blockfall/feed"
	"github.com/lixenwraith/blockfall/game"
	"github.com/lixenwraith/blockfall/input"
	"github.com/lixenwraith/blockfall/render"
)

// gameOverLinger keeps the final frame and banner visible before the
// terminal is restored
var gameOverLinger = 2 * time.Second

// Options configures a session. Zero values fall back to the constants
// package defaults; a nil FeedSource disables the difficulty feed.
type Options struct {
	Gravity    time.Duration
	FeedSource feed.Source
	FeedPoll   time.Duration
	Sounds     *audio.Engine
}

// Session wires one Game to its producers and consumer loop. Game state
// is mutated exclusively by Run; the only cross-goroutine state is the
// gravity interval, handed to the ticker through an atomic.
type Session struct {
	game     *game.Game
	queue    *event.Queue
	screen   tcell.Screen
	renderer *render.Renderer
	sounds   *audio.Engine
	source   feed.Source
	feedPoll time.Duration

	// Current gravity interval in nanoseconds, read by the ticker
	// goroutine before every sleep
	interval atomic.Int64

	quit chan struct{}

	// Last observed counters, for sound feedback diffing
	prevScore  int
	prevLevel  int
	prevLocked int
}

// NewSession builds a session around an initialized screen and game
func NewSession(screen tcell.Screen, g *game.Game, opts Options) *Session {
	gravity := opts.Gravity
	if gravity <= 0 {
		gravity = constants.DefaultGravityInterval
	}
	feedPoll := opts.FeedPoll
	if feedPoll <= 0 {
		feedPoll = constants.FeedPollInterval
	}

	s := &Session{
		game:      g,
		queue:     event.NewQueue(constants.EventQueueSize),
		screen:    screen,
		renderer:  render.New(screen),
		sounds:    opts.Sounds,
		source:    opts.FeedSource,
		feedPoll:  feedPoll,
		quit:      make(chan struct{}),
		prevLevel: g.Level(),
	}
	s.interval.Store(int64(gravity))
	g.SetDuration(gravity)
	return s
}

// Run drives the session until the player quits or the game is lost.
// Each iteration paints a full frame, then blocks for exactly one event
// and applies it.
func (s *Session) Run() error {
	log.WithFields(log.Fields{
		"gravity":  time.Duration(s.interval.Load()),
		"feedPoll": s.feedPoll,
	}).Info("session started")

	s.startGravity()
	s.startInput()
	if s.source != nil {
		s.startFeed()
	}
	defer close(s.quit)

	for {
		s.renderer.Draw(s.game)

		ev := s.queue.Next()
		switch ev.Type {
		case event.EventKeyPress:
			if ev.Key == event.KeyCtrlC || (ev.Key == event.KeyChar && ev.Rune == 'z') {
				log.Info("session ended by player")
				return nil
			}
			alive := s.game.Keypress(ev.Key, ev.Rune)
			s.playFeedback()
			if !alive {
				return s.finishGameOver()
			}

		case event.EventTick:
			alive := s.game.AdvanceGame()
			s.playFeedback()
			if !alive {
				return s.finishGameOver()
			}

		case event.EventDurationUpdate:
			s.interval.Store(int64(ev.Duration))
			s.game.SetDuration(ev.Duration)
			log.WithField("interval", ev.Duration).Debug("gravity interval updated")
		}
	}
}

// startGravity emits Tick events, re-reading the interval before every
// sleep so feed-driven updates take effect on the very next tick.
func (s *Session) startGravity() {
	go func() {
		for {
			select {
			case <-s.quit:
				return
			case <-time.After(time.Duration(s.interval.Load())):
				s.queue.Push(event.GameEvent{Type: event.EventTick})
			}
		}
	}()
}

// startInput forwards decoded terminal keys. The goroutine ends when the
// screen is finalized and PollEvent returns nil.
func (s *Session) startInput() {
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			if ge, ok := input.Translate(ev); ok {
				s.queue.Push(ge)
			}
		}
	}()
}

// startFeed polls the difficulty source and emits DurationUpdate events.
// A failed poll keeps the previous interval and is only logged.
func (s *Session) startFeed() {
	go func() {
		adjuster := feed.NewAdjuster(time.Duration(s.interval.Load()))
		for {
			ctx, cancel := context.WithTimeout(context.Background(), s.feedPoll)
			reading, err := s.source.Poll(ctx)
			cancel()
			if err != nil {
				log.WithError(err).Warn("difficulty feed poll failed, keeping interval")
			} else {
				s.queue.Push(event.GameEvent{
					Type:     event.EventDurationUpdate,
					Duration: adjuster.Advance(reading),
				})
			}

			select {
			case <-s.quit:
				return
			case <-time.After(s.feedPoll):
			}
		}
	}()
}

// playFeedback compares score/level/lock counters against the previous
// event and plays the matching one-shot tones
func (s *Session) playFeedback() {
	if s.game.Score() > s.prevScore {
		s.sounds.PlayClear(s.game.Score() - s.prevScore)
	} else if s.game.LockedPieces() > s.prevLocked {
		s.sounds.PlayLock()
	}
	if s.game.Level() > s.prevLevel {
		s.sounds.PlayLevelUp()
	}
	s.prevScore = s.game.Score()
	s.prevLevel = s.game.Level()
	s.prevLocked = s.game.LockedPieces()
}

// finishGameOver paints the final frame with a banner, lets it linger,
// and hands control back to the caller for terminal restore
func (s *Session) finishGameOver() error {
	log.WithFields(log.Fields{
		"score": s.game.Score(),
		"level": s.game.Level(),
	}).Info("game over")
	s.sounds.PlayGameOver()
	s.renderer.DrawGameOver(s.game)
	time.Sleep(gameOverLinger)
	return nil
}
