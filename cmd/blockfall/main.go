package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/blockfall/audio"
	"github.com/lixenwraith/blockfall/config"
	"github.com/lixenwraith/blockfall/engine"
	"github.com/lixenwraith/blockfall/feed"
	"github.com/lixenwraith/blockfall/game"
)

var feedFlag = flag.Bool("feed", true, "drive gravity speed from the market price feed")

// emergencyReset restores the terminal with raw escape codes, usable even
// when the screen object is in an unknown state after a panic
func emergencyReset() {
	fmt.Fprint(os.Stdout, "\x1b[?1049l\x1b[0m\x1b[?25h")
}

func main() {
	// Ensure the terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			emergencyReset()
			fmt.Fprintf(os.Stderr, "\nBLOCKFALL CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// The renderer owns the terminal, so logs go to a file or nowhere
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	sounds, err := audio.New(cfg.Audio)
	if err != nil {
		log.WithError(err).Warn("audio initialization failed, continuing without sound")
	}

	var source feed.Source
	if *feedFlag {
		source = feed.NewHTTPSource(cfg.FeedURL, cfg.FeedSymbol)
	}

	g := game.NewGame()
	session := engine.NewSession(screen, g, engine.Options{
		Gravity:    cfg.Gravity,
		FeedSource: source,
		FeedPoll:   cfg.FeedPoll,
		Sounds:     sounds,
	})

	runErr := session.Run()

	sounds.Close()
	screen.Fini()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Session failed: %v\n", runErr)
		os.Exit(1)
	}
	fmt.Printf("Final score: %d (level %d)\n", g.Score(), g.Level())
}
