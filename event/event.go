package event

import "time"

// Key is an abstract, already-decoded key press.
// Raw terminal byte decoding is the input package's concern.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyCtrlC

	// KeyChar carries a printable rune in GameEvent.Rune
	KeyChar
)

// Type discriminates game events on the producer-to-consumer queue
type Type int

const (
	// EventTick requests one gravity step
	// Trigger: gravity ticker goroutine | Consumer: session loop
	EventTick Type = iota

	// EventKeyPress carries a decoded key from the input goroutine
	// Trigger: input goroutine | Consumer: session loop
	EventKeyPress

	// EventDurationUpdate carries a new gravity interval from the feed
	// Trigger: difficulty feed goroutine | Consumer: session loop
	EventDurationUpdate
)

// GameEvent is one unit of work for the session loop. Exactly one event
// mutates game state at a time; payload fields are valid per Type.
type GameEvent struct {
	Type     Type
	Key      Key           // EventKeyPress
	Rune     rune          // EventKeyPress with KeyChar
	Duration time.Duration // EventDurationUpdate
}
