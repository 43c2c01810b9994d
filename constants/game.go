package constants

import "time"

// Board Geometry
const (
	// BoardWidth is the playfield width in cells
	BoardWidth = 10

	// BoardVisibleRows is the number of rows shown on screen
	BoardVisibleRows = 20

	// HiddenRows is the number of spawn rows above the visible area
	HiddenRows = 2

	// BoardRows is the total grid height including hidden spawn rows
	BoardRows = BoardVisibleRows + HiddenRows
)

// Timing Constants
const (
	// DefaultGravityInterval is the starting delay between gravity ticks
	DefaultGravityInterval = 200 * time.Millisecond

	// FeedPollInterval is the delay between difficulty feed polls
	FeedPollInterval = 5 * time.Second

	// FeedStep is the gravity adjustment applied per feed trend change.
	// It doubles as the floor below which the interval is never decremented.
	FeedStep = 500 * time.Millisecond
)

// Scoring Constants
const (
	// LinesPerLevel is the cleared-line count per level increment
	LinesPerLevel = 10
)

// EventQueueSize bounds the producer-to-consumer event queue
const EventQueueSize = 64
