package game

import (
	"time"

	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/event"
)

// Game is the authoritative rules state: board, bag, the active piece and
// its origin, score, level and the current gravity interval. It is only
// ever mutated by the session loop, one event at a time.
type Game struct {
	board  *Board
	bag    *PieceBag
	piece  Piece
	origin Point

	score  int
	level  int
	locked int

	duration time.Duration
}

// NewGame starts a session: empty board, filled bag, first piece spawned
func NewGame() *Game {
	bag := NewPieceBag()
	g := &Game{
		board:    NewBoard(constants.BoardWidth, constants.BoardRows),
		bag:      bag,
		piece:    bag.Pop(),
		level:    1,
		duration: constants.DefaultGravityInterval,
	}
	g.PlaceNewPiece()
	return g
}

func (g *Game) Board() *Board { return g.board }

func (g *Game) Piece() *Piece { return &g.piece }

func (g *Game) Origin() Point { return g.origin }

func (g *Game) Score() int { return g.score }

func (g *Game) Level() int { return g.level }

func (g *Game) LockedPieces() int { return g.locked }

func (g *Game) NextPiece() Piece { return g.bag.Peek() }

func (g *Game) Duration() time.Duration { return g.duration }

// SetDuration records the gravity interval for display; the ticker reads
// its own copy through the session's atomic handoff.
func (g *Game) SetDuration(d time.Duration) {
	g.duration = d
}

// MovePiece shifts the active piece by (dx, dy) if the trial position is
// collision-free. Returns whether the move was committed.
func (g *Game) MovePiece(dx, dy int) bool {
	trial := Point{X: g.origin.X + dx, Y: g.origin.Y + dy}
	if g.board.CollisionTest(&g.piece, trial) {
		return false
	}
	g.origin = trial
	return true
}

// RotatePiece rotates a clone of the active piece and commits it only if
// the rotated shape fits at the current origin. No wall-kick offset
// search: a rotation blocked by a wall or the stack simply fails.
func (g *Game) RotatePiece(dir Direction) bool {
	trial := g.piece.Clone()
	trial.Rotate(dir)
	if g.board.CollisionTest(&trial, g.origin) {
		return false
	}
	g.piece = trial
	return true
}

// PlaceNewPiece positions the active piece at the spawn origin, centered
// over the board width at the top row. Returns false when the spawn cell
// area is obstructed, the game-over condition.
func (g *Game) PlaceNewPiece() bool {
	origin := Point{X: (g.board.Width() - g.piece.Size()) / 2, Y: 0}
	if g.board.CollisionTest(&g.piece, origin) {
		return false
	}
	g.origin = origin
	return true
}

// AdvanceGame applies one gravity step. When the piece can no longer
// fall it is locked, full lines are cleared and scored, the level is
// bumped at every tenth cumulative line, and the next piece is dealt.
// Returns false when the new piece cannot be placed: the player has lost.
func (g *Game) AdvanceGame() bool {
	if g.MovePiece(0, 1) {
		return true
	}

	if err := g.board.LockPiece(&g.piece, g.origin); err != nil {
		// The piece rests on the stack, so locking it cannot collide
		panic(err)
	}
	g.locked++
	cleared := g.board.ClearLines()
	g.score += cleared
	// Level up only on the advance that crosses the threshold, not on
	// every later lock that happens to leave the score at a multiple
	if cleared > 0 && g.score%constants.LinesPerLevel == 0 {
		g.level++
	}
	g.piece = g.bag.Pop()

	return g.PlaceNewPiece()
}

// DropPiece hard-drops the active piece to its resting position, then
// performs the usual lock/clear/spawn sequence exactly once.
func (g *Game) DropPiece() bool {
	for g.MovePiece(0, 1) {
	}
	return g.AdvanceGame()
}

// FindDroppedPosition projects where the active piece would land if
// hard-dropped now, without mutating anything. Used for the ghost piece.
func (g *Game) FindDroppedPosition() Point {
	origin := g.origin
	for !g.board.CollisionTest(&g.piece, origin) {
		origin.Y++
	}
	origin.Y--
	return origin
}

// Keypress dispatches one decoded key to the state machine. Returns false
// when a key-triggered advance signalled game over.
func (g *Game) Keypress(key event.Key, r rune) bool {
	switch key {
	case event.KeyLeft:
		g.MovePiece(-1, 0)
	case event.KeyRight:
		g.MovePiece(1, 0)
	case event.KeyDown:
		return g.AdvanceGame()
	case event.KeyUp:
		g.RotatePiece(RotateLeft)
	case event.KeySpace:
		return g.DropPiece()
	case event.KeyChar:
		switch r {
		case 'q':
			g.RotatePiece(RotateLeft)
		case 'e':
			g.RotatePiece(RotateRight)
		}
	}
	return true
}
