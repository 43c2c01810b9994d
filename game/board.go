package game

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Point is a board-relative origin for a piece's bounding box
type Point struct {
	X, Y int
}

// Cell is one board position: empty, or occupied by a locked block color
type Cell struct {
	Color    tcell.Color
	Occupied bool
}

// Board is the fixed-size playfield grid. It is owned exclusively by Game
// and mutated only through LockPiece and ClearLines; the renderer reads
// cells through Cell.
type Board struct {
	width int
	rows  int
	cells [][]Cell
}

// NewBoard creates an empty width×rows grid
func NewBoard(width, rows int) *Board {
	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = make([]Cell, width)
	}
	return &Board{width: width, rows: rows, cells: cells}
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Rows() int {
	return b.rows
}

// Cell returns the color at (row, col) and whether it is occupied
func (b *Board) Cell(row, col int) (tcell.Color, bool) {
	c := b.cells[row][col]
	return c.Color, c.Occupied
}

// CollisionTest reports whether piece at origin overlaps a locked cell or
// falls outside the grid. Pure, no mutation.
func (b *Board) CollisionTest(piece *Piece, origin Point) bool {
	found := false
	piece.EachCell(func(row, col int) {
		if found {
			return
		}
		x := origin.X + col
		y := origin.Y + row
		if x < 0 || x >= b.width || y < 0 || y >= b.rows || b.cells[y][x].Occupied {
			found = true
		}
	})
	return found
}

// LockPiece writes the piece's color into every filled cell's absolute
// position. The caller must have verified the position is collision-free;
// a colliding lock is an invariant violation and leaves the grid untouched.
func (b *Board) LockPiece(piece *Piece, origin Point) error {
	if b.CollisionTest(piece, origin) {
		return fmt.Errorf("lock piece %s at (%d,%d): position collides", piece.Kind, origin.X, origin.Y)
	}
	piece.EachCell(func(row, col int) {
		b.cells[origin.Y+row][origin.X+col] = Cell{Color: piece.Color, Occupied: true}
	})
	return nil
}

// ClearLines removes every full row, compacts the remaining rows to the
// bottom preserving their relative order, refills the vacated top rows
// with empty cells, and returns the number of rows cleared.
func (b *Board) ClearLines() int {
	write := b.rows - 1
	for read := b.rows - 1; read >= 0; read-- {
		if b.rowFull(read) {
			continue
		}
		if write != read {
			copy(b.cells[write], b.cells[read])
		}
		write--
	}

	cleared := write + 1
	for row := 0; row <= write; row++ {
		for col := range b.cells[row] {
			b.cells[row][col] = Cell{}
		}
	}
	return cleared
}

func (b *Board) rowFull(row int) bool {
	for col := range b.cells[row] {
		if !b.cells[row][col].Occupied {
			return false
		}
	}
	return true
}
