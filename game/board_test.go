package game

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRow(b *Board, row int, color tcell.Color) {
	for col := 0; col < b.width; col++ {
		b.cells[row][col] = Cell{Color: color, Occupied: true}
	}
}

func occupiedCount(b *Board) int {
	count := 0
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.width; col++ {
			if b.cells[row][col].Occupied {
				count++
			}
		}
	}
	return count
}

func TestCollisionTestBounds(t *testing.T) {
	b := NewBoard(10, 22)
	p := NewPiece(KindO)

	assert.False(t, b.CollisionTest(&p, Point{X: 0, Y: 0}))
	assert.False(t, b.CollisionTest(&p, Point{X: 8, Y: 20}), "bottom-right corner fits")
	assert.True(t, b.CollisionTest(&p, Point{X: -1, Y: 0}), "past left wall")
	assert.True(t, b.CollisionTest(&p, Point{X: 9, Y: 0}), "past right wall")
	assert.True(t, b.CollisionTest(&p, Point{X: 0, Y: 21}), "past floor")
	assert.True(t, b.CollisionTest(&p, Point{X: 0, Y: -1}), "above ceiling")
}

func TestCollisionTestIgnoresEmptyShapeCells(t *testing.T) {
	b := NewBoard(10, 22)
	// I spawns as the second row of a 4×4 matrix, so the empty first
	// row may hang over the top edge without colliding
	p := NewPiece(KindI)
	assert.False(t, b.CollisionTest(&p, Point{X: 3, Y: -1}))
}

func TestCollisionTestOccupiedCells(t *testing.T) {
	b := NewBoard(10, 22)
	o := NewPiece(KindO)
	require.NoError(t, b.LockPiece(&o, Point{X: 4, Y: 20}))

	p := NewPiece(KindO)
	assert.True(t, b.CollisionTest(&p, Point{X: 4, Y: 20}), "same cells")
	assert.True(t, b.CollisionTest(&p, Point{X: 3, Y: 19}), "one-cell overlap")
	assert.False(t, b.CollisionTest(&p, Point{X: 4, Y: 18}), "stacked directly above")
	assert.False(t, b.CollisionTest(&p, Point{X: 6, Y: 20}), "beside the lock")
}

func TestLockPieceWritesColors(t *testing.T) {
	b := NewBoard(10, 22)
	p := NewPiece(KindT)
	require.NoError(t, b.LockPiece(&p, Point{X: 0, Y: 19}))

	p.EachCell(func(row, col int) {
		color, occupied := b.Cell(19+row, col)
		assert.True(t, occupied)
		assert.Equal(t, p.Color, color)
	})
	assert.Equal(t, 4, occupiedCount(b))
}

func TestLockPieceRejectsCollision(t *testing.T) {
	b := NewBoard(10, 22)
	p := NewPiece(KindO)
	require.NoError(t, b.LockPiece(&p, Point{X: 0, Y: 20}))

	other := NewPiece(KindO)
	err := b.LockPiece(&other, Point{X: 0, Y: 20})
	require.Error(t, err)
	assert.Equal(t, 4, occupiedCount(b), "a rejected lock must not touch the grid")
}

func TestClearLinesNoFullRows(t *testing.T) {
	b := NewBoard(10, 22)
	p := NewPiece(KindO)
	require.NoError(t, b.LockPiece(&p, Point{X: 0, Y: 20}))

	assert.Equal(t, 0, b.ClearLines())
	assert.Equal(t, 4, occupiedCount(b))
}

func TestClearLinesAllRowsFull(t *testing.T) {
	b := NewBoard(4, 6)
	for row := 0; row < 6; row++ {
		fillRow(b, row, tcell.ColorRed)
	}

	assert.Equal(t, 6, b.ClearLines())
	assert.Equal(t, 0, occupiedCount(b))
}

func TestClearLinesNonContiguous(t *testing.T) {
	b := NewBoard(4, 12)

	// Rows 2, 5 and 9 full; every other row gets a single marker cell
	// whose color encodes its original index
	full := map[int]bool{2: true, 5: true, 9: true}
	for row := 0; row < 12; row++ {
		if full[row] {
			fillRow(b, row, tcell.ColorWhite)
		} else {
			b.cells[row][0] = Cell{Color: tcell.PaletteColor(row), Occupied: true}
		}
	}

	require.Equal(t, 3, b.ClearLines())

	// Top 3 rows empty, the 9 non-full rows compacted to the bottom in
	// their original relative order
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			_, occupied := b.Cell(row, col)
			assert.False(t, occupied, "row %d should be empty", row)
		}
	}
	wantOrder := []int{0, 1, 3, 4, 6, 7, 8, 10, 11}
	for i, original := range wantOrder {
		color, occupied := b.Cell(3+i, 0)
		require.True(t, occupied, "compacted row %d", 3+i)
		assert.Equal(t, tcell.PaletteColor(original), color, "compacted row %d", 3+i)
	}
}
