// Package render paints the full game frame onto a tcell screen. It is a
// pure consumer of game state: a full redraw between events, nothing else.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/game"
)

const (
	// Each board cell is two terminal columns wide so blocks look square
	cellWidth = 2

	hudMargin = constants.BoardWidth*cellWidth + 5
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	overStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed).Bold(true)
)

// Renderer draws frames onto the terminal screen
type Renderer struct {
	screen tcell.Screen
}

func New(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw clears the screen and paints one complete frame: board, locked
// cells, ghost projection, active piece, next-piece preview and HUD.
func (r *Renderer) Draw(g *game.Game) {
	r.screen.Clear()

	r.drawBoard(g.Board())
	r.drawHUD(g)

	// Ghost first so the active piece paints over it when they overlap
	ghost := g.FindDroppedPosition()
	r.drawPiece(g.Piece(), ghost, true)
	r.drawPiece(g.Piece(), g.Origin(), false)

	next := g.NextPiece()
	r.drawPreview(&next)

	r.screen.Show()
}

// DrawGameOver repaints the frame with a game-over banner on top
func (r *Renderer) DrawGameOver(g *game.Game) {
	r.Draw(g)
	r.setText(" GAME OVER ", 1+cellWidth*2, constants.BoardVisibleRows/2, overStyle)
	r.screen.Show()
}

func (r *Renderer) drawBoard(b *game.Board) {
	rightEdge := constants.BoardWidth*cellWidth + 1
	for y := 0; y < constants.BoardVisibleRows; y++ {
		r.setText("|", 0, y, borderStyle)
		r.setText("|", rightEdge, y, borderStyle)
	}
	for x := 0; x <= rightEdge; x++ {
		r.setText("-", x, constants.BoardVisibleRows, borderStyle)
	}

	for row := constants.HiddenRows; row < b.Rows(); row++ {
		for col := 0; col < b.Width(); col++ {
			if color, occupied := b.Cell(row, col); occupied {
				r.drawCell(col, row-constants.HiddenRows, tcell.StyleDefault.Background(color))
			}
		}
	}
}

func (r *Renderer) drawPiece(p *game.Piece, origin game.Point, ghost bool) {
	p.EachCell(func(row, col int) {
		y := origin.Y + row - constants.HiddenRows
		if y < 0 {
			return
		}
		style := tcell.StyleDefault.Background(p.Color)
		if ghost {
			style = style.Dim(true)
		}
		r.drawCell(origin.X+col, y, style)
	})
}

func (r *Renderer) drawPreview(p *game.Piece) {
	r.setText("Next piece:", hudMargin, 7, textStyle)
	p.EachCell(func(row, col int) {
		x := hudMargin + 2 + col*cellWidth
		r.setText("  ", x, 9+row, tcell.StyleDefault.Background(p.Color))
	})
}

func (r *Renderer) drawHUD(g *game.Game) {
	r.setText(fmt.Sprintf("Level: %d", g.Level()), hudMargin, 3, textStyle)
	r.setText(fmt.Sprintf("Score: %d", g.Score()), hudMargin, 4, textStyle)
	r.setText(fmt.Sprintf("Speed: %dms", g.Duration().Milliseconds()), hudMargin, 5, textStyle)
}

func (r *Renderer) drawCell(col, y int, style tcell.Style) {
	x := 1 + col*cellWidth
	r.setText("  ", x, y, style)
}

func (r *Renderer) setText(text string, x, y int, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
