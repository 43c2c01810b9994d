package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/game"
)

func newTestScreen(t *testing.T) tcell.Screen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 25)
	t.Cleanup(screen.Fini)
	return screen
}

func textAt(screen tcell.Screen, x, y, length int) string {
	out := make([]rune, 0, length)
	for i := 0; i < length; i++ {
		ch, _, _, _ := screen.GetContent(x+i, y)
		out = append(out, ch)
	}
	return string(out)
}

func TestDrawPaintsBorderAndHUD(t *testing.T) {
	screen := newTestScreen(t)
	r := New(screen)

	r.Draw(game.NewGame())

	rightEdge := constants.BoardWidth*cellWidth + 1
	for _, y := range []int{0, constants.BoardVisibleRows / 2, constants.BoardVisibleRows - 1} {
		assert.Equal(t, "|", textAt(screen, 0, y, 1))
		assert.Equal(t, "|", textAt(screen, rightEdge, y, 1))
	}
	assert.Equal(t, "-", textAt(screen, 0, constants.BoardVisibleRows, 1))
	assert.Equal(t, "-", textAt(screen, rightEdge, constants.BoardVisibleRows, 1))

	assert.Equal(t, "Level: 1", textAt(screen, hudMargin, 3, 8))
	assert.Equal(t, "Score: 0", textAt(screen, hudMargin, 4, 8))
	assert.Equal(t, "Speed: 200ms", textAt(screen, hudMargin, 5, 12))
	assert.Equal(t, "Next piece:", textAt(screen, hudMargin, 7, 11))
}

func TestDrawPaintsGhostAtDropPosition(t *testing.T) {
	screen := newTestScreen(t)
	r := New(screen)
	g := game.NewGame()

	r.Draw(g)

	// The ghost sits at the hard-drop projection; its cells carry the
	// piece color as background
	ghost := g.FindDroppedPosition()
	var found bool
	g.Piece().EachCell(func(row, col int) {
		y := ghost.Y + row - constants.HiddenRows
		if y < 0 {
			return
		}
		_, _, style, _ := screen.GetContent(1+(ghost.X+col)*cellWidth, y)
		_, bg, _ := style.Decompose()
		if bg == g.Piece().Color {
			found = true
		}
	})
	assert.True(t, found, "at least one ghost cell must be painted")
}

func TestDrawGameOverBanner(t *testing.T) {
	screen := newTestScreen(t)
	r := New(screen)

	r.DrawGameOver(game.NewGame())

	assert.Equal(t, " GAME OVER ", textAt(screen, 1+cellWidth*2, constants.BoardVisibleRows/2, 11))
}
