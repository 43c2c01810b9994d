package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/blockfall/event"
)

func TestTranslateKeys(t *testing.T) {
	cases := []struct {
		name string
		ev   tcell.Event
		key  event.Key
		r    rune
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), event.KeyUp, 0},
		{"arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), event.KeyDown, 0},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), event.KeyLeft, 0},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), event.KeyRight, 0},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), event.KeyCtrlC, 0},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), event.KeyCtrlC, 0},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), event.KeySpace, 0},
		{"wasd w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), event.KeyUp, 0},
		{"wasd a", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), event.KeyLeft, 0},
		{"wasd s", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), event.KeyDown, 0},
		{"wasd d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), event.KeyRight, 0},
		{"plain rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), event.KeyChar, 'q'},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ge, ok := Translate(tc.ev)
			require.True(t, ok)
			assert.Equal(t, event.EventKeyPress, ge.Type)
			assert.Equal(t, tc.key, ge.Key)
			assert.Equal(t, tc.r, ge.Rune)
		})
	}
}

func TestTranslateSkipsUnusableEvents(t *testing.T) {
	_, ok := Translate(tcell.NewEventResize(80, 25))
	assert.False(t, ok)

	_, ok = Translate(tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone))
	assert.False(t, ok)
}
