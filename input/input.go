// Package input decodes raw tcell terminal events into the abstract key
// events the game consumes. Undecodable events are skipped, never fatal.
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockfall/event"
)

// Translate maps one tcell event to a game event. The second return is
// false for events the game has no use for (resizes, unmapped keys).
func Translate(ev tcell.Event) (event.GameEvent, bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return event.GameEvent{}, false
	}

	out := event.GameEvent{Type: event.EventKeyPress}
	switch key.Key() {
	case tcell.KeyUp:
		out.Key = event.KeyUp
	case tcell.KeyDown:
		out.Key = event.KeyDown
	case tcell.KeyLeft:
		out.Key = event.KeyLeft
	case tcell.KeyRight:
		out.Key = event.KeyRight
	case tcell.KeyCtrlC, tcell.KeyEscape:
		out.Key = event.KeyCtrlC
	case tcell.KeyRune:
		switch key.Rune() {
		case ' ':
			out.Key = event.KeySpace
		case 'w':
			out.Key = event.KeyUp
		case 'a':
			out.Key = event.KeyLeft
		case 's':
			out.Key = event.KeyDown
		case 'd':
			out.Key = event.KeyRight
		default:
			out.Key = event.KeyChar
			out.Rune = key.Rune()
		}
	default:
		return event.GameEvent{}, false
	}
	return out, true
}
