package layout

import "github.com/vancomm/minesweeper/internal/game"

type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
)

// Click forwards a click at screen point px,py to the controller.
// Clicks outside the board do nothing.
func (l Layout) Click(c *game.Controller, button Button, px, py int) game.Event {
	x, y, ok := l.CellAt(px, py)
	if !ok {
		return game.EventNone
	}
	switch button {
	case ButtonLeft:
		return c.LeftClick(x, y)
	case ButtonRight:
		return c.RightClick(x, y)
	default:
		return game.EventNone
	}
}
