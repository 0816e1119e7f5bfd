package terminal

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/ui/layout"
)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

var (
	styleBar     = tcell.StyleDefault.Background(rgb(layout.TopBarColor)).Foreground(rgb(layout.TextColor))
	styleHelp    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleCovered = tcell.StyleDefault.Background(tcell.NewRGBColor(189, 189, 189)).Foreground(tcell.NewRGBColor(123, 123, 123))
	styleOpen    = tcell.StyleDefault.Background(rgb(layout.BackgroundColor)).Foreground(tcell.ColorBlack)
	styleFlag    = styleCovered.Foreground(tcell.ColorRed).Bold(true)
	styleFire    = tcell.StyleDefault.Background(tcell.NewRGBColor(230, 80, 20)).Foreground(tcell.NewRGBColor(255, 230, 90)).Bold(true)
	styleWall    = tcell.StyleDefault.Background(tcell.NewRGBColor(110, 60, 40)).Foreground(tcell.NewRGBColor(70, 40, 25))
)

// glyph returns the two characters and style for a cell.
func glyph(state mines.CellState, frame int) (string, tcell.Style) {
	if n, ok := state.Count(); ok {
		if n == 0 {
			return "  ", styleOpen
		}
		return " " + string(rune('0'+n)), styleOpen.Foreground(rgb(layout.NumberColors[n])).Bold(true)
	}
	switch state {
	case mines.Flagged:
		return " F", styleFlag
	case mines.Mine:
		return " *", styleOpen
	case mines.Exploding:
		if frame%2 == 0 {
			return "**", styleFire
		}
		return "##", styleFire
	case mines.Defused:
		return "##", styleWall
	default:
		return "░░", styleCovered
	}
}

func (t *Terminal) draw() {
	t.screen.Clear()
	t.drawTopBar()

	board := t.ctrl.Board()
	for y := range board.Height {
		for x := range board.Width {
			s, style := glyph(board.State(x, y), board.Cell(x, y).ExplosionFrame())
			if x == t.cursor.X && y == t.cursor.Y {
				style = style.Reverse(true)
			}
			origin := t.layout.CellOrigin(x, y)
			t.putString(origin.X, origin.Y, s, style)
		}
	}
	t.screen.Show()
}

func (t *Terminal) drawTopBar() {
	width, _ := t.layout.Size()
	for x := range width {
		t.screen.SetContent(x, 0, ' ', nil, styleBar)
	}

	status := layout.StatusLine(t.ctrl.Elapsed())
	t.putString(max(width-len(status)-1, 0), 0, status, styleBar)
	if msg := t.ctrl.Message(); msg != "" {
		t.putString(max((width-len(msg))/2, 0), 0, msg, styleBar.Bold(true))
	}
	t.putString(0, 1, helpLine, styleHelp)
}

func (t *Terminal) putString(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
