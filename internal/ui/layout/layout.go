package layout

import (
	"fmt"
	"image"
	"image/color"
)

// Layout maps between screen units (pixels or terminal cells) and
// board coordinates. The board sits directly below a status bar of
// height TopBar.
type Layout struct {
	CellWidth  int
	CellHeight int
	TopBar     int
	Cols       int
	Rows       int
}

func New(cols, rows, cellWidth, cellHeight, topBar int) Layout {
	return Layout{
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
		TopBar:     topBar,
		Cols:       cols,
		Rows:       rows,
	}
}

// CellAt returns the board cell under screen point px,py. Points in
// the status bar or past the board are reported as !ok.
func (l Layout) CellAt(px, py int) (x, y int, ok bool) {
	if px < 0 || py < l.TopBar {
		return 0, 0, false
	}
	x, y = px/l.CellWidth, (py-l.TopBar)/l.CellHeight
	if x >= l.Cols || y >= l.Rows {
		return 0, 0, false
	}
	return x, y, true
}

func (l Layout) CellOrigin(x, y int) image.Point {
	return image.Pt(x*l.CellWidth, l.TopBar+y*l.CellHeight)
}

func (l Layout) CellRect(x, y int) image.Rectangle {
	origin := l.CellOrigin(x, y)
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(l.CellWidth, l.CellHeight))}
}

// Size is the full screen size including the status bar.
func (l Layout) Size() (width, height int) {
	return l.Cols * l.CellWidth, l.TopBar + l.Rows*l.CellHeight
}

func StatusLine(elapsed int) string {
	return fmt.Sprintf("Time: %d", elapsed)
}

// NumberColors holds the numeral colour for each adjacent mine count.
var NumberColors = [9]color.RGBA{
	{0, 0, 0, 255},
	{0, 0, 255, 255},
	{0, 133, 0, 255},
	{255, 0, 0, 255},
	{0, 0, 132, 255},
	{132, 0, 0, 255},
	{0, 132, 132, 255},
	{132, 0, 132, 255},
	{32, 32, 32, 255},
}

var (
	TopBarColor     = color.RGBA{150, 150, 150, 255}
	BackgroundColor = color.RGBA{200, 200, 200, 255}
	TextColor       = color.RGBA{255, 255, 255, 255}
)
