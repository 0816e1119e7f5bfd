package mines

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Board is a fixed width x height grid of cells stored row by row.
type Board struct {
	Width, Height int
	cells         []Cell
	rnd           *rand.Rand
}

// Outcome lists what a single open did to the board.
type Outcome struct {
	Revealed  []Point
	Detonated bool
}

func NewBoard(width, height int, r *rand.Rand) *Board {
	b := &Board{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
		rnd:    r,
	}
	for y := range height {
		for x := range width {
			b.cells[y*width+x].Point = Point{X: x, Y: y}
		}
	}
	return b
}

func (b *Board) InBounds(x, y int) bool {
	return 0 <= x && x < b.Width && 0 <= y && y < b.Height
}

// Cell returns nil for coordinates outside the board.
func (b *Board) Cell(x, y int) *Cell {
	if !b.InBounds(x, y) {
		return nil
	}
	return &b.cells[y*b.Width+x]
}

func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i].Reset()
	}
}

// PlaceMinesRandomly clears any existing mines and then draws
// random cells until count distinct cells hold a mine. Draws that
// land on a mined cell are retried.
func (b *Board) PlaceMinesRandomly(count int) error {
	if count < 0 || count >= len(b.cells) {
		return fmt.Errorf(
			"%w: %d mines on a %dx%d board", ErrTooManyMines, count, b.Width, b.Height,
		)
	}
	for i := range b.cells {
		b.cells[i].SetMine(false)
	}

	draws := 0
	for placed := 0; placed < count; {
		draws++
		c := &b.cells[b.rnd.IntN(b.Height)*b.Width+b.rnd.IntN(b.Width)]
		if !c.mine {
			c.SetMine(true)
			placed++
		}
	}

	Log.WithFields(logrus.Fields{
		"mines": count,
		"draws": draws,
		"board": fmt.Sprintf("%dx%d", b.Width, b.Height),
	}).Debug("placed mines")
	return nil
}

// Neighbors returns the in-bounds cells around x,y, not x,y itself.
func (b *Board) Neighbors(x, y int) []*Cell {
	neighbors := make([]*Cell, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if c := b.Cell(x+dx, y+dy); c != nil {
				neighbors = append(neighbors, c)
			}
		}
	}
	return neighbors
}

func (b *Board) AdjacentMineCount(x, y int) int {
	count := 0
	for _, c := range b.Neighbors(x, y) {
		if c.mine {
			count++
		}
	}
	return count
}

// Open is a player's reveal of x,y. Covered, unflagged cells are
// revealed; a mine detonates, an empty cell floods outward.
func (b *Board) Open(x, y int) (out Outcome) {
	c := b.Cell(x, y)
	if c == nil || c.revealed || c.flagged {
		return
	}

	c.Reveal()
	out.Revealed = append(out.Revealed, c.Point)
	if c.mine {
		c.StartExplosion()
		out.Detonated = true
		return
	}
	out.Revealed = append(out.Revealed, b.RevealFlood(x, y)...)
	return
}

func (b *Board) ToggleFlag(x, y int) bool {
	c := b.Cell(x, y)
	if c == nil || c.revealed {
		return false
	}
	c.ToggleFlag()
	return true
}

func (b *Board) AllSafeCellsRevealed() bool {
	for i := range b.cells {
		if !b.cells[i].mine && !b.cells[i].revealed {
			return false
		}
	}
	return true
}

// RevealInRadius sets off every covered mine no farther than radius
// from center. Flagged mines are left alone. The newly set off mines
// are returned in row order.
func (b *Board) RevealInRadius(center Point, radius float64) (detonated []Point) {
	for i := range b.cells {
		c := &b.cells[i]
		if !c.mine || c.revealed || c.flagged {
			continue
		}
		dx := float64(c.X - center.X)
		dy := float64(c.Y - center.Y)
		if math.Sqrt(dx*dx+dy*dy) <= radius {
			c.Reveal()
			c.StartExplosion()
			detonated = append(detonated, c.Point)
		}
	}
	return detonated
}

func (b *Board) Animate(tick int) {
	for i := range b.cells {
		b.cells[i].Animate(tick)
	}
}

func (b *Board) State(x, y int) CellState {
	c := b.Cell(x, y)
	switch {
	case c == nil:
		return Unknown
	case !c.revealed && c.flagged:
		return Flagged
	case !c.revealed:
		return Unknown
	case c.mine && c.Defused():
		return Defused
	case c.mine && c.exploding:
		return Exploding
	case c.mine:
		return Mine
	default:
		return CellState(b.AdjacentMineCount(x, y))
	}
}

func (b *Board) Grid() Grid {
	grid := make(Grid, len(b.cells))
	for i, c := range b.cells {
		grid[i] = b.State(c.X, c.Y)
	}
	return grid
}

func (b *Board) Mines() []Point {
	var mines []Point
	for _, c := range b.cells {
		if c.mine {
			mines = append(mines, c.Point)
		}
	}
	return mines
}

func (b *Board) FlagCount() (n int) {
	for _, c := range b.cells {
		if c.flagged {
			n++
		}
	}
	return n
}

// Board implements [fmt.Stringer]
func (b *Board) String() string {
	return b.Grid().ToString(b.Width)
}
