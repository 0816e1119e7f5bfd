package mines

import (
	"fmt"
	"strconv"
	"strings"
)

// CellState is what a renderer needs to know about a cell.
type CellState int8

const (
	Unknown   CellState = -2
	Flagged   CellState = -1
	Mine      CellState = 64
	Exploding CellState = 65
	Defused   CellState = 66
	/*
	 * Besides the named values a state can be:
	 *
	 *  - 0 to 8 for an open safe cell with that many mined
	 *    neighbours.
	 *
	 * Mine is an open mine that has not been set off, Exploding
	 * is a mine in the middle of its animation and Defused is a
	 * mine whose animation is over.
	 */
)

func (s CellState) Count() (int, bool) {
	if 0 <= s && s <= 8 {
		return int(s), true
	}
	return 0, false
}

func (s CellState) String() string {
	switch {
	case s == Unknown:
		return "#"
	case s == Flagged:
		return "F"
	case s == 0:
		return "."
	case 1 <= s && s <= 8:
		return strconv.Itoa(int(s))
	case s == Mine:
		return "*"
	case s == Exploding:
		return "X"
	case s == Defused:
		return "@"
	default:
		return "!"
	}
}

// Grid is a row-major snapshot of cell states.
type Grid []CellState

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			if x > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprint(&b, g[y*width+x].String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
