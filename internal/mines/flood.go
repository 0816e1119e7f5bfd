package mines

import "github.com/gammazero/deque"

// RevealFlood opens the neighbourhood of an empty cell at x,y. Every
// covered, unflagged neighbour is revealed and empty neighbours are
// queued so their own neighbourhoods get opened too. Revealed cells
// are never queued twice, so the walk ends on any board.
func (b *Board) RevealFlood(x, y int) (revealed []Point) {
	if !b.InBounds(x, y) || b.AdjacentMineCount(x, y) != 0 {
		return nil
	}

	var todo deque.Deque[Point]
	todo.PushBack(Point{X: x, Y: y})

	for todo.Len() > 0 {
		p := todo.PopFront()
		for _, c := range b.Neighbors(p.X, p.Y) {
			if c.revealed || c.flagged {
				continue
			}
			c.Reveal()
			revealed = append(revealed, c.Point)
			if b.AdjacentMineCount(c.X, c.Y) == 0 {
				todo.PushBack(c.Point)
			}
		}
	}

	return revealed
}
