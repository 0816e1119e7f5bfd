package mines

const (
	ExplosionFrames     = 10 // frames in a mine's explosion animation
	ExplosionFrameTicks = 5  // ticks per explosion frame
)

type Point struct {
	X, Y int
}

// Cell is a single board position. The zero value is a covered safe cell.
type Cell struct {
	Point
	mine           bool
	revealed       bool
	flagged        bool
	exploding      bool
	explosionFrame int
}

func (c *Cell) Reset() {
	c.mine = false
	c.revealed = false
	c.flagged = false
	c.exploding = false
	c.explosionFrame = 0
}

func (c *Cell) SetMine(mine bool) {
	c.mine = mine
}

// Reveal uncovers the cell unless it is flagged.
func (c *Cell) Reveal() {
	if !c.flagged {
		c.revealed = true
	}
}

func (c *Cell) ToggleFlag() {
	if !c.revealed {
		c.flagged = !c.flagged
	}
}

func (c *Cell) StartExplosion() {
	if c.mine && !c.exploding {
		c.exploding = true
		c.explosionFrame = 0
	}
}

// Animate moves the explosion one frame forward on every
// ExplosionFrameTicks-th tick until the last frame is reached.
func (c *Cell) Animate(tick int) {
	if !c.exploding || c.explosionFrame >= ExplosionFrames {
		return
	}
	if tick%ExplosionFrameTicks == 0 {
		c.explosionFrame++
	}
}

func (c Cell) HasMine() bool { return c.mine }
func (c Cell) Revealed() bool { return c.revealed }
func (c Cell) Flagged() bool { return c.flagged }
func (c Cell) Exploding() bool { return c.exploding }
func (c Cell) ExplosionFrame() int { return c.explosionFrame }

// Defused reports whether the explosion animation has played out.
func (c Cell) Defused() bool {
	return c.exploding && c.explosionFrame >= ExplosionFrames
}
