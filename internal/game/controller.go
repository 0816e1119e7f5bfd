package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/internal/mines"
)

var Log = logrus.New()

// ExplosionSpeed is how far the shockwave travels per tick, in cells.
const ExplosionSpeed = 2

type Controller struct {
	params mines.GameParams
	board  *mines.Board
	state  State
	round  uuid.UUID

	clock     func() time.Time
	startedAt time.Time
	elapsed   time.Duration
	ticks     int

	origin          *mines.Point
	explosionRadius int
	maxRadius       int
	pending         []mines.Point
}

type Option func(*Controller)

// WithClock replaces time.Now as the timer source.
func WithClock(clock func() time.Time) Option {
	return func(c *Controller) {
		c.clock = clock
	}
}

// New creates a controller with a freshly mined board.
func New(params mines.GameParams, r *rand.Rand, opts ...Option) (*Controller, error) {
	if !params.Valid() {
		return nil, fmt.Errorf("invalid game params %s: %w", params, mines.ErrTooManyMines)
	}

	c := &Controller{
		params:    params,
		board:     mines.NewBoard(params.Width, params.Height, r),
		clock:     time.Now,
		maxRadius: max(params.Width, params.Height),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Reset()
	return c, nil
}

func (c *Controller) log() *logrus.Entry {
	return Log.WithFields(logrus.Fields{
		"round":  c.round,
		"params": c.params.String(),
		"state":  c.state.String(),
	})
}

// Reset clears the board, lays a new set of mines and restarts the
// timer.
func (c *Controller) Reset() Event {
	c.board.Reset()
	if err := c.board.PlaceMinesRandomly(c.params.MineCount); err != nil {
		// params are validated in New
		c.log().WithError(err).Error("unable to place mines")
	}

	c.state = Playing
	c.round = uuid.New()
	c.startedAt = c.clock()
	c.elapsed = 0
	c.ticks = 0
	c.origin = nil
	c.explosionRadius = 0
	c.pending = c.pending[:0]

	c.log().Info("new round")
	return EventReset
}

// LeftClick reveals x,y. It does nothing unless the game is on and
// the cell is covered and unflagged.
func (c *Controller) LeftClick(x, y int) Event {
	if c.state != Playing {
		return EventNone
	}

	out := c.board.Open(x, y)
	switch {
	case out.Detonated:
		origin := mines.Point{X: x, Y: y}
		c.origin = &origin
		c.explosionRadius = 0
		c.pending = append(c.pending, origin)
		c.finish(Lost)
		return EventDetonated
	case len(out.Revealed) == 0:
		return EventNone
	}

	c.log().WithFields(logrus.Fields{
		"x": x, "y": y, "revealed": len(out.Revealed),
	}).Debug("opened cell")

	if c.checkWin() {
		return EventWon
	}
	return EventRevealed
}

// RightClick toggles the flag on a covered cell.
func (c *Controller) RightClick(x, y int) Event {
	if c.state != Playing {
		return EventNone
	}
	if !c.board.ToggleFlag(x, y) {
		return EventNone
	}
	return EventFlagged
}

// Tick advances the game by one frame: explosion animations move on,
// a won board is detected and a lost board's shockwave grows.
func (c *Controller) Tick() Event {
	c.ticks++
	c.board.Animate(c.ticks)

	switch c.state {
	case Playing:
		if c.checkWin() {
			return EventWon
		}
	case Lost:
		if c.origin == nil || c.explosionRadius >= c.maxRadius {
			return EventNone
		}
		c.explosionRadius += ExplosionSpeed
		hit := c.board.RevealInRadius(*c.origin, float64(c.explosionRadius))
		if len(hit) > 0 {
			c.pending = append(c.pending, hit...)
			return EventShockwave
		}
	}
	return EventNone
}

func (c *Controller) checkWin() bool {
	if c.state != Playing || !c.board.AllSafeCellsRevealed() {
		return false
	}
	c.finish(Won)
	return true
}

func (c *Controller) finish(state State) {
	c.state = state
	c.elapsed = c.clock().Sub(c.startedAt)
	c.log().WithField("elapsed", c.Elapsed()).Info("game over")
}

// Elapsed is the number of whole seconds since the round started,
// frozen once the round is over.
func (c *Controller) Elapsed() int {
	if c.state == Playing {
		return int(c.clock().Sub(c.startedAt) / time.Second)
	}
	return int(c.elapsed / time.Second)
}

func (c *Controller) Message() string {
	switch c.state {
	case Won:
		return "You win!"
	case Lost:
		return "You lost!"
	default:
		return ""
	}
}

func (c *Controller) State() State { return c.state }
func (c *Controller) Board() *mines.Board { return c.board }
func (c *Controller) Params() mines.GameParams { return c.params }
func (c *Controller) Round() uuid.UUID { return c.round }
func (c *Controller) ExplosionRadius() int { return c.explosionRadius }
func (c *Controller) MaxExplosionRadius() int { return c.maxRadius }
func (c *Controller) ShockwaveDone() bool { return c.explosionRadius >= c.maxRadius }

// Origin is the mine that ended the round, if any.
func (c *Controller) Origin() (mines.Point, bool) {
	if c.origin == nil {
		return mines.Point{}, false
	}
	return *c.origin, true
}

// PendingExplosions lists the mines set off so far, in the order they
// went off.
func (c *Controller) PendingExplosions() []mines.Point {
	return append([]mines.Point(nil), c.pending...)
}
