package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellReveal(t *testing.T) {
	var c Cell
	c.Reveal()
	assert.True(t, c.Revealed())

	c.ToggleFlag()
	assert.False(t, c.Flagged(), "revealed cell cannot be flagged")
}

func TestCellFlagBlocksReveal(t *testing.T) {
	var c Cell
	c.ToggleFlag()
	assert.True(t, c.Flagged())

	c.Reveal()
	assert.False(t, c.Revealed())

	c.ToggleFlag()
	c.Reveal()
	assert.True(t, c.Revealed())
}

func TestCellStartExplosion(t *testing.T) {
	var safe Cell
	safe.StartExplosion()
	assert.False(t, safe.Exploding(), "only mines explode")

	var c Cell
	c.SetMine(true)
	c.StartExplosion()
	assert.True(t, c.Exploding())
	assert.Equal(t, 0, c.ExplosionFrame())

	c.Animate(ExplosionFrameTicks)
	c.StartExplosion()
	assert.Equal(t, 1, c.ExplosionFrame(), "restart keeps the running animation")
}

func TestCellAnimate(t *testing.T) {
	var c Cell
	c.SetMine(true)
	c.StartExplosion()

	for tick := 1; tick < ExplosionFrameTicks; tick++ {
		c.Animate(tick)
	}
	assert.Equal(t, 0, c.ExplosionFrame())

	tick := ExplosionFrameTicks
	for ; !c.Defused(); tick++ {
		c.Animate(tick)
	}
	assert.Equal(t, ExplosionFrames, c.ExplosionFrame())
	assert.Equal(t, ExplosionFrames*ExplosionFrameTicks, tick-1)

	c.Animate(tick + ExplosionFrameTicks)
	assert.Equal(t, ExplosionFrames, c.ExplosionFrame(), "frame stops at the last one")
}

func TestCellReset(t *testing.T) {
	c := Cell{Point: Point{X: 3, Y: 4}}
	c.SetMine(true)
	c.Reveal()
	c.StartExplosion()
	c.Reset()

	assert.Equal(t, Cell{Point: Point{X: 3, Y: 4}}, c)
}
