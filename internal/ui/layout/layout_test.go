package layout

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper/internal/mines"
)

func TestCellAt(t *testing.T) {
	l := New(27, 18, 32, 32, 64)

	tests := []struct {
		name   string
		px, py int
		x, y   int
		ok     bool
	}{
		{"first cell", 0, 64, 0, 0, true},
		{"inside first cell", 31, 95, 0, 0, true},
		{"second column", 32, 64, 1, 0, true},
		{"last cell", 863, 639, 26, 17, true},
		{"top bar", 100, 63, 0, 0, false},
		{"top bar corner", 0, 0, 0, 0, false},
		{"right of board", 864, 100, 0, 0, false},
		{"below board", 100, 640, 0, 0, false},
		{"negative x", -1, 100, 0, 0, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			x, y, ok := l.CellAt(test.px, test.py)
			require.Equal(t, test.ok, ok)
			if ok {
				assert.Equal(t, test.x, x)
				assert.Equal(t, test.y, y)
			}
		})
	}
}

func TestCellRectRoundTrip(t *testing.T) {
	l := New(10, 5, 2, 1, 2)
	for y := range l.Rows {
		for x := range l.Cols {
			r := l.CellRect(x, y)
			assert.Equal(t, image.Pt(2, 1), r.Size())

			cx, cy, ok := l.CellAt(r.Min.X, r.Min.Y)
			require.True(t, ok)
			assert.Equal(t, x, cx)
			assert.Equal(t, y, cy)

			cx, cy, ok = l.CellAt(r.Max.X-1, r.Max.Y-1)
			require.True(t, ok)
			assert.Equal(t, x, cx)
			assert.Equal(t, y, cy)
		}
	}
}

func TestSize(t *testing.T) {
	w, h := New(27, 18, 32, 32, 64).Size()
	assert.Equal(t, 864, w)
	assert.Equal(t, 640, h)
}

func TestStatusLine(t *testing.T) {
	assert.Equal(t, "Time: 0", StatusLine(0))
	assert.Equal(t, "Time: 125", StatusLine(125))
}

func TestSprites(t *testing.T) {
	tests := []struct {
		name           string
		state          mines.CellState
		frame          int
		hover, pressed bool
		base, overlay  string
	}{
		{"covered", mines.Unknown, 0, false, false, SpriteCovered, ""},
		{"hover", mines.Unknown, 0, true, false, SpriteHover, ""},
		{"pressed", mines.Unknown, 0, true, true, SpriteRevealed, ""},
		{"pressed elsewhere", mines.Unknown, 0, false, true, SpriteCovered, ""},
		{"flag", mines.Flagged, 0, false, false, SpriteCovered, SpriteFlag},
		{"hovered flag", mines.Flagged, 0, true, false, SpriteHover, SpriteFlag},
		{"empty", 0, 0, true, true, SpriteRevealed, ""},
		{"number", 3, 0, false, false, SpriteRevealed, ""},
		{"mine", mines.Mine, 0, false, false, SpriteRevealed, "mine0"},
		{"exploding", mines.Exploding, 4, false, false, SpriteRevealed, "mine4"},
		{"exploding last frame", mines.Exploding, 12, false, false, SpriteRevealed, "mine9"},
		{"defused", mines.Defused, 10, false, false, SpriteRevealed, SpriteWall},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			base, overlay := Sprites(test.state, test.frame, test.hover, test.pressed)
			assert.Equal(t, test.base, base)
			assert.Equal(t, test.overlay, overlay)
		})
	}
}

func TestSpriteNames(t *testing.T) {
	names := SpriteNames()
	assert.Len(t, names, 5+mines.ExplosionFrames)
	assert.Contains(t, names, "mine9")
	assert.NotContains(t, names, "mine10")
}
