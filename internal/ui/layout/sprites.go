package layout

import (
	"strconv"

	"github.com/vancomm/minesweeper/internal/mines"
)

const (
	SpriteRevealed = "tile"
	SpriteCovered  = "tile1"
	SpriteHover    = "tile2"
	SpriteFlag     = "flag"
	SpriteWall     = "wall0"
)

// SpriteNames lists every sprite a renderer has to provide.
func SpriteNames() []string {
	names := []string{SpriteRevealed, SpriteCovered, SpriteHover, SpriteFlag, SpriteWall}
	for frame := range mines.ExplosionFrames {
		names = append(names, MineSprite(frame))
	}
	return names
}

func MineSprite(frame int) string {
	return "mine" + strconv.Itoa(frame)
}

// Sprites picks the background tile and the optional overlay for a
// cell. Numbers are not sprites: overlay is empty for open safe cells.
func Sprites(state mines.CellState, frame int, hover, pressed bool) (base, overlay string) {
	covered := state == mines.Unknown || state == mines.Flagged

	base = SpriteRevealed
	if covered {
		base = SpriteCovered
		if hover && pressed {
			base = SpriteRevealed
		} else if hover {
			base = SpriteHover
		}
	}

	switch state {
	case mines.Flagged:
		overlay = SpriteFlag
	case mines.Mine:
		overlay = MineSprite(0)
	case mines.Exploding:
		overlay = MineSprite(min(max(frame, 0), mines.ExplosionFrames-1))
	case mines.Defused:
		overlay = SpriteWall
	}
	return base, overlay
}
