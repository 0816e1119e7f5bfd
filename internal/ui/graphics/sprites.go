package graphics

import (
	"errors"
	"fmt"
	"image/color"
	_ "image/png"
	"io/fs"
	"log/slog"
	"math"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/ui/layout"
)

type Sprites map[string]*ebiten.Image

// LoadSprites reads <name>.png for every sprite from dir. Sprites that
// are missing from dir, or all of them when dir is empty, are drawn
// procedurally.
func LoadSprites(dir string, size int, log *slog.Logger) (Sprites, error) {
	sprites := make(Sprites)
	for _, name := range layout.SpriteNames() {
		if dir != "" {
			path := filepath.Join(dir, name+".png")
			img, _, err := ebitenutil.NewImageFromFile(path)
			switch {
			case err == nil:
				sprites[name] = img
				continue
			case !errors.Is(err, fs.ErrNotExist):
				return nil, fmt.Errorf("unable to load sprite %s: %w", path, err)
			}
			log.Debug("sprite not found, drawing it", slog.String("path", path))
		}
		sprites[name] = drawSprite(name, size)
	}
	return sprites, nil
}

var (
	tileFace   = color.RGBA{189, 189, 189, 255}
	tileOpen   = color.RGBA{198, 198, 198, 255}
	tileHover  = color.RGBA{214, 214, 214, 255}
	tileLight  = color.RGBA{255, 255, 255, 255}
	tileShadow = color.RGBA{123, 123, 123, 255}
	flagRed    = color.RGBA{220, 20, 20, 255}
	poleBlack  = color.RGBA{20, 20, 20, 255}
	wallBrick  = color.RGBA{110, 60, 40, 255}
	wallMortar = color.RGBA{70, 40, 25, 255}
	fireInner  = color.RGBA{255, 230, 90, 255}
	fireOuter  = color.RGBA{230, 80, 20, 255}
)

func drawSprite(name string, size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	s := float32(size)

	switch name {
	case layout.SpriteRevealed:
		img.Fill(tileOpen)
		vector.StrokeRect(img, 0, 0, s, s, 1, tileShadow, false)
	case layout.SpriteCovered:
		drawRaised(img, s, tileFace)
	case layout.SpriteHover:
		drawRaised(img, s, tileHover)
	case layout.SpriteFlag:
		vector.DrawFilledRect(img, s*0.45, s*0.2, s*0.08, s*0.6, poleBlack, false)
		vector.DrawFilledRect(img, s*0.25, s*0.75, s*0.5, s*0.08, poleBlack, false)
		// stepped pennant
		for i := range 5 {
			h := s * 0.3 * float32(5-i) / 5
			vector.DrawFilledRect(img, s*0.45-s*0.05*float32(i+1), s*0.35-h/2, s*0.05, h, flagRed, false)
		}
	case layout.SpriteWall:
		img.Fill(wallBrick)
		for row := float32(1); row < 4; row++ {
			vector.StrokeLine(img, 0, s*row/4, s, s*row/4, 1, wallMortar, false)
		}
		vector.StrokeRect(img, 0, 0, s, s, 1, wallMortar, false)
	default:
		var frame int
		if _, err := fmt.Sscanf(name, "mine%d", &frame); err == nil {
			drawMine(img, s, frame)
		}
	}
	return img
}

func drawRaised(img *ebiten.Image, s float32, face color.Color) {
	img.Fill(face)
	vector.DrawFilledRect(img, 0, 0, s, 2, tileLight, false)
	vector.DrawFilledRect(img, 0, 0, 2, s, tileLight, false)
	vector.DrawFilledRect(img, 0, s-2, s, 2, tileShadow, false)
	vector.DrawFilledRect(img, s-2, 0, 2, s, tileShadow, false)
}

// drawMine draws the mine at frame 0 and a fireball that grows and
// fades over the remaining frames.
func drawMine(img *ebiten.Image, s float32, frame int) {
	c := s / 2
	if frame == 0 {
		for i := range 4 {
			a := float64(i) * math.Pi / 4
			dx, dy := float32(math.Cos(a))*s*0.35, float32(math.Sin(a))*s*0.35
			vector.StrokeLine(img, c-dx, c-dy, c+dx, c+dy, 2, poleBlack, true)
		}
		vector.DrawFilledCircle(img, c, c, s*0.25, poleBlack, true)
		vector.DrawFilledCircle(img, c-s*0.08, c-s*0.08, s*0.06, tileLight, true)
		return
	}

	t := float32(frame) / float32(mines.ExplosionFrames-1)
	alpha := uint8(255 * (1 - 0.6*t))
	outer := color.NRGBA{fireOuter.R, fireOuter.G, fireOuter.B, alpha}
	inner := color.NRGBA{fireInner.R, fireInner.G, fireInner.B, alpha}
	vector.DrawFilledCircle(img, c, c, s*(0.2+0.3*t), outer, true)
	vector.DrawFilledCircle(img, c, c, s*(0.1+0.2*t)*(1-t/2), inner, true)
}
