package graphics

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/game"
	"github.com/vancomm/minesweeper/internal/ui/layout"
	"golang.org/x/image/font/basicfont"
)

const (
	WindowTitle = "Minesweeper"

	timeTextSize    = 24
	messageTextSize = 30
	numberTextSize  = 18
	timeMargin      = 10
)

// Engine runs the controller inside an ebiten window. It implements
// [ebiten.Game].
type Engine struct {
	ctrl     *game.Controller
	layout   layout.Layout
	sprites  Sprites
	observer game.Observer
	log      *slog.Logger
	face     *text.GoXFace

	cursor  image.Point
	pressed bool
}

func NewEngine(
	ctrl *game.Controller,
	l layout.Layout,
	sprites Sprites,
	observer game.Observer,
	log *slog.Logger,
) *Engine {
	if observer == nil {
		observer = game.NopObserver
	}
	return &Engine{
		ctrl:     ctrl,
		layout:   l,
		sprites:  sprites,
		observer: observer,
		log:      log,
		face:     text.NewGoXFace(basicfont.Face7x13),
	}
}

func (e *Engine) Run() error {
	w, h := e.layout.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetTPS(config.FPS)

	if err := ebiten.RunGame(e); err != nil {
		return fmt.Errorf("unable to run game: %w", err)
	}
	return nil
}

func (e *Engine) Update() error {
	e.cursor = image.Pt(ebiten.CursorPosition())
	e.pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		e.notify(e.ctrl.Reset())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		e.notify(e.layout.Click(e.ctrl, layout.ButtonLeft, e.cursor.X, e.cursor.Y))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		e.notify(e.layout.Click(e.ctrl, layout.ButtonRight, e.cursor.X, e.cursor.Y))
	}

	e.notify(e.ctrl.Tick())
	return nil
}

func (e *Engine) notify(ev game.Event) {
	if ev == game.EventNone {
		return
	}
	e.log.Debug("game event",
		slog.String("event", ev.String()),
		slog.String("round", e.ctrl.Round().String()),
	)
	e.observer.Notify(ev)
}

func (e *Engine) Draw(screen *ebiten.Image) {
	screen.Fill(layout.BackgroundColor)
	e.drawBoard(screen)
	e.drawTopBar(screen)
}

func (e *Engine) Layout(_, _ int) (int, int) {
	return e.layout.Size()
}

func (e *Engine) drawBoard(screen *ebiten.Image) {
	board := e.ctrl.Board()
	hx, hy, hovering := e.layout.CellAt(e.cursor.X, e.cursor.Y)

	for y := range board.Height {
		for x := range board.Width {
			state := board.State(x, y)
			hover := hovering && hx == x && hy == y
			base, overlay := layout.Sprites(state, board.Cell(x, y).ExplosionFrame(), hover, e.pressed)

			rect := e.layout.CellRect(x, y)
			e.drawSprite(screen, base, rect)
			if overlay != "" {
				e.drawSprite(screen, overlay, rect)
			}
			if n, ok := state.Count(); ok && n > 0 {
				center := rect.Min.Add(rect.Size().Div(2))
				e.drawText(screen, strconv.Itoa(n), float64(center.X), float64(center.Y),
					numberTextSize, text.AlignCenter, layout.NumberColors[n])
			}
		}
	}
}

// drawSprite stretches the sprite to fill rect.
func (e *Engine) drawSprite(screen *ebiten.Image, name string, rect image.Rectangle) {
	img, ok := e.sprites[name]
	if !ok {
		return
	}
	bounds := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(
		float64(rect.Dx())/float64(bounds.Dx()),
		float64(rect.Dy())/float64(bounds.Dy()),
	)
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	screen.DrawImage(img, op)
}

func (e *Engine) drawTopBar(screen *ebiten.Image) {
	w, _ := e.layout.Size()
	bar := float64(e.layout.TopBar)
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(bar), layout.TopBarColor, false)

	e.drawText(screen, layout.StatusLine(e.ctrl.Elapsed()), float64(w-timeMargin), bar/2,
		timeTextSize, text.AlignEnd, layout.TextColor)

	if msg := e.ctrl.Message(); msg != "" {
		e.drawText(screen, msg, float64(w)/2, bar/2,
			messageTextSize, text.AlignCenter, layout.TextColor)
	}
}

// drawText draws s with its vertical center at y, scaling the bitmap
// font up to size pixels.
func (e *Engine) drawText(screen *ebiten.Image, s string, x, y, size float64, align text.Align, clr color.Color) {
	scale := size / float64(basicfont.Face7x13.Height)

	op := &text.DrawOptions{}
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, e.face, op)
}
