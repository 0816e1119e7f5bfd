package terminal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/game"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/ui/layout"
	"golang.org/x/sync/errgroup"
)

const (
	cellWidth  = 2
	cellHeight = 1
	topBar     = 2

	helpLine = "arrows move  space open  f flag  r reset  q quit"
)

// Terminal plays the game in a tcell screen. Every board cell takes
// two columns; the first two rows hold the status and help lines.
type Terminal struct {
	screen   tcell.Screen
	ctrl     *game.Controller
	layout   layout.Layout
	observer game.Observer
	log      *slog.Logger

	cursor  mines.Point
	buttons tcell.ButtonMask
}

func New(screen tcell.Screen, ctrl *game.Controller, observer game.Observer, log *slog.Logger) *Terminal {
	if observer == nil {
		observer = game.NopObserver
	}
	p := ctrl.Params()
	return &Terminal{
		screen:   screen,
		ctrl:     ctrl,
		layout:   layout.New(p.Width, p.Height, cellWidth, cellHeight, topBar),
		observer: observer,
		log:      log,
		cursor:   mines.Point{X: p.Width / 2, Y: p.Height / 2},
	}
}

// Run initializes the screen and plays until the player quits or ctx
// is done. The screen is finalized before Run returns.
func (t *Terminal) Run(ctx context.Context) error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("unable to init terminal: %w", err)
	}
	t.screen.EnableMouse()
	t.screen.HideCursor()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			// PollEvent returns nil once the screen is finalized
			ev := t.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer t.screen.Fini()
		defer cancel()
		return t.loop(ctx, events)
	})

	return g.Wait()
}

func (t *Terminal) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(time.Second / config.FPS)
	defer ticker.Stop()

	for {
		t.draw()
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if quit := t.handle(ev); quit {
				t.log.Info("player quit", slog.String("round", t.ctrl.Round().String()))
				return nil
			}
		case <-ticker.C:
			t.notify(t.ctrl.Tick())
		}
	}
}

// handle applies one terminal event and reports whether the player
// asked to quit.
func (t *Terminal) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		return t.handleKey(ev)
	case *tcell.EventMouse:
		t.handleMouse(ev)
	}
	return false
}

func (t *Terminal) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		t.move(0, -1)
	case tcell.KeyDown:
		t.move(0, 1)
	case tcell.KeyLeft:
		t.move(-1, 0)
	case tcell.KeyRight:
		t.move(1, 0)
	case tcell.KeyEnter:
		t.notify(t.ctrl.LeftClick(t.cursor.X, t.cursor.Y))
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'r', 'R':
			t.notify(t.ctrl.Reset())
		case ' ':
			t.notify(t.ctrl.LeftClick(t.cursor.X, t.cursor.Y))
		case 'f', 'F':
			t.notify(t.ctrl.RightClick(t.cursor.X, t.cursor.Y))
		case 'h':
			t.move(-1, 0)
		case 'j':
			t.move(0, 1)
		case 'k':
			t.move(0, -1)
		case 'l':
			t.move(1, 0)
		}
	}
	return false
}

func (t *Terminal) move(dx, dy int) {
	p := t.ctrl.Params()
	t.cursor.X = min(max(t.cursor.X+dx, 0), p.Width-1)
	t.cursor.Y = min(max(t.cursor.Y+dy, 0), p.Height-1)
}

// handleMouse acts on button presses only; holding a button down is
// reported by tcell as a stream of events with the same mask.
func (t *Terminal) handleMouse(ev *tcell.EventMouse) {
	px, py := ev.Position()
	if x, y, ok := t.layout.CellAt(px, py); ok {
		t.cursor = mines.Point{X: x, Y: y}
	}

	buttons := ev.Buttons()
	pressed := buttons &^ t.buttons
	t.buttons = buttons

	if pressed&tcell.Button1 != 0 {
		t.notify(t.layout.Click(t.ctrl, layout.ButtonLeft, px, py))
	}
	if pressed&tcell.Button2 != 0 {
		t.notify(t.layout.Click(t.ctrl, layout.ButtonRight, px, py))
	}
}

func (t *Terminal) notify(ev game.Event) {
	if ev == game.EventNone {
		return
	}
	t.log.Debug("game event",
		slog.String("event", ev.String()),
		slog.String("round", t.ctrl.Round().String()),
	)
	t.observer.Notify(ev)
}
