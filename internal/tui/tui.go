// Package tui draws the simulation into a full-screen terminal using tcell.
package tui

import (
	"context"
	"errors"
	"strings"

	"lifegrid/internal/app"
	"lifegrid/internal/life"
	"lifegrid/internal/ui"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

var errQuit = errors.New("quit requested")

var (
	gridStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack)
)

// Draw paints the engine's grid using the text style, with the status line
// underneath. It does not call Show.
func Draw(s tcell.Screen, e *life.Engine, style life.Style) {
	s.Clear()
	g := e.Grid()
	lines := strings.Split(life.Encode(&g, style), "\n")
	for y, line := range lines {
		x := 0
		for _, r := range line {
			s.SetContent(x, y, r, nil, gridStyle)
			x++
		}
	}
	x := 0
	for _, r := range ui.StatusLine(e, false) {
		s.SetContent(x, len(lines), r, nil, statusStyle)
		x++
	}
}

// Run drives the simulation on an initialised screen until ctx is
// cancelled, the generation limit is reached, or the user presses q, Esc or
// Ctrl-C. Run finalises the screen before returning.
func Run(ctx context.Context, s tcell.Screen, e *life.Engine, cfg *app.Config) error {
	style := cfg.TextStyle()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			switch ev := s.PollEvent().(type) {
			case nil:
				// Fini was called.
				return nil
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return errQuit
				}
			case *tcell.EventResize:
				s.Sync()
			}
		}
	})

	g.Go(func() error {
		defer s.Fini()
		return app.Run(ctx, e, cfg, func(e *life.Engine) error {
			Draw(s, e, style)
			s.Show()
			return nil
		})
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}
