package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"lifegrid/internal/life"
)

// Frame shows the engine's current generation. It is called once after load
// and again after every Advance.
type Frame func(e *life.Engine) error

// Run shows the first frame, then repeatedly waits cfg.Delay, advances and
// shows the next frame. It returns nil when ctx is cancelled or once
// cfg.Generations generations have run.
func Run(ctx context.Context, e *life.Engine, cfg *Config, frame Frame) error {
	if err := frame(e); err != nil {
		return err
	}
	for cfg.Generations == 0 || e.Generation() < cfg.Generations {
		if !wait(ctx, cfg.Delay) {
			return nil
		}
		e.Advance()
		if err := frame(e); err != nil {
			return err
		}
	}
	return nil
}

func wait(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// PrintFrame writes each generation to w, separated by a blank line.
func PrintFrame(w io.Writer, style life.Style) Frame {
	return func(e *life.Engine) error {
		if e.Generation() > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		g := e.Grid()
		_, err := fmt.Fprintln(w, life.Encode(&g, style))
		return err
	}
}
