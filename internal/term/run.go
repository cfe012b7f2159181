package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"

	"github.com/Sarwarhridoy4/snake-go/internal/loop"
)

// Run drives l from a frame ticker until the player quits or ctx is done.
// Only this goroutine touches l; a helper goroutine blocks in PollEvent and
// hands events over a channel. The caller owns screen and must Fini it.
func Run(ctx context.Context, screen tcell.Screen, l *loop.Loop, fps int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	clock := loop.NewClock()
	l.Frame(clock.Now())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				a, d := Translate(ev.Key(), ev.Rune())
				if !Apply(l, a, d) {
					glog.Infof("term: quit requested")
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			l.Frame(clock.Now())
		}
	}
}
