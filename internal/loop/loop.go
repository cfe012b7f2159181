// Package loop drives the snake at a fixed tick rate from whatever frame
// callback the host provides, and owns the game state between frames.
package loop

import (
	"time"

	"github.com/golang/glog"

	"github.com/Sarwarhridoy4/snake-go/internal/game"
	"github.com/Sarwarhridoy4/snake-go/internal/grid"
	"github.com/Sarwarhridoy4/snake-go/internal/score"
)

// Mode is where a run is in its lifecycle.
type Mode int

const (
	NotStarted Mode = iota
	Running
	Paused
	Ended
)

func (m Mode) String() string {
	switch m {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Ended:
		return "ended"
	}
	return "unknown"
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	game.State
	Grid  grid.Grid
	Mode  Mode
	Best  int
	Cause game.Result
}

// Renderer draws a frame. It is called once per Frame, after any ticks.
type Renderer interface {
	Render(Snapshot)
}

// Listener hears about scoring and the end of a run.
type Listener interface {
	OnEat(score int)
	OnGameOver(cause game.Result, score int)
}

type nopListener struct{}

func (nopListener) OnEat(int)                   {}
func (nopListener) OnGameOver(game.Result, int) {}

// Loop is a fixed-timestep accumulator. It is not safe for concurrent use;
// every method must be called from the host's frame goroutine.
type Loop struct {
	grid     grid.Grid
	placer   game.FoodPlacer
	store    score.Store
	renderer Renderer
	listener Listener

	state *game.State
	mode  Mode
	best  int
	cause game.Result

	acc    time.Duration
	last   time.Duration
	primed bool
	ticks  uint64
}

// New loads the best score from store and prepares a run that has not
// started yet.
func New(g grid.Grid, p game.FoodPlacer, store score.Store) *Loop {
	l := &Loop{
		grid:     g,
		placer:   p,
		store:    store,
		listener: nopListener{},
		best:     store.Load(),
	}
	l.state = game.NewState(g, p)
	glog.Infof("loop: %dx%d board, best score %d", g.Cols, g.Rows, l.best)
	return l
}

func (l *Loop) SetRenderer(r Renderer) { l.renderer = r }

func (l *Loop) SetListener(ln Listener) {
	if ln == nil {
		ln = nopListener{}
	}
	l.listener = ln
}

func (l *Loop) Mode() Mode    { return l.mode }
func (l *Loop) Best() int     { return l.best }
func (l *Loop) Ticks() uint64 { return l.ticks }

// Frame is the host's per-frame callback. ts must not go backwards; the
// first frame after Start counts as zero elapsed time.
func (l *Loop) Frame(ts time.Duration) {
	var elapsed time.Duration
	if l.primed && ts > l.last {
		elapsed = ts - l.last
	}
	l.last, l.primed = ts, true

	if l.mode == Running {
		l.acc += elapsed
		for l.acc >= l.state.Interval {
			l.acc -= l.state.Interval
			if !l.tick() {
				l.acc = 0
				break
			}
		}
	}

	if l.renderer != nil {
		l.renderer.Render(l.Snapshot())
	}
}

// tick runs one step and reports whether the snake survived it.
func (l *Loop) tick() bool {
	out := game.Step(l.state, l.grid, l.placer)
	l.ticks++
	if glog.V(2) {
		glog.Infof("tick %d: %s head=%v len=%d ate=%t", l.ticks, out.Result, out.Head, len(l.state.Snake), out.Ate)
	}

	if out.Result == game.Alive {
		if out.Ate {
			l.saveBest()
			l.listener.OnEat(l.state.Score)
		}
		return true
	}

	l.mode = Ended
	l.cause = out.Result
	l.saveBest()
	glog.Infof("loop: game over (%s), score %d, best %d", out.Result, l.state.Score, l.best)
	l.listener.OnGameOver(out.Result, l.state.Score)
	return false
}

func (l *Loop) saveBest() {
	if l.state.Score <= l.best {
		return
	}
	l.best = l.state.Score
	if err := l.store.Save(l.best); err != nil {
		glog.Warningf("loop: saving best score: %v", err)
	}
}

// Start arms ticking for a run that has not started yet.
func (l *Loop) Start() bool {
	if l.mode != NotStarted {
		return false
	}
	l.mode = Running
	l.acc = 0
	l.primed = false
	glog.Infof("loop: started")
	return true
}

// TogglePause pauses or resumes a live run, or starts one that has not begun.
// An ended run only leaves that state through Restart.
func (l *Loop) TogglePause() {
	switch l.mode {
	case NotStarted:
		l.Start()
	case Running:
		l.mode = Paused
	case Paused:
		l.mode = Running
	}
}

// Restart throws the current run away and starts a fresh one. The best
// score carries over.
func (l *Loop) Restart() {
	l.saveBest()
	l.state = game.NewState(l.grid, l.placer)
	l.mode = NotStarted
	l.cause = game.Alive
	glog.Infof("loop: restart, best %d", l.best)
	l.Start()
}

// RequestDirection forwards a turn to the snake unless the run has ended.
func (l *Loop) RequestDirection(d grid.Direction) bool {
	if l.mode == Ended {
		return false
	}
	return l.state.RequestDirection(d)
}

func (l *Loop) Snapshot() Snapshot {
	return Snapshot{
		State: l.state.Clone(),
		Grid:  l.grid,
		Mode:  l.mode,
		Best:  l.best,
		Cause: l.cause,
	}
}

// Clock turns wall time into the monotonic timestamps Frame expects.
type Clock struct {
	start time.Time
}

func NewClock() Clock { return Clock{start: time.Now()} }

func (c Clock) Now() time.Duration { return time.Since(c.start) }
