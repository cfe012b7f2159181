package term

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sarwarhridoy4/snake-go/internal/food"
	"github.com/Sarwarhridoy4/snake-go/internal/game"
	"github.com/Sarwarhridoy4/snake-go/internal/grid"
	"github.com/Sarwarhridoy4/snake-go/internal/loop"
	"github.com/Sarwarhridoy4/snake-go/internal/score"
	"github.com/Sarwarhridoy4/snake-go/internal/speed"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(80, 24)
	t.Cleanup(s.Fini)
	return s
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		key    tcell.Key
		r      rune
		action Action
		dir    grid.Direction
	}{
		{tcell.KeyUp, 0, Turn, grid.Up},
		{tcell.KeyLeft, 0, Turn, grid.Left},
		{tcell.KeyRune, 'w', Turn, grid.Up},
		{tcell.KeyRune, 'D', Turn, grid.Right},
		{tcell.KeyRune, 's', Turn, grid.Down},
		{tcell.KeyRune, ' ', Toggle, grid.Direction{}},
		{tcell.KeyRune, 'r', Restart, grid.Direction{}},
		{tcell.KeyEnter, 0, Restart, grid.Direction{}},
		{tcell.KeyRune, 'q', Quit, grid.Direction{}},
		{tcell.KeyEscape, 0, Quit, grid.Direction{}},
		{tcell.KeyCtrlC, 0, Quit, grid.Direction{}},
		{tcell.KeyRune, 'x', None, grid.Direction{}},
		{tcell.KeyTab, 0, None, grid.Direction{}},
	}
	for _, tt := range tests {
		a, d := Translate(tt.key, tt.r)
		assert.Equal(t, tt.action, a, "key %v rune %q", tt.key, tt.r)
		assert.Equal(t, tt.dir, d, "key %v rune %q", tt.key, tt.r)
	}
}

func TestRenderPlacesSnakeAndFood(t *testing.T) {
	screen := newScreen(t)
	g := grid.New(600, 400, 20)
	r := NewRenderer(screen, g)

	snap := loop.Snapshot{Grid: g, Mode: loop.Running}
	snap.Snake = []grid.Cell{{X: 1, Y: 1}, {X: 2, Y: 1}}
	snap.Food = grid.Cell{X: 5, Y: 5}
	snap.Interval = speed.Initial
	r.Render(snap)

	for _, c := range snap.Snake {
		x, y := origin(c)
		ch, _, _, _ := screen.GetContent(x, y)
		assert.Equal(t, segment, ch, "segment at %v", c)
		ch, _, _, _ = screen.GetContent(x+1, y)
		assert.Equal(t, segment, ch, "segment at %v", c)
	}

	x, y := origin(snap.Food)
	ch, _, _, _ := screen.GetContent(x, y)
	assert.Equal(t, foodRune, ch)

	ch, _, _, _ = screen.GetContent(0, 0)
	assert.Equal(t, tcell.RuneULCorner, ch)
	ch, _, _, _ = screen.GetContent(g.Cols*cellWidth+1, g.Rows+1)
	assert.Equal(t, tcell.RuneLRCorner, ch)
}

func TestBanner(t *testing.T) {
	assert.Nil(t, banner(loop.Snapshot{Mode: loop.Running}))
	assert.Equal(t, "PAUSED", banner(loop.Snapshot{Mode: loop.Paused})[0])
	assert.Equal(t, "GAME OVER: you bit your tail", banner(loop.Snapshot{Mode: loop.Ended, Cause: game.CollidedSelf})[0])
}

type fakeControls struct {
	turns            []grid.Direction
	toggles, restart int
}

func (f *fakeControls) RequestDirection(d grid.Direction) bool {
	f.turns = append(f.turns, d)
	return true
}

func (f *fakeControls) TogglePause() { f.toggles++ }
func (f *fakeControls) Restart()     { f.restart++ }

func TestApply(t *testing.T) {
	c := &fakeControls{}
	assert.True(t, Apply(c, Turn, grid.Down))
	assert.True(t, Apply(c, Toggle, grid.Direction{}))
	assert.True(t, Apply(c, Restart, grid.Direction{}))
	assert.True(t, Apply(c, None, grid.Direction{}))
	assert.False(t, Apply(c, Quit, grid.Direction{}))

	assert.Equal(t, []grid.Direction{grid.Down}, c.turns)
	assert.Equal(t, 1, c.toggles)
	assert.Equal(t, 1, c.restart)
}

func TestRunStartsAndQuits(t *testing.T) {
	screen := newScreen(t)
	g := grid.New(600, 400, 20)
	l := loop.New(g, food.New(g, 5), score.NewMemoryStore())
	l.SetRenderer(NewRenderer(screen, g))

	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, Run(ctx, screen, l, 60))
	assert.Equal(t, loop.Running, l.Mode())
}
