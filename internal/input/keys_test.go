package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/Sarwarhridoy4/snake-go/internal/grid"
)

type fakeControls struct {
	dirs     []grid.Direction
	toggles  int
	restarts int
}

func (f *fakeControls) RequestDirection(d grid.Direction) bool {
	f.dirs = append(f.dirs, d)
	return true
}

func (f *fakeControls) TogglePause() { f.toggles++ }
func (f *fakeControls) Restart()     { f.restarts++ }

func pressing(keys ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, p := range keys {
			if p == k {
				return true
			}
		}
		return false
	}
}

func TestDirection(t *testing.T) {
	for k, want := range map[ebiten.Key]grid.Direction{
		ebiten.KeyArrowUp:    grid.Up,
		ebiten.KeyW:          grid.Up,
		ebiten.KeyS:          grid.Down,
		ebiten.KeyA:          grid.Left,
		ebiten.KeyArrowRight: grid.Right,
	} {
		got, ok := Direction(k)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := Direction(ebiten.KeyQ)
	assert.False(t, ok)
}

func TestApply(t *testing.T) {
	c := &fakeControls{}
	Apply(c, pressing(ebiten.KeyW, ebiten.KeyArrowLeft))
	assert.Equal(t, []grid.Direction{grid.Up, grid.Left}, c.dirs)
	assert.Zero(t, c.toggles)

	Apply(c, pressing(ebiten.KeySpace))
	assert.Equal(t, 1, c.toggles)

	// restart wins over a simultaneous space
	Apply(c, pressing(ebiten.KeySpace, ebiten.KeyR))
	assert.Equal(t, 1, c.toggles)
	assert.Equal(t, 1, c.restarts)

	Apply(c, pressing())
	assert.Len(t, c.dirs, 2)
}
