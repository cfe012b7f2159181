// Package input maps Ebiten key presses onto loop controls.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Sarwarhridoy4/snake-go/internal/grid"
)

// Controls is the part of the loop the keyboard can drive.
type Controls interface {
	RequestDirection(d grid.Direction) bool
	TogglePause()
	Restart()
}

type binding struct {
	key ebiten.Key
	dir grid.Direction
}

// Checked in this order, so the last key pressed within a frame wins when
// several turns land together.
var directionKeys = []binding{
	{ebiten.KeyArrowUp, grid.Up},
	{ebiten.KeyW, grid.Up},
	{ebiten.KeyArrowDown, grid.Down},
	{ebiten.KeyS, grid.Down},
	{ebiten.KeyArrowLeft, grid.Left},
	{ebiten.KeyA, grid.Left},
	{ebiten.KeyArrowRight, grid.Right},
	{ebiten.KeyD, grid.Right},
}

var (
	toggleKeys  = []ebiten.Key{ebiten.KeySpace}
	restartKeys = []ebiten.Key{ebiten.KeyEnter, ebiten.KeyR}
)

// Direction returns the turn bound to k.
func Direction(k ebiten.Key) (grid.Direction, bool) {
	for _, b := range directionKeys {
		if b.key == k {
			return b.dir, true
		}
	}
	return grid.Direction{}, false
}

// Poll applies every key that went down since the previous frame.
func Poll(c Controls) {
	Apply(c, inpututil.IsKeyJustPressed)
}

// Apply feeds c from a pressed-this-frame predicate.
func Apply(c Controls, pressed func(ebiten.Key) bool) {
	for _, b := range directionKeys {
		if pressed(b.key) {
			c.RequestDirection(b.dir)
		}
	}
	if anyPressed(restartKeys, pressed) {
		c.Restart()
		return
	}
	if anyPressed(toggleKeys, pressed) {
		c.TogglePause()
	}
}

func anyPressed(keys []ebiten.Key, pressed func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if pressed(k) {
			return true
		}
	}
	return false
}
