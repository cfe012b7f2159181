package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/Sarwarhridoy4/snake-go/internal/grid"
)

// Action is what a key press asks of the game.
type Action int

const (
	None Action = iota
	Turn
	Toggle
	Restart
	Quit
)

// Controls is the part of the loop the keyboard can drive.
type Controls interface {
	RequestDirection(d grid.Direction) bool
	TogglePause()
	Restart()
}

var arrowKeys = map[tcell.Key]grid.Direction{
	tcell.KeyUp:    grid.Up,
	tcell.KeyDown:  grid.Down,
	tcell.KeyLeft:  grid.Left,
	tcell.KeyRight: grid.Right,
}

var letterKeys = map[rune]grid.Direction{
	'w': grid.Up,
	's': grid.Down,
	'a': grid.Left,
	'd': grid.Right,
}

// Translate maps a tcell key (and its rune for KeyRune) to an action. The
// direction is only meaningful for Turn.
func Translate(k tcell.Key, r rune) (Action, grid.Direction) {
	if d, ok := arrowKeys[k]; ok {
		return Turn, d
	}
	switch k {
	case tcell.KeyEnter:
		return Restart, grid.Direction{}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Quit, grid.Direction{}
	case tcell.KeyRune:
	default:
		return None, grid.Direction{}
	}

	r = unicode.ToLower(r)
	if d, ok := letterKeys[r]; ok {
		return Turn, d
	}
	switch r {
	case ' ':
		return Toggle, grid.Direction{}
	case 'r':
		return Restart, grid.Direction{}
	case 'q':
		return Quit, grid.Direction{}
	}
	return None, grid.Direction{}
}

// Apply performs a onto c and reports false once the player asked to quit.
func Apply(c Controls, a Action, d grid.Direction) bool {
	switch a {
	case Turn:
		c.RequestDirection(d)
	case Toggle:
		c.TogglePause()
	case Restart:
		c.Restart()
	case Quit:
		return false
	}
	return true
}
