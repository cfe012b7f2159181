package game

import (
	"github.com/Sarwarhridoy4/snake-go/internal/grid"
	"github.com/Sarwarhridoy4/snake-go/internal/speed"
)

// Result is how a tick ended.
type Result int

const (
	Alive Result = iota
	CollidedWall
	CollidedSelf
)

func (r Result) String() string {
	switch r {
	case Alive:
		return "alive"
	case CollidedWall:
		return "wall"
	case CollidedSelf:
		return "tail"
	}
	return "unknown"
}

// Message is the player-facing reason a run ended.
func (r Result) Message() string {
	switch r {
	case CollidedWall:
		return "you hit the wall"
	case CollidedSelf:
		return "you bit your tail"
	}
	return ""
}

// Outcome reports a single tick. Head is the cell the snake tried to enter,
// set even when the tick ended in a collision.
type Outcome struct {
	Result Result
	Head   grid.Cell
	Ate    bool
}

// Step advances s by one tick. A collision leaves the snake untouched.
func Step(s *State, g grid.Grid, p FoodPlacer) Outcome {
	s.Dir = s.Pending
	head := s.Head().Add(s.Dir)

	if !g.Contains(head) {
		return Outcome{Result: CollidedWall, Head: head}
	}
	if s.Occupies(head) {
		return Outcome{Result: CollidedSelf, Head: head}
	}

	s.Snake = append(s.Snake, head)

	if head == s.Food {
		s.Score += FoodPoints
		s.Food = p.Place(s.Snake)
		s.Interval = speed.Tighten(s.Interval)
		return Outcome{Result: Alive, Head: head, Ate: true}
	}

	s.Snake = s.Snake[1:]
	return Outcome{Result: Alive, Head: head}
}
