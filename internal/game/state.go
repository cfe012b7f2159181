// Package game holds the snake's state and the per-tick step that advances it.
package game

import (
	"slices"
	"time"

	"github.com/Sarwarhridoy4/snake-go/internal/grid"
	"github.com/Sarwarhridoy4/snake-go/internal/speed"
)

// FoodPoints is added to the score for every food eaten.
const FoodPoints = 10

// FoodPlacer picks a cell for the next food, avoiding occupied cells.
type FoodPlacer interface {
	Place(occupied []grid.Cell) grid.Cell
}

// State is everything a single run mutates. Snake is ordered tail first,
// so the head is the last element.
type State struct {
	Snake    []grid.Cell
	Dir      grid.Direction
	Pending  grid.Direction
	Food     grid.Cell
	Score    int
	Interval time.Duration
}

// NewState returns a one-segment snake in the middle of g heading right.
func NewState(g grid.Grid, p FoodPlacer) *State {
	s := &State{
		Snake:    []grid.Cell{g.Center()},
		Dir:      grid.Right,
		Pending:  grid.Right,
		Interval: speed.Initial,
	}
	s.Food = p.Place(s.Snake)
	return s
}

// Head is the most recently added segment.
func (s *State) Head() grid.Cell {
	return s.Snake[len(s.Snake)-1]
}

// Occupies reports whether any segment covers c.
func (s *State) Occupies(c grid.Cell) bool {
	return slices.Contains(s.Snake, c)
}

// RequestDirection buffers d for the next tick. A request to reverse onto the
// body is dropped; the check is against the applied direction, not the
// pending one, so two quick turns cannot fold the snake back on itself.
func (s *State) RequestDirection(d grid.Direction) bool {
	if len(s.Snake) > 1 && d == s.Dir.Reverse() {
		return false
	}
	s.Pending = d
	return true
}

// Clone returns a deep copy safe to hand to a renderer.
func (s *State) Clone() State {
	c := *s
	c.Snake = slices.Clone(s.Snake)
	return c
}
