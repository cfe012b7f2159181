// Package food picks where the next food appears.
package food

import (
	"time"

	"github.com/golang/glog"
	"github.com/kamstrup/intmap"
	"golang.org/x/exp/rand"

	"github.com/Sarwarhridoy4/snake-go/internal/grid"
)

// MaxAttempts bounds the random draws before Place gives up.
const MaxAttempts = 1000

// Fallback is returned when every draw hit the snake.
var Fallback = grid.Cell{}

// Placer draws food cells uniformly from a grid.
type Placer struct {
	grid      grid.Grid
	rng       *rand.Rand
	occupied  *intmap.Map[int, struct{}]
	fallbacks int
}

// New returns a Placer for g. A zero seed draws one from the clock.
func New(g grid.Grid, seed uint64) *Placer {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Placer{
		grid:     g,
		rng:      rand.New(rand.NewSource(seed)),
		occupied: intmap.New[int, struct{}](g.Size()),
	}
}

// Place returns a free cell, or Fallback once MaxAttempts draws have all
// landed on occupied cells.
func (p *Placer) Place(occupied []grid.Cell) grid.Cell {
	p.occupied.Clear()
	for _, c := range occupied {
		if p.grid.Contains(c) {
			p.occupied.Put(p.grid.Index(c), struct{}{})
		}
	}

	for i := 0; i < MaxAttempts; i++ {
		c := grid.Cell{X: p.rng.Intn(p.grid.Cols), Y: p.rng.Intn(p.grid.Rows)}
		if _, taken := p.occupied.Get(p.grid.Index(c)); !taken {
			return c
		}
	}

	p.fallbacks++
	glog.V(2).Infof("food: no free cell after %d draws (%d occupied), using %v", MaxAttempts, p.occupied.Len(), Fallback)
	return Fallback
}

// Fallbacks counts how many times Place returned Fallback.
func (p *Placer) Fallbacks() int {
	return p.fallbacks
}
