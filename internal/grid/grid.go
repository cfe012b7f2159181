// Package grid maps a pixel viewport onto the discrete board the snake moves on.
package grid

import "image"

// Cell is a board coordinate, column first.
type Cell struct{ X, Y int }

// Add returns c moved one step along d.
func (c Cell) Add(d Direction) Cell {
	return Cell{c.X + d.DX, c.Y + d.DY}
}

// Direction is a unit step on the board.
type Direction struct{ DX, DY int }

var (
	Right = Direction{1, 0}
	Left  = Direction{-1, 0}
	Down  = Direction{0, 1}
	Up    = Direction{0, -1}
)

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return Direction{-d.DX, -d.DY}
}

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Down:
		return "down"
	case Up:
		return "up"
	}
	return "none"
}

// Grid is a fixed board derived from a viewport and a cell size.
type Grid struct {
	Cols, Rows int
	CellSize   int
}

// New derives the board dimensions from a viewport in pixels. Partial cells
// at the right and bottom edges are dropped.
func New(width, height, cellSize int) Grid {
	return Grid{
		Cols:     width / cellSize,
		Rows:     height / cellSize,
		CellSize: cellSize,
	}
}

// Contains reports whether c lies on the board.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Cols && c.Y >= 0 && c.Y < g.Rows
}

// Rect is the pixel rectangle covered by c.
func (g Grid) Rect(c Cell) image.Rectangle {
	x, y := c.X*g.CellSize, c.Y*g.CellSize
	return image.Rect(x, y, x+g.CellSize, y+g.CellSize)
}

// Index is the row-major position of an on-board cell.
func (g Grid) Index(c Cell) int {
	return c.Y*g.Cols + c.X
}

// Size is the number of cells on the board.
func (g Grid) Size() int {
	return g.Cols * g.Rows
}

// Center is where a fresh snake spawns.
func (g Grid) Center() Cell {
	return Cell{g.Cols / 2, g.Rows / 2}
}

// Bounds is the pixel area covered by whole cells.
func (g Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.Cols*g.CellSize, g.Rows*g.CellSize)
}
