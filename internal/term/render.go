// Package term runs the game in a terminal through tcell. Every board cell is
// two columns wide so the board keeps roughly square cells.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/Sarwarhridoy4/snake-go/internal/grid"
	"github.com/Sarwarhridoy4/snake-go/internal/loop"
	"github.com/Sarwarhridoy4/snake-go/internal/speed"
)

const (
	cellWidth = 2
	segment   = '█'
	foodRune  = '●'
)

var (
	boardStyle  = tcell.StyleDefault.Background(tcell.NewHexColor(0x155724))
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	foodStyle   = boardStyle.Foreground(tcell.ColorRed)
	headStyle   = boardStyle.Foreground(tcell.ColorWhite)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	bannerStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)

	palette = []tcell.Color{
		tcell.NewHexColor(0xff4b5c),
		tcell.NewHexColor(0xff9a00),
		tcell.NewHexColor(0xffee00),
		tcell.NewHexColor(0x00d084),
		tcell.NewHexColor(0x00b4d8),
		tcell.NewHexColor(0x0077b6),
		tcell.NewHexColor(0x8338ec),
		tcell.NewHexColor(0xff006e),
	}
)

// Renderer is a loop.Renderer that draws into a tcell screen.
type Renderer struct {
	screen tcell.Screen
	grid   grid.Grid
}

func NewRenderer(s tcell.Screen, g grid.Grid) *Renderer {
	return &Renderer{screen: s, grid: g}
}

// origin is the terminal position of the left column of c, inside the border.
func origin(c grid.Cell) (int, int) {
	return 1 + c.X*cellWidth, 1 + c.Y
}

func (r *Renderer) Render(s loop.Snapshot) {
	r.screen.Clear()
	r.drawBoard()

	fx, fy := origin(s.Food)
	r.screen.SetContent(fx, fy, foodRune, nil, foodStyle)
	r.screen.SetContent(fx+1, fy, ' ', nil, boardStyle)

	for i, seg := range s.Snake {
		style := boardStyle.Foreground(palette[i%len(palette)])
		if i == len(s.Snake)-1 {
			style = headStyle
		}
		x, y := origin(seg)
		for dx := 0; dx < cellWidth; dx++ {
			r.screen.SetContent(x+dx, y, segment, nil, style)
		}
	}

	hud := fmt.Sprintf("Score: %d  Best: %d  Speed: %.1f/s  [space] start/pause  [r] restart  [q] quit",
		s.Score, s.Best, speed.TicksPerSecond(s.Interval))
	r.print(0, r.grid.Rows+2, hud, textStyle)

	if lines := banner(s); len(lines) > 0 {
		top := 1 + r.grid.Rows/2 - len(lines)/2
		for i, line := range lines {
			x := 1 + (r.grid.Cols*cellWidth-len([]rune(line)))/2
			r.print(x, top+i, line, bannerStyle.Background(tcell.NewHexColor(0x155724)))
		}
	}

	r.screen.Show()
}

func (r *Renderer) drawBoard() {
	w := r.grid.Cols*cellWidth + 2
	h := r.grid.Rows + 2
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, 0, tcell.RuneHLine, nil, borderStyle)
		r.screen.SetContent(x, h-1, tcell.RuneHLine, nil, borderStyle)
	}
	for y := 0; y < h; y++ {
		r.screen.SetContent(0, y, tcell.RuneVLine, nil, borderStyle)
		r.screen.SetContent(w-1, y, tcell.RuneVLine, nil, borderStyle)
	}
	r.screen.SetContent(0, 0, tcell.RuneULCorner, nil, borderStyle)
	r.screen.SetContent(w-1, 0, tcell.RuneURCorner, nil, borderStyle)
	r.screen.SetContent(0, h-1, tcell.RuneLLCorner, nil, borderStyle)
	r.screen.SetContent(w-1, h-1, tcell.RuneLRCorner, nil, borderStyle)

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			r.screen.SetContent(x, y, ' ', nil, boardStyle)
		}
	}
}

func (r *Renderer) print(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func banner(s loop.Snapshot) []string {
	switch s.Mode {
	case loop.NotStarted:
		return []string{"SNAKE", "arrows/wasd to steer, space to start"}
	case loop.Paused:
		return []string{"PAUSED", "space to resume"}
	case loop.Ended:
		return []string{"GAME OVER: " + s.Cause.Message(), "r or enter to restart"}
	}
	return nil
}
