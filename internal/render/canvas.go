// Package render draws loop snapshots onto an offscreen Ebiten image that the
// window host scales onto the screen.
package render

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/Sarwarhridoy4/snake-go/internal/grid"
	"github.com/Sarwarhridoy4/snake-go/internal/loop"
)

// HUDHeight is the strip under the board that carries the score line.
const HUDHeight = 28

var (
	boardColor   = color.RGBA{0x15, 0x57, 0x24, 0xff}
	gridColor    = color.RGBA{0xff, 0xff, 0xff, 0x14}
	foodColor    = color.RGBA{0xff, 0x00, 0x00, 0xff}
	headColor    = color.RGBA{0xff, 0xff, 0xff, 0xff}
	hudColor     = color.RGBA{24, 24, 28, 255}
	textColor    = color.RGBA{230, 230, 230, 255}
	overlayColor = color.RGBA{0, 0, 0, 0x99}
)

// Canvas is a loop.Renderer backed by an Ebiten image.
type Canvas struct {
	grid grid.Grid
	img  *ebiten.Image
	face *text.GoTextFace
	big  *text.GoTextFace
}

func NewCanvas(g grid.Grid) (*Canvas, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load hud font: %w", err)
	}
	b := g.Bounds()
	return &Canvas{
		grid: g,
		img:  ebiten.NewImage(b.Dx(), b.Dy()+HUDHeight),
		face: &text.GoTextFace{Source: src, Size: 14},
		big:  &text.GoTextFace{Source: src, Size: 22},
	}, nil
}

// Size is the logical screen size the host should lay out.
func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) Image() *ebiten.Image { return c.img }

func (c *Canvas) Render(s loop.Snapshot) {
	c.img.Fill(hudColor)
	c.drawBoard()
	c.drawFood(s)
	c.drawSnake(s)
	c.drawHUD(s)
	if lines := statusLines(s); len(lines) > 0 {
		c.drawOverlay(lines)
	}
}

func (c *Canvas) drawBoard() {
	b := c.grid.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	vector.DrawFilledRect(c.img, 0, 0, w, h, boardColor, false)

	cell := float32(c.grid.CellSize)
	for x := 0; x <= c.grid.Cols; x++ {
		px := float32(x)*cell + 0.5
		vector.StrokeLine(c.img, px, 0, px, h, 1, gridColor, false)
	}
	for y := 0; y <= c.grid.Rows; y++ {
		py := float32(y)*cell + 0.5
		vector.StrokeLine(c.img, 0, py, w, py, 1, gridColor, false)
	}
}

func (c *Canvas) drawFood(s loop.Snapshot) {
	r := c.grid.Rect(s.Food)
	cell := float32(c.grid.CellSize)
	cx := float32(r.Min.X) + cell/2
	cy := float32(r.Min.Y) + cell/2
	vector.DrawFilledCircle(c.img, cx, cy, cell/3, foodColor, true)
}

func (c *Canvas) drawSnake(s loop.Snapshot) {
	for i, seg := range s.Snake {
		c.fillCell(seg, 1, segmentColor(i))
	}
	if len(s.Snake) > 0 {
		c.fillCell(s.Head(), 3, headColor)
	}
}

// fillCell paints the cell shrunk by inset pixels on every side.
func (c *Canvas) fillCell(cell grid.Cell, inset int, clr color.Color) {
	r := c.grid.Rect(cell).Inset(inset)
	vector.DrawFilledRect(c.img, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
}

func (c *Canvas) drawHUD(s loop.Snapshot) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(8, float64(c.grid.Bounds().Dy())+6)
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(c.img, hudLine(s), c.face, op)
}

func (c *Canvas) drawOverlay(lines []string) {
	b := c.grid.Bounds()
	vector.DrawFilledRect(c.img, 0, 0, float32(b.Dx()), float32(b.Dy()), overlayColor, false)

	const lineHeight = 30
	y := float64(b.Dy())/2 - float64(len(lines)*lineHeight)/2
	for i, line := range lines {
		face := c.face
		if i == 0 {
			face = c.big
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(b.Dx())/2, y+float64(i*lineHeight))
		op.ColorScale.ScaleWithColor(textColor)
		op.PrimaryAlign = text.AlignCenter
		text.Draw(c.img, line, face, op)
	}
}
