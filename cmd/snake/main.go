package main

import (
	"flag"

	"github.com/golang/glog"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Sarwarhridoy4/snake-go/internal/config"
	"github.com/Sarwarhridoy4/snake-go/internal/food"
	"github.com/Sarwarhridoy4/snake-go/internal/grid"
	"github.com/Sarwarhridoy4/snake-go/internal/input"
	"github.com/Sarwarhridoy4/snake-go/internal/loop"
	"github.com/Sarwarhridoy4/snake-go/internal/render"
	"github.com/Sarwarhridoy4/snake-go/internal/score"
	"github.com/Sarwarhridoy4/snake-go/internal/sound"
)

const (
	windowW = 1280
	windowH = 720
)

// Game adapts the loop to ebiten.Game: Update is the frame callback and Draw
// presents whatever the loop last rendered.
type Game struct {
	loop   *loop.Loop
	clock  loop.Clock
	canvas *render.Canvas
	cues   *sound.Cues

	isFullscreen bool
}

func NewGame(cfg config.Config) (*Game, error) {
	g := grid.New(cfg.Width, cfg.Height, cfg.CellSize)

	canvas, err := render.NewCanvas(g)
	if err != nil {
		return nil, err
	}

	l := loop.New(g, food.New(g, cfg.Seed), score.Open(cfg.BestFile))
	l.SetRenderer(canvas)

	game := &Game{loop: l, clock: loop.NewClock(), canvas: canvas}
	if !cfg.Mute {
		cues, err := sound.New()
		if err != nil {
			glog.Warningf("snake: sound disabled: %v", err)
		} else {
			game.cues = cues
			l.SetListener(cues)
		}
	}
	return game, nil
}

func (g *Game) Update() error {
	// Toggle full-screen/maximized with F key
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.isFullscreen = !g.isFullscreen
		if g.isFullscreen {
			ebiten.MaximizeWindow()
		} else {
			ebiten.RestoreWindow()
			ebiten.SetWindowSize(windowW, windowH)
		}
	}

	// Exit full-screen/maximized with Esc key
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && g.isFullscreen {
		g.isFullscreen = false
		ebiten.RestoreWindow()
		ebiten.SetWindowSize(windowW, windowH)
	}

	input.Poll(g.loop)
	g.loop.Frame(g.clock.Now())
	if g.cues != nil {
		g.cues.Follow(g.loop.Mode())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas.Image(), nil)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	g.isFullscreen = ebiten.IsWindowMaximized()
	return g.canvas.Size()
}

func main() {
	cfg := config.Default()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	defer glog.Flush()

	if err := cfg.Validate(); err != nil {
		glog.Exitf("snake: %v", err)
	}

	game, err := NewGame(cfg)
	if err != nil {
		glog.Exitf("snake: %v", err)
	}

	ebiten.SetTPS(cfg.FPS)
	ebiten.SetWindowSize(windowW, windowH)
	ebiten.SetWindowTitle("Snake — Go + Ebiten")
	ebiten.SetWindowResizable(true)
	if err := ebiten.RunGame(game); err != nil {
		glog.Exitf("snake: %v", err)
	}
}
