package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"

	"github.com/Sarwarhridoy4/snake-go/internal/config"
	"github.com/Sarwarhridoy4/snake-go/internal/food"
	"github.com/Sarwarhridoy4/snake-go/internal/grid"
	"github.com/Sarwarhridoy4/snake-go/internal/loop"
	"github.com/Sarwarhridoy4/snake-go/internal/score"
	"github.com/Sarwarhridoy4/snake-go/internal/term"
)

func main() {
	cfg := config.Default()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	defer glog.Flush()

	if err := run(cfg); err != nil {
		glog.Errorf("snake-term: %v", err)
		glog.Flush()
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	g := grid.New(cfg.Width, cfg.Height, cfg.CellSize)
	l := loop.New(g, food.New(g, cfg.Seed), score.Open(cfg.BestFile))
	l.SetRenderer(term.NewRenderer(screen, g))
	if !cfg.Mute {
		l.SetListener(term.NewBeeper())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = term.Run(ctx, screen, l, cfg.FPS)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
