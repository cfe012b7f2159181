// Package config collects the start-up settings shared by both front-ends.
package config

import (
	"errors"
	"flag"
	"fmt"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Width    int
	Height   int
	CellSize int
	BestFile string
	Seed     uint64
	Mute     bool
	FPS      int
}

func Default() Config {
	return Config{
		Width:    600,
		Height:   400,
		CellSize: 20,
		BestFile: "snake_best.json",
		FPS:      60,
	}
}

// Bind registers c's fields as flags on fs, using the current values as
// defaults.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "viewport width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "viewport height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.StringVar(&c.BestFile, "best-file", c.BestFile, "where the best score is kept; empty keeps it in memory")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "food placement seed, 0 picks one from the clock")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "disable sound")
	fs.IntVar(&c.FPS, "fps", c.FPS, "frames per second")
}

func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: viewport %dx%d", ErrInvalid, c.Width, c.Height)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size %d", ErrInvalid, c.CellSize)
	case c.CellSize > c.Width || c.CellSize > c.Height:
		return fmt.Errorf("%w: cell size %d does not fit %dx%d", ErrInvalid, c.CellSize, c.Width, c.Height)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps %d", ErrInvalid, c.FPS)
	}
	return nil
}
