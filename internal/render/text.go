package render

import (
	"fmt"
	"image/color"

	"github.com/Sarwarhridoy4/snake-go/internal/loop"
	"github.com/Sarwarhridoy4/snake-go/internal/speed"
)

var palette = []color.RGBA{
	{0xff, 0x4b, 0x5c, 0xff},
	{0xff, 0x9a, 0x00, 0xff},
	{0xff, 0xee, 0x00, 0xff},
	{0x00, 0xd0, 0x84, 0xff},
	{0x00, 0xb4, 0xd8, 0xff},
	{0x00, 0x77, 0xb6, 0xff},
	{0x83, 0x38, 0xec, 0xff},
	{0xff, 0x00, 0x6e, 0xff},
}

// segmentColor cycles the palette from the tail.
func segmentColor(i int) color.RGBA {
	return palette[i%len(palette)]
}

func hudLine(s loop.Snapshot) string {
	return fmt.Sprintf("Score: %d   Best: %d   Speed: %.1f moves/s   Space: start/pause   Enter/R: restart",
		s.Score, s.Best, speed.TicksPerSecond(s.Interval))
}

// statusLines is the centred message for every mode except Running.
func statusLines(s loop.Snapshot) []string {
	switch s.Mode {
	case loop.NotStarted:
		return []string{"Snake", "Arrow keys / WASD to steer", "Press Space to start"}
	case loop.Paused:
		return []string{"Paused", "Press Space to resume"}
	case loop.Ended:
		return []string{
			"Game over: " + s.Cause.Message(),
			fmt.Sprintf("Score %d   Best %d", s.Score, s.Best),
			"Press Enter or R to restart",
		}
	}
	return nil
}
