package term

import (
	"time"

	"github.com/golang/glog"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/Sarwarhridoy4/snake-go/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Beeper is a loop.Listener playing sine blips through the system speaker.
// It stays silent when the speaker could not be opened.
type Beeper struct {
	ready bool
}

func NewBeeper() *Beeper {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		// the game runs fine without sound
		glog.Warningf("term: audio unavailable: %v", err)
		return &Beeper{}
	}
	return &Beeper{ready: true}
}

func (b *Beeper) OnEat(int) {
	b.play(880, 60*time.Millisecond)
}

func (b *Beeper) OnGameOver(game.Result, int) {
	b.play(220, 400*time.Millisecond)
}

func (b *Beeper) play(freq float64, d time.Duration) {
	if !b.ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		glog.Warningf("term: tone %.0fHz: %v", freq, err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}
