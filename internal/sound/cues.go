// Package sound plays short synthesized cues through Ebiten's audio context.
package sound

import (
	"bytes"
	"math"

	"github.com/golang/glog"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/Sarwarhridoy4/snake-go/internal/game"
	"github.com/Sarwarhridoy4/snake-go/internal/loop"
)

const sampleRate = 44100

// Cues is a loop.Listener that beeps on food and on game over, with a soft
// arpeggio looping underneath while a run is live.
type Cues struct {
	ctx  *audio.Context
	eat  *audio.Player
	over *audio.Player
	bg   *audio.Player
}

// New creates the process-wide audio context; call it at most once.
func New() (*Cues, error) {
	ctx := audio.NewContext(sampleRate)
	c := &Cues{
		ctx:  ctx,
		eat:  ctx.NewPlayerFromBytes(tone(880, 0.1, 4000, 3)),
		over: ctx.NewPlayerFromBytes(tone(220, 0.4, 4000, 3)),
	}

	var pcm []byte
	for _, freq := range []float64{261.63, 329.63, 392.00, 523.25} {
		pcm = append(pcm, tone(freq, 0.25, 2000, 2)...)
	}
	bg, err := ctx.NewPlayer(audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm))))
	if err != nil {
		return nil, err
	}
	bg.SetVolume(0.5)
	c.bg = bg
	return c, nil
}

func (c *Cues) OnEat(int) {
	replay(c.eat)
}

func (c *Cues) OnGameOver(cause game.Result, score int) {
	glog.V(1).Infof("sound: game over cue (%s, %d)", cause, score)
	replay(c.over)
}

// Follow keeps the background loop in step with the run: playing while it
// is live, silent otherwise.
func (c *Cues) Follow(m loop.Mode) {
	switch {
	case m == loop.Running && !c.bg.IsPlaying():
		c.bg.Play()
	case m != loop.Running && c.bg.IsPlaying():
		c.bg.Pause()
	}
}

func replay(p *audio.Player) {
	if err := p.Rewind(); err != nil {
		glog.Warningf("sound: rewind: %v", err)
		return
	}
	p.Play()
}

// tone renders a decaying sine as 16-bit little-endian stereo PCM.
func tone(freq, durSec, amp, decay float64) []byte {
	n := int(sampleRate * durSec)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		v := int16(math.Sin(2*math.Pi*freq*t) * amp * math.Exp(-decay*t))
		for ch := 0; ch < 2; ch++ {
			idx := i*4 + ch*2
			buf[idx] = byte(v)
			buf[idx+1] = byte(v >> 8)
		}
	}
	return buf
}
