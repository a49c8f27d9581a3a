package cue

import (
	"fmt"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Player sends cues to the system speaker. A Player that failed to open the
// speaker, or is muted, drops every cue.
type Player struct {
	rate  beep.SampleRate
	gain  float64
	muted bool
	ready bool

	mu   sync.Mutex
	last *meter
}

func NewPlayer(rate beep.SampleRate, gain float64) *Player {
	return &Player{rate: rate, gain: gain}
}

// Init opens the speaker with a 50ms buffer.
func (p *Player) Init() error {
	if p.ready {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(time.Second/20)); err != nil {
		return fmt.Errorf("open speaker at %d Hz: %w", p.rate, err)
	}
	p.ready = true
	return nil
}

func (p *Player) SetMuted(m bool) { p.muted = m }

func (p *Player) Muted() bool { return p.muted }

// Click is the short tick for a selection.
func (p *Player) Click() {
	p.play(Tone(p.rate, 1320, 40*time.Millisecond, p.gain))
}

// Mode plays the mode-change chime.
func (p *Player) Mode(visual bool) {
	p.play(Chime(p.rate, visual, p.gain))
}

// Level is the peak amplitude of the cue currently sounding, 0 when silent.
func (p *Player) Level() float64 {
	p.mu.Lock()
	m := p.last
	p.mu.Unlock()
	if m == nil {
		return 0
	}
	return m.level()
}

func (p *Player) play(s beep.Streamer) {
	if !p.ready || p.muted {
		return
	}
	m := newMeter(s)
	p.mu.Lock()
	p.last = m
	p.mu.Unlock()
	speaker.Play(m)
}
