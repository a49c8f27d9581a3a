package cue

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// meter wraps a beep.Streamer and keeps the recent peak level so the renderer
// can show when a cue is sounding. The speaker goroutine writes; the game
// loop reads.
type meter struct {
	Source beep.Streamer
	peak   float64
	mu     sync.RWMutex
}

func newMeter(src beep.Streamer) *meter {
	return &meter{Source: src}
}

func (m *meter) Stream(samples [][2]float64) (int, bool) {
	n, ok := m.Source.Stream(samples)
	if n > 0 {
		p := 0.0
		for i := 0; i < n; i++ {
			p = math.Max(p, math.Max(math.Abs(samples[i][0]), math.Abs(samples[i][1])))
		}
		m.mu.Lock()
		m.peak = p
		m.mu.Unlock()
	}
	if !ok {
		m.mu.Lock()
		m.peak = 0
		m.mu.Unlock()
	}
	return n, ok
}

func (m *meter) Err() error { return m.Source.Err() }

func (m *meter) level() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.peak
}
