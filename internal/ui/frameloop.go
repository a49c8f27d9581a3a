// Package ui holds the page-level collaborators around the blob field: the
// frame callback queue, resize debouncing, the visual mode toggle and the
// image gallery.
package ui

import "github.com/iburimskiy/glowfield/internal/blob"

// FrameLoop queues one-shot callbacks for the next frame, like a browser's
// requestAnimationFrame. Callbacks requested while a frame runs wait for the
// following frame.
type FrameLoop struct {
	next    blob.FrameID
	pending map[blob.FrameID]func()
	order   []blob.FrameID
	current map[blob.FrameID]func()
}

func NewFrameLoop() *FrameLoop {
	return &FrameLoop{pending: map[blob.FrameID]func(){}}
}

func (l *FrameLoop) RequestFrame(fn func()) blob.FrameID {
	l.next++
	l.pending[l.next] = fn
	l.order = append(l.order, l.next)
	return l.next
}

func (l *FrameLoop) CancelFrame(id blob.FrameID) {
	delete(l.pending, id)
	delete(l.current, id)
}

// Pending returns the number of callbacks waiting for the next frame.
func (l *FrameLoop) Pending() int { return len(l.pending) }

// Tick runs every callback queued before this frame, in request order, and
// returns how many ran.
func (l *FrameLoop) Tick() int {
	l.current, l.pending = l.pending, map[blob.FrameID]func(){}
	order := l.order
	l.order = nil

	ran := 0
	for _, id := range order {
		fn, ok := l.current[id]
		if !ok {
			continue
		}
		delete(l.current, id)
		fn()
		ran++
	}
	l.current = nil
	return ran
}
