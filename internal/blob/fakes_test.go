package blob

type fill struct {
	center    Vec2
	radius    float64
	blur      float64
	composite Composite
	kind      GradientKind
}

type recordSurface struct {
	clears    int
	composite Composite
	blur      float64
	fills     []fill
}

func (s *recordSurface) Clear()                   { s.clears++; s.fills = s.fills[:0] }
func (s *recordSurface) SetComposite(c Composite) { s.composite = c }
func (s *recordSurface) SetBlur(px float64)       { s.blur = px }
func (s *recordSurface) FillCircle(center Vec2, radius float64, g *Gradient) {
	s.fills = append(s.fills, fill{center: center, radius: radius, blur: s.blur, composite: s.composite, kind: g.Kind})
}

// manualScheduler runs callbacks only when tick is called.
type manualScheduler struct {
	next      FrameID
	pending   map[FrameID]func()
	requested int
	cancelled int
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{pending: map[FrameID]func(){}}
}

func (m *manualScheduler) RequestFrame(fn func()) FrameID {
	m.next++
	m.requested++
	m.pending[m.next] = fn
	return m.next
}

func (m *manualScheduler) CancelFrame(id FrameID) {
	if _, ok := m.pending[id]; ok {
		m.cancelled++
		delete(m.pending, id)
	}
}

// tick fires every callback pending at the start of the frame and returns how many ran.
func (m *manualScheduler) tick() int {
	batch := m.pending
	m.pending = map[FrameID]func(){}
	for _, fn := range batch {
		fn()
	}
	return len(batch)
}
