package ui

// Mode is the visual-mode toggle. Listeners are told about every Set, changed
// or not, so they must be idempotent.
type Mode struct {
	visual    bool
	listeners []func(visual bool)
}

func (m *Mode) Visual() bool { return m.visual }

func (m *Mode) OnChange(fn func(visual bool)) {
	m.listeners = append(m.listeners, fn)
}

func (m *Mode) Set(visual bool) {
	m.visual = visual
	for _, fn := range m.listeners {
		fn(visual)
	}
}

func (m *Mode) Toggle() { m.Set(!m.visual) }
