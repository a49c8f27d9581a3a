package config

import "time"

const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "glowfield - V: visual mode, Left/Right: browse, O: add images, Esc/Q: quit"

	// Viewports narrower than this get the reduced blob count and cannot stay in visual mode.
	NarrowBreakpoint = 768

	// ResizeSettle is how long the window size must stay unchanged before the field is rebuilt.
	ResizeSettle = 250 * time.Millisecond

	// Gallery
	GridLimit        = 16
	GridColumns      = 4
	StripSlots       = 5
	StripHeight      = 96
	CarouselInterval = 4 * time.Second

	// Audio cue
	CueSampleRate = 44100
	CueGain       = 0.25
)
