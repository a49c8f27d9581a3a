package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Boundary selects where a blob bounces.
type Boundary int

const (
	// BoundaryRadius lets a blob leave the canvas completely (edge plus its radius) before reflecting.
	BoundaryRadius Boundary = iota
	// BoundaryEdge reflects at the raw canvas edge, so blobs turn back while still partly visible.
	BoundaryEdge
)

func (b Boundary) String() string {
	switch b {
	case BoundaryRadius:
		return "radius"
	case BoundaryEdge:
		return "edge"
	}
	return fmt.Sprintf("Boundary(%d)", int(b))
}

// Gradient selects how a blob is filled.
type Gradient int

const (
	// GradientRadial fills center to edge, fading to transparent.
	GradientRadial Gradient = iota
	// GradientLinear fills corner to corner across a box fixed at creation.
	GradientLinear
)

func (g Gradient) String() string {
	switch g {
	case GradientRadial:
		return "radial"
	case GradientLinear:
		return "linear"
	}
	return fmt.Sprintf("Gradient(%d)", int(g))
}

// Range is a closed interval [Min, Max].
type Range struct {
	Min, Max float64
}

func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// Zero reports whether the range is unset.
func (r Range) Zero() bool { return r.Min == 0 && r.Max == 0 }

// Pair is the two colors a blob is painted with.
type Pair struct {
	Start, End colorful.Color
}

// Blobs configures the floating blob field.
type Blobs struct {
	Name    string
	Palette []Pair

	Radius        Range
	Velocity      Range
	RoundVelocity bool // round sampled velocity to whole pixels, redrawing zeros

	CountNarrow int
	CountWide   int
	Breakpoint  float64

	// SpawnMargin widens the sampling area past every canvas edge.
	SpawnMargin float64

	StepX, StepY float64

	// Blur oscillates inside this range by BlurStep per tick; a zero range disables blur.
	Blur     Range
	BlurStep float64

	Boundary Boundary
	Gradient Gradient
}

// Glow is the large, unblurred radial field used by the landing page.
func Glow() Blobs {
	return Blobs{
		Name: "glow",
		Palette: []Pair{
			mustPair("#cfc7b9", "#b8af9d"),
			mustPair("#d4d9cc", "#98ce44"),
			mustPair("#d9c9b6", "#c2b09b"),
		},
		Radius:      Range{Min: 150, Max: 250},
		Velocity:    Range{Min: -1.2, Max: 1.2},
		CountNarrow: 6,
		CountWide:   16,
		Breakpoint:  NarrowBreakpoint,
		StepX:       1,
		StepY:       1,
		Boundary:    BoundaryRadius,
		Gradient:    GradientRadial,
	}
}

// Haze is the smaller, blurred linear field.
func Haze() Blobs {
	return Blobs{
		Name: "haze",
		Palette: []Pair{
			mustPair("#f3d9e1", "#c9b6e4"),
			mustPair("#d6eadf", "#95b8d1"),
			mustPair("#fbe7c6", "#b4f8c8"),
		},
		Radius:        Range{Min: 80, Max: 140},
		Velocity:      Range{Min: -2, Max: 2},
		RoundVelocity: true,
		CountNarrow:   5,
		CountWide:     12,
		Breakpoint:    NarrowBreakpoint,
		SpawnMargin:   100,
		StepX:         0.5,
		StepY:         0.5,
		Blur:          Range{Min: 20, Max: 60},
		BlurStep:      0.2,
		Boundary:      BoundaryEdge,
		Gradient:      GradientLinear,
	}
}

// Preset returns the named configuration.
func Preset(name string) (Blobs, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "glow":
		return Glow(), nil
	case "haze":
		return Haze(), nil
	}
	return Blobs{}, fmt.Errorf("unknown variant %q (want glow or haze)", name)
}

// Count returns how many blobs a viewport of the given width gets.
func (b Blobs) Count(viewportWidth float64) int {
	if viewportWidth < b.Breakpoint {
		return b.CountNarrow
	}
	return b.CountWide
}

// Validate reports the first inconsistency in b.
func (b Blobs) Validate() error {
	var errs []error
	if len(b.Palette) == 0 {
		errs = append(errs, errors.New("palette is empty"))
	}
	if b.Radius.Min <= 0 || b.Radius.Min > b.Radius.Max {
		errs = append(errs, fmt.Errorf("radius range [%g, %g] is invalid", b.Radius.Min, b.Radius.Max))
	}
	if b.Velocity.Min > b.Velocity.Max {
		errs = append(errs, fmt.Errorf("velocity range [%g, %g] is inverted", b.Velocity.Min, b.Velocity.Max))
	}
	if b.RoundVelocity && math.Round(b.Velocity.Min) == 0 && math.Round(b.Velocity.Max) == 0 {
		errs = append(errs, fmt.Errorf("velocity range [%g, %g] rounds to zero", b.Velocity.Min, b.Velocity.Max))
	}
	if b.CountNarrow <= 0 || b.CountWide <= 0 {
		errs = append(errs, fmt.Errorf("counts must be positive, got %d/%d", b.CountNarrow, b.CountWide))
	}
	if b.StepX <= 0 || b.StepY <= 0 {
		errs = append(errs, fmt.Errorf("step multipliers must be positive, got %g/%g", b.StepX, b.StepY))
	}
	if b.Blur.Min < 0 || b.Blur.Min > b.Blur.Max {
		errs = append(errs, fmt.Errorf("blur range [%g, %g] is invalid", b.Blur.Min, b.Blur.Max))
	}
	if b.SpawnMargin < 0 {
		errs = append(errs, fmt.Errorf("spawn margin %g is negative", b.SpawnMargin))
	}
	return errors.Join(errs...)
}

// ParsePair parses two hex colors such as "#cfc7b9".
func ParsePair(start, end string) (Pair, error) {
	s, err := colorful.Hex(start)
	if err != nil {
		return Pair{}, fmt.Errorf("start color: %w", err)
	}
	e, err := colorful.Hex(end)
	if err != nil {
		return Pair{}, fmt.Errorf("end color: %w", err)
	}
	return Pair{Start: s, End: e}, nil
}

// ParsePalette parses "start:end" pairs separated by commas, e.g. "#cfc7b9:#b8af9d,#d4d9cc:#98ce44".
func ParsePalette(s string) ([]Pair, error) {
	var out []Pair
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		start, end, ok := strings.Cut(field, ":")
		if !ok {
			return nil, fmt.Errorf("palette entry %q: want start:end", field)
		}
		p, err := ParsePair(strings.TrimSpace(start), strings.TrimSpace(end))
		if err != nil {
			return nil, fmt.Errorf("palette entry %q: %w", field, err)
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil, errors.New("palette is empty")
	}
	return out, nil
}

func mustPair(start, end string) Pair {
	p, err := ParsePair(start, end)
	if err != nil {
		panic(err)
	}
	return p
}
