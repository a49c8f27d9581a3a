package blob

import (
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

type GradientKind int

const (
	Radial GradientKind = iota
	Linear
)

// Stop is a color at a position along a gradient. Alpha is straight, not premultiplied.
type Stop struct {
	Offset float64
	Color  colorful.Color
	Alpha  float64
}

// Gradient maps canvas points to colors, the way a 2D canvas gradient does.
type Gradient struct {
	Kind GradientKind

	// Radial: circles centered on From with radii R0 and R1.
	// Linear: the line From -> To.
	From, To Vec2
	R0, R1   float64

	Stops []Stop
}

func NewRadialGradient(center Vec2, r0, r1 float64) *Gradient {
	return &Gradient{Kind: Radial, From: center, To: center, R0: r0, R1: r1}
}

func NewLinearGradient(from, to Vec2) *Gradient {
	return &Gradient{Kind: Linear, From: from, To: to}
}

// AddColorStop inserts a stop, keeping stops ordered by offset. Stops with equal
// offsets keep insertion order.
func (g *Gradient) AddColorStop(offset float64, c colorful.Color, alpha float64) {
	offset = clamp01(offset)
	i := sort.Search(len(g.Stops), func(i int) bool { return g.Stops[i].Offset > offset })
	g.Stops = append(g.Stops, Stop{})
	copy(g.Stops[i+1:], g.Stops[i:])
	g.Stops[i] = Stop{Offset: offset, Color: c, Alpha: clamp01(alpha)}
}

// Param returns the gradient position of p in [0, 1].
func (g *Gradient) Param(p Vec2) float64 {
	switch g.Kind {
	case Radial:
		span := g.R1 - g.R0
		if span == 0 {
			return 0
		}
		d := math.Sqrt(p.Sub(g.From).Len2())
		return clamp01((d - g.R0) / span)
	default:
		dir := g.To.Sub(g.From)
		l2 := dir.Len2()
		if l2 == 0 {
			return 0
		}
		return clamp01(p.Sub(g.From).Dot(dir) / l2)
	}
}

// At returns the color and straight alpha of the gradient at p.
func (g *Gradient) At(p Vec2) (colorful.Color, float64) {
	return g.Sample(g.Param(p))
}

// Sample returns the color at gradient position t.
func (g *Gradient) Sample(t float64) (colorful.Color, float64) {
	n := len(g.Stops)
	if n == 0 {
		return colorful.Color{}, 0
	}
	if t <= g.Stops[0].Offset {
		return g.Stops[0].Color, g.Stops[0].Alpha
	}
	last := g.Stops[n-1]
	if t >= last.Offset {
		return last.Color, last.Alpha
	}
	i := sort.Search(n, func(i int) bool { return g.Stops[i].Offset > t })
	a, b := g.Stops[i-1], g.Stops[i]
	span := b.Offset - a.Offset
	if span <= 0 {
		return b.Color, b.Alpha
	}
	f := (t - a.Offset) / span
	return a.Color.BlendRgb(b.Color, f), a.Alpha + (b.Alpha-a.Alpha)*f
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
