package blob

import (
	"errors"

	"github.com/iburimskiy/glowfield/internal/config"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	ErrNoSurface   = errors.New("blob: drawing surface unavailable")
	ErrEmptyCanvas = errors.New("blob: canvas has zero size")
)

var transparentWhite = colorful.Color{R: 1, G: 1, B: 1}

// Step advances every circle by one tick and repaints the field. Circles are
// moved and painted in slice order. Nothing is mutated when the surface is
// missing or the canvas has no area.
func Step(s Surface, items []Circle, width, height float64, cfg config.Blobs) error {
	if s == nil {
		return ErrNoSurface
	}
	if width <= 0 || height <= 0 {
		return ErrEmptyCanvas
	}

	s.Clear()
	s.SetComposite(CompositeLighter)
	for i := range items {
		c := &items[i]
		advance(c, width, height, cfg)
		paint(s, c, cfg.Gradient)
	}
	return nil
}

// advance decides reflection from the position the circle is about to reach,
// then moves it.
func advance(c *Circle, width, height float64, cfg config.Blobs) {
	loX, hiX := bounds(width, c.Radius, cfg.Boundary)
	loY, hiY := bounds(height, c.Radius, cfg.Boundary)

	c.Vel.X = reflect(c.Pos.X+c.Vel.X*cfg.StepX, c.Vel.X, loX, hiX)
	c.Vel.Y = reflect(c.Pos.Y+c.Vel.Y*cfg.StepY, c.Vel.Y, loY, hiY)
	c.Pos.X += c.Vel.X * cfg.StepX
	c.Pos.Y += c.Vel.Y * cfg.StepY

	if cfg.Blur.Zero() {
		return
	}
	c.BlurVel = reflect(c.Blur+c.BlurVel*cfg.BlurStep, c.BlurVel, cfg.Blur.Min, cfg.Blur.Max)
	c.Blur += c.BlurVel * cfg.BlurStep
}

func bounds(extent, radius float64, b config.Boundary) (lo, hi float64) {
	if b == config.BoundaryEdge {
		return 0, extent
	}
	return -radius, extent + radius
}

// reflect flips v when next lies on or past a bound and v points that way. A
// circle already outside and heading back in keeps its direction.
func reflect(next, v, lo, hi float64) float64 {
	if (next >= hi && v > 0) || (next <= lo && v < 0) {
		return -v
	}
	return v
}

func paint(s Surface, c *Circle, style config.Gradient) {
	var g *Gradient
	switch style {
	case config.GradientLinear:
		g = NewLinearGradient(c.Box.Min, c.Box.Max)
		g.AddColorStop(0, c.Start, 1)
		g.AddColorStop(1, c.End, 1)
	default:
		g = NewRadialGradient(c.Pos, 0, c.Radius)
		g.AddColorStop(0, c.Start, 1)
		g.AddColorStop(0.3, c.End, 1)
		g.AddColorStop(1, transparentWhite, 0)
	}
	s.SetBlur(c.Blur)
	s.FillCircle(c.Pos, c.Radius, g)
}
