package blob

import (
	"math"
	"math/rand"

	"github.com/iburimskiy/glowfield/internal/config"
)

// maxRedraws bounds how often a velocity component that rounded to zero is resampled.
const maxRedraws = 16

// Generate builds count fresh circles for a width x height canvas. Nothing is
// carried over from any previous field.
func Generate(rng *rand.Rand, cfg config.Blobs, width, height float64, count int) []Circle {
	if count <= 0 || len(cfg.Palette) == 0 {
		return nil
	}
	items := make([]Circle, 0, count)
	m := cfg.SpawnMargin
	for i := 0; i < count; i++ {
		pos := Vec2{
			X: uniform(rng, -m, width+m),
			Y: uniform(rng, -m, height+m),
		}
		radius := uniform(rng, cfg.Radius.Min, cfg.Radius.Max)
		pair := cfg.Palette[rng.Intn(len(cfg.Palette))]
		c := Circle{
			Pos:    pos,
			Radius: radius,
			Vel: Vec2{
				X: sampleVelocity(rng, cfg),
				Y: sampleVelocity(rng, cfg),
			},
			Start: pair.Start,
			End:   pair.End,
			Box: Rect{
				Min: Vec2{pos.X - radius, pos.Y - radius},
				Max: Vec2{pos.X + radius, pos.Y + radius},
			},
		}
		if !cfg.Blur.Zero() {
			c.Blur = uniform(rng, cfg.Blur.Min, cfg.Blur.Max)
			c.BlurVel = 1
			if rng.Intn(2) == 0 {
				c.BlurVel = -1
			}
		}
		items = append(items, c)
	}
	return items
}

func sampleVelocity(rng *rand.Rand, cfg config.Blobs) float64 {
	v := uniform(rng, cfg.Velocity.Min, cfg.Velocity.Max)
	if !cfg.RoundVelocity {
		return v
	}
	for i := 0; i < maxRedraws; i++ {
		r := math.Round(v)
		if !cfg.Velocity.Contains(r) {
			r = math.Trunc(v)
		}
		if r != 0 {
			return r
		}
		v = uniform(rng, cfg.Velocity.Min, cfg.Velocity.Max)
	}
	return math.Trunc(v)
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
