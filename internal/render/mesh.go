// Package render paints blob fields: a CPU rasterizer for headless output and
// the triangle mesh the GPU canvas draws.
package render

import (
	"math"
	"sort"

	"github.com/iburimskiy/glowfield/internal/blob"
)

// DiscSegments is the number of slices a circle mesh is cut into.
const DiscSegments = 64

// Vertex is a mesh point with a straight-alpha color.
type Vertex struct {
	X, Y       float32
	R, G, B, A float32
}

// Coverage returns how opaque a point at distance d from the center is. With
// blur, the edge fades linearly from radius-blur/2 to radius+blur/2.
func Coverage(d, radius, blur float64) float64 {
	if blur <= 0 {
		if d <= radius {
			return 1
		}
		return 0
	}
	return clamp01((radius + blur/2 - d) / blur)
}

// Disc appends a triangulated disc to vs and is. Rings are placed at every
// radial stop and at the blur edges so the per-vertex interpolation matches
// the gradient.
func Disc(vs []Vertex, is []uint16, center blob.Vec2, radius, blur float64, g *blob.Gradient) ([]Vertex, []uint16) {
	if radius <= 0 {
		return vs, is
	}
	rings := ringRadii(radius, blur, g)
	base := uint16(len(vs))

	vs = append(vs, shade(center, center, radius, blur, g))
	for _, r := range rings {
		for s := 0; s < DiscSegments; s++ {
			a := 2 * math.Pi * float64(s) / DiscSegments
			p := blob.Vec2{X: center.X + r*math.Cos(a), Y: center.Y + r*math.Sin(a)}
			vs = append(vs, shade(p, center, radius, blur, g))
		}
	}

	ring := func(k, s int) uint16 { return base + 1 + uint16(k*DiscSegments+s%DiscSegments) }
	for s := 0; s < DiscSegments; s++ {
		is = append(is, base, ring(0, s), ring(0, s+1))
	}
	for k := 1; k < len(rings); k++ {
		for s := 0; s < DiscSegments; s++ {
			a, b := ring(k-1, s), ring(k-1, s+1)
			c, d := ring(k, s), ring(k, s+1)
			is = append(is, a, c, b, b, c, d)
		}
	}
	return vs, is
}

func ringRadii(radius, blur float64, g *blob.Gradient) []float64 {
	outer := radius
	if blur > 0 {
		outer = radius + blur/2
	}
	rs := []float64{outer}
	if blur > 0 {
		if inner := radius - blur/2; inner > 0 {
			rs = append(rs, inner)
		}
	}
	if g != nil && g.Kind == blob.Radial {
		for _, s := range g.Stops {
			if r := g.R0 + s.Offset*(g.R1-g.R0); r > 0 && r < outer {
				rs = append(rs, r)
			}
		}
	}
	sort.Float64s(rs)
	out := rs[:1]
	for _, r := range rs[1:] {
		if r-out[len(out)-1] > 1e-6 {
			out = append(out, r)
		}
	}
	return out
}

func shade(p, center blob.Vec2, radius, blur float64, g *blob.Gradient) Vertex {
	v := Vertex{X: float32(p.X), Y: float32(p.Y)}
	if g == nil {
		return v
	}
	c, a := g.At(p)
	c = c.Clamped()
	a *= Coverage(math.Sqrt(p.Sub(center).Len2()), radius, blur)
	v.R, v.G, v.B, v.A = float32(c.R), float32(c.G), float32(c.B), float32(a)
	return v
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
