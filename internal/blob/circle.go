// Package blob animates a field of gradient-filled circles that drift across a
// canvas and bounce off its edges.
package blob

import "github.com/lucasb-eyer/go-colorful"

type Vec2 struct{ X, Y float64 }

func (a Vec2) Add(b Vec2) Vec2    { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2    { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Mul(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }
func (a Vec2) Dot(b Vec2) float64 { return a.X*b.X + a.Y*b.Y }
func (a Vec2) Len2() float64      { return a.X*a.X + a.Y*a.Y }

type Rect struct{ Min, Max Vec2 }

// Circle is one blob.
type Circle struct {
	Pos    Vec2
	Vel    Vec2
	Radius float64

	// Blur is the edge softness in pixels. It moves by BlurVel each tick when
	// the field has a blur range configured.
	Blur    float64
	BlurVel float64

	Start, End colorful.Color

	// Box is the linear gradient extent. It is fixed at creation and does not
	// follow the circle.
	Box Rect
}
