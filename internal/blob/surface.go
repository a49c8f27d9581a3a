package blob

// Composite is the blend mode used for subsequent fills.
type Composite int

const (
	CompositeSourceOver Composite = iota
	// CompositeLighter sums overlapping colors, so overlapping blobs brighten.
	CompositeLighter
)

// Surface is the drawing target the stepper paints on.
type Surface interface {
	Clear()
	SetComposite(Composite)
	// SetBlur sets the edge softness in pixels for subsequent fills.
	SetBlur(px float64)
	FillCircle(center Vec2, radius float64, g *Gradient)
}
