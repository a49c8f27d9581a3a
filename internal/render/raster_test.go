package render

import (
	"math/rand"
	"testing"

	"github.com/iburimskiy/glowfield/internal/blob"
	"github.com/iburimskiy/glowfield/internal/config"
	"github.com/lucasb-eyer/go-colorful"
)

func solid(c colorful.Color, alpha float64) *blob.Gradient {
	g := blob.NewLinearGradient(blob.Vec2{}, blob.Vec2{X: 1})
	g.AddColorStop(0, c, alpha)
	return g
}

func TestCoverage(t *testing.T) {
	cases := []struct {
		d, r, blur, want float64
	}{
		{0, 10, 0, 1},
		{10, 10, 0, 1},
		{10.01, 10, 0, 0},
		{5, 10, 4, 1},
		{10, 10, 4, 0.5},
		{12, 10, 4, 0},
		{11, 10, 4, 0.25},
	}
	for _, tc := range cases {
		if got := Coverage(tc.d, tc.r, tc.blur); got != tc.want {
			t.Fatalf("Coverage(%g, %g, %g) = %g, want %g", tc.d, tc.r, tc.blur, got, tc.want)
		}
	}
}

func TestRaster_FillInsideOnly(t *testing.T) {
	r := NewRaster(40, 40)
	r.SetComposite(blob.CompositeSourceOver)
	r.FillCircle(blob.Vec2{X: 20, Y: 20}, 5, solid(colorful.Color{R: 1}, 1))

	if c := r.Image().RGBAAt(20, 20); c.R != 255 || c.A != 255 || c.G != 0 {
		t.Fatalf("center pixel = %+v, want opaque red", c)
	}
	if c := r.Image().RGBAAt(2, 2); c.A != 0 {
		t.Fatalf("pixel outside circle painted: %+v", c)
	}
}

func TestRaster_LighterAddsUp(t *testing.T) {
	r := NewRaster(20, 20)
	g := solid(colorful.Color{R: 0.4, G: 0.2}, 1)

	r.SetComposite(blob.CompositeLighter)
	r.FillCircle(blob.Vec2{X: 10, Y: 10}, 6, g)
	r.FillCircle(blob.Vec2{X: 10, Y: 10}, 6, g)
	c := r.Image().RGBAAt(10, 10)
	if c.R != 204 || c.G != 102 {
		t.Fatalf("lighter overlap = %+v, want R=204 G=102", c)
	}

	r.Clear()
	r.SetComposite(blob.CompositeSourceOver)
	r.FillCircle(blob.Vec2{X: 10, Y: 10}, 6, g)
	r.FillCircle(blob.Vec2{X: 10, Y: 10}, 6, g)
	c = r.Image().RGBAAt(10, 10)
	if c.R != 102 || c.G != 51 {
		t.Fatalf("source-over overlap = %+v, want R=102 G=51", c)
	}
}

func TestRaster_BlurSoftensEdge(t *testing.T) {
	r := NewRaster(60, 60)
	r.SetComposite(blob.CompositeSourceOver)
	r.SetBlur(10)
	r.FillCircle(blob.Vec2{X: 30, Y: 30}, 20, solid(colorful.Color{G: 1}, 1))

	inner := r.Image().RGBAAt(30, 30).A
	edge := r.Image().RGBAAt(49, 30).A
	outside := r.Image().RGBAAt(56, 30).A
	if inner != 255 {
		t.Fatalf("center alpha %d, want 255", inner)
	}
	if edge == 0 || edge == 255 {
		t.Fatalf("edge alpha %d should be partial", edge)
	}
	if outside != 0 {
		t.Fatalf("alpha past the blur band = %d", outside)
	}
}

func TestRaster_ClipsOffCanvas(t *testing.T) {
	r := NewRaster(10, 10)
	r.SetComposite(blob.CompositeLighter)
	r.FillCircle(blob.Vec2{X: -100, Y: -100}, 20, solid(colorful.Color{R: 1}, 1))
	r.FillCircle(blob.Vec2{X: 0, Y: 0}, 200, solid(colorful.Color{R: 1}, 1))
	if c := r.Image().RGBAAt(9, 9); c.R != 255 {
		t.Fatalf("large circle should cover canvas, got %+v", c)
	}
}

func TestRaster_StepsAField(t *testing.T) {
	cfg := config.Glow()
	items := blob.Generate(rand.New(rand.NewSource(1)), cfg, 160, 90, 4)
	r := NewRaster(160, 90)
	if err := blob.Step(r, items, 160, 90, cfg); err != nil {
		t.Fatalf("Step: %v", err)
	}
	lit := 0
	for i := 3; i < len(r.Image().Pix); i += 4 {
		if r.Image().Pix[i] > 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Fatal("stepping a field painted nothing")
	}
	snap := r.Snapshot()
	r.Clear()
	kept := 0
	for i := 3; i < len(snap.Pix); i += 4 {
		if snap.Pix[i] > 0 {
			kept++
		}
	}
	if kept != lit {
		t.Fatalf("snapshot kept %d lit pixels, frame had %d", kept, lit)
	}
}
