package render

import (
	"image"
	"math"

	"github.com/iburimskiy/glowfield/internal/blob"
)

// Raster is a blob.Surface backed by an *image.RGBA.
type Raster struct {
	img  *image.RGBA
	mode blob.Composite
	blur float64
}

func NewRaster(width, height int) *Raster {
	return &Raster{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Image returns the backing image. It is overwritten by the next frame.
func (r *Raster) Image() *image.RGBA { return r.img }

// Snapshot copies the current frame.
func (r *Raster) Snapshot() *image.RGBA {
	out := image.NewRGBA(r.img.Rect)
	copy(out.Pix, r.img.Pix)
	return out
}

func (r *Raster) Clear() { clear(r.img.Pix) }

func (r *Raster) SetComposite(c blob.Composite) { r.mode = c }

func (r *Raster) SetBlur(px float64) { r.blur = math.Max(0, px) }

func (r *Raster) FillCircle(center blob.Vec2, radius float64, g *blob.Gradient) {
	if radius <= 0 || g == nil {
		return
	}
	reach := radius + r.blur/2
	area := image.Rect(
		int(math.Floor(center.X-reach)), int(math.Floor(center.Y-reach)),
		int(math.Ceil(center.X+reach)), int(math.Ceil(center.Y+reach)),
	).Intersect(r.img.Rect)

	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			p := blob.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			cov := Coverage(math.Sqrt(p.Sub(center).Len2()), radius, r.blur)
			if cov <= 0 {
				continue
			}
			c, a := g.At(p)
			c = c.Clamped()
			a *= cov
			r.blend(x, y, c.R*a, c.G*a, c.B*a, a)
		}
	}
}

// blend composites a premultiplied source color into pixel (x, y).
func (r *Raster) blend(x, y int, sr, sg, sb, sa float64) {
	i := r.img.PixOffset(x, y)
	px := r.img.Pix[i : i+4 : i+4]
	dr, dg, db, da := float64(px[0])/255, float64(px[1])/255, float64(px[2])/255, float64(px[3])/255
	switch r.mode {
	case blob.CompositeLighter:
		dr, dg, db, da = dr+sr, dg+sg, db+sb, da+sa
	default:
		k := 1 - sa
		dr, dg, db, da = sr+dr*k, sg+dg*k, sb+db*k, sa+da*k
	}
	px[0] = to8(dr)
	px[1] = to8(dg)
	px[2] = to8(db)
	px[3] = to8(da)
}

func to8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}
