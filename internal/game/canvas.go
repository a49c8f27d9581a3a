package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/glowfield/internal/blob"
	"github.com/iburimskiy/glowfield/internal/render"
)

var whiteSubImage *ebiten.Image

// canvas is the on-screen blob.Surface: an offscreen image the driver paints
// during Update and Draw copies to the screen.
type canvas struct {
	img   *ebiten.Image
	blend ebiten.Blend
	blur  float64

	mesh    []render.Vertex
	indices []uint16
	verts   []ebiten.Vertex
}

func newCanvas(width, height int) *canvas {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return &canvas{
		img:   ebiten.NewImage(width, height),
		blend: ebiten.BlendSourceOver,
	}
}

func (c *canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *canvas) Dispose() { c.img.Deallocate() }

func (c *canvas) Clear() { c.img.Clear() }

func (c *canvas) SetComposite(m blob.Composite) {
	switch m {
	case blob.CompositeLighter:
		c.blend = ebiten.BlendLighter
	default:
		c.blend = ebiten.BlendSourceOver
	}
}

func (c *canvas) SetBlur(px float64) {
	if px < 0 {
		px = 0
	}
	c.blur = px
}

// FillCircle draws the circle as a triangle mesh whose vertex colors carry
// the gradient, so no per-blob texture is needed.
func (c *canvas) FillCircle(center blob.Vec2, radius float64, g *blob.Gradient) {
	c.mesh, c.indices = render.Disc(c.mesh[:0], c.indices[:0], center, radius, c.blur, g)
	if len(c.indices) == 0 {
		return
	}
	c.verts = c.verts[:0]
	for _, v := range c.mesh {
		c.verts = append(c.verts, ebiten.Vertex{
			DstX:   v.X,
			DstY:   v.Y,
			SrcX:   1,
			SrcY:   1,
			ColorR: v.R,
			ColorG: v.G,
			ColorB: v.B,
			ColorA: v.A,
		})
	}
	op := &ebiten.DrawTrianglesOptions{Blend: c.blend}
	c.img.DrawTriangles(c.verts, c.indices, whiteSubImage, op)
}
