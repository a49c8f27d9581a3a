package game

import (
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/glowfield/internal/config"
	"github.com/iburimskiy/glowfield/internal/ui"
)

const (
	toggleWidth  = 120
	toggleHeight = 36
	toggleMargin = 20
	cellGap      = 8
	stripGap     = 12
)

var (
	pageColor     = color.RGBA{R: 244, G: 241, B: 236, A: 255}
	visualColor   = color.RGBA{R: 24, G: 24, B: 28, A: 255}
	frameColor    = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	selectedColor = color.RGBA{R: 152, G: 206, B: 68, A: 255}
	captionColor  = color.RGBA{R: 40, G: 40, B: 40, A: 255}

	captionFace = text.NewGoXFace(basicfont.Face7x13)
)

func (g *Game) Draw(screen *ebiten.Image) {
	if g.mode.Visual() {
		screen.Fill(visualColor)
	} else {
		screen.Fill(pageColor)
	}

	if g.canvas != nil {
		op := &ebiten.DrawImageOptions{}
		if g.mode.Visual() {
			op.ColorScale.ScaleAlpha(0.25)
		}
		screen.DrawImage(g.canvas.img, op)
	}

	if g.mode.Visual() {
		g.drawGrid(screen)
	}
	g.drawStrip(screen)
	g.drawDisplay(screen)
	g.drawToggle(screen)
	g.drawStatus(screen)
}

func (g *Game) toggleRect() image.Rectangle {
	x := g.viewW - toggleWidth - toggleMargin
	return image.Rect(x, toggleMargin, x+toggleWidth, toggleMargin+toggleHeight)
}

func (g *Game) stripRects() []image.Rectangle {
	n := len(g.carousel.Window(config.StripSlots))
	area := image.Rect(0, g.viewH-config.StripHeight-stripGap, g.viewW, g.viewH-stripGap)
	return ui.Row(area, n, stripGap)
}

func (g *Game) gridRects() []image.Rectangle {
	side := min(g.viewW, g.viewH-config.StripHeight-3*stripGap) - 2*toggleMargin
	if side <= 0 {
		return nil
	}
	x := (g.viewW - side) / 2
	y := (g.viewH - config.StripHeight - stripGap - side) / 2
	return ui.Grid(image.Rect(x, y, x+side, y+side), len(g.gallery.Cells()), config.GridColumns, cellGap)
}

func (g *Game) drawGrid(screen *ebiten.Image) {
	cells := g.gallery.Cells()
	for i, r := range g.gridRects() {
		g.drawPicture(screen, cells[i].Image, r)
	}
}

func (g *Game) drawStrip(screen *ebiten.Image) {
	window := g.carousel.Window(config.StripSlots)
	selected, hasSel := g.gallery.Selected()
	items := g.gallery.Items()
	for i, r := range g.stripRects() {
		idx := window[i]
		g.drawPicture(screen, items[idx].Image, r)
		border := frameColor
		if hasSel && idx == selected {
			border = selectedColor
		}
		width := float32(1)
		if idx == g.carousel.Index() {
			width = 3
		}
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), width, border, false)
	}
}

func (g *Game) drawDisplay(screen *ebiten.Image) {
	item, ok := g.gallery.Display()
	if !ok {
		return
	}
	box := image.Rect(g.viewW/5, g.viewH/10, g.viewW*4/5, g.viewH-config.StripHeight-3*stripGap)
	vector.DrawFilledRect(screen, float32(box.Min.X), float32(box.Min.Y), float32(box.Dx()), float32(box.Dy()), color.RGBA{R: 255, G: 255, B: 255, A: 230}, false)
	g.drawPicture(screen, item.Image, box.Inset(cellGap))
	drawCaption(screen, item.ID, box.Min.X+cellGap, box.Max.Y+4)
}

// drawPicture draws the image at path fitted into r, or a placeholder if it
// cannot be loaded.
func (g *Game) drawPicture(screen *ebiten.Image, path string, r image.Rectangle) {
	img := g.images.get(path)
	if img == nil {
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), color.RGBA{R: 200, G: 196, B: 188, A: 255}, false)
		return
	}
	b := img.Bounds()
	dst := ui.Fit(r, b.Dx(), b.Dy())
	if dst.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dst.Dx())/float64(b.Dx()), float64(dst.Dy())/float64(b.Dy()))
	op.GeoM.Translate(float64(dst.Min.X), float64(dst.Min.Y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func (g *Game) drawToggle(screen *ebiten.Image) {
	r := g.toggleRect()

	// Button background
	var bgColor color.Color
	if g.togglePressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if g.toggleHovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bgColor, false)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	// Knob sits right when visual mode is on.
	knob := float32(r.Min.X + r.Dy()/2)
	if g.mode.Visual() {
		knob = float32(r.Max.X - r.Dy()/2)
	}
	vector.DrawFilledCircle(screen, knob, float32(r.Min.Y+r.Dy()/2), float32(r.Dy()/2-4), color.White, true)

	label := "Visual"
	if g.mode.Visual() {
		label = "Field"
	}
	op := &text.DrawOptions{}
	w, _ := text.Measure(label, captionFace, 0)
	op.GeoM.Translate(float64(r.Min.X)+(float64(r.Dx())-w)/2, float64(r.Min.Y+r.Dy()/2-7))
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, label, captionFace, op)

	// Cue indicator pulses while a sound plays.
	if lvl := clamp01(g.cue.Level() * 4); lvl > 0 {
		vector.DrawFilledCircle(screen, float32(r.Min.X-12), float32(r.Min.Y+r.Dy()/2), 5, color.RGBA{R: 152, G: 206, B: 68, A: uint8(255 * lvl)}, true)
	}
}

func drawCaption(screen *ebiten.Image, s string, x, y int) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(captionColor)
	text.Draw(screen, s, captionFace, op)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	running := time.Duration(g.driver.Frames()) * time.Second / time.Duration(ebiten.TPS())
	var status string
	if g.mode.Visual() {
		status = "Visual mode - V or the toggle to return to the field"
	} else {
		status = "Field " + g.driver.Config().Name + " " + formatDuration(running)
	}
	if g.cue.Muted() {
		status += " | muted"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}
