package game

import (
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/glowfield/internal/blob"
	"github.com/iburimskiy/glowfield/internal/config"
	"github.com/iburimskiy/glowfield/internal/cue"
	"github.com/iburimskiy/glowfield/internal/ui"
)

type Options struct {
	Blobs  config.Blobs
	Seed   int64
	Images []string
	Mute   bool
	Logger *log.Logger
}

type Game struct {
	logger *log.Logger
	now    func() time.Time

	// field
	loop   *ui.FrameLoop
	driver *blob.Driver
	canvas *canvas
	fieldW int // size the field was last generated for
	fieldH int

	// page
	mode     ui.Mode
	gallery  *ui.Gallery
	carousel *ui.Carousel
	images   *imageCache
	cue      *cue.Player

	// viewport
	viewW  int
	viewH  int
	resize *ui.Debouncer

	// input edge detection
	prevKey map[ebiten.Key]bool

	// toggle button state
	toggleHovered bool
	togglePressed bool

	shownVisual bool
	lastErr     error
}

func New(opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	loop := ui.NewFrameLoop()
	driver, err := blob.NewDriver(opts.Blobs, loop, rand.New(rand.NewSource(seed))) // #nosec G404 -- cosmetic only
	if err != nil {
		return nil, err
	}
	driver.SetLogger(logger)

	g := &Game{
		logger:  logger,
		now:     time.Now,
		loop:    loop,
		driver:  driver,
		gallery: ui.NewGallery(config.GridLimit, itemsFromPaths(opts.Images)...),
		images:  newImageCache(logger),
		cue:     cue.NewPlayer(config.CueSampleRate, config.CueGain),
		prevKey: map[ebiten.Key]bool{},
	}
	g.carousel = ui.NewCarousel(g.gallery.Len(), config.CarouselInterval)
	g.resize = ui.NewDebouncer(config.ResizeSettle, g.applyViewport)
	if g.gallery.Len() == 0 {
		logger.Printf("no gallery images; grid and strip stay empty until images are added with O")
	}

	g.cue.SetMuted(opts.Mute)
	if !opts.Mute {
		if err := g.cue.Init(); err != nil {
			logger.Printf("audio cues disabled: %v", err)
		}
	}

	g.mode.OnChange(g.onMode)
	g.mode.Set(false)
	return g, nil
}

// onMode pauses the field in visual mode and resumes it otherwise. It runs on
// every mode notification, changed or not.
func (g *Game) onMode(visual bool) {
	if visual {
		g.driver.Stop()
	} else if !g.driver.Running() {
		g.driver.Start()
	}
	if visual != g.shownVisual {
		g.shownVisual = visual
		g.cue.Mode(visual)
	}
}

// applyViewport rebuilds the field for the settled viewport. Narrow viewports
// cannot stay in visual mode.
func (g *Game) applyViewport() {
	if g.viewW <= 0 || g.viewH <= 0 {
		return
	}
	g.fieldW, g.fieldH = g.viewW, g.viewH
	g.driver.Regenerate(float64(g.fieldW), float64(g.fieldH))
	if g.viewW < config.NarrowBreakpoint {
		g.mode.Set(false)
	}
}

// ensureCanvas keeps the drawing surface sized to the field.
func (g *Game) ensureCanvas() {
	if g.fieldW <= 0 || g.fieldH <= 0 {
		return
	}
	if g.canvas != nil {
		if w, h := g.canvas.Size(); w == g.fieldW && h == g.fieldH {
			return
		}
		g.canvas.Dispose()
	}
	g.canvas = newCanvas(g.fieldW, g.fieldH)
	g.driver.SetSurface(g.canvas)
}

func (g *Game) Update() error {
	now := g.now()

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyV) {
		g.mode.Toggle()
	}
	if justPressed(ebiten.KeyM) {
		g.cue.SetMuted(!g.cue.Muted())
	}
	if justPressed(ebiten.KeyRight) {
		g.carousel.Next()
		g.carousel.Hold(now)
	}
	if justPressed(ebiten.KeyLeft) {
		g.carousel.Prev()
		g.carousel.Hold(now)
	}
	if justPressed(ebiten.KeyEnter) {
		g.selectWork(g.carousel.Index())
	}
	if justPressed(ebiten.KeyO) {
		if err := g.openImages(); err != nil {
			g.lastErr = err
		}
	}

	mouseX, mouseY := ebiten.CursorPosition()
	toggle := g.toggleRect()
	g.toggleHovered = mouseX >= toggle.Min.X && mouseX < toggle.Max.X &&
		mouseY >= toggle.Min.Y && mouseY < toggle.Max.Y
	if g.toggleHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.togglePressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.togglePressed && g.toggleHovered {
			g.mode.Toggle()
		} else if !g.togglePressed {
			g.click(mouseX, mouseY)
		}
		g.togglePressed = false
	}

	if g.fieldW == 0 {
		// First layout: build immediately instead of waiting for a resize to settle.
		g.applyViewport()
	}
	g.resize.Poll(now)
	g.ensureCanvas()
	g.carousel.Advance(now)
	g.loop.Tick()
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.viewW || outsideHeight != g.viewH {
		settled := g.viewW != 0
		g.viewW, g.viewH = outsideWidth, outsideHeight
		if settled {
			g.resize.Trigger(g.now())
		}
	}
	return outsideWidth, outsideHeight
}

// click routes a pointer click: work strip first, then the grid in visual
// mode; anything else clears the selection.
func (g *Game) click(x, y int) {
	if i := ui.Hit(g.stripRects(), x, y); i >= 0 {
		g.selectWork(g.carousel.Window(config.StripSlots)[i])
		return
	}
	if g.mode.Visual() {
		if i := ui.Hit(g.gridRects(), x, y); i >= 0 {
			if g.gallery.ShowCell(i) {
				g.cue.Click()
			}
			return
		}
	}
	g.gallery.Reset()
}

func (g *Game) selectWork(i int) {
	if g.gallery.Select(i) {
		g.cue.Click()
	}
}

func (g *Game) addImages(paths ...string) {
	items := itemsFromPaths(paths)
	if len(items) == 0 {
		return
	}
	g.gallery.Add(items...)
	g.carousel.SetLen(g.gallery.Len())
	g.logger.Printf("added %d gallery images", len(items))
}
