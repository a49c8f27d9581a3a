// Command blob-snapshot renders a blob field without a window and writes it
// as an animated PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"math/rand"
	"os"

	"github.com/setanarut/apng"

	"github.com/iburimskiy/glowfield/internal/blob"
	"github.com/iburimskiy/glowfield/internal/config"
	"github.com/iburimskiy/glowfield/internal/render"
	"github.com/iburimskiy/glowfield/internal/ui"
)

// frameDelay is the APNG delay per frame in hundredths of a second.
const frameDelay = 3

type options struct {
	variant string
	palette string
	width   int
	height  int
	frames  int
	skip    int
	seed    int64
	out     string
}

func main() {
	var o options
	flag.StringVar(&o.variant, "variant", "glow", "blob field style: glow or haze")
	flag.StringVar(&o.palette, "palette", "", "override colors as start:end pairs, e.g. #cfc7b9:#b8af9d,#d4d9cc:#98ce44")
	flag.IntVar(&o.width, "width", 640, "canvas width")
	flag.IntVar(&o.height, "height", 360, "canvas height")
	flag.IntVar(&o.frames, "frames", 60, "frames to record")
	flag.IntVar(&o.skip, "skip", 1, "simulation ticks per recorded frame")
	flag.Int64Var(&o.seed, "seed", 42, "RNG seed")
	flag.StringVar(&o.out, "out", "blobs.png", "output APNG path")
	flag.Parse()

	frames, err := record(o)
	if err != nil {
		log.Fatal(err)
	}
	apng.Save(o.out, frames, frameDelay)
	if _, err := os.Stat(o.out); err != nil {
		log.Fatalf("write %s: %v", o.out, err)
	}
	fmt.Printf("wrote %d frames (%dx%d, %s) to %s\n", len(frames), o.width, o.height, o.variant, o.out)
}

// record drives the field through the same frame loop the window uses and
// captures every skip-th frame.
func record(o options) ([]image.Image, error) {
	if o.width <= 0 || o.height <= 0 {
		return nil, fmt.Errorf("canvas size %dx%d must be positive", o.width, o.height)
	}
	if o.frames <= 0 || o.skip <= 0 {
		return nil, fmt.Errorf("-frames and -skip must be > 0")
	}
	cfg, err := config.Preset(o.variant)
	if err != nil {
		return nil, err
	}
	if o.palette != "" {
		if cfg.Palette, err = config.ParsePalette(o.palette); err != nil {
			return nil, err
		}
	}

	loop := ui.NewFrameLoop()
	driver, err := blob.NewDriver(cfg, loop, rand.New(rand.NewSource(o.seed)))
	if err != nil {
		return nil, err
	}
	raster := render.NewRaster(o.width, o.height)
	driver.SetSurface(raster)
	driver.Regenerate(float64(o.width), float64(o.height))
	driver.Start()
	defer driver.Stop()

	out := make([]image.Image, 0, o.frames)
	for len(out) < o.frames {
		for i := 0; i < o.skip; i++ {
			loop.Tick()
		}
		out = append(out, raster.Snapshot())
	}
	return out, nil
}
