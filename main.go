package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/glowfield/internal/config"
	"github.com/iburimskiy/glowfield/internal/game"
)

func main() {
	var (
		variant string
		seed    int64
		images  string
		mute    bool
	)
	flag.StringVar(&variant, "variant", "glow", "blob field style: glow or haze")
	flag.Int64Var(&seed, "seed", 0, "RNG seed for the blob field (0 = time based)")
	flag.StringVar(&images, "images", "", "comma-separated gallery image paths")
	flag.BoolVar(&mute, "mute", false, "disable interaction sounds")
	flag.Parse()

	logger := log.New(os.Stderr, "glowfield: ", log.LstdFlags)

	blobs, err := config.Preset(variant)
	if err != nil {
		logger.Fatal(err)
	}
	var paths []string
	if images != "" {
		paths = strings.Split(images, ",")
	}
	paths = append(paths, flag.Args()...)

	g, err := game.New(game.Options{
		Blobs:  blobs,
		Seed:   seed,
		Images: paths,
		Mute:   mute,
		Logger: logger,
	})
	if err != nil {
		logger.Fatal(err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal(err)
	}
}
