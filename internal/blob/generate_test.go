package blob

import (
	"math"
	"math/rand"
	"testing"

	"github.com/iburimskiy/glowfield/internal/config"
)

func TestGenerate_CountAndRanges(t *testing.T) {
	for _, cfg := range []config.Blobs{config.Glow(), config.Haze()} {
		rng := rand.New(rand.NewSource(7))
		for _, count := range []int{1, 6, 16, 200} {
			items := Generate(rng, cfg, 1280, 720, count)
			if len(items) != count {
				t.Fatalf("%s: expected %d circles, got %d", cfg.Name, count, len(items))
			}
			for i, c := range items {
				if !cfg.Radius.Contains(c.Radius) {
					t.Fatalf("%s circle %d: radius %.2f outside [%g, %g]", cfg.Name, i, c.Radius, cfg.Radius.Min, cfg.Radius.Max)
				}
				if !cfg.Velocity.Contains(c.Vel.X) || !cfg.Velocity.Contains(c.Vel.Y) {
					t.Fatalf("%s circle %d: velocity (%.2f,%.2f) outside [%g, %g]", cfg.Name, i, c.Vel.X, c.Vel.Y, cfg.Velocity.Min, cfg.Velocity.Max)
				}
				m := cfg.SpawnMargin
				if c.Pos.X < -m || c.Pos.X > 1280+m || c.Pos.Y < -m || c.Pos.Y > 720+m {
					t.Fatalf("%s circle %d: position (%.1f,%.1f) outside spawn area", cfg.Name, i, c.Pos.X, c.Pos.Y)
				}
			}
		}
	}
}

func TestGenerate_RoundedVelocityNeverZero(t *testing.T) {
	cfg := config.Haze()
	items := Generate(rand.New(rand.NewSource(3)), cfg, 800, 600, 500)
	for i, c := range items {
		for _, v := range []float64{c.Vel.X, c.Vel.Y} {
			if v == 0 {
				t.Fatalf("circle %d: zero velocity component", i)
			}
			if v != math.Round(v) {
				t.Fatalf("circle %d: velocity %.3f not whole", i, v)
			}
		}
	}
}

func TestGenerate_RoundingStaysInRange(t *testing.T) {
	cfg := config.Haze()
	cfg.Velocity = config.Range{Min: -1.6, Max: 1.6}
	items := Generate(rand.New(rand.NewSource(11)), cfg, 800, 600, 300)
	for i, c := range items {
		if math.Abs(c.Vel.X) != 1 || math.Abs(c.Vel.Y) != 1 {
			t.Fatalf("circle %d: velocity (%.1f,%.1f), want components of magnitude 1", i, c.Vel.X, c.Vel.Y)
		}
	}
}

func TestGenerate_GradientBoxAndBlur(t *testing.T) {
	cfg := config.Haze()
	for i, c := range Generate(rand.New(rand.NewSource(5)), cfg, 800, 600, 50) {
		if c.Box.Min.X != c.Pos.X-c.Radius || c.Box.Max.Y != c.Pos.Y+c.Radius {
			t.Fatalf("circle %d: box %+v does not surround start position %+v r=%.1f", i, c.Box, c.Pos, c.Radius)
		}
		if !cfg.Blur.Contains(c.Blur) {
			t.Fatalf("circle %d: blur %.2f outside [%g, %g]", i, c.Blur, cfg.Blur.Min, cfg.Blur.Max)
		}
		if c.BlurVel != 1 && c.BlurVel != -1 {
			t.Fatalf("circle %d: blur direction %.2f, want +-1", i, c.BlurVel)
		}
	}

	for i, c := range Generate(rand.New(rand.NewSource(5)), config.Glow(), 800, 600, 20) {
		if c.Blur != 0 || c.BlurVel != 0 {
			t.Fatalf("glow circle %d: unexpected blur %.2f/%.2f", i, c.Blur, c.BlurVel)
		}
	}
}

func TestGenerate_PaletteMembership(t *testing.T) {
	cfg := config.Glow()
	for i, c := range Generate(rand.New(rand.NewSource(9)), cfg, 800, 600, 60) {
		found := false
		for _, p := range cfg.Palette {
			if p.Start == c.Start && p.End == c.End {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("circle %d: colors %s/%s not in palette", i, c.Start.Hex(), c.End.Hex())
		}
	}
}

func TestGenerate_ZeroCount(t *testing.T) {
	if items := Generate(rand.New(rand.NewSource(1)), config.Glow(), 800, 600, 0); len(items) != 0 {
		t.Fatalf("expected no circles, got %d", len(items))
	}
}
