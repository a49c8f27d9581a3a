package config

import (
	"strings"
	"testing"
)

func TestPresets_Validate(t *testing.T) {
	for _, b := range []Blobs{Glow(), Haze()} {
		if err := b.Validate(); err != nil {
			t.Fatalf("preset %s: unexpected error: %v", b.Name, err)
		}
	}
}

func TestPreset_Lookup(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"", "glow"},
		{"glow", "glow"},
		{" HAZE ", "haze"},
	}
	for _, tc := range cases {
		b, err := Preset(tc.name)
		if err != nil {
			t.Fatalf("Preset(%q): %v", tc.name, err)
		}
		if b.Name != tc.want {
			t.Fatalf("Preset(%q) = %s, want %s", tc.name, b.Name, tc.want)
		}
	}
	if _, err := Preset("sparkle"); err == nil {
		t.Fatal("expected error for unknown variant")
	}
}

func TestBlobs_Count_Breakpoint(t *testing.T) {
	b := Glow()
	if got := b.Count(767); got != 6 {
		t.Fatalf("narrow count = %d, want 6", got)
	}
	if got := b.Count(768); got != 16 {
		t.Fatalf("wide count = %d, want 16", got)
	}
}

func TestBlobs_Validate_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Blobs)
		want   string
	}{
		{"empty palette", func(b *Blobs) { b.Palette = nil }, "palette"},
		{"inverted radius", func(b *Blobs) { b.Radius = Range{Min: 10, Max: 5} }, "radius"},
		{"inverted velocity", func(b *Blobs) { b.Velocity = Range{Min: 1, Max: -1} }, "velocity"},
		{"rounds to zero", func(b *Blobs) { b.RoundVelocity = true; b.Velocity = Range{Min: -0.4, Max: 0.4} }, "rounds to zero"},
		{"zero count", func(b *Blobs) { b.CountNarrow = 0 }, "counts"},
		{"zero step", func(b *Blobs) { b.StepY = 0 }, "step"},
		{"bad blur", func(b *Blobs) { b.Blur = Range{Min: 5, Max: 1} }, "blur"},
	}
	for _, tc := range cases {
		b := Glow()
		tc.mutate(&b)
		err := b.Validate()
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: error %q does not mention %q", tc.name, err, tc.want)
		}
	}
}

func TestParsePalette(t *testing.T) {
	pairs, err := ParsePalette("#cfc7b9:#b8af9d, #d4d9cc:#98CE44")
	if err != nil {
		t.Fatalf("ParsePalette: %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}
	if got := pairs[1].End.Hex(); got != "#98ce44" {
		t.Fatalf("end color = %s, want #98ce44", got)
	}

	for _, bad := range []string{"", "#cfc7b9", "#zzzzzz:#000000", " , "} {
		if _, err := ParsePalette(bad); err == nil {
			t.Fatalf("ParsePalette(%q): expected error", bad)
		}
	}
}
