package ui

import (
	"testing"
	"time"
)

func TestCarousel_Wraps(t *testing.T) {
	c := NewCarousel(3, 0)
	c.Prev()
	if c.Index() != 2 {
		t.Fatalf("prev from 0 = %d, want 2", c.Index())
	}
	c.Next()
	c.Next()
	if c.Index() != 1 {
		t.Fatalf("index = %d, want 1", c.Index())
	}
	c.Move(-7)
	if c.Index() != 0 {
		t.Fatalf("index after -7 = %d, want 0", c.Index())
	}
}

func TestCarousel_Window(t *testing.T) {
	c := NewCarousel(6, 0)
	got := c.Window(5)
	want := []int{4, 5, 0, 1, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("window = %v, want %v", got, want)
		}
	}
	if w := NewCarousel(2, 0).Window(5); len(w) != 2 {
		t.Fatalf("window on small ring = %v", w)
	}
	if w := NewCarousel(0, 0).Window(5); w != nil {
		t.Fatalf("window on empty ring = %v", w)
	}
}

func TestCarousel_SetLen(t *testing.T) {
	c := NewCarousel(10, 0)
	c.Move(8)
	c.SetLen(4)
	if c.Index() != 0 {
		t.Fatalf("index after shrink = %d, want 0", c.Index())
	}
	c.SetLen(0)
	c.Next()
	if c.Index() != 0 {
		t.Fatal("empty ring moved")
	}
}

func TestCarousel_Autoplay(t *testing.T) {
	c := NewCarousel(3, 4*time.Second)
	t0 := time.Unix(50, 0)
	if c.Advance(t0) {
		t.Fatal("first advance only arms the timer")
	}
	if c.Advance(t0.Add(3 * time.Second)) {
		t.Fatal("advanced early")
	}
	if !c.Advance(t0.Add(4 * time.Second)) || c.Index() != 1 {
		t.Fatalf("expected advance to 1, index %d", c.Index())
	}
	c.Hold(t0.Add(6 * time.Second))
	if c.Advance(t0.Add(9 * time.Second)) {
		t.Fatal("hold did not restart the interval")
	}
}
