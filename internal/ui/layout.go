package ui

import "image"

// Grid lays n cells out in rows of cols inside area, row-major, with gap
// pixels between cells.
func Grid(area image.Rectangle, n, cols, gap int) []image.Rectangle {
	if n <= 0 || cols <= 0 || area.Empty() {
		return nil
	}
	rows := (n + cols - 1) / cols
	cw := (area.Dx() - gap*(cols-1)) / cols
	ch := (area.Dy() - gap*(rows-1)) / rows
	if cw <= 0 || ch <= 0 {
		return nil
	}
	out := make([]image.Rectangle, n)
	for i := range out {
		x := area.Min.X + (i%cols)*(cw+gap)
		y := area.Min.Y + (i/cols)*(ch+gap)
		out[i] = image.Rect(x, y, x+cw, y+ch)
	}
	return out
}

// Row lays n equal cells out horizontally, centered in area.
func Row(area image.Rectangle, n, gap int) []image.Rectangle {
	if n <= 0 || area.Empty() {
		return nil
	}
	size := area.Dy()
	if w := (area.Dx() - gap*(n-1)) / n; w < size {
		size = w
	}
	if size <= 0 {
		return nil
	}
	total := n*size + (n-1)*gap
	x := area.Min.X + (area.Dx()-total)/2
	y := area.Min.Y + (area.Dy()-size)/2
	out := make([]image.Rectangle, n)
	for i := range out {
		out[i] = image.Rect(x, y, x+size, y+size)
		x += size + gap
	}
	return out
}

// Hit returns the index of the rectangle containing (x, y), or -1.
func Hit(rects []image.Rectangle, x, y int) int {
	p := image.Pt(x, y)
	for i, r := range rects {
		if p.In(r) {
			return i
		}
	}
	return -1
}

// Fit scales a w x h image to fit inside box, centered, preserving aspect.
func Fit(box image.Rectangle, w, h int) image.Rectangle {
	if w <= 0 || h <= 0 || box.Empty() {
		return image.Rectangle{}
	}
	sx := float64(box.Dx()) / float64(w)
	sy := float64(box.Dy()) / float64(h)
	s := sx
	if sy < s {
		s = sy
	}
	fw, fh := int(float64(w)*s), int(float64(h)*s)
	x := box.Min.X + (box.Dx()-fw)/2
	y := box.Min.Y + (box.Dy()-fh)/2
	return image.Rect(x, y, x+fw, y+fh)
}
