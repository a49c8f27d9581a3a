package ui

// Item is one work entry: an identifier and an image reference (a file path).
type Item struct {
	ID    string
	Image string
}

// Gallery tracks the work list, which entry is selected and what the main
// display shows.
type Gallery struct {
	items     []Item
	gridLimit int
	selected  int
	display   int
	active    bool
}

func NewGallery(gridLimit int, items ...Item) *Gallery {
	return &Gallery{items: append([]Item(nil), items...), gridLimit: gridLimit, selected: -1, display: -1}
}

func (g *Gallery) Len() int { return len(g.items) }

func (g *Gallery) Items() []Item { return g.items }

func (g *Gallery) Add(items ...Item) { g.items = append(g.items, items...) }

// Select marks item i as the only selected entry and shows it.
func (g *Gallery) Select(i int) bool {
	if i < 0 || i >= len(g.items) {
		return false
	}
	g.Reset()
	g.selected = i
	g.show(i)
	return true
}

// ShowCell shows grid cell i without touching the selection.
func (g *Gallery) ShowCell(i int) bool {
	if i < 0 || i >= len(g.Cells()) {
		return false
	}
	g.show(i)
	return true
}

// Reset clears the selection and hides the display.
func (g *Gallery) Reset() {
	g.selected = -1
	g.display = -1
	g.active = false
}

func (g *Gallery) Selected() (int, bool) { return g.selected, g.selected >= 0 }

// Display returns the item on the main display, if it is showing.
func (g *Gallery) Display() (Item, bool) {
	if !g.active {
		return Item{}, false
	}
	return g.items[g.display], true
}

// Cells returns the items shown in the background grid.
func (g *Gallery) Cells() []Item {
	if len(g.items) > g.gridLimit {
		return g.items[:g.gridLimit]
	}
	return g.items
}

func (g *Gallery) show(i int) {
	g.display = i
	g.active = true
}
