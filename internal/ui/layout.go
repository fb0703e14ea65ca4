package ui

// zone is a half-open screen rectangle in cells.
type zone struct {
	x0, x1 int
	y0, y1 int
}

func (z zone) contains(x, y int) bool {
	return x >= z.x0 && x < z.x1 && y >= z.y0 && y < z.y1
}

// layout records where the last View placed each interactive element, so
// mouse events can be mapped back onto the carousel.
type layout struct {
	image zone
	prev  zone
	next  zone
	cards []zone
}

// cardAt returns the card index under (x, y), or -1.
func (l layout) cardAt(x, y int) int {
	for i, z := range l.cards {
		if z.contains(x, y) {
			return i
		}
	}
	return -1
}
