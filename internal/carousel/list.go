package carousel

import (
	"fmt"

	"github.com/atomicstack/ranked-carousel/internal/ranking"
)

// PlaceholderCount is the fixed number of stand-in items shown while loading.
const PlaceholderCount = 5

// PlaceholderCategory never matches a real body type, so asset lookup can
// always tell a placeholder apart from content.
const PlaceholderCategory = "placeholder"

// ListKind distinguishes the three list states.
type ListKind int

const (
	ListEmpty ListKind = iota
	ListPlaceholder
	ListReal
)

func (k ListKind) String() string {
	switch k {
	case ListPlaceholder:
		return "placeholder"
	case ListReal:
		return "real"
	default:
		return "empty"
	}
}

// List is the read-only item sequence the carousel rotates over.
type List struct {
	kind  ListKind
	items []ranking.Item
}

// Kind reports which of the three list states l is in.
func (l List) Kind() ListKind {
	return l.kind
}

// Len returns the number of items.
func (l List) Len() int {
	return len(l.items)
}

// At returns the item at i wrapped modulo the list length.
func (l List) At(i int) (ranking.Item, bool) {
	n := len(l.items)
	if n == 0 {
		return ranking.Item{}, false
	}
	return l.items[wrap(i, 0, n)], true
}

func placeholderList() List {
	items := make([]ranking.Item, PlaceholderCount)
	for i := range items {
		items[i] = ranking.Item{
			ID:       fmt.Sprintf("placeholder-%d", i),
			Category: PlaceholderCategory,
			Make:     "Loading",
			Model:    "Vehicle...",
			Price:    " Loading...",
		}
	}
	return List{kind: ListPlaceholder, items: items}
}

func realList(items []ranking.Item) List {
	dup := make([]ranking.Item, len(items))
	copy(dup, items)
	return List{kind: ListReal, items: dup}
}

// IsPlaceholder reports whether item is a synthetic loading stand-in.
func IsPlaceholder(item ranking.Item) bool {
	return item.Category == PlaceholderCategory
}

// wrap returns (index + delta + n) % n, normalised for any delta.
func wrap(index, delta, n int) int {
	if n <= 0 {
		return 0
	}
	return ((index+delta)%n + n) % n
}
