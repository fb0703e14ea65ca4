package ui

import (
	"sort"
	"strings"

	"github.com/atomicstack/ranked-carousel/internal/carousel"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// artCatalog stands in for the per-category images, keyed by asset fragment.
var artCatalog = map[string][]string{
	"sedan/sedan": {
		"      ______________       ",
		"   __/  ||      ||  \\___   ",
		"  |  _  ------------  _ |  ",
		"  '-(_)------------(_)-'   ",
	},
	"suv/suv": {
		"    ___________________    ",
		"   |  ||    ||    ||   \\_  ",
		"   |   _   -----    _    | ",
		"   '-(___)-------(___)---' ",
	},
	"truck/truck": {
		"    _______                ",
		"   |  ||   \\_____________  ",
		"   |  _     ___________  | ",
		"   '-(_)---------------(_)' ",
	},
	"coupe/coupe": {
		"        ________           ",
		"    ___/   ||   \\____      ",
		"   |  _   -------  _ \\     ",
		"   '-(_)----------(_)-'    ",
	},
	"hatchback/hatchback": {
		"      __________           ",
		"   __/  ||   ||  |         ",
		"  |  _   -----  _|         ",
		"  '-(_)--------(_)'        ",
	},
	"convertible/convertible": {
		"         ___               ",
		"   _____/   \\__________    ",
		"  |  _    ---------  _ \\   ",
		"  '-(_)-------------(_)-'  ",
	},
	"van/van": {
		"    ____________________   ",
		"   |  ||  ||  ||  ||    \\  ",
		"   |  _              _   | ",
		"   '-(_)------------(_)--' ",
	},
	carousel.PlaceholderAsset: {
		"                           ",
		"      . . .  loading  . . .",
		"                           ",
		"                           ",
	},
}

var genericArt = []string{
	"    ____________________   ",
	"   |                    |  ",
	"   |        ????        |  ",
	"   '--------------------'  ",
}

var artCategories = func() []string {
	keys := make([]string, 0, len(artCatalog))
	for key := range artCatalog {
		if key == carousel.PlaceholderAsset {
			continue
		}
		category, _, _ := strings.Cut(key, "/")
		keys = append(keys, category)
	}
	sort.Strings(keys)
	return keys
}()

// artFor returns the art for an asset fragment. Unknown categories fall back
// to the closest known category contained in the name ("Pickup Truck" ->
// truck), then to a generic frame.
func artFor(fragment string) []string {
	if lines, ok := artCatalog[fragment]; ok {
		return lines
	}
	category, _, _ := strings.Cut(fragment, "/")
	if category == "" {
		return genericArt
	}
	best, bestDistance := "", -1
	for _, known := range artCategories {
		distance := fuzzy.RankMatchFold(known, category)
		if distance < 0 {
			continue
		}
		if bestDistance < 0 || distance < bestDistance {
			best, bestDistance = known, distance
		}
	}
	if best == "" {
		return genericArt
	}
	return artCatalog[best+"/"+best]
}
