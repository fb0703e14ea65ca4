package carousel

import (
	"path"
	"strings"

	"github.com/atomicstack/ranked-carousel/internal/ranking"
)

// PlaceholderAsset is the asset fragment used for every placeholder item.
const PlaceholderAsset = "placeholder/loading"

const assetExt = ".jpg"

// AssetFragment resolves the per-category asset fragment, e.g. "Sedan" ->
// "sedan/sedan".
func AssetFragment(item ranking.Item) string {
	if IsPlaceholder(item) {
		return PlaceholderAsset
	}
	category := strings.ToLower(strings.TrimSpace(item.Category))
	return category + "/" + category
}

// AssetPath joins root and the item's fragment into an image path.
func AssetPath(root string, item ranking.Item) string {
	return path.Join(root, AssetFragment(item)+assetExt)
}
