package app

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/atomicstack/ranked-carousel/internal/carousel"
	"github.com/atomicstack/ranked-carousel/internal/format/table"
	"github.com/atomicstack/ranked-carousel/internal/ranking"
)

var listingColumns = []table.Column{
	{Title: "#", Align: table.AlignRight},
	{Title: "Vehicle"},
	{Title: "Body"},
	{Title: "Price", Align: table.AlignRight},
	{Title: "Asset"},
}

// Print fetches the ranked list once and writes it as a table instead of
// starting the carousel.
func Print(ctx context.Context, src ranking.Source, cfg Config, w io.Writer) error {
	if cfg.Source.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Source.Timeout)
		defer cancel()
	}
	items, err := ranking.Fetch(ctx, src)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "no ranked vehicles")
		return err
	}
	rows := make([][]string, 0, len(items))
	for i, item := range items {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			item.Title(),
			item.Category,
			item.Price.Display(),
			carousel.AssetPath(cfg.AssetRoot, item),
		})
	}
	for _, line := range table.Render(listingColumns, rows) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
