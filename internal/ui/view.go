package ui

import (
	"strings"

	"github.com/atomicstack/ranked-carousel/internal/carousel"
	"github.com/atomicstack/ranked-carousel/internal/ranking"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	cardTextWidth = 16 // visible text columns inside a card
	headerTitle   = "Top ranked vehicles"
)

// View implements tea.Model. It also records the layout used to hit-test
// mouse events against the rendered elements.
func (m *Model) View() string {
	sections := make([]string, 0, 5)
	next := layout{}
	y := 0
	push := func(block string) int {
		top := y
		sections = append(sections, block)
		y += lipgloss.Height(block)
		return top
	}

	push(m.renderHeader())

	if item, ok := m.ctrl.Current(); ok {
		image := m.renderImage(item)
		top := push(image)
		next.image = zone{x0: 0, x1: lipgloss.Width(image), y0: top, y1: top + lipgloss.Height(image)}
	}

	if m.ctrl.Len() > 0 {
		row, rowLayout := m.renderRow(y)
		push(row)
		next.prev, next.next, next.cards = rowLayout.prev, rowLayout.next, rowLayout.cards
	}

	if m.showFooter {
		push(styles.Footer.Render(m.help.View(m.keys)))
	}

	m.layout = next
	return clampWidth(strings.Join(sections, "\n"), m.width)
}

func (m *Model) renderHeader() string {
	title := styles.Header.Render(headerTitle)
	switch {
	case m.loading():
		return title + "  " + m.spinner.View() + styles.Loading.Render(" loading")
	case m.ctrl.State() == carousel.StatePaused:
		return title + "  " + styles.ImageCaption.Render("paused")
	default:
		return title
	}
}

// renderImage draws the large highlighted "image" with its asset path caption.
func (m *Model) renderImage(item ranking.Item) string {
	art := strings.Join(artFor(carousel.AssetFragment(item)), "\n")
	caption := styles.ImageCaption.Render(carousel.AssetPath(m.assetRoot, item))
	return styles.Image.Render(art + "\n" + caption)
}

// renderRow lays out the previous button, every card and the next button
// side by side, returning their zones relative to the row's top line.
func (m *Model) renderRow(top int) (string, layout) {
	n := m.ctrl.Len()
	pieces := make([]string, 0, n+2)
	pieces = append(pieces, styles.Button.Render("<"))
	for i := 0; i < n; i++ {
		item, _ := m.ctrl.List().At(i)
		pieces = append(pieces, renderCard(item, m.ctrl.Highlighted(i)))
	}
	pieces = append(pieces, styles.Button.Render(">"))

	row := lipgloss.JoinHorizontal(lipgloss.Top, pieces...)
	bottom := top + lipgloss.Height(row)

	var out layout
	x := 0
	for i, piece := range pieces {
		w := lipgloss.Width(piece)
		z := zone{x0: x, x1: x + w, y0: top, y1: bottom}
		switch i {
		case 0:
			out.prev = z
		case len(pieces) - 1:
			out.next = z
		default:
			out.cards = append(out.cards, z)
		}
		x += w
	}
	return row, out
}

// renderCard draws one item; it depends only on its arguments.
func renderCard(item ranking.Item, highlighted bool) string {
	style := styles.Card
	switch {
	case carousel.IsPlaceholder(item):
		style = styles.PlaceholderCard
		if highlighted {
			style = styles.HighlightedCard
		}
		body := []string{
			fit(item.Title()),
			"",
			fit(strings.TrimSpace(string(item.Price))),
		}
		return style.Width(cardTextWidth + 2).Render(strings.Join(body, "\n"))
	case highlighted:
		style = styles.HighlightedCard
	}
	body := []string{
		styles.CardTitle.Render(fit(item.Title())),
		styles.CardDetail.Render(fit(item.Category)),
		styles.CardPrice.Render(fit(item.Price.Display())),
	}
	return style.Width(cardTextWidth + 2).Render(strings.Join(body, "\n"))
}

func fit(s string) string {
	if lipgloss.Width(s) <= cardTextWidth {
		return s
	}
	return truncate.StringWithTail(s, uint(cardTextWidth), "…")
}

// clampWidth truncates every line to width cells (ANSI-aware). A zero width
// leaves the view untouched.
func clampWidth(view string, width int) string {
	if width <= 0 {
		return view
	}
	lines := strings.Split(view, "\n")
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = truncate.String(line, uint(width))
		}
	}
	return strings.Join(lines, "\n")
}
