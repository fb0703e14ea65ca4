package theme

import "github.com/charmbracelet/lipgloss"

const (
	accent     = lipgloss.Color("#8a00ff")
	backdrop   = lipgloss.Color("#1c1c1c")
	muted      = lipgloss.Color("241")
	foreground = lipgloss.Color("252")
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Header          *lipgloss.Style
	Loading         *lipgloss.Style
	Image           *lipgloss.Style
	ImageCaption    *lipgloss.Style
	Card            *lipgloss.Style
	HighlightedCard *lipgloss.Style
	PlaceholderCard *lipgloss.Style
	CardTitle       *lipgloss.Style
	CardDetail      *lipgloss.Style
	CardPrice       *lipgloss.Style
	Button          *lipgloss.Style
	Footer          *lipgloss.Style
}

var card = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("238")).
	Padding(0, 1).
	MarginRight(1)

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Loading: ptr(
		lipgloss.NewStyle().Foreground(accent).Italic(true),
	),
	Image: ptr(
		lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Background(backdrop).
			Foreground(foreground).
			Padding(0, 2),
	),
	ImageCaption: ptr(
		lipgloss.NewStyle().Foreground(muted),
	),
	Card: ptr(card.Foreground(lipgloss.Color("249"))),
	HighlightedCard: ptr(
		card.BorderForeground(accent).Foreground(lipgloss.Color("255")).Bold(true),
	),
	PlaceholderCard: ptr(
		card.BorderForeground(lipgloss.Color("236")).Foreground(muted).Faint(true),
	),
	CardTitle: ptr(
		lipgloss.NewStyle().Bold(true),
	),
	CardDetail: ptr(
		lipgloss.NewStyle().Foreground(muted),
	),
	CardPrice: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	Button: ptr(
		lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(accent).
			Bold(true).
			Padding(0, 1).
			Margin(1, 1, 0, 1),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
