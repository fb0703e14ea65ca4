package ui

import (
	"github.com/atomicstack/ranked-carousel/internal/carousel"
	"github.com/atomicstack/ranked-carousel/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.Close()
		events.App.Quit(keyMsg.String())
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Previous):
		m.ctrl.Previous()
	case key.Matches(keyMsg, m.keys.Next):
		m.ctrl.Next()
	case key.Matches(keyMsg, m.keys.Advance):
		m.ctrl.HighlightedClick()
	}
	return nil
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	m.pointerOver(m.layout.cardAt(mouse.X, mouse.Y))
	if mouse.Action != tea.MouseActionPress || mouse.Button != tea.MouseButtonLeft {
		return nil
	}
	switch {
	case m.layout.image.contains(mouse.X, mouse.Y):
		m.ctrl.HighlightedClick()
	case m.layout.prev.contains(mouse.X, mouse.Y):
		m.ctrl.Previous()
	case m.layout.next.contains(mouse.X, mouse.Y):
		m.ctrl.Next()
	}
	return nil
}

// handleBlurMsg treats the terminal losing focus as the pointer leaving.
func (m *Model) handleBlurMsg(msg tea.Msg) tea.Cmd {
	m.pointerOver(-1)
	return nil
}

// pointerOver translates the card under the pointer (-1 for none) into
// hover-leave / hover-enter transitions. Moving straight from one card to
// another only moves the hover; rotation stays paused.
func (m *Model) pointerOver(idx int) {
	current, hovering := m.ctrl.Hovered()
	if hovering && current == idx {
		return
	}
	switch {
	case idx >= 0:
		// Card to card moves the hover without resuming rotation in between.
		m.ctrl.HoverEnter(idx)
	case hovering:
		m.ctrl.HoverLeave()
	}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.help.Width = m.width
	return nil
}

// handleSpinnerTickMsg keeps the spinner running only while loading; dropping
// the tick once real data arrives stops it.
func (m *Model) handleSpinnerTickMsg(msg tea.Msg) tea.Cmd {
	if !m.loading() {
		return nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return cmd
}

func (m *Model) loading() bool {
	switch m.ctrl.State() {
	case carousel.StateIdle, carousel.StateLoading:
		return !m.ctrl.Closed()
	default:
		return false
	}
}
