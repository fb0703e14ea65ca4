package ui

import (
	"github.com/atomicstack/ranked-carousel/internal/carousel"
	tea "github.com/charmbracelet/bubbletea"
)

// rotationTickMsg reports one elapsed period for timer handle id.
type rotationTickMsg struct {
	id uint64
}

// waitForRotation blocks until the handle fires. A cancelled handle yields
// no message at all.
func waitForRotation(t *carousel.Timer) tea.Cmd {
	return func() tea.Msg {
		if !t.Wait() {
			return nil
		}
		return rotationTickMsg{id: t.ID()}
	}
}

func (m *Model) handleRotationTickMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(rotationTickMsg)
	if !ok {
		return nil
	}
	if m.ctrl.Tick(tick.id) && m.awaiting == tick.id {
		// The handle was rearmed; let finishUpdate wait on it again.
		m.awaiting = 0
	}
	return nil
}
