package ui

import (
	"github.com/atomicstack/ranked-carousel/internal/backend"
	"github.com/atomicstack/ranked-carousel/internal/logging"
	"github.com/atomicstack/ranked-carousel/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForRankingEvent(l *backend.Loader) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-l.Events()
		if !ok {
			return rankingDoneMsg{}
		}
		return rankingEventMsg{event: evt}
	}
}

type rankingEventMsg struct {
	event backend.Event
}

type rankingDoneMsg struct{}

// handleRankingEventMsg applies the single retrieval outcome. Failures are
// logged only; the placeholders stay on screen.
func (m *Model) handleRankingEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(rankingEventMsg)
	if !ok {
		return nil
	}
	evt := eventMsg.event
	switch {
	case evt.Err != nil:
		logging.Errorf("fetch ranked vehicles: %v", evt.Err)
		events.Ranking.Failure(evt.Err)
	case len(evt.Items) == 0:
		events.Ranking.Empty()
		m.ctrl.Load(nil)
	default:
		events.Ranking.Success(len(evt.Items))
		m.ctrl.Load(evt.Items)
	}
	return nil
}

func (m *Model) handleRankingDoneMsg(msg tea.Msg) tea.Cmd {
	m.loader = nil
	return nil
}
