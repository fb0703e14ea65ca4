package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives the UI model programmatically for tests. Commands returned by
// Update are collected rather than executed, since rotation waits block until
// their clock fires.
type Harness struct {
	model   *Model
	pending []tea.Cmd
}

// NewHarness creates a harness for the provided model and runs Init.
func NewHarness(model *Model) *Harness {
	h := &Harness{model: model}
	if model != nil {
		h.collect(model.Init())
		model.View()
	}
	return h
}

// Send routes a message through the model and re-renders, so the recorded
// layout always matches what a terminal would show.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.collect(cmd)
	h.model.View()
}

// Tick delivers an elapsed period for the active rotation timer, if any.
func (h *Harness) Tick() bool {
	timer := h.model.ctrl.Timer()
	if timer == nil {
		return false
	}
	h.Send(rotationTickMsg{id: timer.ID()})
	return true
}

// Pending returns the commands collected so far and clears the queue.
func (h *Harness) Pending() []tea.Cmd {
	out := h.pending
	h.pending = nil
	return out
}

func (h *Harness) collect(cmd tea.Cmd) {
	if cmd != nil {
		h.pending = append(h.pending, cmd)
	}
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
