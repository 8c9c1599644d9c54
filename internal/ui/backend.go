package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/softwatch/astroreview/internal/backend"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent routes a poll result into the stores, then reconciles
// whatever the user is looking at: the current screen's item list is
// rebuilt with the cursor clamped, and the slot cursor rediscovers the
// surface when its ID changed.
func (m *Model) applyBackendEvent(evt backend.Event) {
	if m.backendState == nil {
		m.backendState = make(map[backend.Kind]error)
	}
	m.backendState[evt.Kind] = evt.Err
	if evt.Err != nil {
		m.backendLastErr = evt.Err.Error()
		return
	}

	res := m.dispatcher.Handle(evt)

	if res.Any() {
		m.nav.RefreshCurrent(m.reviewContext())
	}
	if res.SurfaceUpdated {
		snap := m.surface.Snapshot()
		if m.slot.Sync(snap) && m.mode == ModeSlot {
			if m.slot.Empty() {
				m.say("Screen changed, no controls", false)
			} else {
				m.say("Screen changed. "+m.slot.Position(), false)
			}
		}
	}

	if warn, _ := m.hasBackendIssue(); !warn {
		m.backendLastErr = ""
	}
}

func (m *Model) hasBackendIssue() (bool, string) {
	for _, err := range m.backendState {
		if err != nil {
			msg := m.backendLastErr
			if msg == "" {
				msg = err.Error()
			}
			return true, msg
		}
	}
	return false, ""
}
