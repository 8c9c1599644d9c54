package ui

import tea "github.com/charmbracelet/bubbletea"

// Harness drives the UI model programmatically for integration tests.
type Harness struct {
	model *Model
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

// Key sends a plain character keypress.
func (h *Harness) Key(r rune) {
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// Press sends a named key like "enter", "esc", "up".
func (h *Harness) Press(name string) {
	switch name {
	case "enter":
		h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	case "esc":
		h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	case "up":
		h.Send(tea.KeyMsg{Type: tea.KeyUp})
	case "down":
		h.Send(tea.KeyMsg{Type: tea.KeyDown})
	case "pgup":
		h.Send(tea.KeyMsg{Type: tea.KeyPgUp})
	case "pgdown":
		h.Send(tea.KeyMsg{Type: tea.KeyPgDown})
	case "space":
		h.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	}
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		mdl, next := h.model.Update(msg)
		if updated, ok := mdl.(*Model); ok {
			h.model = updated
		}
		cmd = next
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
