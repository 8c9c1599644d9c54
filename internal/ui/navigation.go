package ui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/softwatch/astroreview/internal/host"
	"github.com/softwatch/astroreview/internal/review/nav"
)

// handleKeyMsg is the priority chain: search form first, then grid
// selection, then the slot cursor, then review navigation, with the global
// time controls at the bottom. Each layer consumes its keys and the rest
// fall through.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		return tea.Quit
	}
	switch m.mode {
	case ModeSearch:
		return m.handleSearchKey(keyMsg)
	case ModeGrid:
		return m.handleGridKey(keyMsg)
	case ModeSlot:
		if cmd, handled := m.handleSlotKey(keyMsg); handled {
			return cmd
		}
	}
	if cmd, handled := m.handleReviewKey(keyMsg); handled {
		return cmd
	}
	return m.handleTimeKey(keyMsg)
}

func (m *Model) handleReviewKey(keyMsg tea.KeyMsg) (tea.Cmd, bool) {
	h := m.reviewContext()
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.say(m.nav.Previous(h), true)
		return nil, true
	case key.Matches(keyMsg, m.keys.Down):
		m.say(m.nav.Next(h), true)
		return nil, true
	case key.Matches(keyMsg, m.keys.Enter):
		return m.drill(h), true
	case key.Matches(keyMsg, m.keys.Back):
		if m.nav.BackOut() {
			m.say(m.nav.Position(h), true)
			return nil, true
		}
		m.say("Exiting review", true)
		return tea.Quit, true
	case key.Matches(keyMsg, m.keys.PageUp):
		m.say(m.nav.PageUp(h), true)
		return nil, true
	case key.Matches(keyMsg, m.keys.PageDown):
		m.say(m.nav.PageDown(h), true)
		return nil, true
	case key.Matches(keyMsg, m.keys.Detail):
		m.say(m.nav.Detail(h), true)
		return nil, true
	case key.Matches(keyMsg, m.keys.ListAll):
		lines := m.nav.ListAll(h)
		if len(lines) == 0 {
			m.say("Nothing to read", true)
			return nil, true
		}
		m.say(fmt.Sprintf("%d entries. %s", len(lines), strings.Join(lines, ". ")), true)
		return nil, true
	case key.Matches(keyMsg, m.keys.Repeat):
		m.say(m.nav.Position(h), true)
		return nil, true
	case key.Matches(keyMsg, m.keys.ViewToggle):
		if status, ok := m.nav.ToggleView(h); ok {
			m.say(status, true)
		}
		return nil, true
	case key.Matches(keyMsg, m.keys.Faction):
		if status, ok := m.nav.CycleFaction(h); ok {
			m.say(status, true)
		}
		return nil, true
	case key.Matches(keyMsg, m.keys.SlotToggle):
		m.toggleSlotMode()
		return nil, true
	case key.Matches(keyMsg, m.keys.Search):
		if m.mode == ModeReview && m.nav.Level() >= nav.LevelItems {
			m.openSearch()
		}
		return nil, true
	case key.Matches(keyMsg, m.keys.Transcript):
		m.showTranscript = !m.showTranscript
		return nil, true
	}
	// Lowercase letters jump by first letter at the Items level.
	if m.mode == ModeReview && keyMsg.Type == tea.KeyRunes && len(keyMsg.Runes) == 1 {
		r := keyMsg.Runes[0]
		if unicode.IsLower(r) {
			if ann, handled := m.nav.JumpToLetter(h, r); handled {
				m.say(ann, true)
				return nil, true
			}
		}
	}
	return nil, false
}

// drill runs one DrillDown step and routes its outcome: speak, dispatch, or
// switch to grid mode.
func (m *Model) drill(h host.Handle) tea.Cmd {
	scr := m.nav.CurrentScreen()
	res := m.nav.DrillDown(h)
	if res.Err != nil {
		m.say(res.Announcement, true)
		return nil
	}
	switch res.Outcome {
	case nav.OutcomeDrilled:
		m.say(res.Announcement, true)
	case nav.OutcomeGrid:
		name := ""
		if scr != nil {
			name = scr.Name()
		}
		m.enterGrid(res.Grid, name)
		m.say(res.Announcement, true)
	case nav.OutcomeActivated:
		return m.dispatch(res.Command, res.Label)
	default:
		if res.Announcement != "" {
			m.say(res.Announcement, true)
		}
	}
	return nil
}

// handleGridKey drives grid-selection mode: up/down pick a row, +/- adjust
// its weight, esc returns to review navigation.
func (m *Model) handleGridKey(keyMsg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(keyMsg, m.keys.Back):
		m.exitGrid()
		m.say(m.nav.Position(m.reviewContext()), true)
		return nil
	case key.Matches(keyMsg, m.keys.Up):
		m.say(m.grid.Up(), true)
		return nil
	case key.Matches(keyMsg, m.keys.Down):
		m.say(m.grid.Down(), true)
		return nil
	case key.Matches(keyMsg, m.keys.SpeedUp):
		return m.adjustGrid(1)
	case key.Matches(keyMsg, m.keys.SpeedDown):
		return m.adjustGrid(-1)
	case key.Matches(keyMsg, m.keys.Repeat):
		m.say(m.grid.Position(), true)
		return nil
	}
	return nil
}

func (m *Model) adjustGrid(delta int) tea.Cmd {
	var cmd host.Command
	var ann string
	if delta > 0 {
		cmd, ann = m.grid.Increase()
	} else {
		cmd, ann = m.grid.Decrease()
	}
	if cmd.IsZero() {
		// Clamped at the bound; nothing to dispatch.
		m.say(ann, true)
		return nil
	}
	return m.dispatch(cmd, ann)
}

// handleSlotKey drives the live-surface cursor. Enter drills from a
// container into its elements before it means activate; esc walks the
// levels back up and leaves slot mode from the top. Unhandled keys fall
// through to the shared review bindings.
func (m *Model) handleSlotKey(keyMsg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.say(m.slot.MovePrevious(), true)
		return nil, true
	case key.Matches(keyMsg, m.keys.Down):
		m.say(m.slot.MoveNext(), true)
		return nil, true
	case key.Matches(keyMsg, m.keys.PageUp):
		m.say(m.slot.PreviousGroup(), true)
		return nil, true
	case key.Matches(keyMsg, m.keys.PageDown):
		m.say(m.slot.NextGroup(), true)
		return nil, true
	case key.Matches(keyMsg, m.keys.Repeat):
		m.say(m.slot.Position(), true)
		return nil, true
	case key.Matches(keyMsg, m.keys.Enter):
		if ann, ok := m.slot.DrillIn(); ok {
			m.say(ann, true)
			return nil, true
		}
		cmd, label := m.slot.Activate()
		if cmd.IsZero() {
			m.say(label, true)
			return nil, true
		}
		return m.dispatch(cmd, label), true
	case key.Matches(keyMsg, m.keys.Back):
		if ann, ok := m.slot.BackOut(); ok {
			m.say(ann, true)
			return nil, true
		}
		m.toggleSlotMode()
		return nil, true
	case key.Matches(keyMsg, m.keys.SlotToggle):
		m.toggleSlotMode()
		return nil, true
	}
	return nil, false
}

// handleTimeKey is the bottom of the chain: pause, speed steps, and the
// numeric speed keys. Numbers are honored only at the Screens level so they
// never shadow future per-screen shortcuts.
func (m *Model) handleTimeKey(keyMsg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(keyMsg, m.keys.Pause):
		label := "Pause"
		if m.surface.Paused() {
			label = "Resume"
		}
		return m.dispatch(host.Command{Verb: host.VerbTimePause}, label)
	case key.Matches(keyMsg, m.keys.SpeedUp):
		return m.setSpeed(m.surface.Speed() + 1)
	case key.Matches(keyMsg, m.keys.SpeedDown):
		return m.setSpeed(m.surface.Speed() - 1)
	}
	if m.nav.Level() == nav.LevelScreens && keyMsg.Type == tea.KeyRunes && len(keyMsg.Runes) == 1 {
		r := keyMsg.Runes[0]
		if r >= '1' && r <= '4' {
			return m.setSpeed(int(r - '0'))
		}
	}
	return nil
}

func (m *Model) setSpeed(speed int) tea.Cmd {
	if speed < 1 || speed > 4 {
		m.say(fmt.Sprintf("Speed stays at %d", m.surface.Speed()), true)
		return nil
	}
	return m.dispatch(host.Command{Verb: host.VerbTimeSpeed, Value: speed}, fmt.Sprintf("Speed %d", speed))
}
