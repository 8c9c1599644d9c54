package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/softwatch/astroreview/internal/logging/events"
)

// openSearch switches to the jump-search form over the current screen's
// items.
func (m *Model) openSearch() {
	m.search.SetValue("")
	m.search.Focus()
	m.mode = ModeSearch
	m.say("Search. Type a name, enter to jump, escape to cancel.", true)
}

func (m *Model) closeSearch() {
	m.search.Blur()
	m.mode = ModeReview
}

// handleSearchKey owns every key while the search form is open.
func (m *Model) handleSearchKey(keyMsg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(keyMsg, m.keys.Back):
		m.closeSearch()
		m.say("Search cancelled", true)
		return nil
	case key.Matches(keyMsg, m.keys.Enter):
		query := strings.TrimSpace(m.search.Value())
		m.closeSearch()
		m.jumpToMatch(query)
		return nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(keyMsg)
	return cmd
}

// jumpToMatch moves the item cursor to the best fuzzy match for the query.
func (m *Model) jumpToMatch(query string) {
	scr := m.nav.CurrentScreen()
	if scr == nil || query == "" {
		m.say("Search cancelled", true)
		return
	}
	events.Search.Query(scr.Name(), query)
	names := make([]string, scr.ItemCount())
	for i := range names {
		names[i] = scr.ItemName(i)
	}
	idx := bestMatchIndex(names, query)
	if idx < 0 {
		events.Search.Miss(scr.Name(), query)
		m.say("No match for "+query, true)
		return
	}
	events.Search.Jump(scr.Name(), idx)
	m.say(m.nav.JumpToItem(m.reviewContext(), idx), true)
}
