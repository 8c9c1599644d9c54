// Package review defines the data model the navigation engine walks: a
// fixed set of Screens, each holding an ordered list of items, with lazy
// per-item Sections of activatable entries.
package review

import (
	"fmt"
	"unicode"

	"github.com/softwatch/astroreview/internal/host"
	"github.com/softwatch/astroreview/internal/logging"
)

// InvalidItemMessage is spoken when a read lands on a stale or out-of-range
// index instead of failing.
const InvalidItemMessage = "Invalid item"

// Capabilities declares the optional behaviors a screen supports.
type Capabilities struct {
	ViewToggle    bool
	LetterNav     bool
	FactionFilter bool
}

// Screen is the contract every review category implements. The set of
// screens is fixed at startup; the engine only ever sees this interface.
//
// Item identity is positional: after Refresh the same index may denote a
// different underlying object, so cached per-index data must be dropped.
// All index-taking reads tolerate out-of-range values.
type Screen interface {
	Name() string
	Description() string
	Capabilities() Capabilities

	// Refresh rebuilds the item list from the handle. Idempotent and cheap
	// to call repeatedly; invoked on activation and whenever host data may
	// have changed.
	Refresh(h host.Handle)

	ItemCount() int
	ItemSummary(i int) string
	ItemDetail(i int) string
	// ItemName is the sortable name used for letter navigation and search.
	ItemName(i int) string

	SectionsForItem(h host.Handle, i int) ([]*Section, error)
	CanDrillIntoItem(h host.Handle, i int) bool

	// ActivationAnnouncement refreshes the screen as a side effect and
	// returns the text spoken when the screen is entered.
	ActivationAnnouncement(h host.Handle) string
}

// ViewToggler switches a screen between its "own" and "all" item universe.
type ViewToggler interface {
	ToggleViewMode(h host.Handle) string
}

// FactionCycler steps a screen through its faction filter list, wrapping.
type FactionCycler interface {
	CycleFactionFilter(h host.Handle) string
}

// RefResolver resolves nested sections behind a SectionItem reference.
type RefResolver interface {
	SectionsForRef(h host.Handle, ref string) ([]*Section, error)
}

// ItemActivator exposes a direct command on items that have no sections
// (e.g. a candidate list where the item itself is the action).
type ItemActivator interface {
	ItemCommand(i int) (host.Command, bool)
}

// FindNextItemByLetter scans forward from current+1 with wraparound over
// the screen's item names, case-insensitive on the first letter. The wrap
// re-checks indices 0 through current inclusive, so a sole match at the
// starting index is still found. Returns -1 when no name matches.
func FindNextItemByLetter(s Screen, letter rune, current int) int {
	n := s.ItemCount()
	if n == 0 {
		return -1
	}
	want := unicode.ToLower(letter)
	if current < 0 || current >= n {
		current = 0
	}
	for off := 1; off <= n; off++ {
		idx := (current + off) % n
		if first, ok := firstLetter(s.ItemName(idx)); ok && first == want {
			return idx
		}
	}
	return -1
}

func firstLetter(name string) (rune, bool) {
	for _, r := range name {
		return unicode.ToLower(r), true
	}
	return 0, false
}

// SafeSections runs a section builder, recovering panics from host objects
// destroyed between frames. A recovered panic is logged and surfaces as an
// error naming the screen, never as a crash mid-navigation.
func SafeSections(screenName string, build func() ([]*Section, error)) (secs []*Section, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reading %s: %v", screenName, r)
			logging.Error(err)
		}
	}()
	return build()
}
