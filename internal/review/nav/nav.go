// Package nav implements the review-mode cursor: a state machine over
// Screens → Items → Sections → Entries, with one more level behind entry
// references. Every operation is a single synchronous step driven by a
// discrete key edge; the package holds no host state beyond the cursor and
// a single-slot section cache.
package nav

import (
	"fmt"

	"github.com/softwatch/astroreview/internal/host"
	"github.com/softwatch/astroreview/internal/logging/events"
	"github.com/softwatch/astroreview/internal/review"
	"github.com/softwatch/astroreview/internal/review/grid"
)

// Level is the depth the cursor currently focuses.
type Level int

const (
	LevelScreens Level = iota
	LevelItems
	LevelSections
	LevelEntries
	LevelSubSections
	LevelSubEntries
)

func (l Level) String() string {
	switch l {
	case LevelScreens:
		return "screens"
	case LevelItems:
		return "items"
	case LevelSections:
		return "sections"
	case LevelEntries:
		return "entries"
	case LevelSubSections:
		return "sub-sections"
	case LevelSubEntries:
		return "sub-entries"
	default:
		return "unknown"
	}
}

// Outcome discriminates what a drill attempt did, so the caller knows
// whether to announce the new position, wait for the command's own result
// speech, or stay silent.
type Outcome int

const (
	OutcomeNothing Outcome = iota
	OutcomeDrilled
	OutcomeActivated
	OutcomeGrid
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDrilled:
		return "drilled"
	case OutcomeActivated:
		return "activated"
	case OutcomeGrid:
		return "grid"
	default:
		return "nothing"
	}
}

// Result reports a drill attempt. Command and Label are set for
// OutcomeActivated; Grid for OutcomeGrid. Err marks a failed host read —
// already logged, announce and stay put.
type Result struct {
	Outcome      Outcome
	Announcement string
	Command      host.Command
	Label        string
	Grid         *grid.Model
	Err          error
}

// GridProvider marks screens whose items hand control to grid-selection
// mode instead of normal section browsing.
type GridProvider interface {
	Grid(h host.Handle, i int) (*grid.Model, bool)
}

// State is the single mutable cursor over the review tree.
type State struct {
	screens []review.Screen

	level      Level
	screenIdx  int
	itemIdx    int
	sectionIdx int
	entryIdx   int
	subSecIdx  int
	subEntIdx  int

	// Single-slot section cache for the current item. Invalidated on item
	// change, explicit refresh, and after any executed command.
	sections   []*review.Section
	cacheItem  int
	cacheValid bool

	subSections []*review.Section
	subRef      string
	subName     string
}

// NewState starts at the Screens level over the fixed screen set.
func NewState(screens []review.Screen) *State {
	return &State{screens: screens, level: LevelScreens}
}

// Level returns the current depth.
func (s *State) Level() Level { return s.level }

// ScreenIndex returns the screen cursor.
func (s *State) ScreenIndex() int { return s.screenIdx }

// ItemIndex returns the item cursor.
func (s *State) ItemIndex() int { return s.itemIdx }

// Screens returns the screen set.
func (s *State) Screens() []review.Screen { return s.screens }

// CurrentScreen returns the focused screen, or nil when there are none.
func (s *State) CurrentScreen() review.Screen {
	if len(s.screens) == 0 {
		return nil
	}
	if s.screenIdx < 0 || s.screenIdx >= len(s.screens) {
		return s.screens[0]
	}
	return s.screens[s.screenIdx]
}

// CurrentSections returns the cached sections when focus is at or below
// the Sections level. Rendering only; never triggers a fetch.
func (s *State) CurrentSections() []*review.Section {
	if s.level >= LevelSections && s.cacheValid {
		return s.sections
	}
	return nil
}

// SectionIndex returns the section cursor.
func (s *State) SectionIndex() int { return s.sectionIdx }

// EntryIndex returns the entry cursor.
func (s *State) EntryIndex() int { return s.entryIdx }

// InvalidateSections drops the section cache. Call after any command that
// may have mutated host state.
func (s *State) InvalidateSections() {
	s.cacheValid = false
	s.sections = nil
}

// Next moves the cursor forward one step at the current level with
// wraparound, returning the announcement for the new position.
func (s *State) Next(h host.Handle) string {
	return s.step(h, 1)
}

// Previous moves the cursor back one step with wraparound.
func (s *State) Previous(h host.Handle) string {
	return s.step(h, -1)
}

func (s *State) step(h host.Handle, delta int) string {
	n := s.countAt()
	if n == 0 {
		return s.emptyMessage()
	}
	idx := s.indexAt()
	idx = ((idx+delta)%n + n) % n
	s.setIndexAt(idx)
	events.Nav.Cursor(s.level.String(), idx)
	return s.positionAt(h)
}

func (s *State) countAt() int {
	switch s.level {
	case LevelScreens:
		return len(s.screens)
	case LevelItems:
		if scr := s.CurrentScreen(); scr != nil {
			return scr.ItemCount()
		}
		return 0
	case LevelSections:
		return len(s.sections)
	case LevelEntries:
		if sec := s.currentSection(); sec != nil {
			return len(sec.Items)
		}
		return 0
	case LevelSubSections:
		return len(s.subSections)
	case LevelSubEntries:
		if sec := s.currentSubSection(); sec != nil {
			return len(sec.Items)
		}
		return 0
	}
	return 0
}

func (s *State) indexAt() int {
	switch s.level {
	case LevelScreens:
		return s.screenIdx
	case LevelItems:
		return s.itemIdx
	case LevelSections:
		return s.sectionIdx
	case LevelEntries:
		return s.entryIdx
	case LevelSubSections:
		return s.subSecIdx
	default:
		return s.subEntIdx
	}
}

func (s *State) setIndexAt(idx int) {
	switch s.level {
	case LevelScreens:
		s.screenIdx = idx
	case LevelItems:
		if idx != s.itemIdx {
			s.InvalidateSections()
		}
		s.itemIdx = idx
	case LevelSections:
		s.sectionIdx = idx
	case LevelEntries:
		s.entryIdx = idx
	case LevelSubSections:
		s.subSecIdx = idx
	default:
		s.subEntIdx = idx
	}
}

func (s *State) emptyMessage() string {
	switch s.level {
	case LevelScreens:
		return "No screens"
	case LevelItems:
		if scr := s.CurrentScreen(); scr != nil {
			return fmt.Sprintf("%s, no items", scr.Name())
		}
		return "No items"
	case LevelSections:
		return "No sections"
	default:
		return "No entries"
	}
}

// positionAt builds the spoken position for the current cursor.
func (s *State) positionAt(h host.Handle) string {
	switch s.level {
	case LevelScreens:
		scr := s.CurrentScreen()
		if scr == nil {
			return "No screens"
		}
		return fmt.Sprintf("%s, screen %d of %d", scr.Name(), s.screenIdx+1, len(s.screens))
	case LevelItems:
		scr := s.CurrentScreen()
		if scr == nil || scr.ItemCount() == 0 {
			return s.emptyMessage()
		}
		return fmt.Sprintf("%s, %d of %d", scr.ItemSummary(s.itemIdx), s.itemIdx+1, scr.ItemCount())
	case LevelSections:
		sec := s.currentSection()
		if sec == nil {
			return "No sections"
		}
		return fmt.Sprintf("%s, section %d of %d", sec.Announce(), s.sectionIdx+1, len(s.sections))
	case LevelEntries:
		sec := s.currentSection()
		if sec == nil || len(sec.Items) == 0 {
			return "No entries"
		}
		it := sec.Items[s.entryIdx]
		return fmt.Sprintf("%s, %d of %d", it.Line(), s.entryIdx+1, len(sec.Items))
	case LevelSubSections:
		if len(s.subSections) == 0 {
			return "No sections"
		}
		sec := s.subSections[s.subSecIdx]
		return fmt.Sprintf("%s: %s, section %d of %d", s.subName, sec.Announce(), s.subSecIdx+1, len(s.subSections))
	default:
		sec := s.currentSubSection()
		if sec == nil || len(sec.Items) == 0 {
			return "No entries"
		}
		it := sec.Items[s.subEntIdx]
		return fmt.Sprintf("%s, %d of %d", it.Line(), s.subEntIdx+1, len(sec.Items))
	}
}

// Position re-announces the current cursor without moving it.
func (s *State) Position(h host.Handle) string {
	return s.positionAt(h)
}

// Detail reads the longer text behind the current cursor.
func (s *State) Detail(h host.Handle) string {
	switch s.level {
	case LevelScreens:
		if scr := s.CurrentScreen(); scr != nil {
			return scr.Description()
		}
		return "No screens"
	case LevelItems:
		if scr := s.CurrentScreen(); scr != nil {
			return scr.ItemDetail(s.itemIdx)
		}
		return "No items"
	case LevelSections:
		if sec := s.currentSection(); sec != nil {
			return sec.JoinLines()
		}
		return "No sections"
	case LevelEntries:
		if sec := s.currentSection(); sec != nil && s.entryIdx < len(sec.Items) {
			it := sec.Items[s.entryIdx]
			if it.Detail != "" {
				return it.Detail
			}
			return it.Line()
		}
		return "No entries"
	case LevelSubSections:
		if sec := s.currentSubSection(); sec != nil {
			return sec.JoinLines()
		}
		return "No sections"
	default:
		if sec := s.currentSubSection(); sec != nil && s.subEntIdx < len(sec.Items) {
			it := sec.Items[s.subEntIdx]
			if it.Detail != "" {
				return it.Detail
			}
			return it.Line()
		}
		return "No entries"
	}
}

// ListAll reads every entry at the current level, for the list-all command.
func (s *State) ListAll(h host.Handle) []string {
	var out []string
	switch s.level {
	case LevelScreens:
		for _, scr := range s.screens {
			out = append(out, scr.Name())
		}
	case LevelItems:
		scr := s.CurrentScreen()
		if scr == nil {
			return nil
		}
		for i := 0; i < scr.ItemCount(); i++ {
			out = append(out, scr.ItemSummary(i))
		}
	case LevelSections, LevelSubSections:
		secs := s.sections
		if s.level == LevelSubSections {
			secs = s.subSections
		}
		for _, sec := range secs {
			out = append(out, sec.Announce())
		}
	default:
		sec := s.currentSection()
		if s.level == LevelSubEntries {
			sec = s.currentSubSection()
		}
		if sec == nil {
			return nil
		}
		for _, it := range sec.Items {
			out = append(out, it.Line())
		}
	}
	return out
}

// DrillDown descends one level, activates a leaf command, or hands off to
// grid mode, per the focused node.
func (s *State) DrillDown(h host.Handle) Result {
	scr := s.CurrentScreen()
	screenName := ""
	if scr != nil {
		screenName = scr.Name()
	}
	res := s.drill(h, scr)
	events.Nav.Drill(screenName, s.level.String(), res.Outcome.String())
	return res
}

func (s *State) drill(h host.Handle, scr review.Screen) Result {
	switch s.level {
	case LevelScreens:
		if scr == nil {
			return Result{Outcome: OutcomeNothing, Announcement: "No screens"}
		}
		ann := scr.ActivationAnnouncement(h)
		s.level = LevelItems
		s.itemIdx = 0
		s.InvalidateSections()
		events.Nav.Screen(scr.Name())
		if scr.ItemCount() > 0 {
			ann = fmt.Sprintf("%s. %s", ann, s.positionAt(h))
		}
		return Result{Outcome: OutcomeDrilled, Announcement: ann}

	case LevelItems:
		if scr == nil || scr.ItemCount() == 0 {
			return Result{Outcome: OutcomeNothing, Announcement: s.emptyMessage()}
		}
		if gp, ok := scr.(GridProvider); ok {
			if g, ok := gp.Grid(h, s.itemIdx); ok {
				events.Nav.GridEnter(scr.Name())
				return Result{Outcome: OutcomeGrid, Grid: g, Announcement: g.Enter()}
			}
		}
		secs, err := s.sectionsFor(h, scr)
		if err != nil {
			return Result{Outcome: OutcomeNothing, Err: err, Announcement: "Error reading " + scr.Name()}
		}
		if len(secs) > 0 {
			s.level = LevelSections
			s.sectionIdx = 0
			return Result{Outcome: OutcomeDrilled, Announcement: s.positionAt(h)}
		}
		if ia, ok := scr.(review.ItemActivator); ok {
			if cmd, ok := ia.ItemCommand(s.itemIdx); ok {
				return Result{Outcome: OutcomeActivated, Command: cmd, Label: scr.ItemName(s.itemIdx)}
			}
		}
		return Result{Outcome: OutcomeNothing}

	case LevelSections:
		sec := s.currentSection()
		if sec == nil {
			return Result{Outcome: OutcomeNothing, Announcement: "No sections"}
		}
		s.level = LevelEntries
		s.entryIdx = 0
		if len(sec.Items) == 0 {
			return Result{Outcome: OutcomeDrilled, Announcement: "No entries"}
		}
		return Result{Outcome: OutcomeDrilled, Announcement: s.positionAt(h)}

	case LevelEntries:
		sec := s.currentSection()
		if sec == nil || s.entryIdx >= len(sec.Items) {
			return Result{Outcome: OutcomeNothing, Announcement: "No entries"}
		}
		it := sec.Items[s.entryIdx]
		if it.HasRef() {
			if rr, ok := scr.(review.RefResolver); ok {
				secs, err := review.SafeSections(scr.Name(), func() ([]*review.Section, error) {
					return rr.SectionsForRef(h, it.Ref)
				})
				if err != nil {
					return Result{Outcome: OutcomeNothing, Err: err, Announcement: "Error reading " + scr.Name()}
				}
				if len(secs) > 0 {
					s.subSections = secs
					s.subRef = it.Ref
					s.subName = it.Summary
					s.level = LevelSubSections
					s.subSecIdx = 0
					return Result{Outcome: OutcomeDrilled, Announcement: s.positionAt(h)}
				}
			}
		}
		if it.Activatable() {
			return Result{Outcome: OutcomeActivated, Command: it.Command, Label: it.Summary}
		}
		return Result{Outcome: OutcomeNothing}

	case LevelSubSections:
		sec := s.currentSubSection()
		if sec == nil {
			return Result{Outcome: OutcomeNothing, Announcement: "No sections"}
		}
		s.level = LevelSubEntries
		s.subEntIdx = 0
		if len(sec.Items) == 0 {
			return Result{Outcome: OutcomeDrilled, Announcement: "No entries"}
		}
		return Result{Outcome: OutcomeDrilled, Announcement: s.positionAt(h)}

	default: // LevelSubEntries
		sec := s.currentSubSection()
		if sec == nil || s.subEntIdx >= len(sec.Items) {
			return Result{Outcome: OutcomeNothing, Announcement: "No entries"}
		}
		it := sec.Items[s.subEntIdx]
		if it.Activatable() {
			return Result{Outcome: OutcomeActivated, Command: it.Command, Label: it.Summary}
		}
		return Result{Outcome: OutcomeNothing}
	}
}

// BackOut pops one level. Returns false at the Screens level without
// mutating anything; the caller decides what escape means there.
func (s *State) BackOut() bool {
	events.Nav.BackOut(s.level.String())
	switch s.level {
	case LevelScreens:
		return false
	case LevelItems:
		s.level = LevelScreens
	case LevelSections:
		s.level = LevelItems
	case LevelEntries:
		s.level = LevelSections
	case LevelSubSections:
		s.level = LevelEntries
		s.subSections = nil
		s.subRef = ""
		s.subName = ""
	case LevelSubEntries:
		s.level = LevelSubSections
	}
	return true
}

// PageDown jumps focus to the Screens level, then moves forward one screen.
// Used for fast screen switching regardless of current depth.
func (s *State) PageDown(h host.Handle) string {
	s.jumpToScreens()
	return s.step(h, 1)
}

// PageUp jumps to the Screens level, then moves back one screen.
func (s *State) PageUp(h host.Handle) string {
	s.jumpToScreens()
	return s.step(h, -1)
}

func (s *State) jumpToScreens() {
	if s.level == LevelScreens {
		return
	}
	s.level = LevelScreens
	s.subSections = nil
	s.subRef = ""
	s.subName = ""
	s.InvalidateSections()
}

// JumpToLetter moves the item cursor to the next item whose name starts
// with the letter. Only valid at the Items level on screens that declare
// letter navigation; the bool reports whether the key was handled.
func (s *State) JumpToLetter(h host.Handle, letter rune) (string, bool) {
	if s.level != LevelItems {
		return "", false
	}
	scr := s.CurrentScreen()
	if scr == nil || !scr.Capabilities().LetterNav {
		return "", false
	}
	idx := review.FindNextItemByLetter(scr, letter, s.itemIdx)
	events.Nav.LetterJump(scr.Name(), string(letter), idx)
	if idx < 0 {
		return fmt.Sprintf("No item starting with %c", letter), true
	}
	if idx != s.itemIdx {
		s.InvalidateSections()
	}
	s.itemIdx = idx
	return s.positionAt(h), true
}

// JumpToItem moves the item cursor directly (used by search). Returns the
// announcement; out-of-range indices are ignored.
func (s *State) JumpToItem(h host.Handle, idx int) string {
	if s.level != LevelItems {
		return ""
	}
	scr := s.CurrentScreen()
	if scr == nil || idx < 0 || idx >= scr.ItemCount() {
		return ""
	}
	if idx != s.itemIdx {
		s.InvalidateSections()
	}
	s.itemIdx = idx
	return s.positionAt(h)
}

// ToggleView flips the current screen's view mode when it supports one.
func (s *State) ToggleView(h host.Handle) (string, bool) {
	scr := s.CurrentScreen()
	if scr == nil || s.level < LevelItems {
		return "", false
	}
	vt, ok := scr.(review.ViewToggler)
	if !ok {
		return "", false
	}
	status := vt.ToggleViewMode(h)
	s.afterItemListChange(scr)
	events.Nav.ViewToggle(scr.Name(), status)
	return status, true
}

// CycleFaction advances the current screen's faction filter.
func (s *State) CycleFaction(h host.Handle) (string, bool) {
	scr := s.CurrentScreen()
	if scr == nil || s.level < LevelItems {
		return "", false
	}
	fc, ok := scr.(review.FactionCycler)
	if !ok {
		return "", false
	}
	status := fc.CycleFactionFilter(h)
	s.afterItemListChange(scr)
	events.Nav.FactionCycle(scr.Name(), status)
	return status, true
}

// afterItemListChange clamps the cursor and drops caches after the item
// universe changed underneath it.
func (s *State) afterItemListChange(scr review.Screen) {
	s.InvalidateSections()
	if s.level > LevelItems {
		s.level = LevelItems
	}
	n := scr.ItemCount()
	if n == 0 {
		s.itemIdx = 0
		return
	}
	if s.itemIdx >= n {
		s.itemIdx = n - 1
	}
	if s.itemIdx < 0 {
		s.itemIdx = 0
	}
}

// RefreshCurrent re-derives the focused screen's items from host state and
// clamps every index back into range. Section caches are rebuilt lazily;
// when a drilled-into structure no longer fits, focus retreats to the
// nearest valid level rather than pointing at a stale node.
func (s *State) RefreshCurrent(h host.Handle) {
	scr := s.CurrentScreen()
	if scr == nil || s.level < LevelItems {
		return
	}
	scr.Refresh(h)
	n := scr.ItemCount()
	if n == 0 {
		s.itemIdx = 0
		s.jumpBackTo(LevelItems)
		s.InvalidateSections()
		return
	}
	if s.itemIdx >= n {
		s.itemIdx = n - 1
		s.jumpBackTo(LevelItems)
		s.InvalidateSections()
		return
	}
	if s.level < LevelSections {
		s.InvalidateSections()
		return
	}
	// Same item index: rebuild sections and keep the deeper cursor when it
	// still fits.
	s.InvalidateSections()
	secs, err := s.sectionsFor(h, scr)
	if err != nil || len(secs) == 0 {
		s.jumpBackTo(LevelItems)
		return
	}
	if s.sectionIdx >= len(secs) {
		s.sectionIdx = len(secs) - 1
		s.jumpBackTo(LevelSections)
		return
	}
	if s.level >= LevelEntries {
		sec := secs[s.sectionIdx]
		if s.entryIdx >= len(sec.Items) {
			if len(sec.Items) == 0 {
				s.entryIdx = 0
			} else {
				s.entryIdx = len(sec.Items) - 1
			}
			s.jumpBackTo(LevelEntries)
			return
		}
	}
	if s.level >= LevelSubSections && s.subRef != "" {
		rr, ok := scr.(review.RefResolver)
		if !ok {
			s.jumpBackTo(LevelEntries)
			return
		}
		subs, err := review.SafeSections(scr.Name(), func() ([]*review.Section, error) {
			return rr.SectionsForRef(h, s.subRef)
		})
		if err != nil || len(subs) == 0 {
			s.jumpBackTo(LevelEntries)
			return
		}
		s.subSections = subs
		if s.subSecIdx >= len(subs) {
			s.subSecIdx = len(subs) - 1
			s.jumpBackTo(LevelSubSections)
			return
		}
		if s.level == LevelSubEntries {
			sub := subs[s.subSecIdx]
			if s.subEntIdx >= len(sub.Items) {
				if len(sub.Items) == 0 {
					s.subEntIdx = 0
				} else {
					s.subEntIdx = len(sub.Items) - 1
				}
			}
		}
	}
}

// jumpBackTo retreats focus to at most the given level.
func (s *State) jumpBackTo(l Level) {
	if s.level <= l {
		return
	}
	s.level = l
	if l < LevelSubSections {
		s.subSections = nil
		s.subRef = ""
		s.subName = ""
	}
}

// sectionsFor returns the sections for the current item, re-invoking the
// screen's builder only when the single-slot cache misses.
func (s *State) sectionsFor(h host.Handle, scr review.Screen) ([]*review.Section, error) {
	if s.cacheValid && s.cacheItem == s.itemIdx {
		return s.sections, nil
	}
	secs, err := review.SafeSections(scr.Name(), func() ([]*review.Section, error) {
		return scr.SectionsForItem(h, s.itemIdx)
	})
	if err != nil {
		return nil, err
	}
	s.sections = secs
	s.cacheItem = s.itemIdx
	s.cacheValid = true
	return secs, nil
}

func (s *State) currentSection() *review.Section {
	if s.sectionIdx < 0 || s.sectionIdx >= len(s.sections) {
		return nil
	}
	return s.sections[s.sectionIdx]
}

func (s *State) currentSubSection() *review.Section {
	if s.subSecIdx < 0 || s.subSecIdx >= len(s.subSections) {
		return nil
	}
	return s.subSections[s.subSecIdx]
}

// Breadcrumb renders the focus path for the UI header.
func (s *State) Breadcrumb() string {
	scr := s.CurrentScreen()
	if scr == nil {
		return "review"
	}
	switch s.level {
	case LevelScreens:
		return "review"
	case LevelItems:
		return scr.Name()
	case LevelSections, LevelEntries:
		return fmt.Sprintf("%s→%s", scr.Name(), scr.ItemName(s.itemIdx))
	default:
		return fmt.Sprintf("%s→%s→%s", scr.Name(), scr.ItemName(s.itemIdx), s.subName)
	}
}
