package nav

import (
	"fmt"
	"testing"

	"github.com/softwatch/astroreview/internal/host"
	"github.com/softwatch/astroreview/internal/review"
	"github.com/softwatch/astroreview/internal/review/grid"
)

type fakeScreen struct {
	name     string
	items    []string
	caps     review.Capabilities
	sections map[int][]*review.Section
	subs     map[string][]*review.Section

	fetches   int
	refreshTo []string
}

func (f *fakeScreen) Name() string                      { return f.name }
func (f *fakeScreen) Description() string               { return f.name + " screen" }
func (f *fakeScreen) Capabilities() review.Capabilities { return f.caps }

func (f *fakeScreen) Refresh(h host.Handle) {
	if f.refreshTo != nil {
		f.items = f.refreshTo
	}
}

func (f *fakeScreen) ItemCount() int { return len(f.items) }

func (f *fakeScreen) ItemSummary(i int) string {
	if i < 0 || i >= len(f.items) {
		return review.InvalidItemMessage
	}
	return f.items[i]
}

func (f *fakeScreen) ItemDetail(i int) string { return f.ItemSummary(i) + " detail" }
func (f *fakeScreen) ItemName(i int) string   { return f.ItemSummary(i) }

func (f *fakeScreen) SectionsForItem(h host.Handle, i int) ([]*review.Section, error) {
	f.fetches++
	return f.sections[i], nil
}

func (f *fakeScreen) CanDrillIntoItem(h host.Handle, i int) bool {
	return len(f.sections[i]) > 0
}

func (f *fakeScreen) ActivationAnnouncement(h host.Handle) string {
	f.Refresh(h)
	return fmt.Sprintf("%s: %d items", f.name, len(f.items))
}

func (f *fakeScreen) SectionsForRef(h host.Handle, ref string) ([]*review.Section, error) {
	return f.subs[ref], nil
}

type gridScreen struct {
	fakeScreen
	g *grid.Model
}

func (g *gridScreen) Grid(h host.Handle, i int) (*grid.Model, bool) {
	return g.g, g.g != nil
}

func phoneticScreen() *fakeScreen {
	return &fakeScreen{
		name:  "Fleets",
		items: []string{"Alpha", "Bravo", "Charlie"},
		caps:  review.Capabilities{LetterNav: true},
		sections: map[int][]*review.Section{
			0: {review.NewSection("Orders").AddItem("Dock", "", "", host.Command{Verb: host.VerbFleetDock, Target: "fl-1"})},
		},
	}
}

func atItems(t *testing.T, scr review.Screen) *State {
	t.Helper()
	s := NewState([]review.Screen{scr})
	if res := s.DrillDown(host.Handle{}); res.Outcome != OutcomeDrilled {
		t.Fatalf("expected drill into items, got %v", res.Outcome)
	}
	return s
}

func TestNextWrapsAround(t *testing.T) {
	s := NewState([]review.Screen{
		&fakeScreen{name: "A"}, &fakeScreen{name: "B"}, &fakeScreen{name: "C"},
	})
	h := host.Handle{}
	for i := 0; i < 3; i++ {
		s.Next(h)
	}
	if s.ScreenIndex() != 0 {
		t.Fatalf("three steps over three screens should wrap to 0, got %d", s.ScreenIndex())
	}
	if got := s.Previous(h); got == "" {
		t.Fatalf("expected an announcement")
	}
	if s.ScreenIndex() != 2 {
		t.Fatalf("previous from 0 should wrap to 2, got %d", s.ScreenIndex())
	}
}

func TestNextPreviousInverse(t *testing.T) {
	s := atItems(t, phoneticScreen())
	h := host.Handle{}
	s.Next(h)
	before := s.ItemIndex()
	s.Next(h)
	s.Previous(h)
	if s.ItemIndex() != before {
		t.Fatalf("next then previous should restore index %d, got %d", before, s.ItemIndex())
	}
}

func TestEmptyItemsNoop(t *testing.T) {
	s := atItems(t, &fakeScreen{name: "Fleets"})
	h := host.Handle{}
	if got := s.Next(h); got != "Fleets, no items" {
		t.Fatalf("unexpected empty announcement %q", got)
	}
	if s.ItemIndex() != 0 {
		t.Fatalf("cursor moved on empty list: %d", s.ItemIndex())
	}
	if res := s.DrillDown(h); res.Outcome != OutcomeNothing {
		t.Fatalf("drill on empty list should do nothing, got %v", res.Outcome)
	}
}

func TestBackOutAtTop(t *testing.T) {
	s := NewState([]review.Screen{&fakeScreen{name: "A"}, &fakeScreen{name: "B"}})
	s.Next(host.Handle{})
	if s.BackOut() {
		t.Fatalf("back out at screens level should report false")
	}
	if s.Level() != LevelScreens || s.ScreenIndex() != 1 {
		t.Fatalf("back out at top mutated state: level=%v idx=%d", s.Level(), s.ScreenIndex())
	}
}

func TestDrillAndBackOutRoundTrip(t *testing.T) {
	s := atItems(t, phoneticScreen())
	h := host.Handle{}
	if res := s.DrillDown(h); res.Outcome != OutcomeDrilled {
		t.Fatalf("expected drill into sections, got %v", res.Outcome)
	}
	if res := s.DrillDown(h); res.Outcome != OutcomeDrilled {
		t.Fatalf("expected drill into entries, got %v", res.Outcome)
	}
	res := s.DrillDown(h)
	if res.Outcome != OutcomeActivated {
		t.Fatalf("expected activation at entry, got %v", res.Outcome)
	}
	if res.Command.Verb != host.VerbFleetDock || res.Label != "Dock" {
		t.Fatalf("wrong command %+v label %q", res.Command, res.Label)
	}
	for _, want := range []Level{LevelSections, LevelItems, LevelScreens} {
		if !s.BackOut() {
			t.Fatalf("back out to %v should succeed", want)
		}
		if s.Level() != want {
			t.Fatalf("expected level %v, got %v", want, s.Level())
		}
	}
}

func TestDrillItemWithoutSections(t *testing.T) {
	scr := phoneticScreen()
	s := atItems(t, scr)
	h := host.Handle{}
	s.Next(h) // Bravo has no sections
	res := s.DrillDown(h)
	if res.Outcome != OutcomeNothing {
		t.Fatalf("item without sections should do nothing, got %v", res.Outcome)
	}
	if s.Level() != LevelItems {
		t.Fatalf("level changed on failed drill: %v", s.Level())
	}
}

func TestSectionCacheSingleFetch(t *testing.T) {
	scr := phoneticScreen()
	s := atItems(t, scr)
	h := host.Handle{}
	s.DrillDown(h)
	s.BackOut()
	s.DrillDown(h)
	if scr.fetches != 1 {
		t.Fatalf("repeated drill on same item should fetch once, got %d", scr.fetches)
	}
	s.BackOut()
	s.Next(h)
	s.Previous(h)
	s.DrillDown(h)
	if scr.fetches != 2 {
		t.Fatalf("moving the item cursor should invalidate the cache, got %d fetches", scr.fetches)
	}
}

func TestRefreshShrinkClampsCursor(t *testing.T) {
	scr := phoneticScreen()
	s := atItems(t, scr)
	h := host.Handle{}
	s.Next(h)
	s.Next(h) // Charlie, index 2
	scr.refreshTo = []string{"Alpha", "Bravo"}
	s.RefreshCurrent(h)
	if s.ItemIndex() != 1 {
		t.Fatalf("cursor should clamp to 1 after shrink, got %d", s.ItemIndex())
	}
	if got := s.Position(h); got != "Bravo, 2 of 2" {
		t.Fatalf("unexpected position %q", got)
	}
}

func TestRefreshRetreatsFromVanishedSections(t *testing.T) {
	scr := phoneticScreen()
	s := atItems(t, scr)
	h := host.Handle{}
	s.DrillDown(h)
	s.DrillDown(h)
	if s.Level() != LevelEntries {
		t.Fatalf("setup: expected entries level, got %v", s.Level())
	}
	scr.sections = map[int][]*review.Section{}
	s.RefreshCurrent(h)
	if s.Level() != LevelItems {
		t.Fatalf("focus should retreat to items when sections vanish, got %v", s.Level())
	}
}

func TestStaleIndexReadsTolerated(t *testing.T) {
	scr := phoneticScreen()
	s := atItems(t, scr)
	h := host.Handle{}
	s.Next(h)
	s.Next(h)
	scr.items = []string{"Alpha"} // shrink without RefreshCurrent
	if got := s.Position(h); got == "" {
		t.Fatalf("stale read should still produce text")
	}
	if got := scr.ItemSummary(2); got != review.InvalidItemMessage {
		t.Fatalf("out-of-range summary should be %q, got %q", review.InvalidItemMessage, got)
	}
}

func TestLetterJump(t *testing.T) {
	s := atItems(t, phoneticScreen())
	h := host.Handle{}

	got, handled := s.JumpToLetter(h, 'c')
	if !handled || s.ItemIndex() != 2 {
		t.Fatalf("jump to c from 0 should land on 2, got idx=%d handled=%v", s.ItemIndex(), handled)
	}
	if got != "Charlie, 3 of 3" {
		t.Fatalf("unexpected announcement %q", got)
	}

	// Wraparound from the last match re-checks the starting index itself.
	if _, _ = s.JumpToLetter(h, 'c'); s.ItemIndex() != 2 {
		t.Fatalf("sole match should wrap back to itself, got %d", s.ItemIndex())
	}

	got, handled = s.JumpToLetter(h, 'x')
	if !handled || s.ItemIndex() != 2 {
		t.Fatalf("miss should keep the cursor, got idx=%d", s.ItemIndex())
	}
	if got != "No item starting with x" {
		t.Fatalf("unexpected miss announcement %q", got)
	}
}

func TestLetterJumpRequiresCapability(t *testing.T) {
	scr := phoneticScreen()
	scr.caps = review.Capabilities{}
	s := atItems(t, scr)
	if _, handled := s.JumpToLetter(host.Handle{}, 'a'); handled {
		t.Fatalf("screen without letter nav should not handle the key")
	}
}

func TestLetterJumpOnlyAtItemsLevel(t *testing.T) {
	s := NewState([]review.Screen{phoneticScreen()})
	if _, handled := s.JumpToLetter(host.Handle{}, 'a'); handled {
		t.Fatalf("letter jump at screens level should fall through")
	}
}

func TestPageDownJumpsToScreens(t *testing.T) {
	scrA := phoneticScreen()
	scrB := &fakeScreen{name: "Councilors"}
	s := NewState([]review.Screen{scrA, scrB})
	h := host.Handle{}
	s.DrillDown(h)
	s.DrillDown(h)
	ann := s.PageDown(h)
	if s.Level() != LevelScreens || s.ScreenIndex() != 1 {
		t.Fatalf("page down should land on screens level index 1, got %v %d", s.Level(), s.ScreenIndex())
	}
	if ann != "Councilors, screen 2 of 2" {
		t.Fatalf("unexpected announcement %q", ann)
	}
	s.PageUp(h)
	if s.ScreenIndex() != 0 {
		t.Fatalf("page up should return to screen 0, got %d", s.ScreenIndex())
	}
}

func TestGridHandOff(t *testing.T) {
	scr := &gridScreen{
		fakeScreen: fakeScreen{name: "Priorities", items: []string{"Caspia"}},
		g: grid.New("Caspia", []host.PriorityRow{
			{ID: "pr-1", Name: "Economy", Weight: 2},
		}, 5),
	}
	s := atItems(t, scr)
	res := s.DrillDown(host.Handle{})
	if res.Outcome != OutcomeGrid || res.Grid == nil {
		t.Fatalf("expected grid hand-off, got %v", res.Outcome)
	}
	if s.Level() != LevelItems {
		t.Fatalf("grid hand-off should not change the nav level, got %v", s.Level())
	}
}

func TestRefDrillIntoSubSections(t *testing.T) {
	scr := phoneticScreen()
	scr.sections = map[int][]*review.Section{
		0: {review.NewSection("Resources").AddRef("Water", "12", "", "hab-1")},
	}
	scr.subs = map[string][]*review.Section{
		"hab-1": {review.NewSection("Modules").AddItem("Farm", "", "", host.Command{})},
	}
	s := atItems(t, scr)
	h := host.Handle{}
	s.DrillDown(h)
	s.DrillDown(h)
	res := s.DrillDown(h)
	if res.Outcome != OutcomeDrilled || s.Level() != LevelSubSections {
		t.Fatalf("ref entry should drill into sub-sections, got %v at %v", res.Outcome, s.Level())
	}
	if res2 := s.DrillDown(h); res2.Outcome != OutcomeDrilled || s.Level() != LevelSubEntries {
		t.Fatalf("expected sub-entries level, got %v at %v", res2.Outcome, s.Level())
	}
	if !s.BackOut() || s.Level() != LevelSubSections {
		t.Fatalf("back out should return to sub-sections, got %v", s.Level())
	}
	s.BackOut()
	if s.Level() != LevelEntries {
		t.Fatalf("back out should return to entries, got %v", s.Level())
	}
}
