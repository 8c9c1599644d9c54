package screens

import (
	"strings"
	"testing"

	"github.com/softwatch/astroreview/internal/host"
)

func testHandle() host.Handle {
	return host.Handle{
		Faction: "Compact",
		Funds:   120,
		Fleets: []host.FleetEntry{
			{ID: "fl-1", Name: "Kestrel", Faction: "Compact", System: "Earth", Mission: "Patrol", DeltaV: 900, Ships: []string{"TFS Kestrel"}},
			{ID: "fl-2", Name: "Relay", Faction: "Compact", System: "Luna", Mission: "Hold", DeltaV: 120},
			{ID: "fl-3", Name: "Vanguard", Faction: "Hydra", System: "Mars", Mission: "Transit", DeltaV: 2000},
		},
		Councilors: []host.CouncilorEntry{
			{ID: "co-1", Name: "Asha", Role: "Diplomat", Faction: "Compact", Location: "Geneva", Mission: "Idle", Persuasion: 14, Missions: []string{"Lobby", "Inspire"}},
			{ID: "co-2", Name: "Brin", Role: "Spy", Faction: "Hydra", Location: "Cairo", Persuasion: 9, Candidate: true, Cost: 40},
		},
		Nations: []host.NationEntry{
			{ID: "na-1", Name: "Caspia", Controller: "Compact", ControlPoints: 3, Unrest: 1.2, GDP: 900, Armies: 2,
				Priorities: []host.PriorityRow{{ID: "pr-1", Name: "Economy", Weight: 3}, {ID: "pr-2", Name: "Welfare", Weight: 1}}},
			{ID: "na-2", Name: "Veyron", Controller: "Hydra", ControlPoints: 5, Unrest: 4.0, GDP: 2100, Armies: 6},
		},
		Habs: []host.HabEntry{
			{ID: "hab-1", Name: "Copernicus Base", Body: "Luna", Faction: "Compact", Tier: 2,
				Modules: []string{"Mine", "Solar array"},
				Produces: map[string]float64{"Water": 4.5, "Volatiles": 1.0}},
		},
		Resources: []host.ResourceLine{
			{Name: "Water", Stock: 30, Income: 4.5},
			{Name: "Metals", Stock: 12, Income: -0.5},
		},
		Research: []host.ResearchEntry{
			{ID: "re-1", Name: "Fusion Drives", Category: "Energy", Progress: 0.4, Slot: 1},
			{ID: "re-2", Name: "Arcology", Category: "Society", Slot: -1},
		},
	}
}

func TestAllIsClosedAndOrdered(t *testing.T) {
	want := []string{"Fleets", "Councilors", "Nations", "Research", "Ledger", "Priorities"}
	got := All()
	if len(got) != len(want) {
		t.Fatalf("expected %d screens, got %d", len(want), len(got))
	}
	for i, scr := range got {
		if scr.Name() != want[i] {
			t.Fatalf("screen %d: expected %s, got %s", i, want[i], scr.Name())
		}
	}
}

func TestFleetsViewToggle(t *testing.T) {
	h := testHandle()
	f := NewFleets()
	f.Refresh(h)
	if f.ItemCount() != 2 {
		t.Fatalf("own view should hide foreign fleets, got %d", f.ItemCount())
	}
	status := f.ToggleViewMode(h)
	if f.ItemCount() != 3 {
		t.Fatalf("all view should show every fleet, got %d", f.ItemCount())
	}
	if status != "Showing all fleets, 3 visible" {
		t.Fatalf("unexpected toggle announcement %q", status)
	}
	f.ToggleViewMode(h)
	if f.ItemCount() != 2 {
		t.Fatalf("toggle should be its own inverse")
	}
}

func TestFleetsOrdersOnlyForOwnFleets(t *testing.T) {
	h := testHandle()
	f := NewFleets()
	f.ToggleViewMode(h) // all fleets
	secs, err := f.SectionsForItem(h, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, sec := range secs {
		if sec.Name == "Orders" {
			t.Fatalf("foreign fleet should have no orders section")
		}
	}
	secs, _ = f.SectionsForItem(h, 0)
	last := secs[len(secs)-1]
	if last.Name != "Orders" || len(last.Items) != 2 {
		t.Fatalf("own fleet should offer dock and intercept, got %+v", last)
	}
	if cmd := last.Items[0].Command; cmd.Verb != host.VerbFleetDock || cmd.Target != "fl-1" {
		t.Fatalf("unexpected dock command %+v", cmd)
	}
}

func TestCouncilorsFactionCycleWraps(t *testing.T) {
	h := testHandle()
	c := NewCouncilors()
	c.Refresh(h)
	if c.ItemCount() != 2 {
		t.Fatalf("unfiltered count: got %d", c.ItemCount())
	}
	c.CycleFactionFilter(h) // Compact
	if c.ItemCount() != 1 || c.ItemName(0) != "Asha" {
		t.Fatalf("Compact filter wrong: %d %s", c.ItemCount(), c.ItemName(0))
	}
	c.CycleFactionFilter(h) // Hydra
	if c.ItemCount() != 1 || c.ItemName(0) != "Brin" {
		t.Fatalf("Hydra filter wrong: %d %s", c.ItemCount(), c.ItemName(0))
	}
	status := c.CycleFactionFilter(h) // back to all
	if c.ItemCount() != 2 || !strings.HasPrefix(status, "All factions") {
		t.Fatalf("cycle should wrap to all, got %q with %d items", status, c.ItemCount())
	}
}

func TestCouncilorActions(t *testing.T) {
	h := testHandle()
	c := NewCouncilors()
	c.Refresh(h)

	secs, _ := c.SectionsForItem(h, 0)
	actions := secs[1]
	if len(actions.Items) != 2 || actions.Items[0].Command.Target != "co-1/Lobby" {
		t.Fatalf("serving councilor should list missions, got %+v", actions.Items)
	}

	secs, _ = c.SectionsForItem(h, 1)
	actions = secs[1]
	if len(actions.Items) != 1 {
		t.Fatalf("candidate should have exactly a recruit action")
	}
	cmd := actions.Items[0].Command
	if cmd.Verb != host.VerbCouncilorRecruit || cmd.Target != "co-2" {
		t.Fatalf("unexpected recruit command %+v", cmd)
	}
}

func TestLedgerSourcesDrillIntoHab(t *testing.T) {
	h := testHandle()
	l := NewLedger()
	l.Refresh(h)

	secs, _ := l.SectionsForItem(h, 0) // Water
	sources := secs[1]
	if len(sources.Items) != 1 || !sources.Items[0].HasRef() {
		t.Fatalf("water should have one producing hab ref, got %+v", sources.Items)
	}
	habSecs, err := l.SectionsForRef(h, sources.Items[0].Ref)
	if err != nil {
		t.Fatalf("resolving hab ref: %v", err)
	}
	if len(habSecs) != 3 || habSecs[1].Name != "Modules" || len(habSecs[1].Items) != 2 {
		t.Fatalf("unexpected hab sections %+v", habSecs)
	}

	if _, err := l.SectionsForRef(h, "hab-gone"); err == nil {
		t.Fatalf("vanished hab should error")
	}
}

func TestLedgerSkipsNonProducers(t *testing.T) {
	h := testHandle()
	l := NewLedger()
	l.Refresh(h)
	secs, _ := l.SectionsForItem(h, 1) // Metals, nothing produces it
	if len(secs[1].Items) != 0 {
		t.Fatalf("metals should have no sources, got %+v", secs[1].Items)
	}
}

func TestResearchAssignCommands(t *testing.T) {
	h := testHandle()
	r := NewResearch()
	r.Refresh(h)

	secs, _ := r.SectionsForItem(h, 1) // Arcology, unassigned
	assign := secs[1]
	if len(assign.Items) != researchSlots {
		t.Fatalf("unassigned project should offer %d slots, got %d", researchSlots, len(assign.Items))
	}
	cmd := assign.Items[2].Command
	if cmd.Verb != host.VerbResearchSlot || cmd.Target != "re-2" || cmd.Value != 2 {
		t.Fatalf("unexpected slot command %+v", cmd)
	}

	secs, _ = r.SectionsForItem(h, 0) // already in slot 1
	if assign := secs[1]; len(assign.Items) != 1 || assign.Items[0].Activatable() {
		t.Fatalf("assigned project should not offer slots, got %+v", assign.Items)
	}
}

func TestPrioritiesGridHandOff(t *testing.T) {
	h := testHandle()
	p := NewPriorities()
	p.Refresh(h)
	if p.ItemCount() != 1 || p.ItemName(0) != "Caspia" {
		t.Fatalf("only controlled nations belong here, got %d %s", p.ItemCount(), p.ItemName(0))
	}
	g, ok := p.Grid(h, 0)
	if !ok || g.Empty() {
		t.Fatalf("controlled nation should produce a grid")
	}
	if _, ok := p.Grid(h, 5); ok {
		t.Fatalf("stale index should not produce a grid")
	}
}

func TestStaleIndexReads(t *testing.T) {
	h := testHandle()
	for _, scr := range All() {
		scr.Refresh(h)
		if got := scr.ItemSummary(99); got == "" {
			t.Fatalf("%s: out-of-range summary should still speak", scr.Name())
		}
		if _, err := scr.SectionsForItem(h, 99); err != nil {
			t.Fatalf("%s: out-of-range sections should be empty, not an error: %v", scr.Name(), err)
		}
	}
}
