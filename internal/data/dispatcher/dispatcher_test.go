package dispatcher

import (
	"errors"
	"testing"

	"github.com/softwatch/astroreview/internal/backend"
	"github.com/softwatch/astroreview/internal/host"
	"github.com/softwatch/astroreview/internal/host/sim"
	"github.com/softwatch/astroreview/internal/state"
)

func newDispatcher() (*Dispatcher, state.FleetStore, state.SurfaceStore) {
	fleets := state.NewFleetStore()
	council := state.NewCouncilStore()
	nations := state.NewNationStore()
	economy := state.NewEconomyStore()
	surface := state.NewSurfaceStore()
	return New(fleets, council, nations, economy, surface), fleets, surface
}

func TestFleetEventUpdatesStore(t *testing.T) {
	d, fleets, _ := newDispatcher()
	res := d.Handle(backend.Event{Kind: backend.KindFleets, Data: sim.FleetSnapshot{
		Faction: "Compact",
		Fleets:  []host.FleetEntry{{ID: "fl-1", Name: "Kestrel"}},
	}})
	if !res.FleetsUpdated || !res.Any() {
		t.Fatalf("fleet event should flag a review update, got %+v", res)
	}
	if fleets.Faction() != "Compact" || len(fleets.Entries()) != 1 {
		t.Fatalf("store not updated: %q %d", fleets.Faction(), len(fleets.Entries()))
	}
}

func TestSurfaceEventIsNotAReviewUpdate(t *testing.T) {
	d, _, surface := newDispatcher()
	res := d.Handle(backend.Event{Kind: backend.KindSurface, Data: sim.SurfaceSnapshot{
		Surface: host.SurfaceSnapshot{ID: "main"},
		Speed:   2,
	}})
	if !res.SurfaceUpdated || res.Any() {
		t.Fatalf("surface event should only flag the surface, got %+v", res)
	}
	if snap := surface.Snapshot(); snap.ID != "main" {
		t.Fatalf("surface store not updated: %+v", snap)
	}
}

func TestErrorEventsAreIgnored(t *testing.T) {
	d, fleets, _ := newDispatcher()
	res := d.Handle(backend.Event{Kind: backend.KindFleets, Err: errors.New("poll failed")})
	if res.Any() || res.SurfaceUpdated {
		t.Fatalf("error event should update nothing, got %+v", res)
	}
	if len(fleets.Entries()) != 0 {
		t.Fatalf("store should stay empty after an error event")
	}
}

func TestMismatchedPayloadIsIgnored(t *testing.T) {
	d, fleets, _ := newDispatcher()
	res := d.Handle(backend.Event{Kind: backend.KindFleets, Data: "not a snapshot"})
	if res.Any() {
		t.Fatalf("wrong payload type should update nothing, got %+v", res)
	}
	if len(fleets.Entries()) != 0 {
		t.Fatalf("store should stay empty after a bad payload")
	}
}
