// Package dispatcher routes backend snapshot events into the stores.
package dispatcher

import (
	"github.com/softwatch/astroreview/internal/backend"
	"github.com/softwatch/astroreview/internal/host/sim"
	"github.com/softwatch/astroreview/internal/state"
)

// Result reports which stores a backend event refreshed, so the UI knows
// which on-screen lists to rebuild.
type Result struct {
	FleetsUpdated  bool
	CouncilUpdated bool
	NationsUpdated bool
	EconomyUpdated bool
	SurfaceUpdated bool
}

// Any reports whether the event refreshed review-screen data (the surface
// store only feeds the slot cursor).
func (r Result) Any() bool {
	return r.FleetsUpdated || r.CouncilUpdated || r.NationsUpdated || r.EconomyUpdated
}

type Dispatcher struct {
	fleets  state.FleetStore
	council state.CouncilStore
	nations state.NationStore
	economy state.EconomyStore
	surface state.SurfaceStore
}

func New(f state.FleetStore, c state.CouncilStore, n state.NationStore, e state.EconomyStore, s state.SurfaceStore) *Dispatcher {
	return &Dispatcher{fleets: f, council: c, nations: n, economy: e, surface: s}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		return res
	}
	switch evt.Kind {
	case backend.KindFleets:
		if snapshot, ok := evt.Data.(sim.FleetSnapshot); ok {
			d.fleets.SetEntries(snapshot.Fleets)
			d.fleets.SetFaction(snapshot.Faction)
			res.FleetsUpdated = true
		}
	case backend.KindCouncil:
		if snapshot, ok := evt.Data.(sim.CouncilSnapshot); ok {
			d.council.SetEntries(snapshot.Councilors)
			res.CouncilUpdated = true
		}
	case backend.KindNations:
		if snapshot, ok := evt.Data.(sim.NationSnapshot); ok {
			d.nations.SetEntries(snapshot.Nations)
			res.NationsUpdated = true
		}
	case backend.KindEconomy:
		if snapshot, ok := evt.Data.(sim.EconomySnapshot); ok {
			d.economy.Set(snapshot.Funds, snapshot.Habs, snapshot.Resources, snapshot.Research)
			res.EconomyUpdated = true
		}
	case backend.KindSurface:
		if snapshot, ok := evt.Data.(sim.SurfaceSnapshot); ok {
			d.surface.Set(snapshot.Surface, snapshot.Speed, snapshot.Paused)
			res.SurfaceUpdated = true
		}
	}
	return res
}
