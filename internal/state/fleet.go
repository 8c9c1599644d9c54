// Package state holds the interface-typed stores kept fresh by the data
// dispatcher. Stores hand out copies so screens can never mutate shared
// snapshots.
package state

import "github.com/softwatch/astroreview/internal/host"

type FleetStore interface {
	Entries() []host.FleetEntry
	SetEntries([]host.FleetEntry)
	Faction() string
	SetFaction(string)
}

type fleetStore struct {
	entries []host.FleetEntry
	faction string
}

func NewFleetStore() FleetStore {
	return &fleetStore{}
}

func (s *fleetStore) Entries() []host.FleetEntry {
	if len(s.entries) == 0 {
		return nil
	}
	dup := make([]host.FleetEntry, len(s.entries))
	copy(dup, s.entries)
	return dup
}

func (s *fleetStore) SetEntries(entries []host.FleetEntry) {
	s.entries = append([]host.FleetEntry(nil), entries...)
}

func (s *fleetStore) Faction() string {
	return s.faction
}

func (s *fleetStore) SetFaction(f string) {
	s.faction = f
}
