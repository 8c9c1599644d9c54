package state

import "github.com/softwatch/astroreview/internal/host"

type EconomyStore interface {
	Funds() float64
	Habs() []host.HabEntry
	Resources() []host.ResourceLine
	Research() []host.ResearchEntry
	Set(funds float64, habs []host.HabEntry, resources []host.ResourceLine, research []host.ResearchEntry)
}

type economyStore struct {
	funds     float64
	habs      []host.HabEntry
	resources []host.ResourceLine
	research  []host.ResearchEntry
}

func NewEconomyStore() EconomyStore {
	return &economyStore{}
}

func (s *economyStore) Funds() float64 {
	return s.funds
}

func (s *economyStore) Habs() []host.HabEntry {
	return append([]host.HabEntry(nil), s.habs...)
}

func (s *economyStore) Resources() []host.ResourceLine {
	return append([]host.ResourceLine(nil), s.resources...)
}

func (s *economyStore) Research() []host.ResearchEntry {
	return append([]host.ResearchEntry(nil), s.research...)
}

func (s *economyStore) Set(funds float64, habs []host.HabEntry, resources []host.ResourceLine, research []host.ResearchEntry) {
	s.funds = funds
	s.habs = append([]host.HabEntry(nil), habs...)
	s.resources = append([]host.ResourceLine(nil), resources...)
	s.research = append([]host.ResearchEntry(nil), research...)
}
