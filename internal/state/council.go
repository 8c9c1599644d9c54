package state

import "github.com/softwatch/astroreview/internal/host"

type CouncilStore interface {
	Entries() []host.CouncilorEntry
	SetEntries([]host.CouncilorEntry)
}

type councilStore struct {
	entries []host.CouncilorEntry
}

func NewCouncilStore() CouncilStore {
	return &councilStore{}
}

func (s *councilStore) Entries() []host.CouncilorEntry {
	if len(s.entries) == 0 {
		return nil
	}
	dup := make([]host.CouncilorEntry, len(s.entries))
	copy(dup, s.entries)
	return dup
}

func (s *councilStore) SetEntries(entries []host.CouncilorEntry) {
	s.entries = append([]host.CouncilorEntry(nil), entries...)
}
