package state

import "github.com/softwatch/astroreview/internal/host"

type NationStore interface {
	Entries() []host.NationEntry
	SetEntries([]host.NationEntry)
}

type nationStore struct {
	entries []host.NationEntry
}

func NewNationStore() NationStore {
	return &nationStore{}
}

func (s *nationStore) Entries() []host.NationEntry {
	if len(s.entries) == 0 {
		return nil
	}
	dup := make([]host.NationEntry, len(s.entries))
	copy(dup, s.entries)
	return dup
}

func (s *nationStore) SetEntries(entries []host.NationEntry) {
	s.entries = append([]host.NationEntry(nil), entries...)
}
