package state

import "github.com/softwatch/astroreview/internal/host"

type SurfaceStore interface {
	Snapshot() host.SurfaceSnapshot
	Speed() int
	Paused() bool
	Set(snapshot host.SurfaceSnapshot, speed int, paused bool)
}

type surfaceStore struct {
	snapshot host.SurfaceSnapshot
	speed    int
	paused   bool
}

func NewSurfaceStore() SurfaceStore {
	return &surfaceStore{speed: 1}
}

func (s *surfaceStore) Snapshot() host.SurfaceSnapshot {
	return host.SurfaceSnapshot{
		ID:       s.snapshot.ID,
		Elements: append([]host.SurfaceElement(nil), s.snapshot.Elements...),
	}
}

func (s *surfaceStore) Speed() int {
	return s.speed
}

func (s *surfaceStore) Paused() bool {
	return s.paused
}

func (s *surfaceStore) Set(snapshot host.SurfaceSnapshot, speed int, paused bool) {
	s.snapshot = snapshot
	s.speed = speed
	s.paused = paused
}
