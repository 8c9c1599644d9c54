package backend

import (
	"testing"
	"time"

	"github.com/softwatch/astroreview/internal/host/sim"
)

func TestWatcherEmitsEverySnapshotKind(t *testing.T) {
	w := NewWatcher(sim.NewGame(), time.Second)
	defer w.Stop()

	seen := make(map[Kind]bool)
	deadline := time.After(5 * time.Second)
	for len(seen) < 5 {
		select {
		case evt, ok := <-w.Events():
			if !ok {
				t.Fatalf("events channel closed early, saw %d kinds", len(seen))
			}
			if evt.Err != nil {
				t.Fatalf("unexpected poll error: %v", evt.Err)
			}
			if evt.Data == nil {
				t.Fatalf("event %v carried no data", evt.Kind)
			}
			seen[evt.Kind] = true
		case <-deadline:
			t.Fatalf("timed out waiting for initial polls, saw %d kinds", len(seen))
		}
	}
}

func TestStopClosesEventChannel(t *testing.T) {
	w := NewWatcher(sim.NewGame(), time.Second)
	w.Stop()
	w.Wait()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-w.Events():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatalf("events channel never closed after Stop")
		}
	}
}

func TestSurfaceIntervalFloor(t *testing.T) {
	if got := surfaceInterval(2 * time.Second); got != 500*time.Millisecond {
		t.Fatalf("expected a quarter interval, got %s", got)
	}
	if got := surfaceInterval(200 * time.Millisecond); got != 100*time.Millisecond {
		t.Fatalf("expected the floor, got %s", got)
	}
}
