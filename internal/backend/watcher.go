// Package backend polls the host game on fixed intervals and publishes
// snapshot events for the data dispatcher.
package backend

import (
	"context"
	"sync"
	"time"

	"github.com/softwatch/astroreview/internal/host/sim"
)

// Kind identifies which snapshot an event carries.
type Kind int

const (
	KindFleets Kind = iota
	KindCouncil
	KindNations
	KindEconomy
	KindSurface
)

// Event conveys updated data or an error from one poll.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// Watcher polls the game at a fixed interval and publishes events. The
// surface poller runs faster than the data pollers so the slot cursor
// notices screen changes promptly.
type Watcher struct {
	game     *sim.Game
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts pollers for every snapshot kind.
func NewWatcher(game *sim.Game, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		game:     game,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	w.startPoller(KindFleets, interval, func() (interface{}, error) { return game.FetchFleets() })
	w.startPoller(KindCouncil, interval, func() (interface{}, error) { return game.FetchCouncil() })
	w.startPoller(KindNations, interval, func() (interface{}, error) { return game.FetchNations() })
	w.startPoller(KindEconomy, interval, func() (interface{}, error) { return game.FetchEconomy() })
	w.startPoller(KindSurface, surfaceInterval(interval), func() (interface{}, error) { return game.FetchSurface() })

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns the channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Pollers exit after their current fetch; use
// Wait when a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all pollers have exited and the events channel closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func surfaceInterval(interval time.Duration) time.Duration {
	fast := interval / 4
	if fast < 100*time.Millisecond {
		fast = 100 * time.Millisecond
	}
	return fast
}

func (w *Watcher) startPoller(kind Kind, interval time.Duration, fetch func() (interface{}, error)) {
	pace := newPacer(interval / 4)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		emit := func() bool {
			pace.wait()
			data, err := fetch()
			evt := Event{Kind: kind, Data: data, Err: err}
			select {
			case <-w.ctx.Done():
				return false
			case w.events <- evt:
				return true
			}
		}

		if !emit() {
			return
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-w.ctx.Done():
				return
			case <-ticker.C:
				if !emit() {
					return
				}
			}
		}
	}()
}

// pacer enforces a minimum gap between successive fetches, shielding the
// host from bursts when the event channel drains after a stall.
type pacer struct {
	gap time.Duration

	mu   sync.Mutex
	next time.Time
}

func newPacer(gap time.Duration) *pacer {
	if gap <= 0 {
		return &pacer{}
	}
	return &pacer{gap: gap}
}

func (p *pacer) wait() {
	if p == nil || p.gap <= 0 {
		return
	}
	for {
		p.mu.Lock()
		wait := time.Until(p.next)
		if wait <= 0 {
			p.next = time.Now().Add(p.gap)
			p.mu.Unlock()
			return
		}
		p.mu.Unlock()
		if wait > p.gap {
			wait = p.gap
		}
		time.Sleep(wait)
	}
}
