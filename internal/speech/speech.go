// Package speech is the outbound boundary of the review engine: everything
// the user hears funnels through a Sink. The engine never depends on sink
// internals beyond the Speak contract.
package speech

import (
	"time"

	"github.com/softwatch/astroreview/internal/logging/events"
)

// Sink receives announcement text. interrupt=true cancels anything still
// queued behind the in-flight utterance; false queues after it.
type Sink interface {
	Speak(text string, interrupt bool)
}

// Utterance is one spoken line as recorded by the transcript.
type Utterance struct {
	Text        string
	Interrupted bool
}

// Transcript is an in-process Sink that records utterances for the UI pane
// and for tests. Speak queues; the UI flushes once per frame, which is when
// queued lines become audible. An interrupting Speak drops whatever was
// still pending, mirroring a real screen-reader bridge cutting off speech.
type Transcript struct {
	pending []Utterance
	history []Utterance
	limit   int
}

// NewTranscript keeps at most limit utterances of history.
func NewTranscript(limit int) *Transcript {
	if limit <= 0 {
		limit = 50
	}
	return &Transcript{limit: limit}
}

// Speak implements Sink.
func (t *Transcript) Speak(text string, interrupt bool) {
	if text == "" {
		return
	}
	events.Speech.Utterance(text, interrupt)
	if interrupt {
		t.pending = t.pending[:0]
	}
	t.pending = append(t.pending, Utterance{Text: text, Interrupted: interrupt})
}

// Flush moves queued utterances into history. Returns how many became
// audible this frame.
func (t *Transcript) Flush() int {
	n := len(t.pending)
	for _, u := range t.pending {
		t.history = append(t.history, u)
	}
	t.pending = t.pending[:0]
	if len(t.history) > t.limit {
		t.history = t.history[len(t.history)-t.limit:]
	}
	return n
}

// Pending returns the number of queued, not yet audible utterances.
func (t *Transcript) Pending() int {
	return len(t.pending)
}

// Last returns the most recent audible utterance, or "".
func (t *Transcript) Last() string {
	if len(t.history) == 0 {
		return ""
	}
	return t.history[len(t.history)-1].Text
}

// Tail returns up to n most recent audible utterances, oldest first.
func (t *Transcript) Tail(n int) []Utterance {
	if n <= 0 || len(t.history) == 0 {
		return nil
	}
	if n > len(t.history) {
		n = len(t.history)
	}
	out := make([]Utterance, n)
	copy(out, t.history[len(t.history)-n:])
	return out
}

// Len returns the number of audible utterances recorded.
func (t *Transcript) Len() int {
	return len(t.history)
}

// Debouncer suppresses repeat announcements of the same key within a short
// window. The host UI refires hover/focus events; without this the sink
// floods with duplicates.
type Debouncer struct {
	window  time.Duration
	lastKey string
	lastAt  time.Time
	now     func() time.Time
}

// NewDebouncer builds a debouncer with the given window. A zero window
// disables suppression.
func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{window: window, now: time.Now}
}

// SetClock replaces the time source for tests.
func (d *Debouncer) SetClock(now func() time.Time) {
	d.now = now
}

// Allow reports whether an announcement for key should be spoken now, and
// records the attempt.
func (d *Debouncer) Allow(key string) bool {
	if d.window <= 0 {
		return true
	}
	now := d.now()
	if key == d.lastKey && now.Sub(d.lastAt) < d.window {
		d.lastAt = now
		events.Speech.Suppressed(key)
		return false
	}
	d.lastKey = key
	d.lastAt = now
	return true
}

// Reset clears the suppression state, so the next announcement always
// speaks (used when focus deliberately moves).
func (d *Debouncer) Reset() {
	d.lastKey = ""
	d.lastAt = time.Time{}
}
