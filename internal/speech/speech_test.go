package speech

import (
	"testing"
	"time"
)

func TestTranscriptQueuesUntilFlush(t *testing.T) {
	tr := NewTranscript(10)
	tr.Speak("first", false)
	tr.Speak("second", false)
	if tr.Last() != "" {
		t.Fatalf("nothing should be audible before flush, got %q", tr.Last())
	}
	if tr.Pending() != 2 {
		t.Fatalf("expected 2 pending, got %d", tr.Pending())
	}
	if n := tr.Flush(); n != 2 {
		t.Fatalf("flush should report 2, got %d", n)
	}
	if tr.Last() != "second" || tr.Len() != 2 {
		t.Fatalf("unexpected history state: last=%q len=%d", tr.Last(), tr.Len())
	}
}

func TestInterruptDropsPending(t *testing.T) {
	tr := NewTranscript(10)
	tr.Speak("queued one", false)
	tr.Speak("queued two", false)
	tr.Speak("urgent", true)
	tr.Flush()
	if tr.Len() != 1 || tr.Last() != "urgent" {
		t.Fatalf("interrupt should drop queued lines, got len=%d last=%q", tr.Len(), tr.Last())
	}
}

func TestEmptyUtterancesIgnored(t *testing.T) {
	tr := NewTranscript(10)
	tr.Speak("", false)
	tr.Speak("", true)
	if tr.Pending() != 0 {
		t.Fatalf("empty text should not queue, got %d pending", tr.Pending())
	}
}

func TestHistoryTrimsToLimit(t *testing.T) {
	tr := NewTranscript(3)
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		tr.Speak(s, false)
		tr.Flush()
	}
	if tr.Len() != 3 || tr.Last() != "e" {
		t.Fatalf("history should keep the newest 3, got len=%d last=%q", tr.Len(), tr.Last())
	}
	tail := tr.Tail(10)
	if len(tail) != 3 || tail[0].Text != "c" {
		t.Fatalf("unexpected tail %+v", tail)
	}
}

func TestDebouncerSuppressesRepeatKey(t *testing.T) {
	now := time.Unix(0, 0)
	d := NewDebouncer(200 * time.Millisecond)
	d.SetClock(func() time.Time { return now })

	if !d.Allow("el-1") {
		t.Fatalf("first announcement should pass")
	}
	now = now.Add(50 * time.Millisecond)
	if d.Allow("el-1") {
		t.Fatalf("repeat inside the window should be suppressed")
	}
	if !d.Allow("el-2") {
		t.Fatalf("a different key should always pass")
	}
	now = now.Add(250 * time.Millisecond)
	if !d.Allow("el-2") {
		t.Fatalf("repeat after the window should pass")
	}
}

func TestDebouncerSuppressionExtendsWindow(t *testing.T) {
	now := time.Unix(0, 0)
	d := NewDebouncer(200 * time.Millisecond)
	d.SetClock(func() time.Time { return now })

	d.Allow("el-1")
	for i := 0; i < 5; i++ {
		now = now.Add(100 * time.Millisecond)
		if d.Allow("el-1") {
			t.Fatalf("continuous refiring should stay suppressed (step %d)", i)
		}
	}
}

func TestDebouncerReset(t *testing.T) {
	now := time.Unix(0, 0)
	d := NewDebouncer(200 * time.Millisecond)
	d.SetClock(func() time.Time { return now })

	d.Allow("el-1")
	d.Reset()
	if !d.Allow("el-1") {
		t.Fatalf("reset should clear the suppression state")
	}
}

func TestZeroWindowDisablesSuppression(t *testing.T) {
	d := NewDebouncer(0)
	if !d.Allow("x") || !d.Allow("x") {
		t.Fatalf("zero window should never suppress")
	}
}
