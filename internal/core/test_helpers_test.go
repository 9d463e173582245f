package core

import (
	"testing"
	"time"
)

func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev == nil {
				continue
			}
			if ev.Kind == kind {
				return ev
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	t.Fatalf("expected event kind %v not received", kind)
	return nil
}

// expectNoEvent asserts that no event of the given kind arrives within the
// grace window. Closed channels deliver nils, which are ignored.
func expectNoEvent(t *testing.T, ch <-chan *Event, kind EventKind) {
	t.Helper()

	deadline := time.Now().Add(150 * time.Millisecond)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev != nil && ev.Kind == kind {
				t.Fatalf("unexpected event: %+v", ev)
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}
