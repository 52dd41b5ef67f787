package weft

import (
	"testing"
	"time"
)

// scriptReader feeds a fixed sequence of events to the app, then times
// out forever.
type scriptReader struct {
	events []Event
}

func (r *scriptReader) PollEvent(timeout time.Duration) (Event, bool) {
	if len(r.events) == 0 {
		return nil, false
	}
	ev := r.events[0]
	r.events = r.events[1:]
	return ev, true
}

func (r *scriptReader) Close() error { return nil }

// newTestApp builds an app on a mock terminal for pipeline tests.
func newTestApp(t *testing.T, width, height int, opts ...AppOption) (*App, *MockTerminal) {
	t.Helper()
	term := NewMockTerminal(width, height)
	app, err := NewAppWithTerminal(term, &scriptReader{}, opts...)
	if err != nil {
		t.Fatalf("NewAppWithTerminal: %v", err)
	}
	return app, term
}
