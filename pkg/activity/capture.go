package activity

import (
	"context"
	"sync"
)

// CaptureHook records events for assertions in tests and examples.
type CaptureHook struct {
	// Err is returned from every Notify call.
	Err error

	mu     sync.Mutex
	events []Event
}

// Notify records the normalized event and returns Err.
func (h *CaptureHook) Notify(_ context.Context, event Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, NormalizeEvent(event))
	return h.Err
}

// Events returns a copy of the recorded events in arrival order.
func (h *CaptureHook) Events() []Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Event(nil), h.events...)
}

// Verbs returns the verbs of the recorded events in arrival order.
func (h *CaptureHook) Verbs() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	verbs := make([]string, len(h.events))
	for i, event := range h.events {
		verbs[i] = event.Verb
	}
	return verbs
}
