package tracking

import (
	"context"
	"maps"
	"sync"

	"github.com/goliatone/go-lessonui/components/lessonui"
)

// Recorder implements lessonui.Transport by keeping events in memory. It backs
// dry runs and tests.
type Recorder struct {
	mu     sync.RWMutex
	events []lessonui.TrackingEvent
	err    error
}

// NewRecorder builds an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// FailWith makes subsequent sends record the event and return err.
func (r *Recorder) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

// Send stores a copy of the event.
func (r *Recorder) Send(_ context.Context, event lessonui.TrackingEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, cloneEvent(event))
	return r.err
}

// Events returns the recorded events in send order.
func (r *Recorder) Events() []lessonui.TrackingEvent {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]lessonui.TrackingEvent, len(r.events))
	for i, event := range r.events {
		out[i] = cloneEvent(event)
	}
	return out
}

// Reset drops recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

func cloneEvent(event lessonui.TrackingEvent) lessonui.TrackingEvent {
	out := event
	out.Meta = lessonui.Meta{}
	maps.Copy(out.Meta, event.Meta)
	return out
}
