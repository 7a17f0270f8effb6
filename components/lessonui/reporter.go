package lessonui

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Transport delivers a single tracking event to the backend.
type Transport interface {
	Send(ctx context.Context, event TrackingEvent) error
}

// TransportFunc adapts a function to Transport.
type TransportFunc func(ctx context.Context, event TrackingEvent) error

// Send calls f.
func (f TransportFunc) Send(ctx context.Context, event TrackingEvent) error {
	return f(ctx, event)
}

// Reporter is the one-way notification contract used by the page components.
type Reporter interface {
	Report(eventType string, lessonID LessonID, meta Meta)
}

// ReporterOptions configures an EventReporter.
type ReporterOptions struct {
	Transport Transport
	// Logger receives transport failures at Debug level. Defaults to the logrus standard logger.
	Logger logrus.FieldLogger
}

// EventReporter sends tracking events in the background and swallows failures.
type EventReporter struct {
	transport Transport
	logger    logrus.FieldLogger
	inflight  sync.WaitGroup
}

// NewEventReporter builds a reporter. A nil transport makes every report a no-op send.
func NewEventReporter(opts ReporterOptions) *EventReporter {
	if opts.Transport == nil {
		opts.Transport = noopTransport{}
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	return &EventReporter{
		transport: opts.Transport,
		logger:    opts.Logger,
	}
}

// Report transmits the event without waiting for, or exposing, the outcome.
// Successive reports may complete in any order.
func (r *EventReporter) Report(eventType string, lessonID LessonID, meta Meta) {
	event := NewTrackingEvent(eventType, lessonID, meta)
	dispatchID := uuid.NewString()
	r.inflight.Add(1)
	go func() {
		defer r.inflight.Done()
		r.send(dispatchID, event)
	}()
}

func (r *EventReporter) send(dispatchID string, event TrackingEvent) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.WithFields(logrus.Fields{
				"dispatch_id": dispatchID,
				"event_type":  event.EventType,
				"panic":       rec,
			}).Debug("track error")
		}
	}()
	if err := r.transport.Send(context.Background(), event); err != nil {
		r.logger.WithFields(logrus.Fields{
			"dispatch_id": dispatchID,
			"event_type":  event.EventType,
			"lesson_id":   event.LessonID.String(),
		}).WithError(err).Debug("track error")
	}
}

// Wait blocks until every send started so far has settled. Only process owners
// call this, typically right before exit.
func (r *EventReporter) Wait() {
	r.inflight.Wait()
}

type noopTransport struct{}

func (noopTransport) Send(context.Context, TrackingEvent) error { return nil }
