package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
)

// TrackPageViewInput carries no fields; the lesson id is read from the page.
type TrackPageViewInput struct{}

type pageViewTracker interface {
	Track() bool
}

// TrackPageViewCommand reports a page view on demand, for hosts that have no
// content-loaded signal of their own.
type TrackPageViewCommand struct {
	tracker   pageViewTracker
	telemetry Telemetry
}

// NewTrackPageViewCommand creates the command.
func NewTrackPageViewCommand(tracker pageViewTracker, telemetry Telemetry) *TrackPageViewCommand {
	return &TrackPageViewCommand{tracker: tracker, telemetry: telemetryOrDiscard(telemetry)}
}

var _ gocommand.Commander[TrackPageViewInput] = (*TrackPageViewCommand)(nil)

// Execute inspects the page and reports the view when a lesson element exists.
func (c *TrackPageViewCommand) Execute(ctx context.Context, _ TrackPageViewInput) error {
	if c.tracker == nil {
		return errors.New("track page view command requires tracker")
	}
	reported := c.tracker.Track()
	c.telemetry.Record(ctx, EventPageViewed, map[string]any{
		"reported": reported,
	})
	return nil
}
