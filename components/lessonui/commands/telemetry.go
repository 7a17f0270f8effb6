package commands

import "context"

// Telemetry event names recorded by the lesson page commands. They describe local
// command activity and are never posted to the tracking endpoint.
const (
	EventQuizToggled  = "lessonui.quiz.toggle"
	EventFeatureShown = "lessonui.feature.show"
	EventPageViewed   = "lessonui.page.view"
)

// Telemetry observes lesson page commands after they run. Hosts plug in their own
// logger or metrics sink; the commands default to discarding records.
type Telemetry interface {
	Record(ctx context.Context, event string, payload map[string]any)
}

type discardTelemetry struct{}

func (discardTelemetry) Record(context.Context, string, map[string]any) {}

func telemetryOrDiscard(t Telemetry) Telemetry {
	if t == nil {
		return discardTelemetry{}
	}
	return t
}
