package lessonui

import (
	"encoding/json"
	"maps"
)

// Event types emitted by the lesson page component.
const (
	EventViewLesson = "view_lesson"
	EventShowQuiz   = "show_quiz"
)

// TrackingEvent is the record posted to the tracking endpoint.
type TrackingEvent struct {
	EventType string   `json:"event_type"`
	LessonID  LessonID `json:"lesson_id"`
	Meta      Meta     `json:"meta"`
}

// Meta holds free-form scalar/boolean attributes attached to an event.
type Meta map[string]any

// MarshalJSON encodes a nil Meta as an empty object.
func (m Meta) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]any(m))
}

// NewTrackingEvent builds an event, substituting an empty Meta when none is given.
// The caller's map is cloned so later mutations do not leak into in-flight sends.
func NewTrackingEvent(eventType string, lessonID LessonID, meta Meta) TrackingEvent {
	out := Meta{}
	maps.Copy(out, meta)
	return TrackingEvent{
		EventType: eventType,
		LessonID:  lessonID,
		Meta:      out,
	}
}
