package lessonui

import (
	"sync"
)

type fakeElement struct {
	id     string
	attrs  map[string]string
	styles map[string]string
	text   string
	writes int
}

func (e *fakeElement) Attribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

func (e *fakeElement) StyleProperty(name string) string {
	return e.styles[name]
}

func (e *fakeElement) SetStyleProperty(name, value string) {
	if e.styles == nil {
		e.styles = map[string]string{}
	}
	e.styles[name] = value
	e.writes++
}

func (e *fakeElement) SetText(text string) {
	e.text = text
	e.writes++
}

type fakeSurface struct {
	elements []*fakeElement
}

func newFakeSurface(elements ...*fakeElement) *fakeSurface {
	return &fakeSurface{elements: elements}
}

func (s *fakeSurface) ElementByID(id string) (Element, bool) {
	for _, el := range s.elements {
		if el.id == id {
			return el, true
		}
	}
	return nil, false
}

func (s *fakeSurface) FirstWithAttribute(name string) (Element, bool) {
	for _, el := range s.elements {
		if _, ok := el.attrs[name]; ok {
			return el, true
		}
	}
	return nil, false
}

type recordingReporter struct {
	mu     sync.Mutex
	events []TrackingEvent
}

func (r *recordingReporter) Report(eventType string, lessonID LessonID, meta Meta) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, NewTrackingEvent(eventType, lessonID, meta))
}
