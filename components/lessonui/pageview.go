package lessonui

import "sync"

// LessonIDAttribute marks the element that carries the current lesson id.
const LessonIDAttribute = "data-lesson-id"

// PageViewTracker reports a view_lesson event once the page has loaded.
type PageViewTracker struct {
	surface  Surface
	reporter Reporter
	once     sync.Once
}

// NewPageViewTracker wires the tracker to a page surface and reporter.
func NewPageViewTracker(surface Surface, reporter Reporter) *PageViewTracker {
	return &PageViewTracker{surface: surface, reporter: normalizeReporter(reporter)}
}

// Attach registers the tracker with the loader. However many times it is attached
// or the loader fires, at most one page view is reported.
func (t *PageViewTracker) Attach(loader ContentLoader) {
	loader.OnContentLoaded(func() {
		t.once.Do(func() { t.Track() })
	})
}

// Track inspects the page for a lesson id and reports the view. It returns false when
// the page carries no lesson element.
func (t *PageViewTracker) Track() bool {
	el, ok := t.surface.FirstWithAttribute(LessonIDAttribute)
	if !ok {
		return false
	}
	raw, _ := el.Attribute(LessonIDAttribute)
	t.reporter.Report(EventViewLesson, ParseLessonID(raw), Meta{})
	return true
}
