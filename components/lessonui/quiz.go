package lessonui

import "fmt"

const (
	displayProperty = "display"
	displayNone     = "none"
	displayBlock    = "block"
)

// QuizToggle flips a quiz block between hidden and shown.
type QuizToggle struct {
	surface  Surface
	reporter Reporter
}

// NewQuizToggle wires the toggle to a page surface and reporter.
func NewQuizToggle(surface Surface, reporter Reporter) *QuizToggle {
	return &QuizToggle{surface: surface, reporter: normalizeReporter(reporter)}
}

// Toggle inverts the element's inline display and reports show_quiz with the new
// visibility. An unset display counts as shown, so the first toggle hides it.
func (q *QuizToggle) Toggle(elementID string, lessonID LessonID) error {
	el, ok := q.surface.ElementByID(elementID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrElementNotFound, elementID)
	}
	show := el.StyleProperty(displayProperty) == displayNone
	if show {
		el.SetStyleProperty(displayProperty, displayBlock)
	} else {
		el.SetStyleProperty(displayProperty, displayNone)
	}
	q.reporter.Report(EventShowQuiz, lessonID, Meta{"visible": show})
	return nil
}

type noopReporter struct{}

func (noopReporter) Report(string, LessonID, Meta) {}

func normalizeReporter(r Reporter) Reporter {
	if r == nil {
		return noopReporter{}
	}
	return r
}
