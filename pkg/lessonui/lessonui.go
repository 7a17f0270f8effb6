package lessonui

import (
	core "github.com/goliatone/go-lessonui/components/lessonui"
)

// Reporter re-exports the tracking contract used by the page components.
type Reporter = core.Reporter

// Surface re-exports the page surface abstraction.
type Surface = core.Surface

// ContentLoader re-exports the content-loaded signal.
type ContentLoader = core.ContentLoader

// LessonID re-exports the wire lesson identifier.
type LessonID = core.LessonID

// PageOptions wires a Page.
type PageOptions struct {
	Surface  Surface
	Loader   ContentLoader
	Reporter Reporter
}

// Page bundles the components of a lesson page.
type Page struct {
	Quiz     *core.QuizToggle
	PageView *core.PageViewTracker
	Features *core.FeatureCardPresenter
}

// NewPage builds the page components and, when a loader is given, attaches the page
// view tracker to it.
func NewPage(opts PageOptions) *Page {
	page := &Page{
		Quiz:     core.NewQuizToggle(opts.Surface, opts.Reporter),
		PageView: core.NewPageViewTracker(opts.Surface, opts.Reporter),
		Features: core.NewFeatureCardPresenter(opts.Surface),
	}
	if opts.Loader != nil {
		page.PageView.Attach(opts.Loader)
	}
	return page
}
