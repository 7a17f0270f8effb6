package htmlsurface

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-lessonui/components/lessonui"
)

const lessonPage = `<!doctype html>
<html>
<body>
  <main data-lesson-id="42">
    <h1>Intro to Spanish</h1>
    <div id="quiz-1" style="display: none; color: teal">Hello in Spanish?</div>
  </main>
  <section>
    <h2 id="feature-title">Features</h2>
    <p id="feature-description">Pick a card</p>
    <div id="feature-details" style="display:none"></div>
  </section>
</body>
</html>`

type recordingReporter struct {
	events []lessonui.TrackingEvent
}

func (r *recordingReporter) Report(eventType string, lessonID lessonui.LessonID, meta lessonui.Meta) {
	r.events = append(r.events, lessonui.NewTrackingEvent(eventType, lessonID, meta))
}

func parsePage(t *testing.T, page string) *Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

func TestElementStyleRoundTrip(t *testing.T) {
	doc := parsePage(t, lessonPage)
	el, ok := doc.ElementByID("quiz-1")
	require.True(t, ok)

	assert.Equal(t, "none", el.StyleProperty("display"))
	assert.Equal(t, "teal", el.StyleProperty("color"))
	assert.Equal(t, "", el.StyleProperty("margin"))

	el.SetStyleProperty("display", "block")
	assert.Equal(t, "block", el.StyleProperty("display"))
	assert.Equal(t, "teal", el.StyleProperty("color"))

	attr, _ := el.Attribute("style")
	assert.Equal(t, "display: block; color: teal;", attr)
}

func TestElementByIDMissing(t *testing.T) {
	doc := parsePage(t, lessonPage)
	_, ok := doc.ElementByID("quiz-404")
	assert.False(t, ok)
}

func TestQuizToggleOnDocument(t *testing.T) {
	doc := parsePage(t, lessonPage)
	reporter := &recordingReporter{}
	toggle := lessonui.NewQuizToggle(doc, reporter)

	require.NoError(t, toggle.Toggle("quiz-1", lessonui.NewLessonID(42)))
	require.NoError(t, toggle.Toggle("quiz-1", lessonui.NewLessonID(42)))

	el, _ := doc.ElementByID("quiz-1")
	assert.Equal(t, "none", el.StyleProperty("display"))
	require.Len(t, reporter.events, 2)
	assert.Equal(t, true, reporter.events[0].Meta["visible"])
	assert.Equal(t, false, reporter.events[1].Meta["visible"])
}

func TestPageViewOnLoad(t *testing.T) {
	doc := parsePage(t, lessonPage)
	reporter := &recordingReporter{}
	tracker := lessonui.NewPageViewTracker(doc, reporter)

	tracker.Attach(doc)
	assert.Empty(t, reporter.events)
	doc.FinishLoading()
	doc.FinishLoading()

	require.Len(t, reporter.events, 1)
	id, ok := reporter.events[0].LessonID.Int64()
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)
}

func TestLateContentLoadedRegistrationNeverFires(t *testing.T) {
	doc := parsePage(t, lessonPage)
	doc.FinishLoading()

	fired := false
	doc.OnContentLoaded(func() { fired = true })
	doc.FinishLoading()
	assert.False(t, fired)
}

func TestPageViewWithoutLessonAttribute(t *testing.T) {
	doc := parsePage(t, `<html><body><p id="x">no lesson</p></body></html>`)
	reporter := &recordingReporter{}
	tracker := lessonui.NewPageViewTracker(doc, reporter)
	tracker.Attach(doc)
	doc.FinishLoading()
	assert.Empty(t, reporter.events)
}

func TestFeatureCardOnDocument(t *testing.T) {
	doc := parsePage(t, lessonPage)
	presenter := lessonui.NewFeatureCardPresenter(doc)

	require.True(t, presenter.Show("languages"))

	title, _ := doc.ElementByID(lessonui.FeatureTitleID)
	assert.Equal(t, "🌎 Global Languages", title.(*Element).Text())
	details, _ := doc.ElementByID(lessonui.FeatureDetailsID)
	assert.Equal(t, "block", details.StyleProperty("display"))

	html, err := doc.HTML()
	require.NoError(t, err)
	assert.Contains(t, html, "Global Languages")
}

func TestFeatureCardMissingSlotLeavesDocument(t *testing.T) {
	doc := parsePage(t, `<html><body>
<h2 id="feature-title">Features</h2>
<div id="feature-details" style="display:none"></div>
</body></html>`)
	before, err := doc.HTML()
	require.NoError(t, err)

	presenter := lessonui.NewFeatureCardPresenter(doc)
	assert.False(t, presenter.Show("progress"))

	after, err := doc.HTML()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSetTextEscapesMarkup(t *testing.T) {
	doc := parsePage(t, lessonPage)
	el, _ := doc.ElementByID("feature-description")
	el.SetText("<b>plain</b>")

	html, err := doc.HTML()
	require.NoError(t, err)
	assert.Contains(t, html, "&lt;b&gt;plain&lt;/b&gt;")
}

func TestQuizToggleReadsNormalizedDisplay(t *testing.T) {
	for _, style := range []string{"display: none !important", "DISPLAY: NONE", "display:None!IMPORTANT"} {
		doc := parsePage(t, `<html><body><div id="q" style="`+style+`">Q?</div></body></html>`)
		reporter := &recordingReporter{}
		toggle := lessonui.NewQuizToggle(doc, reporter)

		el, _ := doc.ElementByID("q")
		assert.Equalf(t, "none", el.StyleProperty("display"), "style %q", style)

		require.NoError(t, toggle.Toggle("q", lessonui.NewLessonID(1)))
		require.Len(t, reporter.events, 1)
		assert.Equalf(t, true, reporter.events[0].Meta["visible"], "style %q", style)
		attr, _ := el.Attribute("style")
		assert.Equalf(t, "display: block;", attr, "style %q", style)
	}
}

func TestSetStylePropertyKeepsOtherPriorities(t *testing.T) {
	doc := parsePage(t, `<html><body><div id="q" style="display: none !important; color: Teal !important; background: url(A.png)">Q?</div></body></html>`)
	el, _ := doc.ElementByID("q")

	el.SetStyleProperty("display", "block")

	attr, _ := el.Attribute("style")
	assert.Equal(t, "display: block; color: teal !important; background: url(A.png);", attr)
	assert.Equal(t, "teal", el.StyleProperty("color"))
}
