package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-lessonui/components/lessonui"
)

const page = `<html><body>
<article data-lesson-id="12">
  <div id="quiz" style="display:none">Q?</div>
</article>
<h2 id="feature-title"></h2>
<p id="feature-description"></p>
<div id="feature-details" style="display:none"></div>
</body></html>`

func dryRun(t *testing.T) (*session, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	rt, err := newSession(Globals{LogLevel: "error", DryRun: true}, out, &bytes.Buffer{})
	require.NoError(t, err)
	return rt, out
}

func writePage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lesson.html")
	require.NoError(t, os.WriteFile(path, []byte(page), 0o600))
	return path
}

func TestPageviewCommandDryRun(t *testing.T) {
	rt, out := dryRun(t)
	require.NoError(t, (&pageviewCmd{Page: writePage(t)}).Run(rt))
	require.NoError(t, rt.Close())

	assert.Equal(t, `POST /track {"event_type":"view_lesson","lesson_id":12,"meta":{}}`+"\n", out.String())
}

func TestQuizCommandWritesPage(t *testing.T) {
	rt, out := dryRun(t)
	target := filepath.Join(t.TempDir(), "out.html")
	cmd := &quizCmd{Page: writePage(t), ID: "quiz", Lesson: "12", Times: 1, Out: target}
	require.NoError(t, cmd.Run(rt))
	require.NoError(t, rt.Close())

	assert.Contains(t, out.String(), `{"event_type":"show_quiz","lesson_id":12,"meta":{"visible":true}}`)
	html, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(html), `style="display: block;"`)
}

func TestQuizCommandMissingElement(t *testing.T) {
	rt, out := dryRun(t)
	err := (&quizCmd{Page: writePage(t), ID: "nope", Times: 1}).Run(rt)
	require.ErrorIs(t, err, lessonui.ErrElementNotFound)
	require.NoError(t, rt.Close())
	assert.Empty(t, out.String())
}

func TestFeatureCommandUnknownKeyLeavesPage(t *testing.T) {
	rt, out := dryRun(t)
	require.NoError(t, (&featureCmd{Page: writePage(t), Key: "pricing", Out: "-"}).Run(rt))
	require.NoError(t, rt.Close())
	assert.NotContains(t, out.String(), "Global Languages")
	assert.Contains(t, out.String(), `style="display:none"`)
}

func TestFeatureCommandFillsCard(t *testing.T) {
	rt, out := dryRun(t)
	require.NoError(t, (&featureCmd{Page: writePage(t), Key: "experience", Out: "-"}).Run(rt))
	require.NoError(t, rt.Close())
	assert.Contains(t, out.String(), "🎧 Immersive Experience")
	assert.Contains(t, out.String(), `style="display: block;"`)
}

func TestFeaturesCommandFormats(t *testing.T) {
	rt, out := dryRun(t)
	require.NoError(t, (&featuresCmd{Format: "json"}).Run(rt))
	var entries []lessonui.FeatureEntry
	require.NoError(t, json.Unmarshal(out.Bytes(), &entries))
	assert.Len(t, entries, 3)

	out.Reset()
	require.NoError(t, (&featuresCmd{Key: "languages", Format: "yaml"}).Run(rt))
	entries = nil
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "🌎 Global Languages", entries[0].Title)

	assert.Error(t, (&featuresCmd{Key: "pricing", Format: "yaml"}).Run(rt))
}

func TestVerifyCommand(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"event_type":"view_lesson","lesson_id":null,"meta":{}}`), 0o600))
	require.NoError(t, os.WriteFile(bad, []byte(`{"event_type":"view_lesson","lesson_id":"12","meta":{}}`), 0o600))

	rt, out := dryRun(t)
	require.NoError(t, (&verifyCmd{Bodies: []string{good}}).Run(rt))
	assert.True(t, strings.HasPrefix(out.String(), "✓ "))
	assert.Error(t, (&verifyCmd{Bodies: []string{good, bad}}).Run(rt))
}
