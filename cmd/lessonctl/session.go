package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-lessonui/components/lessonui"
	"github.com/goliatone/go-lessonui/components/lessonui/htmlsurface"
	"github.com/goliatone/go-lessonui/pkg/tracking"
)

// session is bound into every subcommand's Run.
type session struct {
	ctx      context.Context
	out      io.Writer
	logger   *logrus.Logger
	reporter *lessonui.EventReporter
	recorder *tracking.Recorder
}

func newSession(g Globals, out, errOut io.Writer) (*session, error) {
	logger := logrus.New()
	logger.SetOutput(errOut)
	level, err := logrus.ParseLevel(g.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("lessonctl: log level: %w", err)
	}
	logger.SetLevel(level)

	s := &session{ctx: context.Background(), out: out, logger: logger}
	if g.DryRun {
		s.recorder = tracking.NewRecorder()
		s.reporter = lessonui.NewEventReporter(lessonui.ReporterOptions{
			Transport: s.recorder,
			Logger:    logger,
		})
		return s, nil
	}
	reporter, err := tracking.NewReporter(tracking.Config{BaseURL: g.Endpoint, Logger: logger})
	if err != nil {
		return nil, err
	}
	logger.WithField("endpoint", g.Endpoint).Debug("posting tracking events")
	s.reporter = reporter
	return s, nil
}

// Close lets in-flight reports settle and, on dry runs, prints what was recorded.
func (s *session) Close() error {
	s.reporter.Wait()
	if s.recorder == nil {
		return nil
	}
	for _, event := range s.recorder.Events() {
		body, err := tracking.EncodeEvent(event)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(s.out, "POST %s %s\n", tracking.TrackPath, body); err != nil {
			return fmt.Errorf("lessonctl: write event: %w", err)
		}
	}
	return nil
}

// Record implements commands.Telemetry by logging command activity at Info level.
func (s *session) Record(_ context.Context, event string, payload map[string]any) {
	s.logger.WithFields(logrus.Fields(payload)).Info(event)
}

func openPage(path string) (*htmlsurface.Document, error) {
	if path == "-" {
		return htmlsurface.Parse(os.Stdin)
	}
	return htmlsurface.Open(path)
}

// writePage renders the mutated document to path ("-" for stdout). An empty path
// discards it.
func (s *session) writePage(doc *htmlsurface.Document, path string) error {
	if path == "" {
		return nil
	}
	html, err := doc.HTML()
	if err != nil {
		return err
	}
	if path == "-" {
		_, err = io.WriteString(s.out, html+"\n")
		return err
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil { //nolint:gosec
		return fmt.Errorf("lessonctl: write %s: %w", path, err)
	}
	return nil
}
