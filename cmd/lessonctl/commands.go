package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-lessonui/components/lessonui"
	"github.com/goliatone/go-lessonui/components/lessonui/commands"
	"github.com/goliatone/go-lessonui/components/lessonui/queries"
	"github.com/goliatone/go-lessonui/pkg/tracking"
)

type pageviewCmd struct {
	Page string `arg:"" help:"HTML page to load (- for stdin)."`
}

func (cmd *pageviewCmd) Run(rt *session) error {
	doc, err := openPage(cmd.Page)
	if err != nil {
		return err
	}
	if _, ok := doc.FirstWithAttribute(lessonui.LessonIDAttribute); !ok {
		rt.logger.WithField("page", cmd.Page).Warnf("no %s element, nothing reported", lessonui.LessonIDAttribute)
	}
	tracker := lessonui.NewPageViewTracker(doc, rt.reporter)
	tracker.Attach(doc)
	doc.FinishLoading()
	return nil
}

type quizCmd struct {
	Page   string `arg:"" help:"HTML page to load (- for stdin)."`
	ID     string `arg:"" name:"element-id" help:"Id of the quiz block."`
	Lesson string `help:"Lesson id, parsed like the data-lesson-id attribute (empty sends null)."`
	Times  int    `default:"1" help:"Number of consecutive toggles."`
	Out    string `short:"o" help:"Write the mutated page here (- for stdout)."`
}

func (cmd *quizCmd) Run(rt *session) error {
	doc, err := openPage(cmd.Page)
	if err != nil {
		return err
	}
	lessonID := lessonui.NullLessonID()
	if cmd.Lesson != "" {
		lessonID = lessonui.ParseLessonID(cmd.Lesson)
	}
	toggle := commands.NewToggleQuizCommand(lessonui.NewQuizToggle(doc, rt.reporter), rt)
	for range cmd.Times {
		if err := toggle.Execute(rt.ctx, commands.ToggleQuizInput{ElementID: cmd.ID, LessonID: lessonID}); err != nil {
			return err
		}
	}
	return rt.writePage(doc, cmd.Out)
}

type featureCmd struct {
	Page string `arg:"" help:"HTML page to load (- for stdin)."`
	Key  string `arg:"" help:"Catalog key (languages, experience, progress)."`
	Out  string `short:"o" help:"Write the mutated page here (- for stdout)."`
}

func (cmd *featureCmd) Run(rt *session) error {
	doc, err := openPage(cmd.Page)
	if err != nil {
		return err
	}
	show := commands.NewShowFeatureCommand(lessonui.NewFeatureCardPresenter(doc), rt)
	if err := show.Execute(rt.ctx, commands.ShowFeatureInput{Key: cmd.Key}); err != nil {
		return err
	}
	return rt.writePage(doc, cmd.Out)
}

type featuresCmd struct {
	Key    string `arg:"" optional:"" help:"Print a single entry."`
	Format string `default:"yaml" enum:"yaml,json" help:"Output format."`
}

func (cmd *featuresCmd) Run(rt *session) error {
	entries, err := queries.NewFeatureQuery().Query(rt.ctx, queries.FeatureLookupInput{Key: cmd.Key})
	if err != nil {
		return err
	}
	switch cmd.Format {
	case "json":
		encoder := json.NewEncoder(rt.out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(entries); err != nil {
			return fmt.Errorf("lessonctl: encode catalog: %w", err)
		}
	default:
		encoder := yaml.NewEncoder(rt.out)
		encoder.SetIndent(2)
		defer encoder.Close()
		if err := encoder.Encode(entries); err != nil {
			return fmt.Errorf("lessonctl: encode catalog: %w", err)
		}
	}
	return nil
}

type verifyCmd struct {
	Bodies []string `arg:"" optional:"" help:"Files holding one JSON request body each (reads stdin when omitted)."`
}

func (cmd *verifyCmd) Run(rt *session) error {
	if len(cmd.Bodies) == 0 {
		return verifyBody(rt, "stdin", os.Stdin)
	}
	for _, path := range cmd.Bodies {
		f, err := os.Open(path) //nolint:gosec
		if err != nil {
			return fmt.Errorf("lessonctl: open %s: %w", path, err)
		}
		err = verifyBody(rt, path, f)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func verifyBody(rt *session, name string, r io.Reader) error {
	body, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("lessonctl: read %s: %w", name, err)
	}
	if err := tracking.ValidateBody(body); err != nil {
		return fmt.Errorf("lessonctl: %s: %w", name, err)
	}
	fmt.Fprintf(rt.out, "✓ %s\n", name)
	return nil
}
