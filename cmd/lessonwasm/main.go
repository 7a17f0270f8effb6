//go:build js && wasm

// Command lessonwasm runs the lesson page component in the browser. It exports
// toggleQuiz(id, lessonId) and showFeature(key) as globals and reports page views
// once the document has loaded.
package main

import (
	"context"
	"syscall/js"

	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-lessonui/components/lessonui"
	"github.com/goliatone/go-lessonui/components/lessonui/commands"
	"github.com/goliatone/go-lessonui/components/lessonui/jsdom"
	facade "github.com/goliatone/go-lessonui/pkg/lessonui"
	"github.com/goliatone/go-lessonui/pkg/tracking"
)

func main() {
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	if js.Global().Get("localStorage").Truthy() && js.Global().Get("localStorage").Call("getItem", "lessonui.debug").Truthy() {
		logger.SetLevel(logrus.DebugLevel)
	}

	origin := js.Global().Get("location").Get("origin").String()
	reporter, err := tracking.NewReporter(tracking.Config{BaseURL: origin, Logger: logger})
	if err != nil {
		logger.WithError(err).Error("lessonwasm: tracking disabled")
		return
	}

	doc := jsdom.Global()
	page := facade.NewPage(facade.PageOptions{Surface: doc, Loader: doc, Reporter: reporter})
	toggle := commands.NewToggleQuizCommand(page.Quiz, nil)
	show := commands.NewShowFeatureCommand(page.Features, nil)

	js.Global().Set("toggleQuiz", js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		input := commands.ToggleQuizInput{ElementID: args[0].String(), LessonID: lessonui.NullLessonID()}
		if len(args) > 1 {
			input.LessonID = lessonIDFromJS(args[1])
		}
		if err := toggle.Execute(context.Background(), input); err != nil {
			logger.WithError(err).Debug("toggle quiz")
		}
		return nil
	}))
	js.Global().Set("showFeature", js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		_ = show.Execute(context.Background(), commands.ShowFeatureInput{Key: args[0].String()})
		return nil
	}))

	select {}
}

// lessonIDFromJS converts the lessonId argument. Integral numbers are sent as is;
// fractional, non-finite or out-of-range numbers become NaN (sent as null) rather than
// being truncated. Strings go through parseInt, anything else is null.
func lessonIDFromJS(v js.Value) lessonui.LessonID {
	switch v.Type() {
	case js.TypeNumber:
		return lessonui.LessonIDFromNumber(v.Float())
	case js.TypeString:
		return lessonui.ParseLessonID(v.String())
	default:
		return lessonui.NullLessonID()
	}
}
