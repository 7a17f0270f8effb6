package main

import (
	"os"

	"github.com/alecthomas/kong"
)

// Globals are the flags shared by every subcommand.
type Globals struct {
	Config   kong.ConfigFlag `short:"c" help:"Load flag values from a YAML file."`
	Endpoint string          `env:"LESSONCTL_ENDPOINT" default:"http://localhost:8080" help:"Backend base URL; events are posted to <endpoint>/track."`
	LogLevel string          `name:"log-level" default:"info" enum:"trace,debug,info,warn,error" help:"Log level (debug shows swallowed track errors)."`
	DryRun   bool            `name:"dry-run" help:"Record events instead of posting them and print them on exit."`
}

type cli struct {
	Globals

	Pageview pageviewCmd `cmd:"" help:"Report view_lesson for the lesson carried by an HTML page."`
	Quiz     quizCmd     `cmd:"" help:"Toggle a quiz block on an HTML page and report show_quiz."`
	Feature  featureCmd  `cmd:"" help:"Fill the feature card of an HTML page from the catalog."`
	Features featuresCmd `cmd:"" help:"Print the feature catalog."`
	Verify   verifyCmd   `cmd:"" help:"Check tracking request bodies against the wire contract."`
}

func main() {
	app := &cli{}
	kctx := kong.Parse(app,
		kong.Name("lessonctl"),
		kong.Description("Drive the lesson page component headlessly against HTML files."),
		kong.UsageOnError(),
		kong.Configuration(yamlLoader),
	)
	rt, err := newSession(app.Globals, os.Stdout, os.Stderr)
	kctx.FatalIfErrorf(err)
	err = kctx.Run(rt)
	if closeErr := rt.Close(); err == nil {
		err = closeErr
	}
	kctx.FatalIfErrorf(err)
}
