// entry point to app :)
package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/dailyavatar/dailyavatar/config"
	"github.com/dailyavatar/dailyavatar/internal/app"
	"github.com/dailyavatar/dailyavatar/internal/entity"
)

type options struct {
	foreground string
	background string
	output     string
	name       string
	slack      bool
	upload     bool
	setupSlack bool
}

// parseFlags registers the command surface. Every string/bool option has a
// long name and a single-letter alias bound to the same variable.
func parseFlags(cfg *config.Config, args []string) (*options, error) {
	fs := flag.NewFlagSet("avatar", flag.ContinueOnError)
	opts := &options{}

	fs.StringVar(&opts.foreground, "foreground", cfg.App.ForegroundDir, "folder containing foreground PNG images")
	fs.StringVar(&opts.foreground, "f", cfg.App.ForegroundDir, "shorthand for -foreground")
	fs.StringVar(&opts.background, "background", cfg.App.BackgroundDir, "folder containing background PNG images")
	fs.StringVar(&opts.background, "b", cfg.App.BackgroundDir, "shorthand for -background")
	fs.StringVar(&opts.output, "output", cfg.App.OutputDir, "output folder for layered images")
	fs.StringVar(&opts.output, "o", cfg.App.OutputDir, "shorthand for -output")
	fs.StringVar(&opts.name, "name", "", "output filename without extension (default: derived from the source names)")
	fs.StringVar(&opts.name, "n", "", "shorthand for -name")
	fs.BoolVar(&opts.slack, "slack", false, "optimize output for a Slack profile photo")
	fs.BoolVar(&opts.slack, "s", false, "shorthand for -slack")
	fs.BoolVar(&opts.upload, "upload", false, "upload the result to Slack as your profile photo")
	fs.BoolVar(&opts.upload, "u", false, "shorthand for -upload")
	fs.BoolVar(&opts.setupSlack, "setup-slack", false, "set up the Slack token for uploading profile photos")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

func main() {
	logrus.SetFormatter(new(logrus.JSONFormatter))

	viperInstance, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Cannot load config. Error: {%s}", err.Error())
	}

	cfg, err := config.ParseConfig(viperInstance)
	if err != nil {
		logrus.Fatalf("Cannot parse config. Error: {%s}", err.Error())
	}

	opts, err := parseFlags(cfg, os.Args[1:])
	if err != nil {
		logrus.Fatalf("Cannot parse flags. Error: {%s}", err.Error())
	}

	cfg.App.OutputDir = opts.output

	application, err := app.NewApp(cfg)
	if err != nil {
		logrus.Fatalf("Cannot initialize app. Error: {%s}", err.Error())
	}

	if opts.setupSlack {
		if err := application.SetupToken(os.Stdin, os.Stdout); err != nil {
			logrus.Fatalf("Token setup failed. Error: {%s}", err.Error())
		}
		return
	}

	result, err := application.Generate(entity.GenerateRequest{
		ForegroundDir: opts.foreground,
		BackgroundDir: opts.background,
		OutputName:    opts.name,
		SlackProfile:  opts.slack,
		Upload:        opts.upload,
	})
	if err != nil {
		logrus.Fatalf("Avatar generation failed. Error: {%s}", err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"run_id":   result.RunID,
		"output":   result.OutputPath,
		"uploaded": result.Uploaded,
	}).Info("done")
}
