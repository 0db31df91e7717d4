// Command pdfsig is a desktop tool for placing a signature image on a
// PDF: open a document, click where the signature goes, drag or resize
// it, and save a stamped copy.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/wudi/pdfsig/config"
	"github.com/wudi/pdfsig/observability"
	"github.com/wudi/pdfsig/pdf"
	"github.com/wudi/pdfsig/render"
	"github.com/wudi/pdfsig/ui"
)

type options struct {
	configPath string
	pdfPath    string
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pdfsig: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "pdfsig: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() (options, error) {
	var opts options
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: pdfsig [flags] [pdf]\n")
		flag.PrintDefaults()
	}
	configPath := flag.String("config", "", "Path to a YAML configuration file")
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		return options{}, fmt.Errorf("at most one pdf path")
	}
	opts.configPath = *configPath
	opts.pdfPath = flag.Arg(0)
	return opts, nil
}

func run(opts options) error {
	cfg, err := config.LoadOrDefault(opts.configPath)
	if err != nil {
		return err
	}

	log := observability.NewSlog(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	})))

	fyneApp := app.NewWithID(config.AppID)
	shell := ui.New(fyneApp, cfg, ui.Deps{
		Engine: pdf.NewEngine(log),
		Raster: render.NewFitzRasterizer(log),
		Logger: log,
	})
	shell.Run(opts.pdfPath)
	return nil
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
