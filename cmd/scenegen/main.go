package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/muesli/termenv"

	"github.com/goliatone/go-scenegen/internal/config"
	"github.com/goliatone/go-scenegen/pkg/invoke"
	"github.com/goliatone/go-scenegen/pkg/pack"
	"github.com/goliatone/go-scenegen/pkg/session"
	"github.com/goliatone/go-scenegen/pkg/summary"
	"github.com/goliatone/go-scenegen/pkg/tui"
)

func main() {
	configPath := flag.String("config", "", "YAML or TOML settings file")
	rendererKind := flag.String("renderer", "", "renderer to call on start: exec or print")
	command := flag.String("command", "", "command line of the exec renderer; scene arguments are appended")
	dir := flag.String("dir", "", "working directory of the exec renderer")
	format := flag.String("format", "", "encoding of the print renderer: args, json or yaml")
	color := flag.String("color", "", "colour mode: auto, always or never")
	summaryOut := flag.String("summary", "", "write an HTML summary of the final scene to this file")
	veryVerbose := flag.Bool("vv", false, "log debug messages")
	verbose := flag.Bool("v", false, "log info messages")
	quiet := flag.Bool("q", false, "log errors only")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	cfg.ApplyEnv(os.LookupEnv)
	cfg.Resolve(config.Flags{
		Renderer:    *rendererKind,
		Command:     *command,
		Dir:         *dir,
		Format:      *format,
		Color:       *color,
		VeryVerbose: *veryVerbose,
		Verbose:     *verbose,
		Quiet:       *quiet,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	registry, err := buildRegistry(cfg, os.Stdout)
	if err != nil {
		log.Fatalf("Failed to set up renderers: %v", err)
	}
	renderer, err := registry.Get(cfg.Renderer.Kind)
	if err != nil {
		log.Fatalf("Failed to select renderer: %v", err)
	}
	logger.Debug("renderer selected", "name", renderer.Name(), "available", registry.List())

	ctrl := session.New(session.WithRenderer(renderer), session.WithLogger(logger))
	front, err := tui.New(ctrl, tui.WithOutput(newOutput(os.Stdout, cfg.Color)))
	if err != nil {
		log.Fatalf("Failed to start terminal: %v", err)
	}

	if err := front.Run(context.Background()); err != nil {
		log.Fatalf("Render failed: %v", err)
	}

	if *summaryOut != "" {
		if err := writeSummary(*summaryOut, ctrl); err != nil {
			log.Fatalf("Failed to write summary: %v", err)
		}
		fmt.Printf("Summary written to %s\n", *summaryOut)
	}
}

// buildRegistry registers the print renderer and, when a command is
// configured, the exec renderer.
func buildRegistry(cfg config.Config, out io.Writer) (*invoke.Registry, error) {
	registry := invoke.NewRegistry()

	format, err := pack.ParseFormat(cfg.Renderer.Format)
	if err != nil {
		return nil, err
	}
	printer, err := invoke.NewWriter(out, format)
	if err != nil {
		return nil, err
	}
	if err := registry.Register(printer); err != nil {
		return nil, err
	}

	if cfg.Renderer.Command != "" {
		exec, err := invoke.NewExec(cfg.Renderer.Command, invoke.WithDir(cfg.Renderer.Dir))
		if err != nil {
			return nil, err
		}
		if err := registry.Register(exec); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func newOutput(w io.Writer, mode string) *termenv.Output {
	switch mode {
	case config.ColorNever:
		return termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	case config.ColorAlways:
		return termenv.NewOutput(w, termenv.WithProfile(termenv.ANSI))
	default:
		return termenv.NewOutput(w)
	}
}

func writeSummary(path string, ctrl *session.Controller) error {
	r, err := summary.New()
	if err != nil {
		return err
	}
	html, err := r.Render(summary.FormatHTML, ctrl.Config(), ctrl.Models())
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(html), 0o644)
}
