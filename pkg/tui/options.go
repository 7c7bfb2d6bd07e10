package tui

import (
	"io/fs"

	"github.com/muesli/termenv"
)

// Theme captures optional message prefixes. Colours are left to termenv so
// the loop stays free of ANSI specifics.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// Option configures the Frontend.
type Option func(*Frontend)

// WithPromptDriver overrides the prompt driver used by the menu loop.
func WithPromptDriver(driver PromptDriver) Option {
	return func(f *Frontend) {
		if driver != nil {
			f.driver = driver
		}
	}
}

// WithOutput sets the termenv output used to colour invalid values. Use
// termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii)) to disable colour.
func WithOutput(output *termenv.Output) Option {
	return func(f *Frontend) {
		if output != nil {
			f.output = output
		}
	}
}

// WithSummaryTemplates replaces the templates used for the scene listing.
func WithSummaryTemplates(fsys fs.FS) Option {
	return func(f *Frontend) {
		f.templates = fsys
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(f *Frontend) {
		f.theme = theme
	}
}
