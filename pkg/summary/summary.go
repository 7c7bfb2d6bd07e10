// Package summary renders a read-only listing of the current scene: each
// config field with its raw value, then the models in render order. Failing
// fields are passed through a highlighter so the presentation layer can show
// which inputs block a render.
package summary

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-scenegen/pkg/scene"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// Format selects the output flavour.
type Format string

const (
	// FormatText is plain terminal text.
	FormatText Format = "text"
	// FormatHTML is an HTML fragment.
	FormatHTML Format = "html"
)

var fieldLabels = map[string]string{
	scene.FieldWidth:  "Width",
	scene.FieldHeight: "Height",
	scene.FieldCamFOV: "Camera FOV (degrees)",
	scene.FieldCamX:   "Camera x",
	scene.FieldCamY:   "Camera y",
	scene.FieldCamZ:   "Camera z",
}

// Label returns the human label for a config field.
func Label(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	return field
}

// TemplatesFS exposes the embedded templates so callers can copy and adapt
// them.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTemplatesFS replaces the template bundle. The filesystem must hold
// summary.txt.tpl and/or summary.html.tpl at its root.
func WithTemplatesFS(fsys fs.FS) Option {
	return func(r *Renderer) {
		if fsys != nil {
			r.templates = fsys
		}
	}
}

// WithHighlighter sets how invalid values are marked in text output.
func WithHighlighter(fn func(string) string) Option {
	return func(r *Renderer) {
		if fn != nil {
			r.highlight = fn
		}
	}
}

// Renderer produces scene summaries from pongo2 templates.
type Renderer struct {
	templates fs.FS
	set       *pongo2.TemplateSet
	compiled  map[Format]*pongo2.Template
	highlight func(string) string
	policy    *bluemonday.Policy
}

// New constructs a Renderer using the embedded templates unless overridden.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		templates: TemplatesFS(),
		compiled:  make(map[Format]*pongo2.Template),
		highlight: func(s string) string { return s + " (!)" },
		policy:    bluemonday.StrictPolicy(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	r.set = pongo2.NewSet("scenegen-summary", pongo2.NewFSLoader(r.templates))
	return r, nil
}

// Render produces the summary of cfg and models in the requested format.
func (r *Renderer) Render(format Format, cfg *scene.Config, models *scene.Collection) (string, error) {
	if cfg == nil {
		return "", errors.New("summary: config is required")
	}
	tpl, err := r.template(format)
	if err != nil {
		return "", err
	}

	mark := r.highlight
	clean := func(s string) string { return s }
	if format == FormatHTML {
		clean = r.policy.Sanitize
		mark = func(s string) string { return "<mark>" + s + "</mark>" }
	}
	display := func(raw string, ok bool) string {
		v := clean(raw)
		if v == "" {
			v = `""`
		}
		if !ok {
			return mark(v)
		}
		return v
	}

	validity := cfg.Validate()
	valid := map[string]bool{
		scene.FieldWidth:  validity.Width,
		scene.FieldHeight: validity.Height,
		scene.FieldCamFOV: validity.CamFOV,
		scene.FieldCamX:   validity.CamX,
		scene.FieldCamY:   validity.CamY,
		scene.FieldCamZ:   validity.CamZ,
	}
	fields := make([]map[string]any, 0, len(valid))
	for _, name := range scene.ConfigFields() {
		raw, _ := cfg.Get(name)
		fields = append(fields, map[string]any{
			"name":    name,
			"label":   Label(name),
			"valid":   valid[name],
			"display": display(raw, valid[name]),
		})
	}

	var rows []map[string]any
	for idx, entry := range models.Entries() {
		f := entry.Fields()
		v := entry.Validate()
		label, _ := models.Label(idx)
		rows = append(rows, map[string]any{
			"index":    idx,
			"label":    clean(label),
			"valid":    v.Valid(),
			"filename": display(f.Filename, v.Filename),
			"position": strings.Join([]string{display(f.X, v.X), display(f.Y, v.Y), display(f.Z, v.Z)}, ", "),
			"rotation": strings.Join([]string{display(f.RotX, v.RotX), display(f.RotY, v.RotY), display(f.RotZ, v.RotZ)}, ", "),
			"flip":     flipText(f),
		})
	}

	out, err := tpl.Execute(pongo2.Context{
		"fields": fields,
		"models": rows,
	})
	if err != nil {
		return "", fmt.Errorf("summary: execute %s template: %w", format, err)
	}
	return out, nil
}

func (r *Renderer) template(format Format) (*pongo2.Template, error) {
	if tpl, ok := r.compiled[format]; ok {
		return tpl, nil
	}
	var name string
	switch format {
	case FormatText, "":
		format, name = FormatText, "summary.txt.tpl"
	case FormatHTML:
		name = "summary.html.tpl"
	default:
		return nil, fmt.Errorf("summary: unknown format %q", format)
	}
	data, err := fs.ReadFile(r.templates, name)
	if err != nil {
		return nil, fmt.Errorf("summary: read %s: %w", name, err)
	}
	tpl, err := r.set.FromString(string(data))
	if err != nil {
		return nil, fmt.Errorf("summary: parse %s: %w", name, err)
	}
	r.compiled[format] = tpl
	return tpl, nil
}

func flipText(f scene.EntryFields) string {
	var axes []string
	if f.FlipX {
		axes = append(axes, "x")
	}
	if f.FlipY {
		axes = append(axes, "y")
	}
	if f.FlipZ {
		axes = append(axes, "z")
	}
	if len(axes) == 0 {
		return "none"
	}
	return strings.Join(axes, ",")
}
