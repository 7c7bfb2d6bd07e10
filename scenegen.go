// Package scenegen is the top-level entry point for building a scene of OBJ
// models and handing it to a renderer. The sub-packages hold the pieces:
// pkg/scene for the data model, pkg/pack for the renderer call boundary,
// pkg/invoke for renderers and pkg/session for the interactive controller.
package scenegen

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-scenegen/pkg/invoke"
	"github.com/goliatone/go-scenegen/pkg/pack"
	"github.com/goliatone/go-scenegen/pkg/scene"
	"github.com/goliatone/go-scenegen/pkg/session"
)

// Config aliases scene.Config for callers that only import the root package.
type Config = scene.Config

// EntryFields aliases scene.EntryFields.
type EntryFields = scene.EntryFields

// Report aliases scene.Report.
type Report = scene.Report

// Args aliases pack.Args, the flat sequence passed to a renderer.
type Args = pack.Args

// Renderer aliases invoke.Renderer.
type Renderer = invoke.Renderer

// ErrInvalidScene is matched by errors from RenderScene when a field fails
// validation.
var ErrInvalidScene = pack.ErrInvalidScene

// DefaultConfig returns the scene defaults.
func DefaultConfig() *Config {
	return scene.DefaultConfig()
}

// DefaultEntryFields returns the fields of a freshly added model.
func DefaultEntryFields() EntryFields {
	return scene.DefaultEntryFields()
}

// NewSession exposes the interactive controller constructor.
func NewSession(options ...session.Option) *session.Controller {
	return session.New(options...)
}

// RenderScene validates cfg and models, packs them and calls renderer once.
// It is the simplest entry point for callers that already hold the raw field
// values and want no front end. The report is returned in every case.
func RenderScene(ctx context.Context, cfg *Config, models []EntryFields, renderer Renderer) (Report, error) {
	if renderer == nil {
		return Report{}, errors.New("scenegen: renderer is nil")
	}
	entries := make([]*scene.ModelEntry, 0, len(models))
	for _, fields := range models {
		entries = append(entries, scene.NewModelEntry(fields))
	}
	collection := scene.NewCollection(entries...)
	report := scene.Validate(cfg, collection)

	args, err := pack.Pack(cfg, collection)
	if err != nil {
		return report, err
	}
	if err := renderer.Render(ctx, args); err != nil {
		return report, fmt.Errorf("scenegen: render: %w", err)
	}
	return report, nil
}
