// Package session is the controller between the presentation layer and the
// scene model. It owns one scene configuration, one model collection and the
// renderer, and exposes one named handler per user action. Handlers run on the
// caller's goroutine; a Controller is not safe for concurrent use.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/goliatone/go-scenegen/pkg/invoke"
	"github.com/goliatone/go-scenegen/pkg/pack"
	"github.com/goliatone/go-scenegen/pkg/scene"
)

var (
	// ErrEditInProgress is returned by collection handlers while an edit
	// session is open.
	ErrEditInProgress = errors.New("session: model edit in progress")
	// ErrSessionClosed is returned when a closed edit session is used.
	ErrSessionClosed = errors.New("session: edit session closed")
	// ErrNoRenderer is returned by Start when no renderer was configured.
	ErrNoRenderer = errors.New("session: renderer is nil")
)

// Option customises a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for handler events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRenderer sets the renderer invoked by Start.
func WithRenderer(renderer invoke.Renderer) Option {
	return func(c *Controller) {
		c.renderer = renderer
	}
}

// Result is the outcome of a Start request.
type Result struct {
	Report   scene.Report
	Rendered bool
}

// Controller holds the scene state for one interactive session.
type Controller struct {
	config   *scene.Config
	models   *scene.Collection
	renderer invoke.Renderer
	logger   *slog.Logger
	editing  *EditSession
}

// New returns a controller with the default scene configuration and a single
// default model.
func New(options ...Option) *Controller {
	c := &Controller{
		config: scene.DefaultConfig(),
		models: scene.NewCollection(scene.DefaultModelEntry()),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Config exposes the scene configuration. The presentation layer may write
// its fields directly.
func (c *Controller) Config() *scene.Config {
	return c.config
}

// Models exposes the model collection for reading. Mutate it through the
// controller handlers so edit sessions stay modal.
func (c *Controller) Models() *scene.Collection {
	return c.models
}

// Editing reports the open edit session, if any.
func (c *Controller) Editing() (*EditSession, bool) {
	return c.editing, c.editing != nil
}

// SetSceneField stores a raw value for a config field.
func (c *Controller) SetSceneField(field, raw string) error {
	if err := c.config.Set(field, raw); err != nil {
		return err
	}
	c.logger.Debug("scene field set", "field", field, "value", raw)
	return nil
}

// ValidateScene returns the current validity of the config only.
func (c *Controller) ValidateScene() scene.SceneConfigValidity {
	return c.config.Validate()
}

// Validate returns the validity of the whole scene.
func (c *Controller) Validate() scene.Report {
	return scene.Validate(c.config, c.models)
}

// Add appends a default model and opens an edit session on it.
func (c *Controller) Add() (*EditSession, error) {
	if c.editing != nil {
		return nil, ErrEditInProgress
	}
	entry := scene.DefaultModelEntry()
	idx := c.models.Add(entry)
	c.logger.Info("model added", "index", idx, "name", entry.DisplayName())
	return c.open(entry), nil
}

// Edit opens an edit session on the model at idx.
func (c *Controller) Edit(idx int) (*EditSession, error) {
	if c.editing != nil {
		return nil, ErrEditInProgress
	}
	entry, ok := c.models.At(idx)
	if !ok {
		return nil, fmt.Errorf("session: edit %d: %w", idx, scene.ErrIndexOutOfRange)
	}
	return c.open(entry), nil
}

// Delete removes the models at the given indices in one operation.
func (c *Controller) Delete(indices ...int) error {
	if c.editing != nil {
		return ErrEditInProgress
	}
	if err := c.models.Remove(indices...); err != nil {
		return fmt.Errorf("session: delete: %w", err)
	}
	c.logger.Info("models deleted", "indices", indices, "remaining", c.models.Len())
	return nil
}

// Start validates the scene and, when every field passes, packs it and calls
// the renderer synchronously. An invalid scene is not an error: the report is
// returned with Rendered false and the renderer is never called. Renderer
// failures are returned as is.
func (c *Controller) Start(ctx context.Context) (Result, error) {
	if c.editing != nil {
		return Result{}, ErrEditInProgress
	}
	report := c.Validate()
	if !report.Valid() {
		c.logger.Info("render suppressed",
			"scene_invalid", report.Scene.Invalid(),
			"models_invalid", report.InvalidModels())
		return Result{Report: report}, nil
	}
	if c.renderer == nil {
		return Result{Report: report}, ErrNoRenderer
	}

	args, err := pack.Pack(c.config, c.models)
	if err != nil {
		return Result{Report: report}, err
	}

	c.logger.Info("render started", "renderer", c.renderer.Name(), "models", args.Models())
	if err := c.renderer.Render(ctx, args); err != nil {
		return Result{Report: report}, fmt.Errorf("session: render: %w", err)
	}
	c.logger.Info("render finished", "renderer", c.renderer.Name())
	return Result{Report: report, Rendered: true}, nil
}

func (c *Controller) open(entry *scene.ModelEntry) *EditSession {
	s := &EditSession{owner: c, entry: entry}
	c.editing = s
	return s
}

func (c *Controller) close(s *EditSession) {
	if c.editing == s {
		c.editing = nil
	}
}
