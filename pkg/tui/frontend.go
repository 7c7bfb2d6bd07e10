// Package tui is the terminal front end for a scene session. It drives a menu
// loop over a PromptDriver and forwards every action to a session.Controller.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/muesli/termenv"

	"github.com/goliatone/go-scenegen/pkg/scene"
	"github.com/goliatone/go-scenegen/pkg/session"
	"github.com/goliatone/go-scenegen/pkg/summary"
)

// Menu actions in display order.
const (
	ActionEditScene = iota
	ActionAddModel
	ActionEditModel
	ActionDeleteModels
	ActionStart
	ActionExit
)

var menu = []string{
	ActionEditScene:    "Edit scene settings",
	ActionAddModel:     "Add model",
	ActionEditModel:    "Edit model",
	ActionDeleteModels: "Delete models",
	ActionStart:        "Start render",
	ActionExit:         "Exit",
}

var modelLabels = map[string]string{
	scene.FieldFilename: "Filename",
	scene.FieldX:        "Position x",
	scene.FieldY:        "Position y",
	scene.FieldZ:        "Position z",
	scene.FieldRotX:     "Rotation x",
	scene.FieldRotY:     "Rotation y",
	scene.FieldRotZ:     "Rotation z",
}

// Frontend runs the interactive loop for one controller.
type Frontend struct {
	controller *session.Controller
	driver     PromptDriver
	output     *termenv.Output
	templates  fs.FS
	summary    *summary.Renderer
	theme      Theme
}

// New constructs a Frontend with the survey driver and a stdout termenv
// output unless overridden.
func New(controller *session.Controller, options ...Option) (*Frontend, error) {
	if controller == nil {
		return nil, ErrNoController
	}
	f := &Frontend{
		controller: controller,
		theme:      Theme{ErrorPrefix: "! "},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	if f.output == nil {
		f.output = termenv.NewOutput(os.Stdout)
	}
	if f.driver == nil {
		f.driver = NewSurveyDriver(f.output)
	}

	var err error
	f.summary, err = summary.New(
		summary.WithTemplatesFS(f.templates),
		summary.WithHighlighter(f.highlight),
	)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Run shows the scene and prompts for actions until the user exits. An abort
// from the driver ends the loop without error. Renderer failures are returned.
func (f *Frontend) Run(ctx context.Context) error {
	if ctx == nil {
		return errors.New("tui: context is required")
	}
	for {
		done, err := f.step(ctx)
		if errors.Is(err, ErrAborted) {
			return nil
		}
		if err != nil || done {
			return err
		}
	}
}

func (f *Frontend) step(ctx context.Context) (bool, error) {
	listing, err := f.summary.Render(summary.FormatText, f.controller.Config(), f.controller.Models())
	if err != nil {
		return false, err
	}
	if err := f.driver.Info(ctx, strings.TrimRight(listing, "\n")); err != nil {
		return false, err
	}

	choice, err := f.driver.Select(ctx, SelectConfig{
		Message:      "Action",
		Options:      menu,
		DefaultIndex: ActionStart,
	})
	if err != nil {
		return false, err
	}

	switch choice {
	case ActionEditScene:
		return false, f.editScene(ctx)
	case ActionAddModel:
		edit, err := f.controller.Add()
		if err != nil {
			return false, err
		}
		return false, f.editModel(ctx, edit)
	case ActionEditModel:
		return false, f.pickAndEdit(ctx)
	case ActionDeleteModels:
		return false, f.deleteModels(ctx)
	case ActionStart:
		return false, f.start(ctx)
	case ActionExit:
		return true, nil
	default:
		return false, f.info(ctx, f.theme.ErrorPrefix+"Unknown action")
	}
}

func (f *Frontend) editScene(ctx context.Context) error {
	cfg := f.controller.Config()
	for _, field := range scene.ConfigFields() {
		current, _ := cfg.Get(field)
		raw, err := f.driver.Input(ctx, InputConfig{
			Message: summary.Label(field),
			Default: current,
		})
		if err != nil {
			return err
		}
		if err := f.controller.SetSceneField(field, raw); err != nil {
			return err
		}
	}
	if invalid := f.controller.ValidateScene().Invalid(); len(invalid) > 0 {
		return f.info(ctx, f.theme.ErrorPrefix+"Invalid scene fields: "+f.names(invalid, summary.Label))
	}
	return nil
}

func (f *Frontend) pickAndEdit(ctx context.Context) error {
	models := f.controller.Models()
	if models.Len() == 0 {
		return f.info(ctx, "No models to edit")
	}
	idx, err := f.driver.Select(ctx, SelectConfig{
		Message: "Model",
		Options: indexedLabels(models.Labels()),
	})
	if err != nil {
		return err
	}
	edit, err := f.controller.Edit(idx)
	if err != nil {
		return err
	}
	return f.editModel(ctx, edit)
}

// editModel prompts for all ten fields and commits them. An invalid commit
// keeps the values and offers another round; declining cancels the session.
func (f *Frontend) editModel(ctx context.Context, edit *session.EditSession) error {
	for edit.Open() {
		fields, err := f.promptEntry(ctx, edit.Fields())
		if err != nil {
			_ = edit.Cancel()
			return err
		}
		validity, err := edit.Commit(fields)
		if err != nil {
			_ = edit.Cancel()
			return err
		}
		if validity.Valid() {
			return f.info(ctx, f.theme.InfoPrefix+"Saved "+edit.Entry().DisplayName())
		}
		if err := f.info(ctx, f.theme.ErrorPrefix+"Invalid model fields: "+f.names(validity.Invalid(), modelLabel)); err != nil {
			_ = edit.Cancel()
			return err
		}
		again, err := f.driver.Confirm(ctx, ConfirmConfig{Message: "Keep editing?", Default: true})
		if err != nil || !again {
			_ = edit.Cancel()
			return err
		}
	}
	return nil
}

func (f *Frontend) promptEntry(ctx context.Context, fields scene.EntryFields) (scene.EntryFields, error) {
	for _, name := range scene.ModelEntryFields() {
		current, _ := fields.Get(name)
		raw, err := f.driver.Input(ctx, InputConfig{
			Message: modelLabel(name),
			Default: current,
		})
		if err != nil {
			return fields, err
		}
		if err := fields.Set(name, raw); err != nil {
			return fields, err
		}
	}
	flips := []struct {
		label string
		value *bool
	}{
		{"Flip x", &fields.FlipX},
		{"Flip y", &fields.FlipY},
		{"Flip z", &fields.FlipZ},
	}
	for _, flip := range flips {
		v, err := f.driver.Confirm(ctx, ConfirmConfig{Message: flip.label, Default: *flip.value})
		if err != nil {
			return fields, err
		}
		*flip.value = v
	}
	return fields, nil
}

func (f *Frontend) deleteModels(ctx context.Context) error {
	models := f.controller.Models()
	if models.Len() == 0 {
		return f.info(ctx, "No models to delete")
	}
	picked, err := f.driver.MultiSelect(ctx, SelectConfig{
		Message: "Models to delete",
		Options: indexedLabels(models.Labels()),
	})
	if err != nil {
		return err
	}
	if len(picked) == 0 {
		return nil
	}
	return f.controller.Delete(picked...)
}

func (f *Frontend) start(ctx context.Context) error {
	res, err := f.controller.Start(ctx)
	if err != nil {
		return err
	}
	if res.Rendered {
		return f.info(ctx, f.theme.InfoPrefix+"Render finished")
	}

	var parts []string
	if invalid := res.Report.Scene.Invalid(); len(invalid) > 0 {
		parts = append(parts, "scene "+f.names(invalid, summary.Label))
	}
	labels := f.controller.Models().Labels()
	for _, idx := range res.Report.InvalidModels() {
		parts = append(parts, fmt.Sprintf("model %d (%s)", idx, f.highlight(labels[idx])))
	}
	return f.info(ctx, f.theme.ErrorPrefix+"Cannot start, fix: "+strings.Join(parts, "; "))
}

func (f *Frontend) info(ctx context.Context, msg string) error {
	return f.driver.Info(ctx, msg)
}

func (f *Frontend) highlight(s string) string {
	return f.output.String(s).Foreground(f.output.Color("1")).Bold().String()
}

func (f *Frontend) names(fields []string, label func(string) string) string {
	out := make([]string, len(fields))
	for i, field := range fields {
		out[i] = f.highlight(label(field))
	}
	return strings.Join(out, ", ")
}

func modelLabel(field string) string {
	if label, ok := modelLabels[field]; ok {
		return label
	}
	return field
}

func indexedLabels(labels []string) []string {
	out := make([]string, len(labels))
	for i, label := range labels {
		out[i] = fmt.Sprintf("%d: %s", i, label)
	}
	return out
}
