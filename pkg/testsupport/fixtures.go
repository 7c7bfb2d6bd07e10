package testsupport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-scenegen/pkg/scene"
)

// SceneFixture is the on-disk shape of a scene used by tests. Keys left out
// of the YAML keep their default values.
type SceneFixture struct {
	Config scene.Config
	Models []scene.EntryFields
}

type sceneDocument struct {
	Config yaml.Node   `yaml:"config"`
	Models []yaml.Node `yaml:"models"`
}

// LoadScene reads a YAML scene fixture and builds the config and collection.
func LoadScene(path string) (*scene.Config, *scene.Collection, error) {
	if path == "" {
		return nil, nil, errors.New("testsupport: scene path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("testsupport: read scene: %w", err)
	}
	fixture, err := ParseScene(data)
	if err != nil {
		return nil, nil, err
	}
	cfg, models := fixture.Build()
	return cfg, models, nil
}

// MustLoadScene is LoadScene for tests.
func MustLoadScene(t *testing.T, path string) (*scene.Config, *scene.Collection) {
	t.Helper()

	cfg, models, err := LoadScene(path)
	if err != nil {
		t.Fatalf("load scene: %v", err)
	}
	return cfg, models
}

// ParseScene decodes fixture YAML on top of the scene defaults.
func ParseScene(data []byte) (SceneFixture, error) {
	var doc sceneDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return SceneFixture{}, fmt.Errorf("testsupport: decode scene: %w", err)
	}
	fixture := SceneFixture{Config: *scene.DefaultConfig()}
	if !doc.Config.IsZero() {
		if err := doc.Config.Decode(&fixture.Config); err != nil {
			return SceneFixture{}, fmt.Errorf("testsupport: decode config: %w", err)
		}
	}
	for i := range doc.Models {
		fields := scene.DefaultEntryFields()
		if err := doc.Models[i].Decode(&fields); err != nil {
			return SceneFixture{}, fmt.Errorf("testsupport: decode model %d: %w", i, err)
		}
		fixture.Models = append(fixture.Models, fields)
	}
	return fixture, nil
}

// Build returns fresh scene values for the fixture.
func (f SceneFixture) Build() (*scene.Config, *scene.Collection) {
	cfg := f.Config
	return &cfg, NewCollection(f.Models...)
}

// NewCollection builds a collection with one entry per field set.
func NewCollection(fields ...scene.EntryFields) *scene.Collection {
	entries := make([]*scene.ModelEntry, 0, len(fields))
	for _, f := range fields {
		entries = append(entries, scene.NewModelEntry(f))
	}
	return scene.NewCollection(entries...)
}

// Entry returns default entry fields with the given filename.
func Entry(filename string) scene.EntryFields {
	fields := scene.DefaultEntryFields()
	fields.Filename = filename
	return fields
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureOutput runs fn against a buffer and returns what it wrote.
func CaptureOutput(t *testing.T, fn func(io.Writer) error) string {
	t.Helper()

	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		t.Fatalf("capture output: %v", err)
	}
	return buf.String()
}
