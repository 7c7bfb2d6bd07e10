package scene

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	want := SceneConfigValidity{Width: true, Height: true, CamX: true, CamY: true, CamZ: true, CamFOV: true}
	if diff := cmp.Diff(want, cfg.Validate()); diff != "" {
		t.Fatalf("default validity mismatch (-want +got):\n%s", diff)
	}
	if cfg.CamZ != "-10.0" || cfg.Width != "1600" || cfg.Height != "900" || cfg.CamFOV != "25.0" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestConfigValidateFlagsEachField(t *testing.T) {
	cfg := &Config{
		Width:  "-1",
		Height: "9.5",
		CamFOV: "200",
		CamX:   "left",
		CamY:   "1e2",
		CamZ:   "",
	}
	got := cfg.Validate()
	want := SceneConfigValidity{CamY: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("validity mismatch (-want +got):\n%s", diff)
	}
	if got.Valid() {
		t.Fatalf("expected invalid config")
	}
	wantInvalid := []string{FieldWidth, FieldHeight, FieldCamFOV, FieldCamX, FieldCamZ}
	if diff := cmp.Diff(wantInvalid, got.Invalid()); diff != "" {
		t.Fatalf("invalid fields mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigSetAndGet(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Set(FieldCamFOV, "90"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if v, ok := cfg.Get(FieldCamFOV); !ok || v != "90" {
		t.Fatalf("expected camfov 90, got %q (ok=%v)", v, ok)
	}
	err := cfg.Set("zoom", "2")
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestDisplayName(t *testing.T) {
	cases := map[string]string{
		"sphere.obj":    "Sphere",
		"TEAPOT.OBJ":    "Teapot",
		"a.obj":         "A",
		"my.model.obj":  "My",
		"noext":         "Noext",
		".obj":          "",
		"":              "",
		"élan.obj":      "Élan",
		"two words.obj": "Two words",
	}
	for in, want := range cases {
		if got := DisplayName(in); got != want {
			t.Errorf("DisplayName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestModelEntryApplyKeepsInvalidValues(t *testing.T) {
	entry := DefaultModelEntry()
	if entry.DisplayName() != "Sphere" {
		t.Fatalf("expected Sphere, got %q", entry.DisplayName())
	}

	fields := DefaultEntryFields()
	fields.Filename = "cube.stl"
	fields.RotY = "ninety"
	fields.FlipZ = true

	validity := entry.Apply(fields)
	want := ModelEntryValidity{X: true, Y: true, Z: true, RotX: true, RotZ: true}
	if diff := cmp.Diff(want, validity); diff != "" {
		t.Fatalf("validity mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(fields, entry.Fields()); diff != "" {
		t.Fatalf("fields not stored (-want +got):\n%s", diff)
	}
	if entry.DisplayName() != "Cube" {
		t.Fatalf("display name should follow invalid filename, got %q", entry.DisplayName())
	}
	if diff := cmp.Diff([]string{FieldFilename, FieldRotY}, validity.Invalid()); diff != "" {
		t.Fatalf("invalid fields mismatch (-want +got):\n%s", diff)
	}
}

func TestEntryFieldsSetGet(t *testing.T) {
	var f EntryFields
	for _, name := range ModelEntryFields() {
		if err := f.Set(name, name+"-v"); err != nil {
			t.Fatalf("set %s: %v", name, err)
		}
		if got, ok := f.Get(name); !ok || got != name+"-v" {
			t.Fatalf("get %s = %q (ok=%v)", name, got, ok)
		}
	}
	if err := f.Set("flipx", "true"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField for flip, got %v", err)
	}
}

func TestValidateReport(t *testing.T) {
	cfg := DefaultConfig()
	bad := DefaultEntryFields()
	bad.X = "?"
	models := NewCollection(DefaultModelEntry(), NewModelEntry(bad))

	report := Validate(cfg, models)
	if report.Valid() {
		t.Fatalf("expected invalid report")
	}
	if diff := cmp.Diff([]int{1}, report.InvalidModels()); diff != "" {
		t.Fatalf("invalid models mismatch (-want +got):\n%s", diff)
	}

	cfg.CamFOV = "180.0"
	if Validate(cfg, NewCollection()).Valid() {
		t.Fatalf("fov 180 must not pass")
	}

	cfg.CamFOV = "179.999"
	if !Validate(cfg, NewCollection()).Valid() {
		t.Fatalf("empty collection with valid config should pass")
	}
}
