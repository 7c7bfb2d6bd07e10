package summary

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-scenegen/pkg/scene"
	"github.com/goliatone/go-scenegen/pkg/testsupport"
)

func TestRenderTextGolden(t *testing.T) {
	cfg, models := testsupport.MustLoadScene(t, "testdata/two_models.yaml")
	r, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	out, err := r.Render(FormatText, cfg, models)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	golden := "testdata/two_models.txt.golden"
	if testsupport.WriteMaybeGolden(t, golden, []byte(out)) {
		return
	}
	if diff := testsupport.CompareGolden(testsupport.MustReadGoldenString(t, golden), out); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderTextDefaultScene(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	out, err := r.Render(FormatText, scene.DefaultConfig(), scene.NewCollection(scene.DefaultModelEntry()))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{
		"Width: 1600",
		"Height: 900",
		"Camera FOV (degrees): 25.0",
		"Camera z: -10.0",
		"Models (1)",
		"[0] Sphere file=sphere.obj pos=(0.0, 0.0, 0.0) rot=(0.0, 0.0, 0.0) flip=none",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "(!)") {
		t.Fatalf("valid scene should have no highlights:\n%s", out)
	}
}

func TestRenderTextHighlightsInvalid(t *testing.T) {
	r, err := New(WithHighlighter(func(s string) string { return "<<" + s + ">>" }))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	cfg := scene.DefaultConfig()
	cfg.CamFOV = "200"
	cfg.Height = ""

	fields := scene.DefaultEntryFields()
	fields.Filename = "a.b.obj"
	fields.Y = "up"
	fields.FlipX = true
	fields.FlipZ = true

	out, err := r.Render(FormatText, cfg, scene.NewCollection(scene.NewModelEntry(fields)))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{
		"Camera FOV (degrees): <<200>>",
		`Height: <<"">>`,
		"file=<<a.b.obj>>",
		"pos=(0.0, <<up>>, 0.0)",
		"flip=x,z",
		"[0] A ",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTextEmptyCollection(t *testing.T) {
	r, _ := New()
	out, err := r.Render(FormatText, scene.DefaultConfig(), scene.NewCollection())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "Models (0)") || !strings.Contains(out, "(none)") {
		t.Fatalf("unexpected empty summary:\n%s", out)
	}
}

func TestRenderHTMLSanitizesUserInput(t *testing.T) {
	r, _ := New()
	fields := scene.DefaultEntryFields()
	fields.Filename = `<script>alert(1)</script>.obj`
	cfg := scene.DefaultConfig()
	cfg.CamX = "<b>left</b>"

	out, err := r.Render(FormatHTML, cfg, scene.NewCollection(scene.NewModelEntry(fields)))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out, "<script>") || strings.Contains(out, "<b>") {
		t.Fatalf("user markup leaked into html:\n%s", out)
	}
	if !strings.Contains(out, `<dd data-field="camx" class="invalid"><mark>left</mark></dd>`) {
		t.Fatalf("invalid camera field not marked:\n%s", out)
	}
	if !strings.Contains(out, `<dd data-field="width">1600</dd>`) {
		t.Fatalf("valid width not rendered:\n%s", out)
	}
}

func TestRenderCustomTemplates(t *testing.T) {
	fsys := fstest.MapFS{
		"summary.txt.tpl": {Data: []byte(`{% for m in models %}{{ m.label }};{% endfor %}`)},
	}
	r, _ := New(WithTemplatesFS(fsys))
	out, err := r.Render(FormatText, scene.DefaultConfig(), scene.NewCollection(scene.DefaultModelEntry(), scene.DefaultModelEntry()))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Sphere;Sphere;" {
		t.Fatalf("unexpected custom output %q", out)
	}
	if _, err := r.Render(FormatHTML, scene.DefaultConfig(), scene.NewCollection()); err == nil {
		t.Fatalf("expected error for missing html template")
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	r, _ := New()
	if _, err := r.Render(Format("pdf"), scene.DefaultConfig(), scene.NewCollection()); err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if _, err := r.Render(FormatText, nil, scene.NewCollection()); err == nil {
		t.Fatalf("expected error for nil config")
	}
}
