package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mitchellh/go-homedir"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "scenegen.yaml", `
renderer:
  kind: exec
  command: raytrace --quiet
color: never
`)
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Default()
	want.Renderer.Kind = RendererExec
	want.Renderer.Command = "raytrace --quiet"
	want.Color = ColorNever
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "scenegen.toml", `
log_level = "debug"

[renderer]
kind = "print"
format = "json"
`)
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Default()
	want.Renderer.Format = "json"
	want.LogLevel = "debug"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	writeFile(t, home, "scenegen.yml", "color: always\n")
	got, err := Load("~/scenegen.yml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Color != ColorAlways {
		t.Fatalf("expected color from home file, got %q", got.Color)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(writeFile(t, dir, "scenegen.json", "{}")); !errors.Is(err, ErrUnsupportedFile) {
		t.Fatalf("expected ErrUnsupportedFile, got %v", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := Load(writeFile(t, dir, "bad.yaml", "renderer: [")); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestPrecedence(t *testing.T) {
	cfg := Default()
	env := map[string]string{
		"SCENEGEN_RENDERER":  "exec",
		"SCENEGEN_COMMAND":   "from-env",
		"SCENEGEN_LOG_LEVEL": "info",
		"SCENEGEN_COLOR":     "",
	}
	cfg.ApplyEnv(func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
	cfg.Resolve(Flags{Command: "from-flag", Quiet: true})

	want := Config{
		Renderer: Renderer{Kind: RendererExec, Command: "from-flag", Format: "args"},
		Color:    ColorAuto,
		LogLevel: "ERROR",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	level, err := cfg.Level()
	if err != nil || level != slog.LevelError {
		t.Fatalf("expected error level, got %v (%v)", level, err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "default", mutate: func(*Config) {}},
		{name: "exec without command", mutate: func(c *Config) { c.Renderer.Kind = RendererExec }, wantErr: true},
		{name: "unknown kind", mutate: func(c *Config) { c.Renderer.Kind = "opengl" }, wantErr: true},
		{name: "unknown format", mutate: func(c *Config) { c.Renderer.Format = "xml" }, wantErr: true},
		{name: "unknown color", mutate: func(c *Config) { c.Color = "sometimes" }, wantErr: true},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: true},
		{name: "empty level", mutate: func(c *Config) { c.LogLevel = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("validate error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestLevelFromFlags(t *testing.T) {
	cases := []struct {
		vv, v, q bool
		want     slog.Level
	}{
		{want: slog.LevelWarn},
		{q: true, want: slog.LevelError},
		{v: true, want: slog.LevelInfo},
		{vv: true, q: true, want: slog.LevelDebug},
	}
	for _, tc := range cases {
		if got := LevelFromFlags(tc.vv, tc.v, tc.q); got != tc.want {
			t.Fatalf("LevelFromFlags(%v,%v,%v) = %v, want %v", tc.vv, tc.v, tc.q, got, tc.want)
		}
	}
}
