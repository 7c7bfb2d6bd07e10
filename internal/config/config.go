// Package config loads the front-end settings for the scenegen CLI: which
// renderer to call, colour handling and log verbosity. Scene defaults are
// fixed by pkg/scene and are not configurable here.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-scenegen/pkg/pack"
)

// Renderer kinds.
const (
	RendererExec  = "exec"
	RendererPrint = "print"
)

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "SCENEGEN_"

// ErrUnsupportedFile is returned by Load for extensions other than YAML and
// TOML.
var ErrUnsupportedFile = errors.New("config: unsupported file type")

// Renderer selects and configures the renderer invoked on start.
type Renderer struct {
	Kind    string `yaml:"kind" toml:"kind"`
	Command string `yaml:"command" toml:"command"`
	Dir     string `yaml:"dir" toml:"dir"`
	// Format is the encoding used by the print renderer.
	Format string `yaml:"format" toml:"format"`
}

// Config holds all front-end settings.
type Config struct {
	Renderer Renderer `yaml:"renderer" toml:"renderer"`
	Color    string   `yaml:"color" toml:"color"`
	LogLevel string   `yaml:"log_level" toml:"log_level"`
}

// Flags holds CLI flag values that override file and environment settings.
type Flags struct {
	Renderer string
	Command  string
	Dir      string
	Format   string
	Color    string

	VeryVerbose bool
	Verbose     bool
	Quiet       bool
}

// Default returns the settings used when nothing else is configured: print
// the packed arguments instead of running an external program.
func Default() Config {
	return Config{
		Renderer: Renderer{
			Kind:   RendererPrint,
			Format: string(pack.FormatArgs),
		},
		Color:    ColorAuto,
		LogLevel: slog.LevelWarn.String(),
	}
}

// Load reads a YAML or TOML file on top of Default. Fields not set in the
// file keep their default values. A leading ~ in path is expanded.
func Load(path string) (Config, error) {
	cfg := Default()

	expanded, err := homedir.Expand(path)
	if err != nil {
		return cfg, fmt.Errorf("config: expand %s: %w", path, err)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", expanded, err)
	}

	switch strings.ToLower(filepath.Ext(expanded)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("%w: %s", ErrUnsupportedFile, expanded)
	}
	if err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", expanded, err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from SCENEGEN_* variables. lookup is usually
// os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if lookup == nil {
		return
	}
	set := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			*dst = v
		}
	}
	set("RENDERER", &c.Renderer.Kind)
	set("COMMAND", &c.Renderer.Command)
	set("DIR", &c.Renderer.Dir)
	set("FORMAT", &c.Renderer.Format)
	set("COLOR", &c.Color)
	set("LOG_LEVEL", &c.LogLevel)
}

// Resolve applies CLI flags last. Non-empty flags win. The verbosity flags
// only replace LogLevel when one of them is set.
func (c *Config) Resolve(flags Flags) {
	if flags.Renderer != "" {
		c.Renderer.Kind = flags.Renderer
	}
	if flags.Command != "" {
		c.Renderer.Command = flags.Command
	}
	if flags.Dir != "" {
		c.Renderer.Dir = flags.Dir
	}
	if flags.Format != "" {
		c.Renderer.Format = flags.Format
	}
	if flags.Color != "" {
		c.Color = flags.Color
	}
	if flags.VeryVerbose || flags.Verbose || flags.Quiet {
		c.LogLevel = LevelFromFlags(flags.VeryVerbose, flags.Verbose, flags.Quiet).String()
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch c.Renderer.Kind {
	case RendererPrint:
		if _, err := pack.ParseFormat(c.Renderer.Format); err != nil {
			return fmt.Errorf("config: renderer format: %w", err)
		}
	case RendererExec:
		if strings.TrimSpace(c.Renderer.Command) == "" {
			return errors.New("config: exec renderer requires a command")
		}
	default:
		return fmt.Errorf("config: unknown renderer kind %q", c.Renderer.Kind)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("config: unknown color mode %q", c.Color)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel. An empty value is the default warn level.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelWarn, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn, fmt.Errorf("config: log level: %w", err)
	}
	return level, nil
}

// LevelFromFlags maps the -vv, -v and -q flags to a level, checked in that
// order. With none set the level is warn.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
