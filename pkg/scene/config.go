package scene

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-scenegen/pkg/validators"
)

// Default render parameters used when a session starts.
const (
	DefaultWidth  = "1600"
	DefaultHeight = "900"
	DefaultCamFOV = "25.0"
	DefaultCamX   = "0.0"
	DefaultCamY   = "0.0"
	DefaultCamZ   = "-10.0"
)

// ErrUnknownField is returned when a field name does not belong to the entity
// being edited.
var ErrUnknownField = errors.New("scene: unknown field")

// Config holds the global render parameters as raw user input. The
// presentation layer writes the fields directly or through Set.
type Config struct {
	Width  string
	Height string
	CamFOV string
	CamX   string
	CamY   string
	CamZ   string
}

// DefaultConfig returns the parameters every session starts with.
func DefaultConfig() *Config {
	return &Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		CamFOV: DefaultCamFOV,
		CamX:   DefaultCamX,
		CamY:   DefaultCamY,
		CamZ:   DefaultCamZ,
	}
}

// ConfigFields lists the Config field names in display order.
func ConfigFields() []string {
	return []string{FieldWidth, FieldHeight, FieldCamFOV, FieldCamX, FieldCamY, FieldCamZ}
}

// Set stores raw as the value of the named field without validating it.
func (c *Config) Set(field, raw string) error {
	ptr := c.fieldPtr(field)
	if ptr == nil {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	*ptr = raw
	return nil
}

// Get returns the raw value of the named field.
func (c *Config) Get(field string) (string, bool) {
	ptr := c.fieldPtr(field)
	if ptr == nil {
		return "", false
	}
	return *ptr, true
}

// Validate checks every field against its predicate. It has no side effects.
func (c *Config) Validate() SceneConfigValidity {
	return SceneConfigValidity{
		Width:  validators.IsNonNegativeInteger(c.Width),
		Height: validators.IsNonNegativeInteger(c.Height),
		CamX:   validators.IsFloat(c.CamX),
		CamY:   validators.IsFloat(c.CamY),
		CamZ:   validators.IsFloat(c.CamZ),
		CamFOV: validators.IsFOV(c.CamFOV),
	}
}

func (c *Config) fieldPtr(field string) *string {
	if c == nil {
		return nil
	}
	switch field {
	case FieldWidth:
		return &c.Width
	case FieldHeight:
		return &c.Height
	case FieldCamFOV:
		return &c.CamFOV
	case FieldCamX:
		return &c.CamX
	case FieldCamY:
		return &c.CamY
	case FieldCamZ:
		return &c.CamZ
	default:
		return nil
	}
}
