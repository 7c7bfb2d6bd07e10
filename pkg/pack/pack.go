// Package pack turns a validated scene into the flat positional argument
// sequence the renderer is called with. The layout is a wire contract: six
// scene values followed by one ten-value group per model, in collection order.
//
//	width:int height:int camx:float camy:float camz:float camfov:float
//	filename:string x y z rotx roty rotz:float flipx flipy flipz:bool ...
//
// New trailing fields may be appended to a group in the future; existing
// positions never move.
package pack

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-scenegen/pkg/scene"
	"github.com/goliatone/go-scenegen/pkg/validators"
)

// Arity of the scene header and of each model group.
const (
	SceneArity = 6
	ModelArity = 10
)

var (
	// ErrInvalidScene is matched by the ValidationError returned when a scene
	// with failing fields is packed.
	ErrInvalidScene = errors.New("pack: scene has invalid fields")
	// ErrMalformedArgs is returned by Unpack when a sequence does not follow
	// the layout.
	ErrMalformedArgs = errors.New("pack: malformed argument sequence")
)

// ValidationError carries the validity report of a scene that could not be
// packed.
type ValidationError struct {
	Report scene.Report
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, 1+len(e.Report.Models))
	if invalid := e.Report.Scene.Invalid(); len(invalid) > 0 {
		parts = append(parts, "scene["+strings.Join(invalid, ",")+"]")
	}
	for idx, m := range e.Report.Models {
		if invalid := m.Invalid(); len(invalid) > 0 {
			parts = append(parts, fmt.Sprintf("model %d[%s]", idx, strings.Join(invalid, ",")))
		}
	}
	return ErrInvalidScene.Error() + ": " + strings.Join(parts, " ")
}

// Is lets errors.Is match ErrInvalidScene.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidScene
}

// Args is a packed argument sequence. Values are int, float64, string or bool.
type Args []any

// Pack validates cfg and models and, when every field passes, coerces the raw
// strings into the renderer layout. It never returns a partial sequence.
func Pack(cfg *scene.Config, models *scene.Collection) (Args, error) {
	report := scene.Validate(cfg, models)
	if !report.Valid() {
		return nil, &ValidationError{Report: report}
	}

	args := make(Args, 0, SceneArity+ModelArity*models.Len())
	p := &coercer{}
	args = append(args,
		p.int(scene.FieldWidth, cfg.Width),
		p.int(scene.FieldHeight, cfg.Height),
		p.float(scene.FieldCamX, cfg.CamX),
		p.float(scene.FieldCamY, cfg.CamY),
		p.float(scene.FieldCamZ, cfg.CamZ),
		p.float(scene.FieldCamFOV, cfg.CamFOV),
	)
	for _, entry := range models.Entries() {
		args = append(args, packEntry(p, entry.Fields())...)
	}
	if p.err != nil {
		return nil, p.err
	}
	return args, nil
}

func packEntry(p *coercer, f scene.EntryFields) Args {
	return Args{
		f.Filename,
		p.float(scene.FieldX, f.X),
		p.float(scene.FieldY, f.Y),
		p.float(scene.FieldZ, f.Z),
		p.float(scene.FieldRotX, f.RotX),
		p.float(scene.FieldRotY, f.RotY),
		p.float(scene.FieldRotZ, f.RotZ),
		f.FlipX,
		f.FlipY,
		f.FlipZ,
	}
}

// coercer keeps the first conversion error so Pack can build the sequence in
// one pass.
type coercer struct {
	err error
}

func (c *coercer) int(field, raw string) any {
	v, err := strconv.Atoi(raw)
	if err != nil && c.err == nil {
		c.err = fmt.Errorf("pack: coerce %s %q: %w", field, raw, err)
	}
	return v
}

func (c *coercer) float(field, raw string) any {
	v, ok := validators.ParseFloat(raw)
	if !ok && c.err == nil {
		c.err = fmt.Errorf("pack: coerce %s %q: %w", field, raw, strconv.ErrSyntax)
	}
	return v
}

// Models reports how many model groups the sequence holds, or -1 when its
// length does not fit the layout.
func (a Args) Models() int {
	if len(a) < SceneArity || (len(a)-SceneArity)%ModelArity != 0 {
		return -1
	}
	return (len(a) - SceneArity) / ModelArity
}

// Strings renders every value in its canonical text form, for renderers that
// take the sequence as process arguments.
func (a Args) Strings() []string {
	out := make([]string, len(a))
	for i, v := range a {
		out[i] = formatValue(v)
	}
	return out
}

func formatValue(v any) string {
	switch typed := v.(type) {
	case int:
		return strconv.Itoa(typed)
	case float64:
		return strconv.FormatFloat(typed, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(typed)
	case string:
		return typed
	default:
		return fmt.Sprint(typed)
	}
}
