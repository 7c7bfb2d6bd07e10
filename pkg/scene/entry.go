package scene

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/goliatone/go-scenegen/pkg/validators"
)

// Defaults for newly added models.
const (
	DefaultFilename  = "sphere.obj"
	DefaultTransform = "0.0"
)

// EntryFields is the complete editable state of a ModelEntry. Edits always
// replace all ten fields at once.
type EntryFields struct {
	Filename string
	X        string
	Y        string
	Z        string
	RotX     string
	RotY     string
	RotZ     string
	FlipX    bool
	FlipY    bool
	FlipZ    bool
}

// DefaultEntryFields returns the fields of a freshly added model.
func DefaultEntryFields() EntryFields {
	return EntryFields{
		Filename: DefaultFilename,
		X:        DefaultTransform,
		Y:        DefaultTransform,
		Z:        DefaultTransform,
		RotX:     DefaultTransform,
		RotY:     DefaultTransform,
		RotZ:     DefaultTransform,
	}
}

// ModelEntryFields lists the validated field names in display order.
func ModelEntryFields() []string {
	return []string{FieldFilename, FieldX, FieldY, FieldZ, FieldRotX, FieldRotY, FieldRotZ}
}

// Get returns the raw value of a validated field by name.
func (f EntryFields) Get(field string) (string, bool) {
	switch field {
	case FieldFilename:
		return f.Filename, true
	case FieldX:
		return f.X, true
	case FieldY:
		return f.Y, true
	case FieldZ:
		return f.Z, true
	case FieldRotX:
		return f.RotX, true
	case FieldRotY:
		return f.RotY, true
	case FieldRotZ:
		return f.RotZ, true
	default:
		return "", false
	}
}

// Set assigns a validated field by name.
func (f *EntryFields) Set(field, raw string) error {
	switch field {
	case FieldFilename:
		f.Filename = raw
	case FieldX:
		f.X = raw
	case FieldY:
		f.Y = raw
	case FieldZ:
		f.Z = raw
	case FieldRotX:
		f.RotX = raw
	case FieldRotY:
		f.RotY = raw
	case FieldRotZ:
		f.RotZ = raw
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// ModelEntry is one placed model. Its identity is the pointer itself; the
// owning Collection has no other key for it.
type ModelEntry struct {
	fields      EntryFields
	displayName string
}

// NewModelEntry builds an entry from fields, deriving its display name.
func NewModelEntry(fields EntryFields) *ModelEntry {
	e := &ModelEntry{}
	e.Apply(fields)
	return e
}

// DefaultModelEntry returns a sphere at the origin with no rotation or flips.
func DefaultModelEntry() *ModelEntry {
	return NewModelEntry(DefaultEntryFields())
}

// Fields returns a copy of the entry's current fields.
func (e *ModelEntry) Fields() EntryFields {
	return e.fields
}

// Filename returns the raw filename.
func (e *ModelEntry) Filename() string {
	return e.fields.Filename
}

// DisplayName is the capitalized basename derived from the filename.
func (e *ModelEntry) DisplayName() string {
	return e.displayName
}

// Apply replaces every field, recomputes the display name and returns the
// validity of the new state. The fields are stored even when invalid.
func (e *ModelEntry) Apply(fields EntryFields) ModelEntryValidity {
	e.fields = fields
	e.displayName = DisplayName(fields.Filename)
	return e.Validate()
}

// Validate checks the filename syntax and the six transform fields.
func (e *ModelEntry) Validate() ModelEntryValidity {
	f := e.fields
	return ModelEntryValidity{
		Filename: validators.IsObjFilename(f.Filename),
		X:        validators.IsFloat(f.X),
		Y:        validators.IsFloat(f.Y),
		Z:        validators.IsFloat(f.Z),
		RotX:     validators.IsFloat(f.RotX),
		RotY:     validators.IsFloat(f.RotY),
		RotZ:     validators.IsFloat(f.RotZ),
	}
}

// DisplayName derives a list label from a filename: the text before the first
// dot (or the whole name when there is none) with its first letter upper-cased
// and the rest lower-cased. It works on syntactically invalid names too.
func DisplayName(filename string) string {
	base, _, _ := strings.Cut(filename, ".")
	if base == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(base)
	head := cases.Title(language.Und).String(base[:size])
	tail := cases.Lower(language.Und).String(base[size:])
	return head + tail
}
