package pack

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects how Encode writes a sequence.
type Format string

const (
	// FormatArgs writes one canonical value per line.
	FormatArgs Format = "args"
	// FormatJSON writes a flat JSON array.
	FormatJSON Format = "json"
	// FormatYAML writes a flat YAML sequence.
	FormatYAML Format = "yaml"
)

// Formats lists the supported encodings.
func Formats() []Format {
	return []Format{FormatArgs, FormatJSON, FormatYAML}
}

// ParseFormat maps a user supplied name onto a Format.
func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case FormatArgs, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatArgs, nil
	default:
		return "", fmt.Errorf("pack: unknown format %q", raw)
	}
}

// Encode writes args to w in the requested format.
func Encode(w io.Writer, args Args, format Format) error {
	switch format {
	case FormatArgs, "":
		for _, value := range args.Strings() {
			if _, err := fmt.Fprintln(w, value); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		if err := enc.Encode(jsonSafe(args)); err != nil {
			return fmt.Errorf("pack: encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode([]any(args)); err != nil {
			return fmt.Errorf("pack: encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("pack: unknown format %q", format)
	}
}

// jsonSafe replaces infinities and NaN, which JSON cannot represent, with
// their canonical text form as string tokens.
func jsonSafe(args Args) []any {
	out := make([]any, len(args))
	for i, v := range args {
		if f, ok := v.(float64); ok && (math.IsInf(f, 0) || math.IsNaN(f)) {
			out[i] = formatValue(f)
			continue
		}
		out[i] = v
	}
	return out
}
