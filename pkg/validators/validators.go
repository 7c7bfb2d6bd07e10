// Package validators holds the field predicates applied to raw user input
// before a scene can be packed. Every predicate is pure and folds parse
// failures into false; none of them return errors.
package validators

import (
	"errors"
	"strconv"
	"strings"
)

// MaxFOV is the exclusive upper bound for the camera field of view, in
// degrees. Zero is allowed; 180 is not.
const MaxFOV = 180.0

// ObjExtension is the only model file extension accepted by IsObjFilename.
const ObjExtension = "obj"

// IsNonNegativeInteger reports whether s is a non-empty run of ASCII digits.
// Signs, whitespace and decimal points are rejected.
func IsNonNegativeInteger(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsFloat reports whether s is a decimal floating point literal. Surrounding
// whitespace and single underscores between digits are allowed; hexadecimal
// literals are not. Literals whose magnitude overflows float64 still count,
// they parse to ±Inf.
func IsFloat(s string) bool {
	_, ok := ParseFloat(s)
	return ok
}

// IsFOV reports whether s is a float within [0, MaxFOV).
func IsFOV(s string) bool {
	v, ok := ParseFloat(s)
	if !ok {
		return false
	}
	return 0.0 <= v && v < MaxFOV
}

// IsObjFilename reports whether s looks like "<basename>.obj". Names with more
// than one dot are rejected even though the filesystem would allow them. The
// file is never looked up.
func IsObjFilename(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return false
	}
	return strings.EqualFold(parts[1], ObjExtension)
}

// ParseFloat parses s under the rules of IsFloat. Packing uses it so that a
// value which validates always converts.
func ParseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if isHex(s) {
		return 0, false
	}
	if strings.Contains(s, "_") {
		var ok bool
		if s, ok = stripUnderscores(s); !ok {
			return 0, false
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return v, true
	}
	if errors.Is(err, strconv.ErrRange) {
		return v, true
	}
	return 0, false
}

func isHex(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// stripUnderscores removes digit separators. Each underscore must sit between
// two digits.
func stripUnderscores(s string) (string, bool) {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			b.WriteByte(s[i])
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", false
		}
	}
	return b.String(), true
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
