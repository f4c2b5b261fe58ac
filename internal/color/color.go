package color

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidColorFormat is returned when a color string does not match the
// hex, rgb() or rgba() textual grammar.
var ErrInvalidColorFormat = errors.New("invalid color format")

// Format identifies the textual form a color was parsed from. Serialization
// always produces the same form, so a parsed color round-trips.
type Format int

const (
	FormatHex Format = iota
	FormatRGB
	FormatRGBA
)

// Color represents a parsed color. The R, G, B uint8 fields are the source
// of truth; Alpha holds the raw fourth token of an rgba() literal, preserved
// verbatim for round-tripping, and is "1" for formats without an alpha
// channel.
type Color struct {
	R, G, B uint8
	Alpha   string
	Format  Format
}

// Parse parses a color string in one of three forms: hex ("#rgb" or
// "#rrggbb", leading # optional), "rgb(r, g, b)" or "rgba(r, g, b, a)".
// Malformed input returns an error wrapping ErrInvalidColorFormat.
func Parse(s string) (Color, error) {
	switch {
	case strings.HasPrefix(s, "rgba"):
		return parseRGB(s, "rgba")
	case strings.HasPrefix(s, "rgb"):
		return parseRGB(s, "rgb")
	default:
		return parseHex(s)
	}
}

func parseRGB(s, prefix string) (Color, error) {
	body, ok := strings.CutPrefix(s, prefix+"(")
	if !ok {
		return Color{}, fmt.Errorf("%w: %q is missing %s( prefix", ErrInvalidColorFormat, s, prefix)
	}
	body, ok = strings.CutSuffix(body, ")")
	if !ok {
		return Color{}, fmt.Errorf("%w: %q is missing closing parenthesis", ErrInvalidColorFormat, s)
	}

	parts := strings.Split(body, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}

	c := Color{Alpha: "1", Format: FormatRGB}
	switch prefix {
	case "rgb":
		if len(parts) != 3 {
			return Color{}, fmt.Errorf("%w: %q must have 3 components", ErrInvalidColorFormat, s)
		}
	case "rgba":
		if len(parts) != 4 {
			return Color{}, fmt.Errorf("%w: %q must have 4 components", ErrInvalidColorFormat, s)
		}
		c.Format = FormatRGBA
		c.Alpha = parts[3]
	}

	channels := [3]*uint8{&c.R, &c.G, &c.B}
	for i, ch := range channels {
		v, err := strconv.Atoi(parts[i])
		if err != nil || v < 0 || v > 255 {
			return Color{}, fmt.Errorf("%w: channel %q is not an integer in [0, 255]", ErrInvalidColorFormat, parts[i])
		}
		*ch = uint8(v)
	}

	return c, nil
}

func parseHex(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")

	if len(s) == 3 {
		// Short form like "abc" expands to "aabbcc".
		s = strings.Repeat(string(s[0]), 2) + strings.Repeat(string(s[1]), 2) + strings.Repeat(string(s[2]), 2)
	}
	if len(s) != 6 {
		return Color{}, fmt.Errorf("%w: hex color %q must be 3 or 6 hex digits", ErrInvalidColorFormat, s)
	}

	c := Color{Alpha: "1", Format: FormatHex}
	channels := [3]*uint8{&c.R, &c.G, &c.B}
	for i, ch := range channels {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: hex color %q: %v", ErrInvalidColorFormat, s, err)
		}
		*ch = uint8(v)
	}

	return c, nil
}

// String serializes the color in the format it was parsed from. Hex output
// is lowercase with a leading #; rgba output carries the original alpha
// literal unchanged.
func (c Color) String() string {
	switch c.Format {
	case FormatRGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	case FormatRGBA:
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, c.Alpha)
	default:
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
}
