package color

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{"hex with hash", "#eb6f92", Color{235, 111, 146, "1", FormatHex}, false},
		{"hex without hash", "eb6f92", Color{235, 111, 146, "1", FormatHex}, false},
		{"hex short form", "#abc", Color{170, 187, 204, "1", FormatHex}, false},
		{"hex short form without hash", "fff", Color{255, 255, 255, "1", FormatHex}, false},
		{"hex uppercase", "#AABBCC", Color{170, 187, 204, "1", FormatHex}, false},
		{"hex black", "#000000", Color{0, 0, 0, "1", FormatHex}, false},
		{"rgb", "rgb(10, 20, 30)", Color{10, 20, 30, "1", FormatRGB}, false},
		{"rgb no spaces", "rgb(10,20,30)", Color{10, 20, 30, "1", FormatRGB}, false},
		{"rgba", "rgba(10, 20, 30, 0.5)", Color{10, 20, 30, "0.5", FormatRGBA}, false},
		{"rgba integer alpha", "rgba(0, 0, 0, 1)", Color{0, 0, 0, "1", FormatRGBA}, false},
		{"not a color", "notacolor", Color{}, true},
		{"empty", "", Color{}, true},
		{"hex wrong length", "#abcd", Color{}, true},
		{"hex invalid chars", "#zzzzzz", Color{}, true},
		{"rgb missing paren", "rgb(10, 20, 30", Color{}, true},
		{"rgb too few components", "rgb(10, 20)", Color{}, true},
		{"rgb too many components", "rgb(10, 20, 30, 40)", Color{}, true},
		{"rgba missing alpha", "rgba(10, 20, 30)", Color{}, true},
		{"rgb channel out of range", "rgb(300, 0, 0)", Color{}, true},
		{"rgb channel not a number", "rgb(a, b, c)", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColorFormat) {
					t.Errorf("Parse(%q) error = %v, want ErrInvalidColorFormat", tt.input, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestColorString(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{"hex", Color{235, 111, 146, "1", FormatHex}, "#eb6f92"},
		{"hex zero padded", Color{0, 5, 10, "1", FormatHex}, "#00050a"},
		{"rgb", Color{235, 111, 146, "1", FormatRGB}, "rgb(235, 111, 146)"},
		{"rgba", Color{10, 20, 30, "0.5", FormatRGBA}, "rgba(10, 20, 30, 0.5)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.String(); got != tt.want {
				t.Errorf("Color.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	inputs := []string{
		"#eb6f92",
		"#000000",
		"#ffffff",
		"rgb(10, 20, 30)",
		"rgba(10, 20, 30, 0.5)",
		"rgba(255, 255, 255, 1)",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			c, err := Parse(input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", input, err)
			}
			if got := c.String(); got != input {
				t.Errorf("round trip of %q = %q", input, got)
			}
		})
	}
}
