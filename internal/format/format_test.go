package format

import (
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "basic formatting",
			input:    `site{home_page="index"disable_signup=true}`,
			expected: `site { home_page = "index" disable_signup = true }`,
		},
		{
			name: "already formatted stays same",
			input: `site {
  home_page = "index"
}
`,
			expected: `site {
  home_page = "index"
}
`,
		},
		{
			name:     "extra whitespace normalized",
			input:    `site   {   home_page   =   "index"   }`,
			expected: `site { home_page = "index" }`,
		},
		{
			name:     "empty content",
			input:    "",
			expected: "",
		},
		{
			name: "multiple blocks",
			input: `site{home_page="index"}
role_home_page{Blogger="blog"}
theme{accent=shade("#3498db",20)}`,
			expected: `site { home_page = "index" }
role_home_page { Blogger = "blog" }
theme { accent = shade("#3498db", 20) }`,
		},
		{
			name:     "multiple blank lines collapsed to one",
			input:    "site { home_page = \"index\" }\n\n\n\ntheme { accent = \"#3498db\" }",
			expected: "site { home_page = \"index\" }\n\ntheme { accent = \"#3498db\" }",
		},
		{
			name:     "single blank line preserved",
			input:    "site { home_page = \"index\" }\n\ntheme { accent = \"#3498db\" }",
			expected: "site { home_page = \"index\" }\n\ntheme { accent = \"#3498db\" }",
		},
		{
			name:     "blank line after opening brace removed",
			input:    "theme {\n\n  accent = \"#3498db\"\n}",
			expected: "theme {\n  accent = \"#3498db\"\n}",
		},
		{
			name:     "blank line before closing brace removed",
			input:    "theme {\n  accent = \"#3498db\"\n\n}",
			expected: "theme {\n  accent = \"#3498db\"\n}",
		},
		{
			name:     "blank lines after and before braces both removed",
			input:    "theme {\n\n  accent = \"#3498db\"\n\n}",
			expected: "theme {\n  accent = \"#3498db\"\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Normalize line endings for comparison
			result := strings.TrimSuffix(string(Format([]byte(tt.input))), "\n")
			expected := strings.TrimSuffix(tt.expected, "\n")

			if result != expected {
				t.Errorf("Format() = %q, want %q", result, expected)
			}
		})
	}
}

func TestFormatIncompleteHCL(t *testing.T) {
	got := string(Format([]byte(`site { home_page = "index"`)))
	if !strings.Contains(got, "site {") {
		t.Errorf("Format() on incomplete HCL should pass content through, got %q", got)
	}
}
