// Package format normalizes site configuration files.
package format

import (
	"regexp"

	"github.com/hashicorp/hcl/v2/hclwrite"
)

type cleanup struct {
	pattern *regexp.Regexp
	replace string
}

// Applied after canonical HCL formatting: runs of blank lines collapse to
// one, and blank lines hugging a brace disappear. hclwrite leaves both
// alone, and neither carries meaning in the site config grammar.
var cleanups = []cleanup{
	{regexp.MustCompile(`\n{3,}`), "\n\n"},
	{regexp.MustCompile(`\{\n\s*\n`), "{\n"},
	{regexp.MustCompile(`\n\s*\n(\s*\})`), "\n${1}"},
}

// Format returns the site config source in HCL canonical style with stray
// blank lines removed. Partial or invalid HCL is tolerated, so formatting
// is safe to run on a file mid-edit.
func Format(src []byte) []byte {
	out := hclwrite.Format(src)
	for _, c := range cleanups {
		out = c.pattern.ReplaceAll(out, []byte(c.replace))
	}
	return out
}
