// Package slug derives URL-safe page names from document titles.
package slug

import (
	"regexp"
	"strings"
)

var (
	punctuation     = regexp.MustCompile(`[~!@#$%^&*+()<>,."'?]`)
	pathSeparators  = regexp.MustCompile(`[:/]`)
	repeatedHyphens = regexp.MustCompile(`-{2,}`)
)

// CleanupPageName makes a page name from a title: lowercased, punctuation
// stripped, colons and slashes turned into hyphens, whitespace runs joined
// with single hyphens, and repeated hyphens collapsed.
func CleanupPageName(title string) string {
	name := strings.ToLower(title)
	name = punctuation.ReplaceAllString(name, "")
	name = pathSeparators.ReplaceAllString(name, "-")
	name = strings.Join(strings.Fields(name), "-")
	return repeatedHyphens.ReplaceAllString(name, "-")
}
