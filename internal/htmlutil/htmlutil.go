// Package htmlutil rewrites and inspects rendered HTML fragments.
package htmlutil

import (
	"regexp"
	"strings"
)

var (
	attrURL  = regexp.MustCompile(`(src|href)[^\w'"]*['"]([^'" >]+)['"]`)
	cssURL   = regexp.MustCompile(`url\(([^()]+)\)`)
	firstImg = regexp.MustCompile(`<img[^>]*src\s?=\s?['"]([^'"]*)['"]`)
)

// Prefixes marking a URL that must not be rewritten: already absolute,
// non-HTTP schemes, fragments, and template placeholders. CSS url()
// references recognize a smaller set: mailto never appears there.
var (
	attrPrefixes = []string{"http", "ftp", "mailto", "/", "#", "%", "{"}
	cssPrefixes  = []string{"http", "ftp", "/", "#", "%", "{"}
)

func isRelative(url string, absolute []string) bool {
	for _, p := range absolute {
		if strings.HasPrefix(url, p) {
			return false
		}
	}
	return true
}

// ScrubRelativeURLs prepends a slash to relative URLs in src and href
// attributes and in CSS url() references, so fragments rendered for a page
// deep in the site tree resolve against the site root.
func ScrubRelativeURLs(html string) string {
	html = attrURL.ReplaceAllStringFunc(html, func(m string) string {
		groups := attrURL.FindStringSubmatch(m)
		if !isRelative(groups[2], attrPrefixes) {
			return m
		}
		return groups[1] + ` = "/` + groups[2] + `"`
	})

	return cssURL.ReplaceAllStringFunc(html, func(m string) string {
		groups := cssURL.FindStringSubmatch(m)
		if !isRelative(groups[1], cssPrefixes) {
			return m
		}
		return "url(/" + groups[1] + ")"
	})
}

// FindFirstImage returns the src of the first <img> tag in the fragment.
// The second return is false when the fragment has no image.
func FindFirstImage(html string) (string, bool) {
	m := firstImg.FindStringSubmatch(html)
	if m == nil {
		return "", false
	}
	return m[1], true
}
