// Package webcore collects the small utilities behind the website layer of
// a content management framework: color shading for themes, page-name
// slugification, HTML fragment rewriting, page-cache invalidation and the
// per-user home page resolver.
package webcore

import (
	"github.com/jsvensson/webcore/internal/cache"
	"github.com/jsvensson/webcore/internal/color"
	"github.com/jsvensson/webcore/internal/config"
	"github.com/jsvensson/webcore/internal/htmlutil"
	"github.com/jsvensson/webcore/internal/site"
	"github.com/jsvensson/webcore/internal/slug"
)

// Shade parses a color in hex, rgb() or rgba() form and returns it shifted
// lighter or darker by percent, serialized in the same form it came in.
func Shade(colorText string, percent float64) (string, error) {
	c, err := color.Parse(colorText)
	if err != nil {
		return "", err
	}
	return color.Shade(c, percent).String(), nil
}

// CleanupPageName makes a URL-safe page name from a document title.
func CleanupPageName(title string) string {
	return slug.CleanupPageName(title)
}

// ScrubRelativeURLs prepends a slash to relative URLs in an HTML fragment.
func ScrubRelativeURLs(html string) string {
	return htmlutil.ScrubRelativeURLs(html)
}

// FindFirstImage returns the src of the first <img> tag in an HTML fragment.
func FindFirstImage(html string) (string, bool) {
	return htmlutil.FindFirstImage(html)
}

// LoadSite parses an HCL site configuration file.
func LoadSite(path string) (*config.Site, error) {
	return config.Load(path)
}

// NewResolver wires a loaded site configuration, a role provider and a
// cache store into a home page resolver. Hook data (role home pages) is
// served from the configuration; deployments with app-contributed hooks
// construct site.Resolver directly with their own Hooks implementation.
func NewResolver(cfg *config.Site, roles site.RoleProvider, store cache.Store) *site.Resolver {
	return &site.Resolver{
		Roles:    roles,
		Hooks:    configHooks{cfg},
		Settings: configSettings{cfg},
		Cache: &cache.PageCache{
			Store:    store,
			Disabled: cfg.DisableWebsiteCache,
		},
	}
}

type configHooks struct{ cfg *config.Site }

func (h configHooks) RoleHomePage() map[string]string { return h.cfg.RoleHomePage }
func (h configHooks) HomePage() []string              { return nil }

type configSettings struct{ cfg *config.Site }

func (s configSettings) HomePage() string    { return s.cfg.HomePage }
func (s configSettings) DisableSignup() bool { return s.cfg.DisableSignup }
