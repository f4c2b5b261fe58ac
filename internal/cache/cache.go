// Package cache holds the page-cache key scheme and invalidation logic.
// The backing store is an injected capability; this package never owns one.
package cache

import "github.com/tliron/commonlog"

var log = commonlog.GetLogger("webcore.cache")

// Store is the opaque key/value service backing the page cache. A real
// deployment wires Redis or similar behind this.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
	DeletePrefix(prefix string)
}

// Cache keys live in one place so the scheme does not spread through the code.

func PageKey(path string) string           { return "page:" + path }
func PageContextKey(path string) string    { return "page_context:" + path }
func SitemapOptionsKey(path string) string { return "sitemap_options:" + path }
func HomePageKey(user string) string       { return "home_page:" + user }

// PageCache invalidates and reads cached rendered pages. Disabled reflects
// the site-wide disable_website_cache setting.
type PageCache struct {
	Store    Store
	Disabled bool
}

// DeletePage removes every cached artifact for the rendered page at path:
// the page body, its template context, and its sitemap options. An empty
// path clears all pages.
func (p *PageCache) DeletePage(path string) {
	log.Debugf("invalidating page cache for %q", path)
	p.Store.DeletePrefix(PageKey(path))
	p.Store.DeletePrefix(PageContextKey(path))
	p.Store.DeletePrefix(SitemapOptionsKey(path))
}

// Value returns the cached value for key, calling compute and caching the
// result on a miss. When the cache is disabled compute runs every time.
func (p *PageCache) Value(key string, compute func() string) string {
	if !p.Disabled {
		if v, ok := p.Store.Get(key); ok {
			return v
		}
	}
	v := compute()
	if !p.Disabled {
		p.Store.Set(key, v)
	}
	return v
}

// CanCache reports whether the current render may be served from cache.
// noCache is the request-scoped opt-out (e.g. a no_cache page directive).
func (p *PageCache) CanCache(noCache bool) bool {
	return !(p.Disabled || noCache)
}
