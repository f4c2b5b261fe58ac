// Package site resolves per-user website behavior: the landing page, signup
// availability, and document comments. The role system, settings store and
// database are external services injected as interfaces.
package site

import (
	"sync"

	"github.com/jsvensson/webcore/internal/cache"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("webcore.site")

// RoleProvider reports the roles held by a user, in priority order.
type RoleProvider interface {
	Roles(user string) []string
}

// Hooks exposes the app-contributed website hooks. Multiple installed apps
// may each contribute a home page; the first one wins.
type Hooks interface {
	RoleHomePage() map[string]string
	HomePage() []string
}

// Settings exposes the site-wide website settings document.
type Settings interface {
	HomePage() string
	DisableSignup() bool
}

// Resolver answers per-user site questions. Results that depend only on
// the user are cached per user; the zero Resolver is not usable.
type Resolver struct {
	Roles    RoleProvider
	Hooks    Hooks
	Settings Settings
	Cache    *cache.PageCache

	signupOnce    sync.Once
	signupEnabled bool
}

// HomePage returns the landing page for user. The first of the user's roles
// with a configured role home page wins; then the first hook-contributed
// home page; then the settings home page; then "login". The result is
// cached under a per-user key.
func (r *Resolver) HomePage(user string) string {
	return r.Cache.Value(cache.HomePageKey(user), func() string {
		page := r.resolveHomePage(user)
		log.Debugf("resolved home page %q for user %q", page, user)
		return page
	})
}

func (r *Resolver) resolveHomePage(user string) string {
	roleHome := r.Hooks.RoleHomePage()
	for _, role := range r.Roles.Roles(user) {
		if page, ok := roleHome[role]; ok {
			return page
		}
	}

	if pages := r.Hooks.HomePage(); len(pages) > 0 {
		return pages[0]
	}

	if page := r.Settings.HomePage(); page != "" {
		return page
	}

	return "login"
}

// SignupEnabled reports whether new accounts may be created. The settings
// lookup runs once; the answer is memoized for the resolver's lifetime.
func (r *Resolver) SignupEnabled() bool {
	r.signupOnce.Do(func() {
		r.signupEnabled = !r.Settings.DisableSignup()
	})
	return r.signupEnabled
}
