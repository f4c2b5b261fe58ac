// Package config loads the site configuration from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/webcore/internal/color"
	"github.com/zclconf/go-cty/cty"
)

// Site is the fully-resolved site configuration.
type Site struct {
	HomePage            string
	DisableSignup       bool
	DisableWebsiteCache bool
	RoleHomePage        map[string]string
	Theme               map[string]string
}

// Load parses an HCL site configuration file.
//
// The file has three optional blocks: site (settings attributes),
// role_home_page (role name to page path) and theme (named colors, which
// may use the shade() function).
func Load(path string) (*Site, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading site config: %w", err)
	}

	file, diags := hclsyntax.ParseConfig(src, path, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	body := file.Body.(*hclsyntax.Body)

	site := &Site{
		RoleHomePage: make(map[string]string),
		Theme:        make(map[string]string),
	}

	if err := parseSite(body, site); err != nil {
		return nil, err
	}
	if err := parseRoleHomePage(body, site); err != nil {
		return nil, err
	}
	if err := parseTheme(body, site); err != nil {
		return nil, err
	}

	return site, nil
}

func parseSite(body *hclsyntax.Body, site *Site) error {
	for _, block := range body.Blocks {
		if block.Type != "site" {
			continue
		}
		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return fmt.Errorf("parsing site: %s", diags.Error())
		}
		for name, attr := range attrs {
			val, diags := attr.Expr.Value(nil)
			if diags.HasErrors() {
				return fmt.Errorf("evaluating site.%s: %s", name, diags.Error())
			}
			switch name {
			case "home_page":
				if val.Type() != cty.String {
					return fmt.Errorf("site.home_page must be a string")
				}
				site.HomePage = val.AsString()
			case "disable_signup":
				if val.Type() != cty.Bool {
					return fmt.Errorf("site.disable_signup must be a bool")
				}
				site.DisableSignup = val.True()
			case "disable_website_cache":
				if val.Type() != cty.Bool {
					return fmt.Errorf("site.disable_website_cache must be a bool")
				}
				site.DisableWebsiteCache = val.True()
			default:
				return fmt.Errorf("unknown site attribute %q", name)
			}
		}
		return nil
	}
	return nil
}

func parseRoleHomePage(body *hclsyntax.Body, site *Site) error {
	for _, block := range body.Blocks {
		if block.Type != "role_home_page" {
			continue
		}
		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return fmt.Errorf("parsing role_home_page: %s", diags.Error())
		}
		for name, attr := range attrs {
			val, diags := attr.Expr.Value(nil)
			if diags.HasErrors() {
				return fmt.Errorf("evaluating role_home_page.%s: %s", name, diags.Error())
			}
			if val.Type() != cty.String {
				return fmt.Errorf("role_home_page.%s must be a string", name)
			}
			site.RoleHomePage[name] = val.AsString()
		}
		return nil
	}
	return nil
}

func parseTheme(body *hclsyntax.Body, site *Site) error {
	ctx := BuildEvalContext()

	for _, block := range body.Blocks {
		if block.Type != "theme" {
			continue
		}
		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return fmt.Errorf("parsing theme: %s", diags.Error())
		}
		for name, attr := range attrs {
			val, diags := attr.Expr.Value(ctx)
			if diags.HasErrors() {
				return fmt.Errorf("evaluating theme.%s: %s", name, diags.Error())
			}
			if val.Type() != cty.String {
				return fmt.Errorf("theme.%s must be a string", name)
			}
			c, err := color.Parse(val.AsString())
			if err != nil {
				return fmt.Errorf("theme.%s: %w", name, err)
			}
			site.Theme[name] = c.String()
		}
		return nil
	}
	return nil
}
