package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// OverrideSlots are the theme components a descriptor may replace.
var OverrideSlots = []string{
	"Banner",
	"ContentPanel",
	"EditLink",
	"Footer",
	"Head",
	"Header",
	"Hero",
	"LastUpdated",
	"MarkdownContent",
	"PageFrame",
	"PageTitle",
	"Pagination",
	"Search",
	"Sidebar",
	"SiteTitle",
	"SocialIcons",
	"TableOfContents",
	"ThemeSelect",
}

var registerTypes = map[string]bool{
	"autoUpdate": true,
	"prompt":     true,
}

// ValidationError lists every problem found in a descriptor.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid descriptor: " + strings.Join(e.Problems, "; ")
}

type problems []string

func (p *problems) addf(format string, args ...interface{}) {
	*p = append(*p, fmt.Sprintf(format, args...))
}

// Validate checks the descriptor against the shape the build expects.
func (d *Descriptor) Validate() error {
	var p problems

	if !isAbsoluteURL(d.Site) {
		p.addf("site %q is not an absolute http(s) URL", d.Site)
	}

	for i, name := range d.Markdown.RemarkPlugins {
		if strings.TrimSpace(name) == "" {
			p.addf("markdown.remark_plugins[%d] is empty", i)
		}
	}

	seen := make(map[string]bool)
	for i, in := range d.Integrations {
		prefix := fmt.Sprintf("integrations[%d]", i)
		if seen[in.Name] {
			p.addf("%s: integration %q declared more than once", prefix, in.Name)
		}
		seen[in.Name] = true

		switch in.Name {
		case IntegrationStarlight:
			if in.PWA != nil {
				p.addf("%s: starlight carries a pwa payload", prefix)
			}
			if in.Starlight == nil {
				p.addf("%s: starlight has no config", prefix)
				continue
			}
			validateTheme(&p, prefix, in.Starlight)
		case IntegrationPWA:
			if in.Starlight != nil {
				p.addf("%s: pwa carries a starlight payload", prefix)
			}
			if in.PWA == nil {
				p.addf("%s: pwa has no config", prefix)
				continue
			}
			validateCache(&p, prefix, in.PWA)
		case IntegrationReact:
			if in.Starlight != nil || in.PWA != nil {
				p.addf("%s: react takes no config", prefix)
			}
		default:
			p.addf("%s: %v %q", prefix, ErrUnknownIntegration, in.Name)
		}
	}

	if len(p) > 0 {
		return &ValidationError{Problems: p}
	}
	return nil
}

func validateTheme(p *problems, prefix string, t *DocsTheme) {
	if strings.TrimSpace(t.Title) == "" {
		p.addf("%s: title is empty", prefix)
	}

	for i, css := range t.CustomCSS {
		if css == "" {
			p.addf("%s: custom_css[%d] is empty", prefix, i)
		} else if filepath.IsAbs(css) {
			p.addf("%s: custom_css[%d] %q is not relative", prefix, i, css)
		}
	}

	for _, dup := range t.Social.duplicates() {
		p.addf("%s: social: %v %q", prefix, ErrDuplicateKey, dup)
	}
	for _, link := range t.Social {
		if link.Key == "" {
			p.addf("%s: social link with empty platform", prefix)
		}
		if !isAbsoluteURL(link.Value) {
			p.addf("%s: social link %q has invalid URL %q", prefix, link.Key, link.Value)
		}
	}

	for _, dup := range t.Components.duplicates() {
		p.addf("%s: components: %v %q", prefix, ErrDuplicateKey, dup)
	}
	for _, c := range t.Components {
		if !isOverrideSlot(c.Key) {
			p.addf("%s: unknown component slot %q", prefix, c.Key)
		}
		if c.Value == "" {
			p.addf("%s: component %q has no file", prefix, c.Key)
		}
	}

	if len(t.Sidebar) == 0 {
		p.addf("%s: sidebar has no groups", prefix)
	}
	for i, g := range t.Sidebar {
		if strings.TrimSpace(g.Label) == "" {
			p.addf("%s: sidebar[%d] has no label", prefix, i)
		}
		for j, item := range g.Items {
			if strings.TrimSpace(item.Label) == "" {
				p.addf("%s: sidebar[%d].items[%d] has no label", prefix, i, j)
			}
			if strings.Trim(item.Slug, "/ ") == "" {
				p.addf("%s: sidebar[%d].items[%d] has no slug", prefix, i, j)
			}
		}
	}
}

func validateCache(p *problems, prefix string, c *OfflineCache) {
	if len(c.Workbox.GlobPatterns) == 0 {
		p.addf("%s: workbox.glob_patterns is empty", prefix)
	}
	for i, pattern := range c.Workbox.GlobPatterns {
		if pattern == "" || !doublestar.ValidatePattern(pattern) {
			p.addf("%s: workbox.glob_patterns[%d] %q is not a valid glob", prefix, i, pattern)
		}
	}

	for i, expr := range c.Workbox.IgnoreURLParametersMatching {
		if _, err := regexp.Compile(expr); err != nil {
			p.addf("%s: workbox.ignore_url_parameters_matching[%d]: %v", prefix, i, err)
		}
	}

	if fb := c.Workbox.NavigateFallback; fb != "" && !strings.HasPrefix(fb, "/") {
		p.addf("%s: workbox.navigate_fallback %q must start with /", prefix, fb)
	}

	if !registerTypes[c.RegisterType] {
		p.addf("%s: register_type %q is not autoUpdate or prompt", prefix, c.RegisterType)
	}

	if len(c.Manifest) == 0 {
		p.addf("%s: manifest is not loaded", prefix)
	}
}

func isOverrideSlot(name string) bool {
	for _, slot := range OverrideSlots {
		if slot == name {
			return true
		}
	}
	return false
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
