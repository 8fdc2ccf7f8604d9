package handlers

import (
	"path/filepath"
	"strings"

	"github.com/ZacxDev/swampdocs/assets"
	"github.com/ZacxDev/swampdocs/config"
	"github.com/ZacxDev/swampdocs/content"
	"github.com/ZacxDev/swampdocs/markdown"
	"github.com/ZacxDev/swampdocs/nav"
	"github.com/pkg/errors"
)

// AssetsPrefix is the URL path bundled stylesheets are served under.
const AssetsPrefix = "_assets"

var ErrMissingContent = errors.New("sidebar entries without content")

// Site is everything the renderer needs from a descriptor.
type Site struct {
	Descriptor *config.Descriptor
	Theme      *config.DocsTheme
	Cache      *config.OfflineCache
	Content    *content.Tree
	Pipeline   *markdown.Pipeline

	// Styles are stylesheet URLs, set by BundleStyles.
	Styles []string
	// AssetsDir holds the bundled stylesheets.
	AssetsDir string
}

// NewSite prepares a descriptor for rendering. The descriptor is copied so
// later changes by the caller do not leak into the site.
func NewSite(d *config.Descriptor) (*Site, error) {
	d = d.Clone()

	theme, ok := d.DocsTheme()
	if !ok {
		return nil, errors.Errorf("descriptor has no %s integration", config.IntegrationStarlight)
	}

	pipeline, err := markdown.DefaultRegistry().Pipeline(d.Markdown.RemarkPlugins)
	if err != nil {
		return nil, err
	}

	site := &Site{
		Descriptor: d,
		Theme:      theme,
		Content:    content.NewTree(d.Dir),
		Pipeline:   pipeline,
	}
	if cache, ok := d.OfflineCache(); ok {
		site.Cache = cache
	}

	if missing := site.Content.CheckSidebar(theme); len(missing) > 0 {
		return nil, errors.Wrapf(ErrMissingContent, "%s", strings.Join(missing, ", "))
	}

	return site, nil
}

// BundleStyles bundles the theme's custom stylesheets into dir.
func (s *Site) BundleStyles(dir string) error {
	entries := make([]string, 0, len(s.Theme.CustomCSS))
	for _, css := range s.Theme.CustomCSS {
		entries = append(entries, s.Descriptor.Resolve(css))
	}

	styles, err := assets.BundleStyles(entries, dir, AssetsPrefix)
	if err != nil {
		return err
	}

	s.Styles = styles
	s.AssetsDir = dir
	return nil
}

// PublicDir holds files served as is from the site root.
func (s *Site) PublicDir() string {
	return s.Descriptor.Resolve("public")
}

// Page is a routable content page.
type Page struct {
	Path string
	Slug string
}

// Pages lists the index page when present, then every sidebar page in
// declaration order.
func (s *Site) Pages() []Page {
	var pages []Page
	seen := make(map[string]bool)

	add := func(slug string) {
		href := nav.Href(slug)
		if seen[href] {
			return
		}
		seen[href] = true
		pages = append(pages, Page{Path: href, Slug: slug})
	}

	if _, err := s.Content.Resolve("index"); err == nil {
		add("index")
	}
	for _, g := range s.Theme.Sidebar {
		for _, item := range g.Items {
			add(item.Slug)
		}
	}

	return pages
}

// FallbackSlug is the content slug behind the navigate fallback, if any.
func (s *Site) FallbackSlug() (string, bool) {
	if s.Cache == nil || s.Cache.Workbox.NavigateFallback == "" {
		return "", false
	}
	slug := strings.Trim(s.Cache.Workbox.NavigateFallback, "/")
	if _, err := s.Content.Resolve(slug); err != nil {
		return "", false
	}
	return slug, true
}

// publicURL maps a project-relative asset path to the URL it is served at.
func publicURL(p string) string {
	if p == "" {
		return ""
	}
	if strings.Contains(p, "://") {
		return p
	}
	clean := strings.TrimPrefix(filepath.ToSlash(filepath.Clean(p)), "/")
	clean = strings.TrimPrefix(clean, "public/")
	return "/" + clean
}
