package config

// config/yaml.go

import "encoding/json"

const (
	IntegrationStarlight = "starlight"
	IntegrationPWA       = "pwa"
	IntegrationReact     = "react"
)

// Descriptor is the declarative description of a documentation site. It is
// declared once and read by the build; use Clone before handing it to code
// that may change it.
type Descriptor struct {
	Site         string        `yaml:"site" json:"site"`
	Markdown     Markdown      `yaml:"markdown" json:"markdown"`
	Integrations []Integration `yaml:"integrations" json:"integrations"`

	// Dir is the directory the descriptor was loaded from.
	Dir string `yaml:"-" json:"-"`
}

type Markdown struct {
	RemarkPlugins []string `yaml:"remark_plugins" json:"remarkPlugins"`
}

// Integration is one named build-time extension. Only the payload matching
// Name is set; react carries none.
type Integration struct {
	Name      string        `yaml:"name"`
	Starlight *DocsTheme    `yaml:"starlight,omitempty"`
	PWA       *OfflineCache `yaml:"pwa,omitempty"`
}

type DocsTheme struct {
	Title      string         `yaml:"title" json:"title"`
	CustomCSS  []string       `yaml:"custom_css" json:"customCss"`
	Logo       Logo           `yaml:"logo" json:"logo"`
	Favicon    string         `yaml:"favicon" json:"favicon,omitempty"`
	Social     Mapping        `yaml:"social" json:"social"`
	Components Mapping        `yaml:"components" json:"components"`
	Sidebar    []SidebarGroup `yaml:"sidebar" json:"sidebar"`
}

type Logo struct {
	Src string `yaml:"src" json:"src,omitempty"`
}

type SidebarGroup struct {
	Label string        `yaml:"label" json:"label"`
	Items []SidebarItem `yaml:"items" json:"items"`
}

type SidebarItem struct {
	Label string `yaml:"label" json:"label"`
	Slug  string `yaml:"slug" json:"slug"`
}

type OfflineCache struct {
	Workbox      Workbox      `yaml:"workbox" json:"workbox"`
	Experimental Experimental `yaml:"experimental" json:"experimental"`
	RegisterType string       `yaml:"register_type" json:"registerType"`

	// ManifestPath is the web-app manifest file, relative to the descriptor.
	ManifestPath string `yaml:"manifest" json:"-"`
	// Manifest is the loaded manifest, passed through as is.
	Manifest json.RawMessage `yaml:"-" json:"manifest,omitempty"`
}

type Workbox struct {
	SkipWaiting                 bool     `yaml:"skip_waiting" json:"skipWaiting"`
	ClientsClaim                bool     `yaml:"clients_claim" json:"clientsClaim"`
	NavigateFallback            string   `yaml:"navigate_fallback" json:"navigateFallback,omitempty"`
	IgnoreURLParametersMatching []string `yaml:"ignore_url_parameters_matching" json:"ignoreURLParametersMatching,omitempty"`
	GlobPatterns                []string `yaml:"glob_patterns" json:"globPatterns"`
}

type Experimental struct {
	DirectoryAndTrailingSlashHandler bool `yaml:"directory_and_trailing_slash_handler" json:"directoryAndTrailingSlashHandler"`
}

// DocsTheme returns the starlight integration's config.
func (d *Descriptor) DocsTheme() (*DocsTheme, bool) {
	for _, in := range d.Integrations {
		if in.Name == IntegrationStarlight && in.Starlight != nil {
			return in.Starlight, true
		}
	}
	return nil, false
}

// OfflineCache returns the pwa integration's config.
func (d *Descriptor) OfflineCache() (*OfflineCache, bool) {
	for _, in := range d.Integrations {
		if in.Name == IntegrationPWA && in.PWA != nil {
			return in.PWA, true
		}
	}
	return nil, false
}

func (d *Descriptor) HasIntegration(name string) bool {
	for _, in := range d.Integrations {
		if in.Name == name {
			return true
		}
	}
	return false
}
