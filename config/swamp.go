package config

import "encoding/json"

// Swamp returns the descriptor of the Linwood Swamp documentation site.
func Swamp(manifest json.RawMessage) *Descriptor {
	return &Descriptor{
		Site: "https://swamp.linwood.dev",
		Markdown: Markdown{
			RemarkPlugins: []string{"remark-heading-id", "remark-gemoji"},
		},
		Integrations: []Integration{
			{
				Name: IntegrationStarlight,
				Starlight: &DocsTheme{
					Title:     "Linwood Swamp",
					CustomCSS: []string{"./src/styles/custom.css"},
					Logo:      Logo{Src: "./public/favicon.svg"},
					Favicon:   "./favicon.ico",
					Social: Mapping{
						{Key: "mastodon", Value: "https://floss.social/@linwood"},
						{Key: "matrix", Value: "https://linwood.dev/matrix"},
						{Key: "discord", Value: "https://linwood.dev/discord"},
						{Key: "github", Value: "https://github.com/LinwoodDev/Swamp"},
					},
					Components: Mapping{
						{Key: "SocialIcons", Value: "./src/components/CustomSocialIcons.plush.html"},
						{Key: "Head", Value: "./src/components/Head.plush.html"},
						{Key: "Footer", Value: "./src/components/Footer.plush.html"},
						{Key: "ContentPanel", Value: "./src/components/ContentPanel.plush.html"},
					},
					Sidebar: []SidebarGroup{
						{
							Label: "Guides",
							Items: []SidebarItem{
								{Label: "Example Guide", Slug: "docs/v1/example"},
								{Label: "API", Slug: "docs/v1/api"},
							},
						},
					},
				},
			},
			{
				Name: IntegrationPWA,
				PWA: &OfflineCache{
					Workbox: Workbox{
						SkipWaiting:                 true,
						ClientsClaim:                true,
						NavigateFallback:            "/404",
						IgnoreURLParametersMatching: []string{"."},
						GlobPatterns: []string{
							"**/*.{html,js,css,png,svg,json,ttf,pf_fragment,pf_index,pf_meta,pagefind,wasm}",
						},
					},
					Experimental: Experimental{DirectoryAndTrailingSlashHandler: true},
					RegisterType: "autoUpdate",
					ManifestPath: "./webmanifest.json",
					Manifest:     manifest,
				},
			},
			{Name: IntegrationReact},
		},
	}
}
