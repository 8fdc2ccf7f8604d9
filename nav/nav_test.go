package nav

import (
	"regexp"
	"strings"
	"testing"

	"github.com/ZacxDev/swampdocs/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guides() *config.Descriptor {
	return &config.Descriptor{
		Site: "https://example.test",
		Integrations: []config.Integration{{
			Name: config.IntegrationStarlight,
			Starlight: &config.DocsTheme{
				Title: "Example",
				Sidebar: []config.SidebarGroup{{
					Label: "Guides",
					Items: []config.SidebarItem{
						{Label: "Example Guide", Slug: "docs/v1/example"},
						{Label: "API", Slug: "docs/v1/api"},
					},
				}},
			},
		}},
	}
}

func TestHref(t *testing.T) {
	assert.Equal(t, "/docs/v1/api/", Href("docs/v1/api"))
	assert.Equal(t, "/docs/v1/api/", Href("/docs/v1/api/"))
	assert.Equal(t, "/", Href(""))
	assert.Equal(t, "/", Href("index"))
}

func TestBuild(t *testing.T) {
	theme, ok := guides().DocsTheme()
	require.True(t, ok)

	groups := Build(theme, "/docs/v1/api/")
	assert.Equal(t, []Group{{
		Label: "Guides",
		Entries: []Entry{
			{Label: "Example Guide", Href: "/docs/v1/example/"},
			{Label: "API", Href: "/docs/v1/api/", Current: true},
		},
	}}, groups)
}

func TestRender_ListsSidebarInOrder(t *testing.T) {
	d := guides()
	require.NoError(t, d.Validate())

	theme, _ := d.DocsTheme()
	html, err := Render(Build(theme, "docs/v1/example"))
	require.NoError(t, err)

	out := string(html)
	assert.Equal(t, 1, strings.Count(out, "<summary>"))
	assert.Contains(t, out, "<summary>Guides</summary>")

	links := regexp.MustCompile(`<a href="([^"]+)"[^>]*>([^<]+)</a>`).FindAllStringSubmatch(out, -1)
	require.Len(t, links, 2)
	assert.Equal(t, "/docs/v1/example/", links[0][1])
	assert.Equal(t, "Example Guide", links[0][2])
	assert.Equal(t, "/docs/v1/api/", links[1][1])
	assert.Equal(t, "API", links[1][2])

	assert.Equal(t, 1, strings.Count(out, `aria-current="page"`))
	assert.Contains(t, out, `<a href="/docs/v1/example/" aria-current="page">`)
}

func TestRender_EscapesLabels(t *testing.T) {
	html, err := Render([]Group{{
		Label:   "Q&A",
		Entries: []Entry{{Label: "<script>", Href: "/qa/"}},
	}})
	require.NoError(t, err)
	assert.NotContains(t, string(html), "<script>")
}
