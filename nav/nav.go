package nav

import (
	"html/template"
	"strings"

	"github.com/ZacxDev/swampdocs/config"
	"github.com/gobuffalo/plush"
	"github.com/pkg/errors"
)

type Group struct {
	Label   string
	Entries []Entry
}

type Entry struct {
	Label   string
	Href    string
	Current bool
}

// Href is the page URL for a content slug.
func Href(slug string) string {
	clean := strings.Trim(slug, "/")
	if clean == "" || clean == "index" {
		return "/"
	}
	return "/" + clean + "/"
}

// Build turns the sidebar into navigation groups, keeping declaration order.
// The entry whose page is currentPath is marked current.
func Build(theme *config.DocsTheme, currentPath string) []Group {
	current := Href(currentPath)

	groups := make([]Group, 0, len(theme.Sidebar))
	for _, g := range theme.Sidebar {
		group := Group{Label: g.Label, Entries: make([]Entry, 0, len(g.Items))}
		for _, item := range g.Items {
			href := Href(item.Slug)
			group.Entries = append(group.Entries, Entry{
				Label:   item.Label,
				Href:    href,
				Current: href == current,
			})
		}
		groups = append(groups, group)
	}
	return groups
}

const sidebarTemplate = `<nav class="sidebar" aria-label="Main">
<%= for (group) in groups { %><details open>
<summary><%= group.Label %></summary>
<ul>
<%= for (entry) in group.Entries { %><li><a href="<%= entry.Href %>"<%= if (entry.Current) { %> aria-current="page"<% } %>><%= entry.Label %></a></li>
<% } %></ul>
</details>
<% } %></nav>`

// Render renders navigation groups as HTML.
func Render(groups []Group) (template.HTML, error) {
	ctx := plush.NewContext()
	ctx.Set("groups", groups)

	out, err := plush.Render(sidebarTemplate, ctx)
	if err != nil {
		return "", errors.Wrap(err, "rendering sidebar")
	}
	return template.HTML(out), nil
}
