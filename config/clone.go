package config

import "encoding/json"

// Clone returns a deep copy of the descriptor.
func (d *Descriptor) Clone() *Descriptor {
	out := &Descriptor{
		Site: d.Site,
		Dir:  d.Dir,
		Markdown: Markdown{
			RemarkPlugins: cloneStrings(d.Markdown.RemarkPlugins),
		},
	}

	if d.Integrations != nil {
		out.Integrations = make([]Integration, len(d.Integrations))
	}
	for i, in := range d.Integrations {
		out.Integrations[i] = Integration{
			Name:      in.Name,
			Starlight: in.Starlight.clone(),
			PWA:       in.PWA.clone(),
		}
	}

	return out
}

func (t *DocsTheme) clone() *DocsTheme {
	if t == nil {
		return nil
	}

	out := *t
	out.CustomCSS = cloneStrings(t.CustomCSS)
	out.Social = t.Social.clone()
	out.Components = t.Components.clone()

	if t.Sidebar != nil {
		out.Sidebar = make([]SidebarGroup, len(t.Sidebar))
	}
	for i, g := range t.Sidebar {
		out.Sidebar[i] = SidebarGroup{
			Label: g.Label,
			Items: append([]SidebarItem(nil), g.Items...),
		}
	}

	return &out
}

func (c *OfflineCache) clone() *OfflineCache {
	if c == nil {
		return nil
	}

	out := *c
	out.Workbox.IgnoreURLParametersMatching = cloneStrings(c.Workbox.IgnoreURLParametersMatching)
	out.Workbox.GlobPatterns = cloneStrings(c.Workbox.GlobPatterns)
	out.Manifest = append(json.RawMessage(nil), c.Manifest...)
	return &out
}

func (m Mapping) clone() Mapping {
	if m == nil {
		return nil
	}
	return append(Mapping{}, m...)
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string{}, in...)
}
