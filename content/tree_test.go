package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZacxDev/swampdocs/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePage(t *testing.T, root, rel string) string {
	t.Helper()
	path := filepath.Join(root, DocsDir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), os.ModePerm))
	require.NoError(t, os.WriteFile(path, []byte("# page\n"), 0644))
	return path
}

func TestResolve(t *testing.T) {
	root := t.TempDir()
	example := writePage(t, root, "docs/v1/example.md")
	api := writePage(t, root, "docs/v1/api/index.md")
	index := writePage(t, root, "index.md")

	tree := NewTree(root)

	got, err := tree.Resolve("docs/v1/example")
	require.NoError(t, err)
	assert.Equal(t, example, got)

	got, err = tree.Resolve("/docs/v1/api/")
	require.NoError(t, err)
	assert.Equal(t, api, got)

	got, err = tree.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, index, got)

	_, err = tree.Resolve("docs/v2/missing")
	assert.ErrorIs(t, err, ErrSlugNotFound)

	_, err = tree.Resolve("../secrets")
	assert.ErrorIs(t, err, ErrSlugNotFound)
}

func TestResolve_DotDotSegments(t *testing.T) {
	root := t.TempDir()
	notes := writePage(t, root, "docs/v1..2/notes.md")
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "content", "secrets.md"), []byte("# secret\n"), 0644))

	tree := NewTree(root)

	got, err := tree.Resolve("docs/v1..2/notes")
	require.NoError(t, err)
	assert.Equal(t, notes, got)

	for _, slug := range []string{"../secrets", "docs/../../secrets", "docs/v1/.."} {
		_, err := tree.Resolve(slug)
		assert.ErrorIs(t, err, ErrSlugNotFound, slug)
	}
}

func TestCheckSidebar(t *testing.T) {
	root := t.TempDir()
	writePage(t, root, "docs/v1/example.md")

	theme := &config.DocsTheme{
		Sidebar: []config.SidebarGroup{{
			Label: "Guides",
			Items: []config.SidebarItem{
				{Label: "Example Guide", Slug: "docs/v1/example"},
				{Label: "API", Slug: "docs/v1/api"},
			},
		}},
	}

	assert.Equal(t, []string{"docs/v1/api"}, NewTree(root).CheckSidebar(theme))
}
