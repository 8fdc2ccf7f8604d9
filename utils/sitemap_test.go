package utils

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSitemapContent(t *testing.T) {
	out, err := GenerateSitemapContent("https://example.test/", []string{"/", "/docs/v1/example/", "docs/v1/api/"})
	require.NoError(t, err)

	var sitemap Sitemap
	require.NoError(t, xml.Unmarshal([]byte(out), &sitemap))

	var locs []string
	for _, u := range sitemap.Urls {
		locs = append(locs, u.Loc)
		assert.NotEmpty(t, u.LastMod)
	}
	assert.Equal(t, []string{
		"https://example.test/",
		"https://example.test/docs/v1/example/",
		"https://example.test/docs/v1/api/",
	}, locs)
}

func TestGenerateSitemaps(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, GenerateSitemaps(dir, "https://example.test", []string{"/"}))

	data, err := os.ReadFile(filepath.Join(dir, "sitemap.xml"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), xml.Header))
	assert.Contains(t, string(data), "<loc>https://example.test/</loc>")
}
