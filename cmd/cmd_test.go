package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZacxDev/swampdocs/config"
	"github.com/ZacxDev/swampdocs/handlers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var docsConfig = filepath.Join("..", "docs", "site.yaml")

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.OriginEnv, "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestBuild(t *testing.T) {
	t.Setenv(config.OriginEnv, "")
	d, err := config.Load(docsConfig)
	require.NoError(t, err)

	site, err := handlers.NewSite(d)
	require.NoError(t, err)

	out := t.TempDir()
	result, err := Build(site, out)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"/", "/docs/v1/example/", "/docs/v1/api/", "/404/"}, result.Pages)

	for _, f := range []string{
		"index.html",
		"docs/v1/example/index.html",
		"docs/v1/api/index.html",
		"404/index.html",
		"404.html",
		"favicon.svg",
		"manifest.webmanifest",
		"sitemap.xml",
	} {
		_, err := os.Stat(filepath.Join(out, filepath.FromSlash(f)))
		assert.NoError(t, err, f)
	}

	page, err := os.ReadFile(filepath.Join(out, "docs", "v1", "example", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "Example Guide")
	require.Len(t, site.Styles, 1)
	assert.Contains(t, string(page), site.Styles[0])

	require.NotNil(t, result.Coverage)
	assert.Contains(t, result.Coverage.Matched, "docs/v1/api/index.html")
	assert.Contains(t, result.Coverage.Matched, "favicon.svg")
	assert.Contains(t, result.Coverage.Unmatched, "sitemap.xml")
	assert.Contains(t, result.Coverage.Unmatched, "manifest.webmanifest")
}

func TestExportCommand(t *testing.T) {
	out, err := run(t, "export", "--config", docsConfig)
	require.NoError(t, err)

	var engine config.EngineConfig
	require.NoError(t, json.Unmarshal([]byte(out), &engine))
	assert.Equal(t, "https://swamp.linwood.dev", engine.Site)
	require.Len(t, engine.Integrations, 3)
	assert.Equal(t, "@astrojs/starlight", engine.Integrations[0].Name)
}

func TestCheckCommand(t *testing.T) {
	out, err := run(t, "check", "--config", docsConfig, "--dist", "")
	require.NoError(t, err)
	assert.Contains(t, out, "https://swamp.linwood.dev: 3 integrations, 1 sidebar groups, 2 entries")
	assert.Contains(t, out, "remark-heading-id")
}

func TestCheckCommand_Coverage(t *testing.T) {
	dist := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dist, "index.html"), []byte("<html></html>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dist, "robots.txt"), []byte("User-agent: *"), 0644))

	out, err := run(t, "check", "--config", docsConfig, "--dist", dist)
	require.NoError(t, err)
	assert.Contains(t, out, "1 files cached, 1 not cached")
	assert.Contains(t, out, "not cached: robots.txt")
}

func TestCheckCommand_InvalidDescriptor(t *testing.T) {
	_, err := run(t, "check", "--config", filepath.Join("..", "config", "testdata", "unknown_field.yaml"), "--dist", "")
	require.Error(t, err)
}
