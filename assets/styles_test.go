package assets

import (
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundleStyles(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(src, "base.css"), []byte(".imported {\n  margin: 0;\n}\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "custom.css"), []byte("@import \"./base.css\";\n\n:root {\n  --accent: #2e7d32;\n}\n"), 0644))

	hrefs, err := BundleStyles([]string{filepath.Join(src, "custom.css")}, out, "_assets")
	require.NoError(t, err)
	require.Len(t, hrefs, 1)
	assert.Regexp(t, `^/_assets/custom_[A-Za-z0-9_-]+\.css$`, hrefs[0])

	name := path.Base(hrefs[0])
	data, err := os.ReadFile(filepath.Join(out, name))
	require.NoError(t, err)
	assert.Contains(t, string(data), ".imported{margin:0}")
	assert.Contains(t, string(data), "sourceMappingURL="+name+".map")

	_, err = os.Stat(filepath.Join(out, name+".map"))
	assert.NoError(t, err)
}

func TestBundleStyles_MissingEntry(t *testing.T) {
	_, err := BundleStyles([]string{filepath.Join(t.TempDir(), "missing.css")}, t.TempDir(), "_assets")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.css")
}
