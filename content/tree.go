package content

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZacxDev/swampdocs/config"
	"github.com/pkg/errors"
)

var ErrSlugNotFound = errors.New("no content for slug")

// DocsDir is where pages live, relative to the project root.
var DocsDir = filepath.Join("src", "content", "docs")

var extensions = []string{".md", ".markdown"}

// Tree resolves content slugs to markdown files.
type Tree struct {
	root string
}

func NewTree(projectRoot string) *Tree {
	return &Tree{root: filepath.Join(projectRoot, DocsDir)}
}

func (t *Tree) Root() string {
	return t.root
}

// Resolve finds <slug>.md, or <slug>/index.md for directory slugs.
func (t *Tree) Resolve(slug string) (string, error) {
	clean := strings.Trim(filepath.ToSlash(slug), "/")
	if clean == "" {
		clean = "index"
	}
	for _, segment := range strings.Split(clean, "/") {
		if segment == ".." {
			return "", errors.Wrapf(ErrSlugNotFound, "%q", slug)
		}
	}

	base := filepath.Join(t.root, filepath.FromSlash(clean))
	candidates := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		candidates = append(candidates, base+ext)
	}
	for _, ext := range extensions {
		candidates = append(candidates, filepath.Join(base, "index"+ext))
	}

	for _, c := range candidates {
		info, err := os.Stat(c)
		if err == nil && !info.IsDir() {
			return c, nil
		}
	}

	return "", errors.Wrapf(ErrSlugNotFound, "%q", slug)
}

// CheckSidebar returns every sidebar slug with no page behind it.
func (t *Tree) CheckSidebar(theme *config.DocsTheme) []string {
	var missing []string
	for _, g := range theme.Sidebar {
		for _, item := range g.Items {
			if _, err := t.Resolve(item.Slug); err != nil {
				missing = append(missing, item.Slug)
			}
		}
	}
	return missing
}
