package markdown

import (
	"bytes"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

var ErrUnknownPlugin = errors.New("unknown markdown plugin")

const baseExtensions = parser.CommonExtensions | parser.AutoHeadingIDs

// Registry maps plugin identifiers to implementations.
type Registry map[string]Plugin

func DefaultRegistry() Registry {
	r := Registry{}
	r.Register(headingID{})
	r.Register(gemoji{})
	return r
}

func (r Registry) Register(p Plugin) {
	r[p.Name()] = p
}

// Pipeline builds a pipeline applying the named plugins in the given order.
func (r Registry) Pipeline(names []string) (*Pipeline, error) {
	p := &Pipeline{extensions: baseExtensions}
	for _, name := range names {
		plugin, ok := r[name]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownPlugin, "%q", name)
		}
		p.plugins = append(p.plugins, plugin)
		p.extensions |= plugin.Extensions()
	}
	return p, nil
}

type Pipeline struct {
	plugins    []Plugin
	extensions parser.Extensions
}

func (p *Pipeline) Plugins() []string {
	names := make([]string, 0, len(p.plugins))
	for _, plugin := range p.plugins {
		names = append(names, plugin.Name())
	}
	return names
}

// Document is a rendered page.
type Document struct {
	Title       string
	Description string
	HTML        string
}

type frontMatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Render parses front matter and markdown, runs every plugin transform in
// order and renders HTML.
func (p *Pipeline) Render(src []byte) (*Document, error) {
	meta, body, err := splitFrontMatter(src)
	if err != nil {
		return nil, err
	}

	doc := markdown.Parse(body, parser.NewWithExtensions(p.extensions))
	for _, plugin := range p.plugins {
		plugin.Transform(doc)
	}

	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})

	return &Document{
		Title:       meta.Title,
		Description: meta.Description,
		HTML:        string(markdown.Render(doc, renderer)),
	}, nil
}

var fence = []byte("---")

func splitFrontMatter(src []byte) (frontMatter, []byte, error) {
	var meta frontMatter

	src = bytes.ReplaceAll(src, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(src, append(fence, '\n')) {
		return meta, src, nil
	}

	rest := src[len(fence)+1:]
	end := bytes.Index(rest, []byte("\n---\n"))
	var header, body []byte
	switch {
	case bytes.HasPrefix(rest, []byte("---\n")):
		body = rest[len("---\n"):]
	case end >= 0:
		header, body = rest[:end], rest[end+len("\n---\n"):]
	case bytes.HasSuffix(rest, []byte("\n---")):
		header = rest[:len(rest)-len("\n---")]
	default:
		return meta, nil, errors.New("front matter is not closed")
	}

	if err := yaml.Unmarshal(header, &meta); err != nil {
		return meta, nil, errors.Wrap(err, "parsing front matter")
	}

	return meta, body, nil
}
