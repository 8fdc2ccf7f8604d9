package markdown

import (
	"regexp"

	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
	"github.com/kyokomi/emoji/v2"
)

const (
	HeadingIDPlugin = "remark-heading-id"
	GemojiPlugin    = "remark-gemoji"
)

// Plugin is one named markdown processing step. Extensions are enabled on the
// parser; Transform runs on the parsed document in pipeline order.
type Plugin interface {
	Name() string
	Extensions() parser.Extensions
	Transform(doc ast.Node)
}

// headingID honours explicit ids written as "# Title {#id}".
type headingID struct{}

func (headingID) Name() string                  { return HeadingIDPlugin }
func (headingID) Extensions() parser.Extensions { return parser.HeadingIDs }
func (headingID) Transform(ast.Node)            {}

// gemoji replaces :shortcode: sequences in text with their emoji. Code spans
// and blocks are separate node types and stay untouched.
type gemoji struct{}

func (gemoji) Name() string                  { return GemojiPlugin }
func (gemoji) Extensions() parser.Extensions { return parser.NoExtensions }

func (gemoji) Transform(doc ast.Node) {
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		if text, ok := node.(*ast.Text); ok {
			text.Literal = replaceShortcodes(text.Literal)
		}
		return ast.GoToNext
	})
}

var shortcode = regexp.MustCompile(`:[a-zA-Z0-9_+\-]+:`)

// replaceShortcodes swaps known shortcodes for their emoji and leaves the
// surrounding text, and unknown shortcodes, as written.
func replaceShortcodes(text []byte) []byte {
	codes := emoji.CodeMap()
	return shortcode.ReplaceAllFunc(text, func(match []byte) []byte {
		if e, ok := codes[string(match)]; ok {
			return []byte(e)
		}
		return match
	})
}
