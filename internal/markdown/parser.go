package markdown

import (
	"errors"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/frontmatter"
)

// ErrNoFrontmatter is returned for documents without a frontmatter block.
var ErrNoFrontmatter = errors.New("no frontmatter")

// Parser reads the frontmatter of content files. Bodies are parsed only far
// enough to find the block; rendering them is left to the site framework.
type Parser struct {
	md goldmark.Markdown
}

func NewParser() *Parser {
	md := goldmark.New(
		goldmark.WithExtensions(
			&frontmatter.Extender{},
		),
	)

	return &Parser{
		md: md,
	}
}

// Frontmatter decodes the YAML (---) or TOML (+++) block at the top of source.
func (p *Parser) Frontmatter(source []byte) (map[string]any, error) {
	context := parser.NewContext()
	p.md.Parser().Parse(text.NewReader(source), parser.WithContext(context))

	data := frontmatter.Get(context)
	if data == nil {
		return nil, ErrNoFrontmatter
	}

	var meta map[string]any
	err := data.Decode(&meta)
	if err != nil {
		return nil, fmt.Errorf("decode frontmatter: %w", err)
	}
	if meta == nil {
		meta = make(map[string]any)
	}
	return meta, nil
}
