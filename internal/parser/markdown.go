package parser

import (
	"io"
	"strings"

	"github.com/pardivkamishetty/outliner/internal/outline"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownSource maps explicit markdown headings to an outline using
// goldmark. Headings deeper than level 3 are outside the output
// contract and are skipped.
type MarkdownSource struct{}

func (p *MarkdownSource) Extract(r io.Reader, filename string) (*outline.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	root := md.Parser().Parse(reader)

	doc := outline.Empty(Stem(filename))
	titled := false

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok || h.Level > 3 {
			continue
		}
		title := strings.TrimSpace(string(h.Text(src)))
		if title == "" {
			continue
		}
		level := markupLevel(h.Level)
		if !titled && level == outline.H1 {
			doc.Title = title
			titled = true
		}
		// Markdown has no pagination; the contract needs page >= 1.
		doc.Outline = append(doc.Outline, outline.Entry{Level: level, Text: title, Page: 1})
	}

	return &doc, nil
}

// markupLevel maps a 1-based heading depth to the contract levels.
func markupLevel(level int) outline.Level {
	switch level {
	case 1:
		return outline.H1
	case 2:
		return outline.H2
	}
	return outline.H3
}
