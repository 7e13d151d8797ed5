package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/pardivkamishetty/outliner/internal/outline"
	"golang.org/x/net/html"
)

// HTMLSource maps h1-h3 tags to an outline. The document <title> wins
// over any h1 for the record title.
type HTMLSource struct{}

func (p *HTMLSource) Extract(r io.Reader, filename string) (*outline.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	doc := outline.Empty(Stem(filename))
	titled := false
	if title := findTitle(root); title != "" {
		doc.Title = title
		titled = true
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingLevel(n.Data); level != "" {
				text := textContent(n)
				if text != "" {
					doc.Outline = append(doc.Outline, outline.Entry{
						Level: level,
						Text:  text,
						Page:  1,
					})
				}
				return // heading text already extracted
			}
			switch n.Data {
			case "script", "style", "nav", "footer":
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if body := findBody(root); body != nil {
		walk(body)
	} else {
		walk(root)
	}

	if !titled {
		for _, e := range doc.Outline {
			if e.Level == outline.H1 {
				doc.Title = e.Text
				break
			}
		}
	}

	return &doc, nil
}

func headingLevel(tag string) outline.Level {
	switch tag {
	case "h1":
		return outline.H1
	case "h2":
		return outline.H2
	case "h3":
		return outline.H3
	}
	return ""
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.Join(strings.Fields(buf.String()), " ")
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return textContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
