package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/pardivkamishetty/outliner/internal/outline"
)

// DOCXSource maps Word heading styles (Heading1-3) to an outline.
type DOCXSource struct{}

func (p *DOCXSource) Extract(r io.Reader, filename string) (*outline.Document, error) {
	// go-docx needs a ReadSeeker+size, so write to a temp file.
	tmp, err := os.CreateTemp("", "outliner-docx-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("seek temp file: %w", err)
	}

	word, err := docx.Parse(tmp, size)
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	doc := outline.Empty(Stem(filename))
	titled := false

	for _, item := range word.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		level := docxHeadingLevel(para)
		if level == "" {
			continue
		}
		text := docxParagraphText(para)
		if text == "" {
			continue
		}
		if !titled && level == outline.H1 {
			doc.Title = text
			titled = true
		}
		doc.Outline = append(doc.Outline, outline.Entry{Level: level, Text: text, Page: 1})
	}

	return &doc, nil
}

func docxHeadingLevel(para *docx.Paragraph) outline.Level {
	if para.Properties == nil || para.Properties.Style == nil {
		return ""
	}
	style := para.Properties.Style.Val
	switch {
	case strings.EqualFold(style, "Heading1") || strings.EqualFold(style, "heading 1"):
		return outline.H1
	case strings.EqualFold(style, "Heading2") || strings.EqualFold(style, "heading 2"):
		return outline.H2
	case strings.EqualFold(style, "Heading3") || strings.EqualFold(style, "heading 3"):
		return outline.H3
	}
	return ""
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
