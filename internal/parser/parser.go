// Package parser converts raw document bytes into an outline record.
// PDF goes through the heading-inference engine; markdown, HTML and
// DOCX carry explicit structure and map to the outline directly.
package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pardivkamishetty/outliner/internal/outline"
)

// Source extracts an outline from one document.
type Source interface {
	Extract(r io.Reader, filename string) (*outline.Document, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".docx":     true,
}

// Options tunes the PDF heading engine. Zero values keep the defaults.
type Options struct {
	Proximity  float64
	SampleRuns int
}

// ForFile returns the appropriate source for a filename.
func ForFile(filename string) (Source, error) {
	return ForFileTuned(filename, Options{})
}

// ForFileTuned is ForFile with explicit engine tuning.
func ForFileTuned(filename string, opts Options) (Source, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return NewPDFSource(opts), nil
	case ".md", ".markdown":
		return &MarkdownSource{}, nil
	case ".html", ".htm":
		return &HTMLSource{}, nil
	case ".docx":
		return &DOCXSource{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// Stem strips the extension from a filename; it is the fallback title
// for documents without a confident H1.
func Stem(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
