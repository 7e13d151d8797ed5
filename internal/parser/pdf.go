package parser

import (
	"fmt"
	"io"
	"os"

	"github.com/pardivkamishetty/outliner/internal/glyph"
	"github.com/pardivkamishetty/outliner/internal/heading"
	"github.com/pardivkamishetty/outliner/internal/outline"
	pdflib "github.com/ledongthuc/pdf"
)

// PDFSource extracts an outline by inferring headings from positioned,
// sized glyphs. PDFs carry no reliable structural markup, so this is
// the only source that exercises the confidence-scoring engine.
type PDFSource struct {
	Engine heading.Engine
}

func NewPDFSource(opts Options) *PDFSource {
	eng := heading.NewEngine()
	if opts.Proximity > 0 {
		eng.Proximity = opts.Proximity
	}
	if opts.SampleRuns > 0 {
		eng.SampleRuns = opts.SampleRuns
	}
	return &PDFSource{Engine: eng}
}

func (p *PDFSource) Extract(r io.Reader, filename string) (*outline.Document, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "outliner-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	pages, err := readGlyphPages(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("extract pdf glyphs: %w", err)
	}

	doc := p.Engine.Extract(pages, Stem(filename))
	return &doc, nil
}

// readGlyphPages pulls every positioned character from the PDF, one
// slice per page in reading order. The file handle is scoped here so a
// failing document cannot leak a descriptor across a batch run.
func readGlyphPages(path string) ([][]glyph.Glyph, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var pages [][]glyph.Glyph
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content := page.Content()
		glyphs := make([]glyph.Glyph, 0, len(content.Text))
		for _, t := range content.Text {
			glyphs = append(glyphs, glyph.Glyph{
				Text: t.S,
				Size: t.FontSize,
				X0:   t.X,
				X1:   t.X + t.W,
				Page: i,
			})
		}
		pages = append(pages, glyphs)
	}
	return pages, nil
}
