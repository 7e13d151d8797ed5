// Package sink delivers finished outline documents to their
// destination, either a directory of JSON files or a remote webhook.
package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pardivkamishetty/outliner/internal/outline"
)

// Sink receives validated outline documents. name is the logical
// output name without extension, typically the source filename stem.
type Sink interface {
	Write(ctx context.Context, name string, doc *outline.Document) error
}

// DirectorySink writes each document as <name>.json under Dir. Files
// are written to a temp path first and renamed into place so readers
// never observe a partial document.
type DirectorySink struct {
	Dir string
}

func NewDirectorySink(dir string) (*DirectorySink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &DirectorySink{Dir: dir}, nil
}

func (s *DirectorySink) Write(ctx context.Context, name string, doc *outline.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal outline: %w", err)
	}
	data = append(data, '\n')

	final := filepath.Join(s.Dir, name+".json")
	tmp, err := os.CreateTemp(s.Dir, name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write outline: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, final); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename output: %w", err)
	}
	return nil
}
