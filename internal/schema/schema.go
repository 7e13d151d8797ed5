// Package schema enforces the output-record compatibility contract:
// two top-level keys, three-key entries, levels restricted to H1/H2/H3.
// A violating record must not be persisted.
package schema

import (
	"fmt"

	"github.com/pardivkamishetty/outliner/internal/outline"
)

// Validator checks an outline document against the output contract.
type Validator interface {
	Validate(doc *outline.Document) error
}

// Contract is the built-in validator for the fixed record shape.
type Contract struct{}

func (Contract) Validate(doc *outline.Document) error {
	if doc == nil {
		return fmt.Errorf("nil document")
	}
	if doc.Outline == nil {
		return fmt.Errorf("outline must be present (use an empty list, not null)")
	}
	for i, e := range doc.Outline {
		if !e.Level.Valid() {
			return fmt.Errorf("outline[%d]: level %q not in {H1,H2,H3}", i, e.Level)
		}
		if e.Text == "" {
			return fmt.Errorf("outline[%d]: empty text", i)
		}
		if e.Page < 1 {
			return fmt.Errorf("outline[%d]: page %d below 1", i, e.Page)
		}
	}
	return nil
}
