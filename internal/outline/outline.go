// Package outline holds the structural outline produced for a document.
package outline

// Level is a discrete heading level. The output contract restricts it
// to exactly these three values.
type Level string

const (
	H1 Level = "H1"
	H2 Level = "H2"
	H3 Level = "H3"
)

// Valid reports whether the level is one of the three contract values.
func (l Level) Valid() bool {
	return l == H1 || l == H2 || l == H3
}

// Entry is one row of an extracted outline.
type Entry struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Document is the output record for one processed document: a title and
// the ordered outline entries. This exact two-key shape is the
// compatibility contract with downstream consumers.
type Document struct {
	Title   string  `json:"title"`
	Outline []Entry `json:"outline"`
}

// Empty returns a valid record for a document that yielded no headings.
// The outline slice is non-nil so it serializes as [] rather than null.
func Empty(title string) Document {
	return Document{Title: title, Outline: []Entry{}}
}
