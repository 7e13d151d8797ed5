// Package persona ranks document sections by relevance to a reader
// persona and the task they want to accomplish. Candidate sections are
// harvested from page text, scored against the persona/task query with
// TF-IDF cosine similarity, and the top matches returned with their
// source locations.
package persona

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	pdflib "github.com/ledongthuc/pdf"
)

// TopSections is how many ranked sections the analysis result keeps.
const TopSections = 5

// minSectionLength filters out fragments too short to be a section
// title or lead sentence.
const minSectionLength = 5

// Section is one candidate passage harvested from a document.
type Section struct {
	Document     string  `json:"document"`
	PageNumber   int     `json:"page_number"`
	SectionTitle string  `json:"section_title"`
	Text         string  `json:"text"`
	Score        float64 `json:"-"`
}

// CollectSections reads the PDF at path and harvests candidate
// sections: trimmed lines of at least five characters that start with
// an uppercase letter. Pages that fail to extract are skipped.
func CollectSections(path string) ([]Section, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	name := filepath.Base(path)
	var sections []Section
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if !isSectionLine(line) {
				continue
			}
			sections = append(sections, Section{
				Document:     name,
				PageNumber:   i,
				SectionTitle: line,
				Text:         line,
			})
		}
	}
	return sections, nil
}

func isSectionLine(line string) bool {
	if utf8.RuneCountInString(line) < minSectionLength {
		return false
	}
	r, _ := utf8.DecodeRuneInString(line)
	return unicode.IsUpper(r)
}

// Rank scores sections against the persona and job query and returns
// them in descending relevance order. Ordering is stable for equal
// scores so repeated runs produce identical output.
func Rank(sections []Section, persona, job string) []Section {
	if len(sections) == 0 {
		return nil
	}

	query := tokenize(persona + ". " + job)
	corpus := make([][]string, 0, len(sections)+1)
	corpus = append(corpus, query)
	for _, s := range sections {
		corpus = append(corpus, tokenize(s.Text))
	}

	v := fitVectorizer(corpus)
	qvec := v.transform(query)

	ranked := make([]Section, len(sections))
	copy(ranked, sections)
	for i := range ranked {
		ranked[i].Score = dot(qvec, v.transform(corpus[i+1]))
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// Metadata describes the inputs that produced an analysis result.
type Metadata struct {
	InputDocuments      []string `json:"input_documents"`
	Persona             string   `json:"persona"`
	JobToBeDone         string   `json:"job_to_be_done"`
	ProcessingTimestamp string   `json:"processing_timestamp"`
}

// RankedSection is one entry of the extracted_sections result list.
type RankedSection struct {
	Document       string `json:"document"`
	PageNumber     int    `json:"page_number"`
	SectionTitle   string `json:"section_title"`
	ImportanceRank int    `json:"importance_rank"`
}

// Subsection carries the refined text for one top-ranked section.
type Subsection struct {
	Document    string `json:"document"`
	PageNumber  int    `json:"page_number"`
	RefinedText string `json:"refined_text"`
}

// Result is the persona analysis output document.
type Result struct {
	Metadata           Metadata        `json:"metadata"`
	ExtractedSections  []RankedSection `json:"extracted_sections"`
	SubsectionAnalysis []Subsection    `json:"subsection_analysis"`
}

// BuildResult assembles the analysis output from ranked sections,
// keeping the top TopSections entries. Slices are always non-nil so
// the JSON encoding carries empty arrays rather than null.
func BuildResult(ranked []Section, documents []string, persona, job string, now time.Time) Result {
	res := Result{
		Metadata: Metadata{
			InputDocuments:      documents,
			Persona:             persona,
			JobToBeDone:         job,
			ProcessingTimestamp: now.Format(time.RFC3339),
		},
		ExtractedSections:  []RankedSection{},
		SubsectionAnalysis: []Subsection{},
	}
	if res.Metadata.InputDocuments == nil {
		res.Metadata.InputDocuments = []string{}
	}
	for i, sec := range ranked {
		if i >= TopSections {
			break
		}
		res.ExtractedSections = append(res.ExtractedSections, RankedSection{
			Document:       sec.Document,
			PageNumber:     sec.PageNumber,
			SectionTitle:   sec.SectionTitle,
			ImportanceRank: i + 1,
		})
		res.SubsectionAnalysis = append(res.SubsectionAnalysis, Subsection{
			Document:    sec.Document,
			PageNumber:  sec.PageNumber,
			RefinedText: sec.Text,
		})
	}
	return res
}
