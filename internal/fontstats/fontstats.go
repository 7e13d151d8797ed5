// Package fontstats builds a document-wide model of font size usage.
// Absolute font sizes are not comparable across documents, so the scorer
// consumes percentile cut-points instead of fixed thresholds.
package fontstats

import (
	"math"
	"sort"
)

// Percentile keys into a Percentiles map.
const (
	P50 = 50
	P75 = 75
	P90 = 90
)

// Percentiles maps a percentile (50, 75, 90) to a font size cut-point.
// An empty map means the document had no sized glyphs.
type Percentiles map[int]float64

// Collector accumulates a frequency count per rounded font size. It is
// filled in a single pass over every sized glyph, then read-only.
type Collector struct {
	counts map[float64]int
	total  int
}

func NewCollector() *Collector {
	return &Collector{counts: make(map[float64]int)}
}

// Add records one occurrence of a font size. Sizes without information
// (<= 0) are ignored.
func (c *Collector) Add(size float64) {
	if size <= 0 {
		return
	}
	key := math.Round(size*10) / 10
	c.counts[key]++
	c.total++
}

// Count returns how many sized glyphs were recorded.
func (c *Collector) Count() int {
	return c.total
}

// Percentiles computes the 50th/75th/90th cut-points over the sorted
// multiset of recorded sizes, each size repeated by its count. The index
// for fraction f is floor(f * n). Returns an empty map when nothing was
// recorded.
func (c *Collector) Percentiles() Percentiles {
	if c.total == 0 {
		return Percentiles{}
	}

	sizes := make([]float64, 0, len(c.counts))
	for s := range c.counts {
		sizes = append(sizes, s)
	}
	sort.Float64s(sizes)

	return Percentiles{
		P50: c.valueAt(sizes, c.total/2),
		P75: c.valueAt(sizes, c.total*75/100),
		P90: c.valueAt(sizes, c.total*90/100),
	}
}

// valueAt walks the sorted histogram cumulatively to find the size at a
// multiset index, without materializing the expanded slice.
func (c *Collector) valueAt(sorted []float64, idx int) float64 {
	if idx >= c.total {
		idx = c.total - 1
	}
	seen := 0
	for _, s := range sorted {
		seen += c.counts[s]
		if idx < seen {
			return s
		}
	}
	return sorted[len(sorted)-1]
}
