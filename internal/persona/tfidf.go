package persona

import (
	"math"
	"strings"
	"unicode"
)

// tokenize lowercases the text and splits it into word tokens of at
// least two characters. Single-letter tokens carry almost no signal
// for relevance ranking and only inflate the vocabulary.
func tokenize(text string) []string {
	var tokens []string
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			tok := b.String()
			if len([]rune(tok)) >= 2 {
				tokens = append(tokens, tok)
			}
			b.Reset()
		}
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

// vectorizer computes smoothed TF-IDF vectors over a small corpus.
// IDF uses ln((1+n)/(1+df))+1 and every vector is L2 normalized, so
// similarity reduces to a dot product.
type vectorizer struct {
	vocab map[string]int
	idf   []float64
}

func fitVectorizer(corpus [][]string) *vectorizer {
	v := &vectorizer{vocab: make(map[string]int)}
	df := make(map[string]int)
	for _, doc := range corpus {
		seen := make(map[string]bool, len(doc))
		for _, tok := range doc {
			if _, ok := v.vocab[tok]; !ok {
				v.vocab[tok] = len(v.vocab)
			}
			if !seen[tok] {
				seen[tok] = true
				df[tok]++
			}
		}
	}
	n := float64(len(corpus))
	v.idf = make([]float64, len(v.vocab))
	for tok, idx := range v.vocab {
		v.idf[idx] = math.Log((1+n)/(1+float64(df[tok]))) + 1
	}
	return v
}

func (v *vectorizer) transform(doc []string) []float64 {
	vec := make([]float64, len(v.vocab))
	for _, tok := range doc {
		if idx, ok := v.vocab[tok]; ok {
			vec[idx] += v.idf[idx]
		}
	}
	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
