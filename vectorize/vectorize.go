// Package vectorize builds TF-IDF document vectors and pairwise cosine
// similarity matrices over small response collections.
package vectorize

import (
	"math"
	"sort"

	"github.com/dupex/dupex"
	errorutil "github.com/projectdiscovery/utils/errors"
	sliceutil "github.com/projectdiscovery/utils/slice"
)

// Vectorizer Options
type Options struct {
	// Stopwords are excluded from the vocabulary. If nil,
	// dupex.DefaultStopwords is used; pass an empty slice to keep
	// every token.
	Stopwords []string
	// MinTokenLength drops tokens shorter than this (default 1).
	MinTokenLength int
}

// Vectorizer converts documents into term-weighted vectors.
type Vectorizer struct {
	options *Options
	stop    map[string]struct{}
}

// New creates and returns a new vectorizer instance from options
func New(opts *Options) *Vectorizer {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Stopwords == nil {
		opts.Stopwords = dupex.DefaultStopwords
	}
	if opts.MinTokenLength <= 0 {
		opts.MinTokenLength = 1
	}
	stop := make(map[string]struct{}, len(opts.Stopwords))
	for _, w := range sliceutil.Dedupe(opts.Stopwords) {
		stop[w] = struct{}{}
	}
	return &Vectorizer{options: opts, stop: stop}
}

// Matrix holds the fitted document vectors and their pairwise cosine
// similarities. The diagonal is zeroed so a document never matches itself
// in threshold lookups.
type Matrix struct {
	vocab   []string
	vectors [][]float64
	sims    [][]float64
}

// Fit tokenizes the documents, weights terms by TF-IDF and computes the
// pairwise cosine similarity matrix.
//
// Term weighting follows the smoothed formulation: tf is the term count
// normalized by document length, idf = ln((1+n)/(1+df)) + 1. Vectors are
// L2-normalized so cosine similarity reduces to a dot product.
func (v *Vectorizer) Fit(docs []string) (*Matrix, error) {
	if len(docs) == 0 {
		return nil, errorutil.NewWithTag("vectorize", "no documents provided")
	}

	// tokenize every document through the shared normalizer
	docTokens := make([][]string, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		tokens := make([]string, 0)
		for _, token := range dupex.Tokenize(doc) {
			if len([]rune(token)) < v.options.MinTokenLength {
				continue
			}
			if _, skip := v.stop[token]; skip {
				continue
			}
			tokens = append(tokens, token)
		}
		docTokens[i] = tokens
		for _, token := range sliceutil.Dedupe(tokens) {
			df[token]++
		}
	}
	if len(df) == 0 {
		return nil, errorutil.NewWithTag("vectorize", "documents contain no usable terms")
	}

	vocab := make([]string, 0, len(df))
	for term := range df {
		vocab = append(vocab, term)
	}
	sort.Strings(vocab)
	index := make(map[string]int, len(vocab))
	for i, term := range vocab {
		index[term] = i
	}

	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for i, term := range vocab {
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	vectors := make([][]float64, len(docs))
	for i, tokens := range docTokens {
		vec := make([]float64, len(vocab))
		if len(tokens) > 0 {
			for _, token := range tokens {
				vec[index[token]]++
			}
			var norm float64
			for j := range vec {
				vec[j] = vec[j] / float64(len(tokens)) * idf[j]
				norm += vec[j] * vec[j]
			}
			if norm > 0 {
				norm = math.Sqrt(norm)
				for j := range vec {
					vec[j] /= norm
				}
			}
		}
		vectors[i] = vec
	}

	sims := make([][]float64, len(docs))
	for i := range vectors {
		sims[i] = make([]float64, len(docs))
		for j := range vectors {
			if i == j {
				// zeroed diagonal: self-similarity is excluded by contract
				continue
			}
			sims[i][j] = dot(vectors[i], vectors[j])
		}
	}

	return &Matrix{vocab: vocab, vectors: vectors, sims: sims}, nil
}

// Len returns the number of fitted documents.
func (m *Matrix) Len() int {
	return len(m.vectors)
}

// Vocabulary returns the fitted terms in sorted order.
func (m *Matrix) Vocabulary() []string {
	return m.vocab
}

// Similarity returns the cosine similarity of documents i and j.
// The diagonal is zero by construction.
func (m *Matrix) Similarity(i, j int) (float64, error) {
	if i < 0 || i >= len(m.sims) || j < 0 || j >= len(m.sims) {
		return 0, errorutil.NewWithTag("vectorize", "document index out of range")
	}
	return m.sims[i][j], nil
}

// Similar returns the indices of all documents whose similarity to the
// document at index strictly exceeds threshold. The document itself never
// appears in the result.
func (m *Matrix) Similar(index int, threshold float64) ([]int, error) {
	if index < 0 || index >= len(m.sims) {
		return nil, errorutil.NewWithTag("vectorize", "document index %v out of range [0,%v)", index, len(m.sims))
	}
	matches := make([]int, 0)
	for j, score := range m.sims[index] {
		if score > threshold {
			matches = append(matches, j)
		}
	}
	return matches, nil
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
