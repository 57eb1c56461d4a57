// Package entities extracts named-entity style spans (people, places,
// organizations) from raw text using capitalization-based chunking.
package entities

import (
	"strings"
	"unicode"

	"github.com/dupex/dupex"
)

// connectors may appear inside an entity chunk without breaking it,
// e.g. "Bank of America", "Statue of Liberty".
var connectors = map[string]struct{}{
	"of": {}, "the": {}, "and": {},
	"de": {}, "la": {}, "van": {}, "von": {},
}

// Extractor Options
type Options struct {
	// Stopwords are words that never start an entity chunk even when they
	// open a sentence capitalized ("The", "My", ...). If nil,
	// dupex.DefaultStopwords is used.
	Stopwords []string
}

// Extractor detects contiguous capitalized chunks in raw text.
type Extractor struct {
	stop map[string]struct{}
}

// New creates and returns a new extractor instance from options
func New(opts *Options) *Extractor {
	if opts == nil {
		opts = &Options{}
	}
	stopwords := opts.Stopwords
	if stopwords == nil {
		stopwords = dupex.DefaultStopwords
	}
	stop := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stop[strings.ToLower(w)] = struct{}{}
	}
	return &Extractor{stop: stop}
}

// Extract returns the ordered, deduplicated entity spans found in text.
//
// ALGORITHM:
//  1. Split text into sentences on terminators (. ! ?).
//  2. Within a sentence, group consecutive capitalized words into a chunk;
//     lowercase connector words ("of", "de", ...) stay inside a chunk when
//     another capitalized word follows.
//  3. A sentence-opening word only starts a chunk if it is capitalized and
//     not a stopword, which filters ordinary sentence case ("The food
//     was great").
//  4. Deduplicate chunks preserving first-encounter order.
func (e *Extractor) Extract(text string) []string {
	seen := make(map[string]struct{})
	entities := make([]string, 0)

	for _, sentence := range splitSentences(text) {
		words := strings.Fields(sentence)
		var chunk []string

		flush := func() {
			// trailing connectors never belong to the entity
			for len(chunk) > 0 {
				if _, ok := connectors[strings.ToLower(chunk[len(chunk)-1])]; !ok {
					break
				}
				chunk = chunk[:len(chunk)-1]
			}
			if len(chunk) == 0 {
				return
			}
			entity := strings.Join(chunk, " ")
			if _, dup := seen[entity]; !dup {
				seen[entity] = struct{}{}
				entities = append(entities, entity)
			}
			chunk = nil
		}

		for i, raw := range words {
			word := trimWord(raw)
			if word == "" {
				flush()
				continue
			}
			switch {
			case isCapitalized(word):
				if i == 0 && e.isStopword(word) {
					// sentence case, not a name
					continue
				}
				chunk = append(chunk, word)
			case len(chunk) > 0 && isConnector(word):
				chunk = append(chunk, word)
			default:
				flush()
			}
		}
		flush()
	}

	return entities
}

func (e *Extractor) isStopword(word string) bool {
	_, ok := e.stop[strings.ToLower(word)]
	return ok
}

// Extract runs a default extractor over text.
func Extract(text string) []string {
	return New(nil).Extract(text)
}

// splitSentences splits text on sentence terminators.
func splitSentences(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?' || r == '\n'
	})
}

// trimWord strips surrounding punctuation but keeps interior characters
// ("O'Brien," -> "O'Brien").
func trimWord(word string) string {
	return strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func isCapitalized(word string) bool {
	r := []rune(word)[0]
	return unicode.IsUpper(r)
}

func isConnector(word string) bool {
	_, ok := connectors[strings.ToLower(word)]
	return ok
}
