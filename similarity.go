package dupex

import (
	"sync"

	"github.com/agnivade/levenshtein"
)

// SimilarityFunc scores how alike two tokens are on a normalized [0,1]
// scale where 1 means identical and 0 means nothing in common. Any
// implementation must be symmetric and monotonic (higher = more similar).
type SimilarityFunc func(a, b string) float64

// Ratio computes the classic matching-blocks similarity ratio between two
// strings: twice the number of matched characters divided by the total
// length of both strings.
//
// ALGORITHM:
//  1. Find the longest block of characters common to both strings
//     (leftmost block wins on ties).
//  2. Recurse on the unmatched regions left and right of the block.
//  3. Sum the sizes of all matched blocks.
//
// EXAMPLE:
//
//	Ratio("gizmo", "gizmoa") = 2*5/11 = 0.909...
//	Ratio("abcd", "bcde")    = 2*3/8  = 0.75
//	Ratio("abc", "xyz")      = 0
func Ratio(a, b string) float64 {
	ar := []rune(a)
	br := []rune(b)
	total := len(ar) + len(br)
	if total == 0 {
		return 1.0
	}
	matched := matchingSize(ar, br, 0, len(ar), 0, len(br))
	return 2.0 * float64(matched) / float64(total)
}

// matchingSize returns the total number of matched characters between
// a[alo:ahi] and b[blo:bhi] by recursively splitting around the longest
// common block.
func matchingSize(a, b []rune, alo, ahi, blo, bhi int) int {
	i, j, size := longestMatch(a, b, alo, ahi, blo, bhi)
	if size == 0 {
		return 0
	}
	matched := size
	matched += matchingSize(a, b, alo, i, blo, j)
	matched += matchingSize(a, b, i+size, ahi, j+size, bhi)
	return matched
}

// longestMatch finds the longest block of characters common to
// a[alo:ahi] and b[blo:bhi]. On equally long blocks the one starting
// earliest in a (then earliest in b) wins, which keeps the overall
// alignment deterministic.
func longestMatch(a, b []rune, alo, ahi, blo, bhi int) (besti, bestj, size int) {
	besti, bestj = alo, blo
	// j2len[j] holds the length of the common suffix ending at a[i-1], b[j]
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for j := blo; j < bhi; j++ {
			if a[i] == b[j] {
				k := j2len[j-1] + 1
				newj2len[j] = k
				if k > size {
					besti, bestj, size = i-k+1, j-k+1, k
				}
			}
		}
		j2len = newj2len
	}
	return besti, bestj, size
}

// LevenshteinSimilarity scores two strings by normalized edit distance:
// 1 - distance/max(len). It is a cheaper substitute for Ratio with the
// same monotonicity property, useful on larger vocabularies.
func LevenshteinSimilarity(a, b string) float64 {
	la := len([]rune(a))
	lb := len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(longest)
}

// SimilarityMemo provides memoized similarity scores over a SimilarityFunc.
// Scores are cached under an order-normalized key so (a,b) and (b,a) hit
// the same entry. Safe for concurrent use.
type SimilarityMemo struct {
	fn   SimilarityFunc
	memo map[string]float64
	mu   sync.RWMutex
}

// NewSimilarityMemo creates a memoization table around fn.
func NewSimilarityMemo(fn SimilarityFunc) *SimilarityMemo {
	return &SimilarityMemo{
		fn:   fn,
		memo: make(map[string]float64),
	}
}

// Score returns the cached similarity of a and b, computing it on first use.
func (sm *SimilarityMemo) Score(a, b string) float64 {
	key := makeMemoKey(a, b)

	sm.mu.RLock()
	if score, exists := sm.memo[key]; exists {
		sm.mu.RUnlock()
		return score
	}
	sm.mu.RUnlock()

	score := sm.fn(a, b)

	sm.mu.Lock()
	sm.memo[key] = score
	sm.mu.Unlock()

	return score
}

// Size returns the number of cached scores.
func (sm *SimilarityMemo) Size() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.memo)
}

// Clear drops all cached scores.
func (sm *SimilarityMemo) Clear() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.memo = make(map[string]float64)
}

// makeMemoKey orders the pair lexicographically so both argument orders
// share a cache entry.
func makeMemoKey(a, b string) string {
	if a <= b {
		return a + "\x00" + b
	}
	return b + "\x00" + a
}
