package dupex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRatio(t *testing.T) {
	testcases := []struct {
		a        string
		b        string
		expected float64
	}{
		{"gizmo", "gizmo", 1.0},
		{"", "", 1.0},
		{"abc", "xyz", 0.0},
		{"abc", "", 0.0},
		{"abcd", "bcde", 0.75},        // 2*3/8
		{"gizmo", "gizmoa", 10.0 / 11},  // "gizmo" matches whole
		{"brand 1", "brand 2", 12.0 / 14}, // "brand " matches
		{"widget", "2jwidget", 12.0 / 14},
		{"gizmo", "g1mo c", 6.0 / 11}, // blocks: "mo" + "g"
	}
	for _, tc := range testcases {
		require.InDelta(t, tc.expected, Ratio(tc.a, tc.b), 1e-9, "Ratio(%q, %q)", tc.a, tc.b)
		// the metric is symmetric
		require.InDelta(t, tc.expected, Ratio(tc.b, tc.a), 1e-9, "Ratio(%q, %q)", tc.b, tc.a)
	}
}

func TestRatioRange(t *testing.T) {
	tokens := []string{"brand 1", "gizmo", "widget", "widgeta123", "2jwidget", ""}
	for _, a := range tokens {
		for _, b := range tokens {
			score := Ratio(a, b)
			require.GreaterOrEqual(t, score, 0.0)
			require.LessOrEqual(t, score, 1.0)
		}
	}
}

func TestLevenshteinSimilarity(t *testing.T) {
	require.InDelta(t, 1.0, LevenshteinSimilarity("gizmo", "gizmo"), 1e-9)
	require.InDelta(t, 1.0, LevenshteinSimilarity("", ""), 1e-9)
	require.InDelta(t, 0.0, LevenshteinSimilarity("", "abc"), 1e-9)
	// one insertion over six characters
	require.InDelta(t, 5.0/6, LevenshteinSimilarity("gizmo", "gizmos"), 1e-9)
}

func TestSimilarityMemo(t *testing.T) {
	calls := 0
	memo := NewSimilarityMemo(func(a, b string) float64 {
		calls++
		return Ratio(a, b)
	})

	first := memo.Score("gizmo", "gizmoa")
	require.Equal(t, 1, calls)
	// same pair in either order hits the cache
	require.Equal(t, first, memo.Score("gizmo", "gizmoa"))
	require.Equal(t, first, memo.Score("gizmoa", "gizmo"))
	require.Equal(t, 1, calls)
	require.Equal(t, 1, memo.Size())

	memo.Clear()
	require.Equal(t, 0, memo.Size())
	memo.Score("gizmo", "gizmoa")
	require.Equal(t, 2, calls)
}
