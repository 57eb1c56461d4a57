package dupex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	// first occurrences: brand 1, brand 2, gizmoa, gizmo b, gizmo,
	// g1mo c, widgeta123, widg, 2jwidget, widget
	tokens := []string{
		"brand 1", "brand 2", "gizmoa", "gizmo b", "gizmo", "g1mo c",
		"widgeta123", "widg", "2jwidget", "widget",
		"brand 1", "gizmo", "widget", "brand 1",
	}

	table := Count(tokens)
	expected := FrequencyTable{
		{Token: "brand 1", Count: 3},
		{Token: "gizmo", Count: 2},
		{Token: "widget", Count: 2},
		{Token: "brand 2", Count: 1},
		{Token: "gizmoa", Count: 1},
		{Token: "gizmo b", Count: 1},
		{Token: "g1mo c", Count: 1},
		{Token: "widgeta123", Count: 1},
		{Token: "widg", Count: 1},
		{Token: "2jwidget", Count: 1},
	}
	require.Equal(t, expected, table)
}

func TestCountTieOrder(t *testing.T) {
	// equal counts keep first-seen order
	table := Count([]string{"b", "a", "c", "b", "a", "c"})
	require.Equal(t, FrequencyTable{
		{Token: "b", Count: 2},
		{Token: "a", Count: 2},
		{Token: "c", Count: 2},
	}, table)
}

func TestCountEmpty(t *testing.T) {
	require.Empty(t, Count(nil))
	require.Empty(t, Count([]string{}))
}

func TestFrequencyTableTokens(t *testing.T) {
	table := Count([]string{"a", "b", "a"})
	require.Equal(t, []string{"a", "b"}, table.Tokens())
}
