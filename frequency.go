package dupex

import "sort"

// Count builds a ranked FrequencyTable from a sequence of tokens:
// descending count, ties broken by first occurrence during the counting
// pass. This explicit ordering is the invariant Clusterer depends on; it
// replaces any reliance on incidental map iteration order.
func Count(tokens []string) FrequencyTable {
	counts := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))

	for _, token := range tokens {
		if _, ok := counts[token]; !ok {
			order = append(order, token)
		}
		counts[token]++
	}

	table := make(FrequencyTable, 0, len(order))
	for _, token := range order {
		table = append(table, TokenCount{Token: token, Count: counts[token]})
	}
	// stable sort keeps first-seen order among equal counts
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Count > table[j].Count
	})
	return table
}

// Tokens returns the tokens of the table in rank order.
func (t FrequencyTable) Tokens() []string {
	tokens := make([]string, 0, len(t))
	for _, entry := range t {
		tokens = append(tokens, entry.Token)
	}
	return tokens
}
