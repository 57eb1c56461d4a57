package dupex

import (
	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
)

// TokenCount is one entry of a ranked frequency table.
type TokenCount struct {
	Token string
	Count int
}

// FrequencyTable is an ordered list of tokens with their counts, highest
// count first, ties in first-occurrence order. The order is part of the
// contract: the clusterer promotes earlier entries to representatives on
// the assumption that the most frequent spelling is the correct one.
type FrequencyTable []TokenCount

// Cluster groups a representative token with the near-duplicate tokens
// absorbed into it. Members are ordered by first encounter and never
// include the representative itself.
type Cluster struct {
	Representative string
	Members        []string
}

// Size returns the total number of tokens in the cluster including the
// representative.
func (c *Cluster) Size() int {
	return len(c.Members) + 1
}

// Clusterer Options
type Options struct {
	// Threshold is the minimum similarity score required to merge a token
	// into an existing cluster. Must be in [0,1].
	Threshold float64
	// Sentinel is the missing-value marker excluded from clustering.
	// If empty DefaultSentinel is used.
	Sentinel string
	// Similarity scores token pairs. If nil Ratio is used, which matches
	// the documented reference output.
	Similarity SimilarityFunc
}

// Clusterer partitions a ranked token set into groups of near-duplicates.
type Clusterer struct {
	Options *Options
	memo    *SimilarityMemo
}

// New creates and returns a new clusterer instance from options
func New(opts *Options) (*Clusterer, error) {
	if opts == nil {
		opts = &Options{Threshold: DefaultThreshold}
	}
	if opts.Threshold < 0 || opts.Threshold > 1 {
		return nil, errorutil.NewWithTag("dupex", "threshold %v is out of range [0,1]", opts.Threshold)
	}
	if opts.Sentinel == "" {
		opts.Sentinel = DefaultSentinel
	}
	if opts.Similarity == nil {
		opts.Similarity = Ratio
	}
	return &Clusterer{
		Options: opts,
		memo:    NewSimilarityMemo(opts.Similarity),
	}, nil
}

// Cluster partitions the table into clusters of near-duplicate tokens.
//
// ALGORITHM:
//  1. Walk tokens in table order (highest frequency first).
//  2. Score each token against existing representatives in the order the
//     representatives were created.
//  3. The first representative scoring >= Threshold absorbs the token
//     (first match wins, not best match).
//  4. A token matching no representative starts its own cluster.
//
// Assignment is final once made: the pass is greedy and never revisits
// earlier decisions, so the result depends on table order. That ordering
// dependence is deliberate: processing by descending frequency makes the
// most common spelling the representative of its cluster.
//
// The sentinel token is skipped silently whether present or not. Every
// other token lands in exactly one place: as a representative (possibly
// with no members) or as a member of exactly one cluster.
func (c *Clusterer) Cluster(table FrequencyTable) []Cluster {
	clusters := make([]Cluster, 0, len(table))
	seen := make(map[string]struct{}, len(table))

	for _, entry := range table {
		token := entry.Token
		if token == c.Options.Sentinel {
			continue
		}
		if _, dup := seen[token]; dup {
			gologger.Warning().Msgf("duplicate token %q in frequency table, keeping first entry", token)
			continue
		}
		seen[token] = struct{}{}

		assigned := false
		for i := range clusters {
			score := c.memo.Score(token, clusters[i].Representative)
			if score >= c.Options.Threshold {
				clusters[i].Members = append(clusters[i].Members, token)
				assigned = true
				break
			}
		}
		if !assigned {
			clusters = append(clusters, Cluster{Representative: token})
		}
	}

	return clusters
}

// ClusterResponses is a convenience wrapper that cleans raw responses,
// counts them, and clusters the resulting frequency table.
func (c *Clusterer) ClusterResponses(responses []string) []Cluster {
	cleaned := make([]string, 0, len(responses))
	for _, response := range responses {
		if v := Clean(response); v != "" {
			cleaned = append(cleaned, v)
		}
	}
	return c.Cluster(Count(cleaned))
}
