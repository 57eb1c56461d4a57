package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dupex/dupex"
	"github.com/dupex/dupex/entities"
	"github.com/dupex/dupex/internal/runner"
	"github.com/dupex/dupex/vectorize"
	"github.com/projectdiscovery/gologger"
)

func main() {
	cliOpts := runner.ParseFlags()

	cfg := dupex.DefaultConfig
	if cliOpts.DedupeConfig != "" {
		userCfg, err := dupex.NewConfig(cliOpts.DedupeConfig)
		if err != nil {
			gologger.Fatal().Msgf("failed to read %v file got: %v", cliOpts.DedupeConfig, err)
		}
		cfg = userCfg
	}

	sentinel := cliOpts.Sentinel
	if sentinel == "" {
		sentinel = cfg.Sentinel
	}
	templates := []string(cliOpts.Templates)
	if len(templates) == 0 {
		templates = cfg.Templates
	}

	output := getOutputWriter(cliOpts.Output)
	defer closeOutput(output, cliOpts.Output)

	switch cliOpts.Mode {
	case "cluster":
		runCluster(cliOpts, output, sentinel, templates)
	case "similar":
		runSimilar(cliOpts, output, cfg)
	case "entities":
		runEntities(cliOpts, output, cfg)
	case "tokens":
		runTokens(cliOpts, output, sentinel)
	default:
		gologger.Fatal().Msgf("invalid mode: %s (must be 'cluster', 'similar', 'entities', or 'tokens')", cliOpts.Mode)
	}
}

// runCluster groups near-duplicate responses and renders the cluster report
func runCluster(opts *runner.Options, output io.Writer, sentinel string, templates []string) {
	clusterer, err := dupex.New(&dupex.Options{
		Threshold: opts.Threshold,
		Sentinel:  sentinel,
	})
	if err != nil {
		gologger.Fatal().Msgf("failed to create clusterer got: %v", err)
	}

	clusters := clusterer.ClusterResponses(opts.Responses)
	if opts.Limit > 0 && len(clusters) > opts.Limit {
		clusters = clusters[:opts.Limit]
	}

	if err := dupex.WriteReport(output, clusters, templates); err != nil {
		gologger.Fatal().Msgf("failed to write cluster report got: %v", err)
	}
	gologger.Info().Msgf("Grouped %d responses into %d clusters", len(opts.Responses), len(clusters))
}

// runSimilar prints document pairs whose TF-IDF cosine similarity exceeds
// the threshold, or the matches of one anchor document when -doc is set
func runSimilar(opts *runner.Options, output io.Writer, cfg *dupex.Config) {
	vectorizer := vectorize.New(&vectorize.Options{Stopwords: cfg.Stopwords})
	matrix, err := vectorizer.Fit(opts.Responses)
	if err != nil {
		gologger.Fatal().Msgf("failed to vectorize responses got: %v", err)
	}

	count := 0
	if opts.Doc >= 0 {
		matches, err := matrix.Similar(opts.Doc, opts.Threshold)
		if err != nil {
			gologger.Fatal().Msgf("failed to lookup similar documents got: %v", err)
		}
		for _, j := range matches {
			if opts.Limit > 0 && count >= opts.Limit {
				break
			}
			fmt.Fprintf(output, "%d\t%s\n", j, opts.Responses[j])
			count++
		}
	} else {
		for i := 0; i < matrix.Len(); i++ {
			for j := i + 1; j < matrix.Len(); j++ {
				score, _ := matrix.Similarity(i, j)
				if score <= opts.Threshold {
					continue
				}
				if opts.Limit > 0 && count >= opts.Limit {
					break
				}
				fmt.Fprintf(output, "%d\t%d\t%.4f\n", i, j, score)
				count++
			}
		}
	}
	gologger.Info().Msgf("Found %d similar document pairs above threshold %.2f", count, opts.Threshold)
}

// runEntities prints the ordered unique entity spans found in the responses
func runEntities(opts *runner.Options, output io.Writer, cfg *dupex.Config) {
	extractor := entities.New(&entities.Options{Stopwords: cfg.Stopwords})

	seen := map[string]bool{}
	count := 0
	for _, response := range opts.Responses {
		for _, entity := range extractor.Extract(response) {
			if seen[entity] {
				continue
			}
			seen[entity] = true
			if opts.Limit > 0 && count >= opts.Limit {
				continue
			}
			fmt.Fprintf(output, "%s\n", entity)
			count++
		}
	}
	gologger.Info().Msgf("Extracted %d unique entities", count)
}

// runTokens streams the cleaned responses through a deduping writer,
// seeding the sentinel so it never reaches the output
func runTokens(opts *runner.Options, output io.Writer, sentinel string) {
	dw := dupex.NewDedupingWriter(output, sentinel)
	for _, response := range opts.Responses {
		token := dupex.Clean(response)
		if token == "" {
			continue
		}
		if _, err := dw.Write([]byte(token + "\n")); err != nil {
			gologger.Error().Msgf("failed to write token got: %v", err)
		}
	}
	if err := dw.Close(); err != nil {
		gologger.Error().Msgf("failed to flush token output got: %v", err)
	}
	gologger.Info().Msgf("Wrote %d unique tokens", dw.Count())
}

// getOutputWriter returns the appropriate output writer
func getOutputWriter(outputPath string) io.Writer {
	if outputPath != "" {
		fs, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			gologger.Fatal().Msgf("failed to open output file %v got %v", outputPath, err)
		}
		return fs
	}
	return os.Stdout
}

// closeOutput closes the output writer if it's a file
func closeOutput(output io.Writer, outputPath string) {
	if outputPath != "" {
		if closer, ok := output.(io.Closer); ok {
			closer.Close()
		}
	}
}
