package runner

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	fileutil "github.com/projectdiscovery/utils/file"
	updateutils "github.com/projectdiscovery/utils/update"
)

type Options struct {
	Responses          goflags.StringSlice // Raw survey responses to process
	Mode               string              // cluster | similar | entities | tokens
	Threshold          float64             // similarity threshold
	Sentinel           string              // missing-value marker
	Doc                int                 // anchor document index for similar mode
	Templates          goflags.StringSlice // report templates for cluster mode
	Output             string
	Config             string
	DedupeConfig       string
	DisableUpdateCheck bool
	Verbose            bool
	Silent             bool
	Limit              int
}

func ParseFlags() *Options {
	opts := &Options{}
	var threshold string
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Text preparation and near-duplicate detection for open-ended survey responses.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringSliceVarP(&opts.Responses, "list", "l", nil, "survey responses to process (stdin, file)", goflags.FileStringSliceOptions),
		flagSet.StringVarP(&opts.Sentinel, "sentinel", "sn", "", "missing-value marker excluded from processing (default 'no response')"),
	)

	flagSet.CreateGroup("mode", "Mode",
		flagSet.StringVarP(&opts.Mode, "mode", "m", "cluster", "processing mode (cluster, similar, entities, tokens)"),
		flagSet.StringVarP(&threshold, "threshold", "t", "0.5", "similarity threshold in [0,1]"),
		flagSet.IntVarP(&opts.Doc, "doc", "d", -1, "anchor document index for similar mode (-1 = all pairs)"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output file to write results"),
		flagSet.StringSliceVarP(&opts.Templates, "template", "tp", nil, "cluster report templates (comma-separated, file)", goflags.FileCommaSeparatedStringSliceOptions),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display dupex version"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", `dupex cli config file (default '$HOME/.config/dupex/config.yaml')`),
		flagSet.StringVar(&opts.DedupeConfig, "dc", "", `dupex dedupe config file (default '$HOME/.config/dupex/dedupe.yaml')`),
		flagSet.IntVar(&opts.Limit, "limit", 0, "limit the number of results to return (default 0)"),
	)

	flagSet.CreateGroup("update", "Update",
		flagSet.CallbackVarP(GetUpdateCallback(), "update", "up", "update dupex to latest version"),
		flagSet.BoolVarP(&opts.DisableUpdateCheck, "disable-update-check", "duc", false, "disable automatic dupex update check"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	value, err := strconv.ParseFloat(threshold, 64)
	if err != nil {
		gologger.Fatal().Msgf("invalid threshold %q: %s", threshold, err)
	}
	opts.Threshold = value

	if opts.Config != "" {
		if err := flagSet.MergeConfigFile(opts.Config); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	if !opts.DisableUpdateCheck {
		latestVersion, err := updateutils.GetVersionCheckCallback("dupex")()
		if err != nil {
			if opts.Verbose {
				gologger.Error().Msgf("dupex version check failed: %v", err.Error())
			}
		} else {
			gologger.Info().Msgf("Current dupex version %v %v", version, updateutils.GetVersionDescription(version, latestVersion))
		}
	}

	// read from stdin, one response per line
	if fileutil.HasStdin() {
		bin, err := io.ReadAll(os.Stdin)
		if err != nil {
			gologger.Error().Msgf("failed to read input from stdin got %v", err)
		}
		for _, line := range strings.Split(string(bin), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				opts.Responses = append(opts.Responses, line)
			}
		}
	}

	if len(opts.Responses) == 0 {
		gologger.Fatal().Msgf("dupex: no input found")
	}

	return opts
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}
