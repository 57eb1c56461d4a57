package runner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dupex/dupex"
	"github.com/projectdiscovery/gologger"
	fileutil "github.com/projectdiscovery/utils/file"
	"gopkg.in/yaml.v3"
)

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return homeDir
}

func init() {
	configDir := filepath.Join(getUserHomeDir(), ".config/dupex")
	defaultDedupeCfg := filepath.Join(configDir, fmt.Sprintf("dedupe_%v.yaml", version))
	// create default dedupe.yaml config if does not exist
	if fileutil.FileExists(defaultDedupeCfg) {
		// if it exists use that data as default
		if bin, err := os.ReadFile(defaultDedupeCfg); err == nil {
			var cfg dupex.Config
			if errx := yaml.Unmarshal(bin, &cfg); errx == nil {
				dupex.DefaultConfig = &cfg
				return
			}
		}
	}
	_ = os.MkdirAll(configDir, 0700)
	if err := dupex.GenerateSample(defaultDedupeCfg); err != nil {
		gologger.Error().Msgf("failed to save default config to %v got: %v", defaultDedupeCfg, err)
	}
}
