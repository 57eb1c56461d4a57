package dupex

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Threshold float64  `yaml:"threshold"`
	Sentinel  string   `yaml:"sentinel"`
	Stopwords []string `yaml:"stopwords"`
	Templates []string `yaml:"templates"`
}

// DefaultConfig is used wherever no user config is supplied.
var DefaultConfig = &Config{
	Threshold: DefaultThreshold,
	Sentinel:  DefaultSentinel,
	Stopwords: DefaultStopwords,
	Templates: DefaultTemplates,
}

// NewConfig reads config from file
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GenerateSample creates a sample yaml file with default/sample values
func GenerateSample(filePath string) error {
	bin, err := yaml.Marshal(DefaultConfig)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}
