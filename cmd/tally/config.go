package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// options holds settings that may come from the environment. Flags override
// them after parsing.
type options struct {
	Samples string `env:"TALLY_SAMPLES"`
	NoColor bool   `env:"TALLY_NO_COLOR"`
}

// loadEnvOptions parses TALLY_* environment variables into an options
// struct. Unset variables leave the zero values in place.
func loadEnvOptions() (options, error) {
	var opts options
	if err := env.Parse(&opts); err != nil {
		return options{}, fmt.Errorf("parse env: %w", err)
	}

	return opts, nil
}

// samplesFile is the on-disk format consumed by batch mode and written by
// the init wizard. Quoted YAML strings may embed real newlines ("1\n2"), so
// no escape decoding happens on this path.
type samplesFile struct {
	Samples []string `yaml:"samples"`
}

// loadSamples reads a samples YAML file.
func loadSamples(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load samples: %w", err)
	}

	var f samplesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse samples %s: %w", path, err)
	}

	if len(f.Samples) == 0 {
		return nil, fmt.Errorf("samples file %s lists no samples", path)
	}

	return f.Samples, nil
}
