package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// scenarioConfig describes one run of the developer test. Its zero value is
// not meaningful; defaultScenarioConfig fills in the S1-S6 parameters from
// the smoke-test scenarios.
type scenarioConfig struct {
	Samples      uint32  `yaml:"samples"`
	Channels     uint8   `yaml:"channels"`
	Period       float32 `yaml:"period"`
	Amplitude    float32 `yaml:"amplitude"`
	SourceRateHz uint32  `yaml:"sourceRateHz"`
	DownsampleHz uint32  `yaml:"downsampleHz"`
	UpsampleHz   uint32  `yaml:"upsampleHz"`
	WideRateHz   uint32  `yaml:"wideRateHz"`
	Buckets      uint32  `yaml:"buckets"`
	Backend      int     `yaml:"backend"`
}

func defaultScenarioConfig() scenarioConfig {
	return scenarioConfig{
		Samples:      25,
		Channels:     1,
		Period:       25.0,
		Amplitude:    100.0,
		SourceRateHz: 1_000_000,
		DownsampleHz: 100_000,
		UpsampleHz:   3_000_000,
		WideRateHz:   300_000,
		Buckets:      5,
		Backend:      -1,
	}
}

// loadScenarioConfig reads a YAML document at path and returns the
// scenario it describes, starting from defaultScenarioConfig so a partial
// file only needs to mention the fields it wants to change.
func loadScenarioConfig(path string) (scenarioConfig, error) {
	cfg := defaultScenarioConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading scenario config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing scenario config %s: %w", path, err)
	}
	return cfg, nil
}
