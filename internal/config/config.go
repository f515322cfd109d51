// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"conserv/internal/align"
)

// Settings are optional file-backed defaults (TOML). Pointer fields
// distinguish "not set" from a legitimate zero: a mutation threshold of 0 is
// valid configuration.
type Settings struct {
	Thresholds struct {
		Conservation *float64 `toml:"conservation"`
		Mutation     *float64 `toml:"mutation"`
	} `toml:"thresholds"`
	Aligner struct {
		Tool           string `toml:"tool"`
		TimeoutSeconds int    `toml:"timeout_seconds"`
	} `toml:"aligner"`
	Output struct {
		Format     string `toml:"format"`
		ChartWidth int    `toml:"chart_width"`
	} `toml:"output"`
}

// Load reads and validates settings from path.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML bytes into validated Settings.
func Parse(data []byte) (Settings, error) {
	var s Settings
	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse config: %w", err)
	}
	if err := s.validate(); err != nil {
		return s, fmt.Errorf("config: %w", err)
	}
	return s, nil
}

func (s *Settings) validate() error {
	if t := s.Thresholds.Conservation; t != nil && (*t < 0 || *t > 1) {
		return fmt.Errorf("thresholds.conservation %v outside [0,1]", *t)
	}
	if t := s.Thresholds.Mutation; t != nil && (*t < 0 || *t > 1) {
		return fmt.Errorf("thresholds.mutation %v outside [0,1]", *t)
	}
	switch s.Aligner.Tool {
	case "", align.Mafft, align.ClustalOmega:
	default:
		return fmt.Errorf("aligner.tool %q unknown", s.Aligner.Tool)
	}
	if s.Aligner.TimeoutSeconds < 0 {
		return fmt.Errorf("aligner.timeout_seconds must be ≥ 0")
	}
	if s.Output.ChartWidth < 0 {
		return fmt.Errorf("output.chart_width must be ≥ 0")
	}
	switch s.Output.Format {
	case "", "text", "json", "tsv":
	default:
		return fmt.Errorf("output.format %q unknown", s.Output.Format)
	}
	return nil
}
