package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// DefaultSuffix is inserted between the input's stem and extension to
// name the output file.
const DefaultSuffix = ".ted"

// Settings are the tool defaults read from the environment. Command line
// flags override them.
type Settings struct {
	Suffix      string `env:"TEDJUST_SUFFIX" envDefault:".ted"`
	SortRules   bool   `env:"TEDJUST_SORT_RULES"`
	RulesFile   string `env:"TEDJUST_RULES_FILE"`
	MetricsFile string `env:"TEDJUST_METRICS_FILE"`
}

// LoadSettings parses Settings from the process environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if s.Suffix == "" {
		s.Suffix = DefaultSuffix
	}
	return s, nil
}
