// Environment configuration for the logger
//
// Copyright (C) 2026  Go Migration Team
//
// This file may be distributed under the terms of the GNU GPLv3 license.

package log

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// EnvOptions holds the logger settings read from the environment.
type EnvOptions struct {
	Level   string `env:"TEDJUST_LOG_LEVEL" envDefault:"INFO"`
	Format  string `env:"TEDJUST_LOG_FORMAT" envDefault:"text"`
	Caller  bool   `env:"TEDJUST_LOG_CALLER"`
	NoColor string `env:"NO_COLOR"`
}

// LoadEnvOptions parses EnvOptions from the process environment.
func LoadEnvOptions() (EnvOptions, error) {
	var opts EnvOptions
	if err := env.Parse(&opts); err != nil {
		return EnvOptions{}, fmt.Errorf("parse log env: %w", err)
	}
	return opts, nil
}

// Apply configures l from opts.
// Environment variables:
//   - TEDJUST_LOG_LEVEL: DEBUG, INFO, WARN, ERROR
//   - TEDJUST_LOG_FORMAT: text, json
//   - TEDJUST_LOG_CALLER: true enables caller info
//   - NO_COLOR: any non-empty value disables colors
func (opts EnvOptions) Apply(l *Logger) {
	l.SetLevel(ParseLevel(opts.Level))
	switch strings.ToLower(opts.Format) {
	case "json":
		l.SetFormat(FormatJSON)
	case "text":
		l.SetFormat(FormatText)
	}
	l.SetCaller(opts.Caller)
	if opts.NoColor != "" {
		l.SetColorize(false)
	}
}

// ConfigureFromEnv applies environment-based configuration to the logger.
func ConfigureFromEnv(l *Logger) error {
	opts, err := LoadEnvOptions()
	if err != nil {
		return err
	}
	opts.Apply(l)
	return nil
}
