// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package config loads tool configuration from file, environment, and
// defaults, in that order of increasing precedence for the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the settings the CLI needs beyond its flags.
type Config struct {
	// Catalog is the path of the YAML module catalog.
	Catalog string `mapstructure:"catalog"`
	// CalendarName labels exported calendars and Anki decks.
	CalendarName string `mapstructure:"calendar_name"`
	// OutputFile is the default export target when --output is not given.
	OutputFile string `mapstructure:"output_file"`
	// StartDate is the default schedule start in YYYY-MM-DD form; empty
	// means today.
	StartDate string `mapstructure:"start_date"`
}

// Load reads config from $HOME/.config/arc-recall/config.yaml (or the
// working directory) and ARC_RECALL_* environment variables. A missing
// config file is fine; defaults cover every field.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.config/arc-recall")
	v.AddConfigPath(".")

	v.SetEnvPrefix("ARC_RECALL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("catalog", "catalog.yaml")
	v.SetDefault("calendar_name", "Study Schedule")
	v.SetDefault("output_file", "")
	v.SetDefault("start_date", "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
