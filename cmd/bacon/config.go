// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds the optional config.yaml settings. Flags override
// anything loaded here.
type Config struct {
	// ReferenceActor is the fixed target of every score query.
	ReferenceActor string `yaml:"reference_actor" validate:"required"`

	// Dataset is the default dataset path for `bacon serve`.
	Dataset string `yaml:"dataset"`

	// Listen is the serve-mode bind address.
	Listen string `yaml:"listen" validate:"omitempty,hostname_port"`

	// CacheDir enables the persistent score cache in serve mode.
	// Empty means in-memory only.
	CacheDir string `yaml:"cache_dir"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`

	// LogDir enables file logging alongside stderr.
	LogDir string `yaml:"log_dir"`

	// RateLimit configures serve-mode request throttling.
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig is a token-bucket description. Zero PerSecond
// disables limiting.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second" validate:"gte=0"`
	Burst     int     `yaml:"burst" validate:"gte=0"`
}

// DefaultConfig returns the settings used when no config.yaml exists.
func DefaultConfig() Config {
	return Config{
		ReferenceActor: "Kevin Bacon",
		Listen:         "localhost:8440",
		LogLevel:       "info",
		RateLimit: RateLimitConfig{
			PerSecond: 50,
			Burst:     100,
		},
	}
}

// LoadConfig reads and validates the YAML config at path. A missing
// file is not an error; defaults are returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return cfg, fmt.Errorf("validating %s: %w", path, err)
	}

	return cfg, nil
}
