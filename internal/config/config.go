// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from command-line flags, environment variables, an
// optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds behaviour settings of the forms and their submission seam.
	App App `envPrefix:"APP_"`

	// UI holds terminal rendering settings.
	UI UI `envPrefix:"UI_"`

	// Log holds logger destination and verbosity.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds behaviour settings of the forms.
type App struct {
	// StrictValidation adds email shape and password equality to the submit
	// gate. Off by default: only presence is checked.
	// Env: APP_STRICT_VALIDATION
	StrictValidation bool `env:"STRICT_VALIDATION"`

	// SubmitTimeout bounds a single call into the submission seam
	// (e.g. "5s").
	// Env: APP_SUBMIT_TIMEOUT
	SubmitTimeout time.Duration `env:"SUBMIT_TIMEOUT"`
}

// UI holds terminal rendering settings.
type UI struct {
	// Inline renders in the normal terminal buffer instead of the alternate
	// screen.
	// Env: UI_INLINE
	Inline bool `env:"INLINE"`

	// InputWidth is the visible width of every text input, in cells.
	// Env: UI_INPUT_WIDTH
	InputWidth int `env:"INPUT_WIDTH"`
}

// Log holds logger settings.
type Log struct {
	// File is the path of the log file. Empty means a "logs" file next to
	// the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Defaults applied after every other source.
const (
	DefaultSubmitTimeout = 5 * time.Second
	DefaultInputWidth    = 40
	DefaultLogLevel      = "debug"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{SubmitTimeout: DefaultSubmitTimeout},
		UI:  UI{InputWidth: DefaultInputWidth},
		Log: Log{Level: DefaultLogLevel},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources. args are the command-line arguments without the
// program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
