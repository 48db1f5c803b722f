// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/rs/zerolog"

// validate checks the merged [StructuredConfig]. Zero values are accepted
// because defaults may still be merged in; only values that can never work
// are rejected.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SubmitTimeout < 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.UI.InputWidth < 0 {
		return ErrInvalidUIConfigs
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			return ErrInvalidLogConfigs
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.App.SubmitTimeout <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.UI.InputWidth <= 0 {
		return ErrInvalidUIConfigs
	}

	return nil
}
