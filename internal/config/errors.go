package config

import "errors"

// Validation errors returned when the merged configuration is unusable.
var (
	// ErrInvalidAppConfigs indicates invalid form behaviour settings
	// (for example, a negative submit timeout).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidUIConfigs indicates invalid rendering settings
	// (for example, a non-positive input width).
	ErrInvalidUIConfigs = errors.New("invalid ui configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
