// Package config provides configuration loading, merging, and validation
// facilities for the BANK 2025 client.
//
// Configuration is assembled from multiple sources. Sources are merged with
// mergo without override, so the first source that sets a field wins:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetClientConfig].
package config
