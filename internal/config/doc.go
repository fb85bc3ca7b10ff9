// Package config loads and validates the TOML configuration for timecard.
//
// Configuration is looked up at ~/.config/timecard/config.toml, falling back
// to ./timecard.toml, and every path field is tilde-expanded and normalized to
// an absolute path during load. Missing files are fine: defaults cover every
// field, so the CLI works with no config at all.
package config
