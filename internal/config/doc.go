// Package config loads and validates the crate configuration file.
//
// Configuration lives in a TOML file resolved from an explicit --config
// flag, ~/.config/crate/config.toml, or ./crate.toml in that order. All
// path fields are expanded and absolute after Load returns.
package config
