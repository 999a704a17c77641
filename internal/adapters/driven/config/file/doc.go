// Package file provides the TOML ConfigStore that persists leafdex
// settings to ~/.leafdex/config.toml.
package file
