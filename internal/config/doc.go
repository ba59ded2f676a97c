// Package config loads, normalizes, and validates iosrename configuration.
//
// A configuration file is optional. When present it is read from the path
// given on the command line, ~/.config/iosrename/config.toml, or
// ./iosrename.toml, in that order. Command-line flags override file values;
// that merge happens in the CLI, not here.
package config
