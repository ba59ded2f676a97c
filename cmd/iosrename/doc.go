// Package main hosts the iosrename CLI entrypoint and command graph.
//
// The root command renames the IMG_NNNN photos and videos of one directory
// to capture-timestamp names. Flags override values from the optional TOML
// config file; the config subcommands scaffold and check that file.
package main
