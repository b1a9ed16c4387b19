package cli

import (
	"fmt"
	"io"
)

// SubcommandName is the argument cargo inserts when cargo-yaml runs as
// `cargo yaml`.
const SubcommandName = "yaml"

const usage = `Generate a Cargo.toml manifest from a Cargo.yaml template.

Usage:
    cargo yaml [options] [<template-path>] [-- <cargo-args>...]

Arguments:
    <template-path>          Template to read, - for stdin [default: %s]
    <cargo-args>             Arguments for a cargo command run after generating

Options:
    -h, --help               Print this message
    -v, --verbose            Use verbose output
    -q, --quiet              No output printed to stdout
    --color WHEN             Coloring: always, auto, never [default: auto]
    --manifest-path PATH     Path of the manifest to write [default: %s]
`

// Usage returns the help text.
func Usage() string {
	return fmt.Sprintf(usage, DefaultTemplatePath, DefaultManifestPath)
}

// PrintUsage writes the help text to w.
func PrintUsage(w io.Writer) {
	_, _ = io.WriteString(w, Usage())
}

// SplitArgs separates our own tokens from those meant for cargo. args
// excludes the program name. A leading "yaml" (present when invoked by
// cargo) is dropped, and everything after the first "--" is returned as
// passthrough.
func SplitArgs(args []string) (own, passthrough []string) {
	if len(args) > 0 && args[0] == SubcommandName {
		args = args[1:]
	}
	for i, arg := range args {
		if arg == "--" {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}
