// Package cli interprets the cargo-yaml command line.
//
// Interpretation is a left fold over the tokens driven by a small state
// machine. Every option may be given at most once: a repeated or
// conflicting option is a usage error rather than "last one wins", so the
// order of arguments never changes the outcome.
package cli

import (
	"errors"
	"fmt"
)

// Defaults for options left unset on the command line.
const (
	DefaultManifestPath = "Cargo.toml"
	DefaultTemplatePath = "Cargo.yaml"
)

var (
	// ErrShowUsage is returned when the invocation is not valid, or when
	// help was requested.
	ErrShowUsage = errors.New("show usage")

	// ErrHelp is returned for an explicit -h/--help. It wraps ErrShowUsage.
	ErrHelp = fmt.Errorf("help requested: %w", ErrShowUsage)
)

// Color selects when diagnostics are colorized.
type Color int

const (
	ColorAuto Color = iota
	ColorAlways
	ColorNever
)

func (c Color) String() string {
	switch c {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// ParseColor accepts exactly "always", "auto" or "never".
func ParseColor(s string) (Color, bool) {
	switch s {
	case "always":
		return ColorAlways, true
	case "auto":
		return ColorAuto, true
	case "never":
		return ColorNever, true
	default:
		return ColorAuto, false
	}
}

// Verbosity is the amount of progress output.
type Verbosity int

const (
	Normal Verbosity = iota
	Verbose
	Quiet
)

func (v Verbosity) String() string {
	switch v {
	case Verbose:
		return "verbose"
	case Quiet:
		return "quiet"
	default:
		return "normal"
	}
}

// Options is the resolved command line.
type Options struct {
	Color        Color
	ColorSet     bool // Color came from --color rather than the default
	Verbosity    Verbosity
	ManifestPath string
	TemplatePath string
}
