// Package config handles configuration loading and merging for cargo-yaml.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--color, --verbose, --quiet)
//  2. Environment variables (CARGO_YAML_COLOR, CARGO_YAML_NO_COLOR, NO_COLOR, CARGO_YAML_LOG, CARGO)
//  3. YAML config file (.cargo-yaml.yaml in the working directory or ~/.config/cargo-yaml/.cargo-yaml.yaml)
//  4. Hardcoded defaults
//
// When a higher-priority source sets a value, it overrides any lower-priority values.
//
// # Key Configuration Options
//
//   - color: always, auto or never
//   - log_level: error, warn, info, debug or trace
//   - cargo: the cargo binary run after generation (cargo itself exports CARGO to subcommands)
//   - header: whether the manifest starts with the "Auto-generated from" comment
//
// A config file that cannot be read or parsed is reported as a warning and
// the defaults are used; it never stops a run.
package config
