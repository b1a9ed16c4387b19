package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dkoosis/cargo-yaml/internal/cli"
	"github.com/dkoosis/cargo-yaml/internal/diag"
)

// Sources recorded in ResolvedConfig.
const (
	SourceCLI     = "cli"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// ResolvedConfig holds the final settings after applying all priority rules.
type ResolvedConfig struct {
	Color    cli.Color
	LogLevel diag.Level
	Cargo    string
	Header   bool

	// Resolution metadata (for debugging)
	ColorSource    string
	LogLevelSource string
	CargoSource    string
}

// ResolveConfig merges command-line options, environment and file config.
// Invalid values in the environment or the file are errors; the caller
// decides whether they are fatal.
func ResolveConfig(opts cli.Options, appCfg *AppConfig) (*ResolvedConfig, error) {
	if appCfg == nil {
		appCfg = &AppConfig{}
	}
	resolved := &ResolvedConfig{Header: appCfg.WriteHeader()}

	var err error
	if resolved.Color, resolved.ColorSource, err = resolveColor(opts, appCfg); err != nil {
		return nil, err
	}
	if resolved.LogLevel, resolved.LogLevelSource, err = resolveLogLevel(opts, appCfg); err != nil {
		return nil, err
	}
	resolved.Cargo, resolved.CargoSource = resolveCargo(appCfg)
	return resolved, nil
}

// resolveColor: CLI > CARGO_YAML_COLOR > CARGO_YAML_NO_COLOR/NO_COLOR > file > auto.
func resolveColor(opts cli.Options, appCfg *AppConfig) (cli.Color, string, error) {
	if opts.ColorSet {
		return opts.Color, SourceCLI, nil
	}
	if env := os.Getenv("CARGO_YAML_COLOR"); env != "" {
		c, ok := cli.ParseColor(env)
		if !ok {
			return cli.ColorAuto, "", fmt.Errorf("invalid CARGO_YAML_COLOR value: %s (must be: always, auto, never)", env)
		}
		return c, SourceEnv, nil
	}
	if noColor := getEnvBool("CARGO_YAML_NO_COLOR", "NO_COLOR"); noColor != nil && *noColor {
		return cli.ColorNever, SourceEnv, nil
	}
	if appCfg.Color != "" {
		c, ok := cli.ParseColor(appCfg.Color)
		if !ok {
			return cli.ColorAuto, "", fmt.Errorf("invalid color value in %s: %s (must be: always, auto, never)", appCfg.Path, appCfg.Color)
		}
		return c, SourceFile, nil
	}
	return cli.ColorAuto, SourceDefault, nil
}

// resolveLogLevel: -v/-q > CARGO_YAML_LOG > file log_level > info.
func resolveLogLevel(opts cli.Options, appCfg *AppConfig) (diag.Level, string, error) {
	switch opts.Verbosity {
	case cli.Verbose:
		return diag.Debug, SourceCLI, nil
	case cli.Quiet:
		return diag.Warn, SourceCLI, nil
	}
	if env := os.Getenv("CARGO_YAML_LOG"); env != "" {
		level, err := diag.ParseLevel(env)
		if err != nil {
			return diag.Info, "", fmt.Errorf("invalid CARGO_YAML_LOG: %w", err)
		}
		return level, SourceEnv, nil
	}
	if appCfg.LogLevel != "" {
		level, err := diag.ParseLevel(appCfg.LogLevel)
		if err != nil {
			return diag.Info, "", fmt.Errorf("invalid log_level in %s: %w", appCfg.Path, err)
		}
		return level, SourceFile, nil
	}
	return diag.Info, SourceDefault, nil
}

// resolveCargo: CARGO (exported by cargo to its subcommands) > file > "cargo".
func resolveCargo(appCfg *AppConfig) (string, string) {
	if env := os.Getenv("CARGO"); env != "" {
		return env, SourceEnv
	}
	if appCfg.Cargo != "" {
		return appCfg.Cargo, SourceFile
	}
	return DefaultCargo, SourceDefault
}

// getEnvBool reads a boolean from environment variables, trying multiple keys.
// Returns nil if none are set, or a pointer to the boolean value.
func getEnvBool(keys ...string) *bool {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				return &b
			}
		}
	}
	return nil
}
