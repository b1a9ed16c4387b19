package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory and in
// the user config directory.
const FileName = ".cargo-yaml.yaml"

// DefaultCargo is the cargo binary used when nothing else is configured.
const DefaultCargo = "cargo"

// AppConfig represents the contents of .cargo-yaml.yaml.
type AppConfig struct {
	Color    string `yaml:"color"`
	LogLevel string `yaml:"log_level"`
	Cargo    string `yaml:"cargo"`
	Header   *bool  `yaml:"header"`

	// Path is the file the values were read from, empty for defaults.
	Path string `yaml:"-"`
}

// WriteHeader reports whether the generated manifest gets a header line.
func (c *AppConfig) WriteHeader() bool {
	return c.Header == nil || *c.Header
}

// LoadConfig loads the config file, if any. The returned config is always
// usable; a non-nil error describes a file that was found but ignored and
// is meant to be shown as a warning.
func LoadConfig() (*AppConfig, error) {
	appCfg := &AppConfig{}

	configPath := getConfigPath()
	if configPath == "" {
		return appCfg, nil
	}

	yamlFile, err := os.ReadFile(configPath)
	if err != nil {
		return appCfg, fmt.Errorf("reading config file %s: %w", configPath, err)
	}

	var fileCfg AppConfig
	if err := yaml.Unmarshal(yamlFile, &fileCfg); err != nil {
		return appCfg, fmt.Errorf("parsing config file %s: %w", configPath, err)
	}
	fileCfg.Path = configPath
	return &fileCfg, nil
}

// getConfigPath tries to find the config file. It checks the working
// directory first, then the user config directory.
func getConfigPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	configHome, err := os.UserConfigDir()
	// An empty or root config dir is not usable for a per-user path.
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "cargo-yaml", FileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}
