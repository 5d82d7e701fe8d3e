// Package config loads the application configuration: output format, front
// matter fields, and output placement. CLI flags override file values.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/gddocs/internal/errors"
)

// Config represents the application configuration
type Config struct {
	Format string       `yaml:"format"` // "markdown" or "hugo"
	Author string       `yaml:"author,omitempty"`
	Date   string       `yaml:"date,omitempty"` // YYYY-MM-DD; defaults to today when empty
	Output OutputConfig `yaml:"output"`
	Verify bool         `yaml:"verify"` // Audit rendered documents before writing
}

// OutputConfig represents output configuration
type OutputConfig struct {
	Directory string `yaml:"directory"`
	Clean     bool   `yaml:"clean"` // Clean output directory before writing
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Format: "markdown",
		Output: OutputConfig{Directory: "./export"},
	}
}

// Load loads configuration from the specified file. Environment variables in
// the YAML content are expanded, and a .env file is loaded first when one
// exists.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Note: .env file couldn't be loaded: %v\n", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, errors.ConfigError(fmt.Sprintf("configuration file not found: %s", configPath))
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to read config file")
	}

	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to parse config file")
	}
	return cfg, nil
}

// LoadOrDefault loads the config file when it exists and falls back to the
// defaults when it does not. Any other failure is still an error.
func LoadOrDefault(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(configPath)
}

// Init writes a starter configuration file.
func Init(configPath string, force bool) error {
	if !force {
		if _, err := os.Stat(configPath); err == nil {
			return errors.ConfigError(fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", configPath))
		}
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "failed to serialize default config")
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write config file")
	}
	return nil
}
