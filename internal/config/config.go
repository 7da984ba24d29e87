package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"gca.dev/gca/internal/conventional"
)

// Environment variables read by gca
const (
	EnvConfigPath     = "GCA_CONFIG"
	EnvLogFile        = "GCA_LOG_FILE"
	EnvNonInteractive = "GCA_NON_INTERACTIVE"
)

// Config represents the user configuration
type Config struct {
	Timestamp *bool               `yaml:"timestamp,omitempty"`
	LogFile   string              `yaml:"logFile,omitempty"`
	Templates map[string][]string `yaml:"templates,omitempty"`
}

// DefaultPath returns the config file path: $GCA_CONFIG, or gca/config.yaml under the user config dir
func DefaultPath() string {
	if customPath := os.Getenv(EnvConfigPath); customPath != "" {
		return customPath
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, "gca", "config.yaml")
}

// Load reads the configuration at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks that every templates key names a known commit type
func (c *Config) Validate() error {
	for name := range c.Templates {
		if _, ok := conventional.ParseType(name); !ok {
			return fmt.Errorf("unknown commit type %q in templates", name)
		}
	}
	return nil
}

// TimestampEnabled reports whether commit subjects get a trailing timestamp (default true)
func (c *Config) TimestampEnabled() bool {
	return c.Timestamp == nil || *c.Timestamp
}

// ExtraTemplates returns the configured descriptions for t
func (c *Config) ExtraTemplates(t conventional.Type) []string {
	for name, descriptions := range c.Templates {
		if parsed, ok := conventional.ParseType(name); ok && parsed == t {
			return descriptions
		}
	}
	return nil
}

// LogFilePath returns the file log path: $GCA_LOG_FILE, then logFile from the config.
// A leading "~/" is expanded to the home directory. Empty disables file logging.
func (c *Config) LogFilePath() string {
	path := c.LogFile
	if envPath := os.Getenv(EnvLogFile); envPath != "" {
		path = envPath
	}

	if strings.HasPrefix(path, "~/") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(homeDir, path[2:])
		}
	}
	return path
}

// NonInteractive reports whether terminal prompts are disabled
func NonInteractive() bool {
	return os.Getenv(EnvNonInteractive) != ""
}
