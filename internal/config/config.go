package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"modemap/internal/errors"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
type Config struct {
	Editor struct {
		DefaultFilename string   `yaml:"default_filename"` // Base name proposed when a filename has none
		PreviewModes    []string `yaml:"preview_modes"`    // Modes that can be rendered as a preview
		MimeFallback    bool     `yaml:"mime_fallback"`    // Resolve modes through the MIME table by extension
	} `yaml:"editor"`
	Filter struct {
		MaxResults int `yaml:"max_results"` // Maximum node filter results shown
	} `yaml:"filter"`
	Scan struct {
		SkipDirs   []string `yaml:"skip_dirs"`   // Directory names never descended into
		SniffLimit uint32   `yaml:"sniff_limit"` // Bytes read for content sniffing
	} `yaml:"scan"`
	Logging struct {
		Level  string `yaml:"level"`  // logrus level name
		Format string `yaml:"format"` // text or json
		Output string `yaml:"output"` // stdout, stderr or a file path
	} `yaml:"logging"`
}

// DefaultPath returns ~/.config/modemap/config.yaml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "modemap", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, errors.NewConfigError("cannot locate home directory", "", errors.ConfigNotFound, err)
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.NewFileError("error reading config file", path, errors.FileAccessDenied, err)
	}

	// Decode onto the defaults so unset fields keep their default values
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// defaultConfig returns the default configuration.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Editor.DefaultFilename = "filename1"
	cfg.Editor.PreviewModes = []string{"markdown", "rst", "gfm"}
	cfg.Editor.MimeFallback = true

	cfg.Filter.MaxResults = 20

	cfg.Scan.SkipDirs = []string{".git", ".hg", ".svn", "node_modules"}
	cfg.Scan.SniffLimit = 3072

	cfg.Logging.Level = "info"
	cfg.Logging.Format = "text"
	cfg.Logging.Output = "stderr"

	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.NewFileError("failed to create config directory", dir, errors.FileOperationFailed, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.NewFileError("failed to write config file", path, errors.FileOperationFailed, err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", errors.InvalidConfig, nil)
	}

	if strings.ContainsAny(c.Editor.DefaultFilename, `/\`) {
		return errors.NewConfigError("default filename must not contain path separators", "editor.default_filename", errors.InvalidConfig, nil)
	}

	if c.Filter.MaxResults < 1 {
		return errors.NewConfigError("max results must be >= 1", "filter.max_results", errors.InvalidConfig, nil)
	}

	for i, dir := range c.Scan.SkipDirs {
		if dir == "" {
			return errors.NewConfigError(fmt.Sprintf("skip dir %d is empty", i), "scan.skip_dirs", errors.InvalidConfig, nil)
		}
	}

	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		return errors.NewConfigError("invalid log level", "logging.level", errors.InvalidConfig, err)
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return errors.NewConfigError(fmt.Sprintf("unknown log format %q", c.Logging.Format), "logging.format", errors.InvalidConfig, nil)
	}

	return nil
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// SkipDir reports whether a directory named name is excluded from scans
func (c *Config) SkipDir(name string) bool {
	for _, dir := range c.Scan.SkipDirs {
		if dir == name {
			return true
		}
	}
	return false
}
