package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// File names probed in the scan root, in priority order
const (
	JSONConfigFile = ".todoboard.json"
	YAMLConfigFile = ".todoboard.yaml"
	YMLConfigFile  = ".todoboard.yml"
)

// ErrUnsupportedFormat is returned for config files that are neither JSON nor YAML
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config represents the full todoboard configuration
type Config struct {
	Scan   ScanConfig   `json:"scan" mapstructure:"scan"`
	Output OutputConfig `json:"output" mapstructure:"output"`
	Log    LogConfig    `json:"log" mapstructure:"log"`
}

// ScanConfig controls which documents are read and how references resolve
type ScanConfig struct {
	Globs         []string `json:"globs" mapstructure:"globs"`
	Exclude       []string `json:"exclude" mapstructure:"exclude"`
	ShortIDPrefix string   `json:"shortIdPrefix" mapstructure:"shortIdPrefix"`
}

// NoShortIDPrefix as scan.shortIdPrefix turns short-form references off
const NoShortIDPrefix = "none"

// ShortPrefix returns the prefix handed to resolution, empty when short
// forms are turned off
func (s ScanConfig) ShortPrefix() string {
	if strings.EqualFold(s.ShortIDPrefix, NoShortIDPrefix) {
		return ""
	}
	return s.ShortIDPrefix
}

// OutputConfig contains rendering settings
type OutputConfig struct {
	HTMLFile     string `json:"htmlFile" mapstructure:"htmlFile"`
	MissingLimit int    `json:"missingLimit" mapstructure:"missingLimit"`
	TitleWidth   int    `json:"titleWidth" mapstructure:"titleWidth"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			Globs:         []string{"*_TODO.md", "*_todo.md", "*-todo.md", "*-TODO.md", "TODO/**/*.md"},
			Exclude:       []string{"node_modules", ".git", "dist", "build", ".next", "__pycache__", "coverage", ".github", "archive"},
			ShortIDPrefix: "TODO-",
		},
		Output: OutputConfig{
			HTMLFile:     "index.html",
			MissingLimit: 15,
			TitleWidth:   45,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// LoadConfig loads configuration from the scan root with priority:
// 1. .todoboard.json (with version migration support)
// 2. .todoboard.yaml / .todoboard.yml
// 3. Defaults
func LoadConfig(projectPath string) (*Config, error) {
	jsonPath := filepath.Join(projectPath, JSONConfigFile)
	if data, err := os.ReadFile(jsonPath); err == nil {
		cfg, err := ParseVersionedConfig(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", JSONConfigFile, err)
		}
		return MergeWithDefaults(cfg), nil
	}

	for _, name := range []string{YAMLConfigFile, YMLConfigFile} {
		yamlPath := filepath.Join(projectPath, name)
		if _, err := os.Stat(yamlPath); err != nil {
			continue
		}
		cfg, err := loadYAML(yamlPath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		return MergeWithDefaults(cfg), nil
	}

	return DefaultConfig(), nil
}

// LoadFile loads an explicit config file, choosing the format by extension
func LoadFile(path string) (*Config, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		cfg, err := ParseVersionedConfig(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return MergeWithDefaults(cfg), nil
	case ".yaml", ".yml":
		cfg, err := loadYAML(path)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return MergeWithDefaults(cfg), nil
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

func loadYAML(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SaveConfig saves configuration to the specified path with version information
func SaveConfig(cfg *Config, path string) error {
	data, err := MarshalVersionedConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	// Merge Scan config
	if len(cfg.Scan.Globs) == 0 {
		cfg.Scan.Globs = defaults.Scan.Globs
	}
	if cfg.Scan.Exclude == nil {
		cfg.Scan.Exclude = defaults.Scan.Exclude
	}
	if cfg.Scan.ShortIDPrefix == "" {
		cfg.Scan.ShortIDPrefix = defaults.Scan.ShortIDPrefix
	}

	// Merge Output config
	if cfg.Output.HTMLFile == "" {
		cfg.Output.HTMLFile = defaults.Output.HTMLFile
	}
	if cfg.Output.MissingLimit <= 0 {
		cfg.Output.MissingLimit = defaults.Output.MissingLimit
	}
	if cfg.Output.TitleWidth <= 0 {
		cfg.Output.TitleWidth = defaults.Output.TitleWidth
	}

	// Merge Log config
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}

	return cfg
}
