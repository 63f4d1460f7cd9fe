// Package config handles configuration loading from YAML files and environment variables.
// Configuration precedence: CLI flags > environment variables > config file > defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Duration is a wrapper around time.Duration that supports YAML unmarshaling
// from human-readable strings like "500ms", "5s", "1m".
type Duration struct {
	time.Duration
}

// UnmarshalYAML implements the yaml.Unmarshaler interface for Duration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		parsed, err := time.ParseDuration(value.Value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value.Value, err)
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("unsupported duration format: %v", value.Kind)
	}
}

// MarshalYAML implements the yaml.Marshaler interface for Duration.
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// Pipeline names accepted by the pipeline key.
var pipelines = map[string]bool{
	"auto":    true,
	"linux":   true,
	"windows": true,
}

// Config holds all hostinfo configuration.
type Config struct {
	Pipeline string         `yaml:"pipeline"`
	Logging  LoggingConfig  `yaml:"logging"`
	Sources  SourcesConfig  `yaml:"sources"`
	Timeouts TimeoutsConfig `yaml:"timeouts"`
}

// LoggingConfig holds logging settings. An empty File disables the file sink.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// SourcesConfig locates the host files and commands the probes read.
// OSRelease and Proc are resolved under Root.
type SourcesConfig struct {
	Root       string `yaml:"root"`
	OSRelease  string `yaml:"os_release"`
	Proc       string `yaml:"proc"`
	LSBRelease string `yaml:"lsb_release"`
}

// TimeoutsConfig bounds external commands. Zero means no limit.
type TimeoutsConfig struct {
	Command Duration `yaml:"command"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Pipeline: "auto",
		Logging: LoggingConfig{
			Level:      "warn",
			File:       "",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Sources: SourcesConfig{
			Root:       "/",
			OSRelease:  "/etc/os-release",
			Proc:       "/proc",
			LSBRelease: "lsb_release",
		},
	}
}

// LoadFromBytes parses YAML configuration from a byte slice and merges with defaults.
// Environment variables, including those loaded from ./.env, take precedence
// over values from the byte slice.
func LoadFromBytes(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config data: %w", err)
		}
	}

	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)

	return cfg, nil
}

// CLIOverrides holds values from command-line flags.
// Empty strings are treated as "not set" and skipped.
type CLIOverrides struct {
	Pipeline string
	LogLevel string
	Root     string
}

// Locate searches standard config file paths and returns the first one found.
// Returns empty string if no config file exists.
func Locate() string {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// LoadLayered loads configuration with the full precedence chain:
// CLI flags > env vars (including a .env file) > YAML file > defaults.
//
// An optional configPath argument controls file discovery:
//   - omitted: auto-discover via Locate()
//   - explicit value: use that path ("" means no file); a missing explicit
//     file is an error
func LoadLayered(cli CLIOverrides, configPath ...string) (*Config, error) {
	var filePath string
	if len(configPath) > 0 {
		filePath = configPath[0]
	} else {
		filePath = Locate()
	}

	var data []byte
	if filePath != "" {
		var err error
		data, err = os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", filePath, err)
		}
	}

	cfg, err := LoadFromBytes(data)
	if err != nil {
		if filePath != "" {
			return nil, fmt.Errorf("config file %s: %w", filePath, err)
		}
		return nil, err
	}

	if cli.Pipeline != "" {
		cfg.Pipeline = cli.Pipeline
	}
	if cli.LogLevel != "" {
		cfg.Logging.Level = cli.LogLevel
	}
	if cli.Root != "" {
		cfg.Sources.Root = cli.Root
	}

	return cfg, nil
}

// WriteConfig serializes the config to a YAML file at the given path.
// Creates parent directories if needed.
func WriteConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// loadDotEnv reads ./.env into the process environment when present.
// Variables already set are left alone.
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("loading .env: %w", err)
}

// applyEnvOverrides applies HOSTINFO_* environment variable overrides.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HOSTINFO_PIPELINE"); v != "" {
		cfg.Pipeline = v
	}
	if v := os.Getenv("HOSTINFO_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("HOSTINFO_LOG_FILE"); v != "" {
		cfg.Logging.File = v
	}
	if v := os.Getenv("HOSTINFO_ROOT"); v != "" {
		cfg.Sources.Root = v
	}
	if v := os.Getenv("HOSTINFO_PROC"); v != "" {
		cfg.Sources.Proc = v
	}
}

// Validate checks the configuration before any probe runs.
func (c *Config) Validate() error {
	c.Pipeline = strings.ToLower(strings.TrimSpace(c.Pipeline))
	if !pipelines[c.Pipeline] {
		return fmt.Errorf("unknown pipeline %q (want auto, linux or windows)", c.Pipeline)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if c.Logging.MaxSizeMB < 0 || c.Logging.MaxBackups < 0 {
		return fmt.Errorf("log rotation limits must not be negative")
	}
	if c.Timeouts.Command.Duration < 0 {
		return fmt.Errorf("command timeout must not be negative (got %s)", c.Timeouts.Command.Duration)
	}
	if c.Sources.Proc == "" || c.Sources.OSRelease == "" {
		return fmt.Errorf("sources.proc and sources.os_release are required")
	}
	return nil
}
