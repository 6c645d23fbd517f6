package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader loads configuration with builder-style options.
//
// Usage:
//
//	cfg, err := config.NewLoader().
//	    WithConfigPath("topicroute.yaml").
//	    Load()
//
// Priority: defaults -> YAML file -> environment variables.
type Loader struct {
	configPath string
	envPrefix  string
	validators []func(*Config) error
}

// NewLoader creates a Loader with the TOPICROUTE env prefix.
func NewLoader() *Loader {
	return &Loader{
		envPrefix:  "TOPICROUTE",
		validators: make([]func(*Config) error, 0),
	}
}

// WithConfigPath sets the YAML config file path. An empty path skips
// file loading.
func (l *Loader) WithConfigPath(path string) *Loader {
	l.configPath = path
	return l
}

// WithEnvPrefix overrides the environment variable prefix.
func (l *Loader) WithEnvPrefix(prefix string) *Loader {
	l.envPrefix = prefix
	return l
}

// WithValidator adds an extra validation step run after loading.
func (l *Loader) WithValidator(v func(*Config) error) *Loader {
	l.validators = append(l.validators, v)
	return l
}

// Load resolves the configuration and validates it.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	if l.configPath != "" {
		if err := l.loadFromFile(cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	l.loadFromEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	for _, v := range l.validators {
		if err := v(cfg); err != nil {
			return nil, fmt.Errorf("config validation failed: %w", err)
		}
	}
	return cfg, nil
}

func (l *Loader) loadFromFile(cfg *Config) error {
	data, err := os.ReadFile(l.configPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", l.configPath, err)
	}
	// A file that sets routing.models or routing.sensitive_rules
	// replaces the built-in table rather than appending to it.
	fileCfg := &Config{}
	if err := yaml.Unmarshal(data, fileCfg); err != nil {
		return fmt.Errorf("parse %s: %w", l.configPath, err)
	}
	mergeConfig(cfg, fileCfg)
	return nil
}

func mergeConfig(dst, src *Config) {
	if src.Routing.DefaultModel != "" {
		dst.Routing.DefaultModel = src.Routing.DefaultModel
	}
	if len(src.Routing.Models) > 0 {
		dst.Routing.Models = src.Routing.Models
	}
	if len(src.Routing.Aliases) > 0 {
		dst.Routing.Aliases = src.Routing.Aliases
	}
	if len(src.Routing.SensitiveRules) > 0 {
		dst.Routing.SensitiveRules = src.Routing.SensitiveRules
	}
	if len(src.Routing.TechnicalKeywords) > 0 {
		dst.Routing.TechnicalKeywords = src.Routing.TechnicalKeywords
	}
	if src.Log.Level != "" {
		dst.Log.Level = src.Log.Level
	}
	if src.Log.Format != "" {
		dst.Log.Format = src.Log.Format
	}
}

// Environment overrides cover the scalar settings only; list-valued
// routing rules come from defaults or the YAML file.
func (l *Loader) loadFromEnv(cfg *Config) {
	if v := l.getenv("DEFAULT_MODEL"); v != "" {
		cfg.Routing.DefaultModel = v
	}
	if v := l.getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := l.getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

func (l *Loader) getenv(key string) string {
	return strings.TrimSpace(os.Getenv(l.envPrefix + "_" + key))
}
