// Package config loads and validates server configuration from an
// optional YAML file, with defaults suitable for local use.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default browser settings applied when the config file omits them.
const (
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 720
	DefaultTimeoutMs      = 30000
	DefaultLogLevel       = "info"
)

// Config is the full server configuration.
type Config struct {
	Browser  BrowserConfig  `yaml:"browser"`
	Security SecurityConfig `yaml:"security"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// BrowserConfig controls how the Playwright browser is launched.
type BrowserConfig struct {
	Headless       bool `yaml:"headless"`
	ViewportWidth  int  `yaml:"viewport_width"`
	ViewportHeight int  `yaml:"viewport_height"`
	TimeoutMs      int  `yaml:"timeout_ms"`
	SkipInstall    bool `yaml:"skip_install"`
}

// SecurityConfig restricts which origins the navigate tool may visit.
// Hostnames are matched against glob patterns; denied patterns take
// precedence, and an empty allowed list permits every origin not denied.
type SecurityConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
	DeniedOrigins  []string `yaml:"denied_origins"`
}

// LoggingConfig controls diagnostic output.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Browser: BrowserConfig{
			Headless:       true,
			ViewportWidth:  DefaultViewportWidth,
			ViewportHeight: DefaultViewportHeight,
			TimeoutMs:      DefaultTimeoutMs,
		},
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Load reads the config file at path and merges it over the defaults.
// A missing file is not an error when explicit is false (the caller is
// probing the default location); it is an error when the user named the
// path themselves.
func Load(path string, explicit bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// applyDefaults fills zero values left by a partial config file.
func (c *Config) applyDefaults() {
	if c.Browser.ViewportWidth == 0 {
		c.Browser.ViewportWidth = DefaultViewportWidth
	}
	if c.Browser.ViewportHeight == 0 {
		c.Browser.ViewportHeight = DefaultViewportHeight
	}
	if c.Browser.TimeoutMs == 0 {
		c.Browser.TimeoutMs = DefaultTimeoutMs
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.Browser.ViewportWidth < 0 || c.Browser.ViewportHeight < 0 {
		return fmt.Errorf("viewport dimensions must not be negative, got %dx%d",
			c.Browser.ViewportWidth, c.Browser.ViewportHeight)
	}
	if c.Browser.TimeoutMs < 0 {
		return fmt.Errorf("timeout_ms must not be negative, got %d", c.Browser.TimeoutMs)
	}
	if _, err := NewOriginMatcher(c.Security.AllowedOrigins, c.Security.DeniedOrigins); err != nil {
		return err
	}
	return nil
}
