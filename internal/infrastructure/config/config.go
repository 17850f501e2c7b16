package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for graylogic-assist.
// All configuration can be loaded from YAML and overridden by environment
// variables; the command layer applies CLI flags on top.
type Config struct {
	HomeAssistant HomeAssistantConfig `yaml:"home_assistant"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// HomeAssistantConfig contains the upstream Home Assistant connection
// settings. URL and Token are mandatory.
type HomeAssistantConfig struct {
	// URL is the base URL of the Home Assistant instance, without the
	// /api suffix (e.g. "http://homeassistant.local:8123"). A trailing
	// slash is tolerated and stripped by the client.
	URL string `yaml:"url"`

	// Token is a long-lived access token, forwarded as a bearer token on
	// every upstream call.
	Token string `yaml:"token"`

	// Timeout is the HTTP client timeout in seconds. 0 selects the
	// client's default. There is no per-call override.
	Timeout int `yaml:"timeout"`
}

// LoggingConfig contains logging settings. Output is always stderr;
// File optionally duplicates diagnostics to an append-only log file.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Load reads configuration from an optional YAML file and applies
// environment variable overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values, when a path is given (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: ASSIST_SECTION_KEY
// For example: ASSIST_HASS_URL, ASSIST_HASS_TOKEN, ASSIST_LOG_FILE
//
// Load does not validate; the command layer applies flag overrides first
// and then calls Validate.
//
// Parameters:
//   - path: Path to the YAML configuration file, or "" for no file
//
// Returns:
//   - *Config: Loaded configuration
//   - error: If the file cannot be read or parsed
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// defaultConfig returns a Config with sensible defaults.
func defaultConfig() *Config {
	return &Config{
		HomeAssistant: HomeAssistantConfig{
			Timeout: 15,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. Environment variables follow the pattern: ASSIST_SECTION_KEY
func applyEnvOverrides(cfg *Config) {
	// Home Assistant
	if v := os.Getenv("ASSIST_HASS_URL"); v != "" {
		cfg.HomeAssistant.URL = v
	}
	if v := os.Getenv("ASSIST_HASS_TOKEN"); v != "" {
		cfg.HomeAssistant.Token = v
	}
	if v := os.Getenv("ASSIST_HASS_TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.HomeAssistant.Timeout = n
		}
	}

	// Logging
	if v := os.Getenv("ASSIST_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("ASSIST_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("ASSIST_LOG_FILE"); v != "" {
		cfg.Logging.File = v
	}
}

// Validate checks the configuration for errors.
//
// Returns:
//   - error: Description of validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	if c.HomeAssistant.URL == "" {
		errs = append(errs, "home_assistant.url is required (set ASSIST_HASS_URL or --url)")
	} else if u, err := url.Parse(c.HomeAssistant.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		errs = append(errs, "home_assistant.url must be an http(s) URL")
	}

	if c.HomeAssistant.Token == "" {
		errs = append(errs, "home_assistant.token is required (set ASSIST_HASS_TOKEN or --token)")
	}

	if c.HomeAssistant.Timeout < 0 {
		errs = append(errs, "home_assistant.timeout must not be negative")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// GetTimeout returns the upstream HTTP timeout as a Duration.
func (c *Config) GetTimeout() time.Duration {
	return time.Duration(c.HomeAssistant.Timeout) * time.Second
}
