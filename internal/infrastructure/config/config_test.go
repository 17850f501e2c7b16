package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_ValidConfig(t *testing.T) {
	// Create a temporary config file
	content := `
home_assistant:
  url: "http://homeassistant.local:8123"
  token: "llat-test-token"
  timeout: 30
logging:
  level: "debug"
  format: "json"
  file: "/tmp/assist.log"
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.HomeAssistant.URL != "http://homeassistant.local:8123" {
		t.Errorf("HomeAssistant.URL = %q, want %q", cfg.HomeAssistant.URL, "http://homeassistant.local:8123")
	}
	if cfg.HomeAssistant.Token != "llat-test-token" {
		t.Errorf("HomeAssistant.Token = %q, want %q", cfg.HomeAssistant.Token, "llat-test-token")
	}
	if cfg.GetTimeout() != 30*time.Second {
		t.Errorf("GetTimeout() = %v, want 30s", cfg.GetTimeout())
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}

	if cfg.HomeAssistant.Timeout != 15 {
		t.Errorf("default timeout = %d, want 15", cfg.HomeAssistant.Timeout)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default level = %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("default format = %q, want %q", cfg.Logging.Format, "text")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ASSIST_HASS_URL", "http://ha.example:8123")
	t.Setenv("ASSIST_HASS_TOKEN", "env-token")
	t.Setenv("ASSIST_HASS_TIMEOUT", "5")
	t.Setenv("ASSIST_LOG_FILE", "/tmp/from-env.log")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.HomeAssistant.URL != "http://ha.example:8123" {
		t.Errorf("URL = %q, want env value", cfg.HomeAssistant.URL)
	}
	if cfg.HomeAssistant.Token != "env-token" {
		t.Errorf("Token = %q, want env value", cfg.HomeAssistant.Token)
	}
	if cfg.HomeAssistant.Timeout != 5 {
		t.Errorf("Timeout = %d, want 5", cfg.HomeAssistant.Timeout)
	}
	if cfg.Logging.File != "/tmp/from-env.log" {
		t.Errorf("Logging.File = %q, want env value", cfg.Logging.File)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "valid",
			mutate:  func(c *Config) {},
			wantErr: "",
		},
		{
			name:    "missing url",
			mutate:  func(c *Config) { c.HomeAssistant.URL = "" },
			wantErr: "home_assistant.url is required",
		},
		{
			name:    "missing token",
			mutate:  func(c *Config) { c.HomeAssistant.Token = "" },
			wantErr: "home_assistant.token is required",
		},
		{
			name:    "non-http url",
			mutate:  func(c *Config) { c.HomeAssistant.URL = "homeassistant.local:8123" },
			wantErr: "must be an http(s) URL",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.HomeAssistant.Timeout = -1 },
			wantErr: "timeout must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.HomeAssistant.URL = "http://homeassistant.local:8123"
			cfg.HomeAssistant.Token = "token"
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}
