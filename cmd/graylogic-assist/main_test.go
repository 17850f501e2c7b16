package main

import "testing"

func TestLoadConfig_FlagOverrides(t *testing.T) {
	t.Setenv("ASSIST_HASS_URL", "http://from-env:8123")
	t.Setenv("ASSIST_HASS_TOKEN", "env-token")

	flagURL = "http://from-flag:8123"
	flagLogLevel = "debug"
	defer func() {
		flagURL = ""
		flagLogLevel = ""
	}()

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}

	// Flags win over environment; untouched fields keep env values.
	if cfg.HomeAssistant.URL != "http://from-flag:8123" {
		t.Errorf("URL = %q, want flag value", cfg.HomeAssistant.URL)
	}
	if cfg.HomeAssistant.Token != "env-token" {
		t.Errorf("Token = %q, want env value", cfg.HomeAssistant.Token)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestConfigPath(t *testing.T) {
	t.Setenv("ASSIST_CONFIG", "/etc/assist/config.yaml")

	if got := configPath(); got != "/etc/assist/config.yaml" {
		t.Errorf("configPath() = %q, want env value", got)
	}

	flagConfig = "/tmp/override.yaml"
	defer func() { flagConfig = "" }()

	if got := configPath(); got != "/tmp/override.yaml" {
		t.Errorf("configPath() = %q, want flag value", got)
	}
}
