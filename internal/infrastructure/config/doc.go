// Package config handles loading and validating graylogic-assist configuration.
//
// This package manages:
//   - Loading configuration from an optional YAML file
//   - Overriding with environment variables (ASSIST_*)
//   - Validation of required fields
//   - Default value handling
//
// The Home Assistant base URL and access token are mandatory; everything
// else has working defaults. CLI flags are applied by the command layer
// after Load and before Validate, so the precedence is:
//
//	defaults < YAML file < environment < flags
//
// Security Considerations:
//   - The access token should be set via ASSIST_HASS_TOKEN or a flag rather
//     than committed to a config file
//   - A config file containing the token should have restricted permissions
//     (0600)
//
// Usage:
//
//	cfg, err := config.Load("assist.yaml")
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config
