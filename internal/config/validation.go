package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// Validate performs comprehensive validation of configuration values and
// reports every problem at once.
func Validate(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateProfiles(&config.Profiles)...)

	if config.Window.Width <= 0 || config.Window.Height <= 0 {
		validationErrors = append(validationErrors, "window.width and window.height must be positive")
	}

	for action, accel := range config.Keys {
		if !slices.Contains(KnownActions, action) {
			validationErrors = append(validationErrors, fmt.Sprintf("keys.%s is not a known action (known: %s)", action, strings.Join(KnownActions, ", ")))
		}
		if strings.TrimSpace(accel) == "" {
			validationErrors = append(validationErrors, fmt.Sprintf("keys.%s cannot be empty", action))
		}
	}

	if config.History.ListLimit < 0 {
		validationErrors = append(validationErrors, "history.list_limit must be non-negative")
	}

	switch config.Engine.HardwareAcceleration {
	case "", "auto", "always", "never":
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("engine.hardware_acceleration must be one of: auto, always, never (got: %s)", config.Engine.HardwareAcceleration))
	}

	// Validate logging values
	switch strings.ToLower(config.Logging.Level) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "off", "disabled":
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error, off (got: %s)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "", "console", "json":
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be one of: console, json (got: %s)", config.Logging.Format))
	}
	if config.Logging.MaxSize < 0 {
		validationErrors = append(validationErrors, "logging.max_size must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}

	// If there are validation errors, return them
	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateProfiles(p *ProfilesConfig) []string {
	var errs []string

	if len(p.Names) == 0 {
		errs = append(errs, "profiles.names must list at least one identity")
	}

	seen := make(map[string]bool, len(p.Names))
	for _, name := range p.Names {
		switch {
		case name == "" || name == "." || name == "..":
			errs = append(errs, fmt.Sprintf("profiles.names contains an invalid name %q", name))
		case filepath.Base(name) != name || strings.ContainsAny(name, `/\`):
			errs = append(errs, fmt.Sprintf("profiles.names entry %q must be a single path element", name))
		case seen[name]:
			errs = append(errs, fmt.Sprintf("profiles.names contains %q twice", name))
		}
		seen[name] = true
	}

	for _, name := range p.Ephemeral {
		if !seen[name] {
			errs = append(errs, fmt.Sprintf("profiles.ephemeral entry %q is not listed in profiles.names", name))
		}
	}
	return errs
}
