// Package config provides configuration loading and validation for the twothree CLI.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig validates the configuration and returns a list of validation errors.
// An empty slice indicates the configuration is valid.
func ValidateConfig(config *Config) []error {
	var errs []error

	errs = append(errs, validateLogConfig(&config.Logging)...)
	errs = append(errs, validateOutputConfig(&config.Output)...)
	errs = append(errs, validateDemoConfig(&config.Demo)...)

	return errs
}

// Validate joins the results of ValidateConfig into a single error, or
// returns nil when the configuration is valid.
func Validate(config *Config) error {
	return errors.Join(ValidateConfig(config)...)
}

func validateLogConfig(config *LogConfig) []error {
	var errs []error

	switch strings.ToLower(config.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid log level %q, must be one of: debug, info, warn, error", config.Level),
		})
	}

	switch strings.ToLower(config.Format) {
	case "text", "json":
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("invalid log format %q, must be one of: text, json", config.Format),
		})
	}

	return errs
}

func validateOutputConfig(config *OutputConfig) []error {
	var errs []error

	seen := make(map[string]bool, len(config.Orders))
	for _, order := range config.Orders {
		switch order {
		case OrderPre, OrderIn, OrderPost:
		default:
			errs = append(errs, ValidationError{
				Field:   "output.orders",
				Message: fmt.Sprintf("invalid traversal order %q, must be one of: pre, in, post", order),
			})
			continue
		}
		if seen[order] {
			errs = append(errs, ValidationError{
				Field:   "output.orders",
				Message: fmt.Sprintf("traversal order %q listed twice", order),
			})
		}
		seen[order] = true
	}

	switch config.Render {
	case RenderLevels, RenderTree, RenderNone:
	default:
		errs = append(errs, ValidationError{
			Field:   "output.render",
			Message: fmt.Sprintf("invalid renderer %q, must be one of: levels, tree, none", config.Render),
		})
	}

	return errs
}

func validateDemoConfig(config *DemoConfig) []error {
	var errs []error

	if config.Sequential < 0 {
		errs = append(errs, ValidationError{
			Field:   "demo.sequential",
			Message: "must not be negative",
		})
	}

	return errs
}
