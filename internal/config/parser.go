// Package config provides configuration loading and validation for the twothree CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser errors.
var (
	ErrFileNotFound = errors.New("configuration file not found")
	ErrInvalidYAML  = errors.New("invalid YAML format")
	ErrInvalidEnv   = errors.New("invalid environment override")
)

// EnvPrefix prefixes every environment override, as in
// TWOTHREE_LOGGING_LEVEL=debug.
const EnvPrefix = "TWOTHREE_"

// LoadConfig loads configuration from a file path.
// It reads the file, substitutes environment variables, parses YAML,
// and applies defaults for missing values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	return ParseConfig(data)
}

// ParseConfig parses configuration from YAML data on top of DefaultConfig.
// Sequences in the document replace the default sequences.
func ParseConfig(data []byte) (*Config, error) {
	data = substituteEnvVars(data)

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return config, nil
}

// substituteEnvVars replaces ${VAR} and ${VAR:-default} patterns with environment variable values.
func substituteEnvVars(data []byte) []byte {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)

	return re.ReplaceAllFunc(data, func(match []byte) []byte {
		content := string(match[2 : len(match)-1])

		if idx := strings.Index(content, ":-"); idx != -1 {
			if val := os.Getenv(content[:idx]); val != "" {
				return []byte(val)
			}
			return []byte(content[idx+2:])
		}

		return []byte(os.Getenv(content))
	})
}

// ApplyEnv overrides configuration values from environment variables named
// TWOTHREE_<SECTION>_<KEY>. lookup is usually os.LookupEnv. List values are
// comma separated.
func ApplyEnv(config *Config, lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}
	list := func(name string) ([]string, bool) {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return nil, false
		}
		return splitList(v), true
	}

	str("LOGGING_LEVEL", &config.Logging.Level)
	str("LOGGING_FORMAT", &config.Logging.Format)
	str("LOGGING_OUTPUT", &config.Logging.Output)
	str("OUTPUT_RENDER", &config.Output.Render)

	if orders, ok := list("OUTPUT_ORDERS"); ok {
		config.Output.Orders = orders
	}

	if v, ok := lookup(EnvPrefix + "DEMO_SEQUENTIAL"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %sDEMO_SEQUENTIAL: %v", ErrInvalidEnv, EnvPrefix, err)
		}
		config.Demo.Sequential = n
	}

	if items, ok := list("DEMO_KEYS"); ok {
		keys, err := ParseKeys(items)
		if err != nil {
			return fmt.Errorf("%w: %sDEMO_KEYS: %v", ErrInvalidEnv, EnvPrefix, err)
		}
		config.Demo.Keys = keys
	}

	return nil
}

// ParseKeys converts decimal strings into integer keys.
func ParseKeys(items []string) ([]int, error) {
	keys := make([]int, 0, len(items))
	for _, item := range items {
		k, err := strconv.Atoi(strings.TrimSpace(item))
		if err != nil {
			return nil, fmt.Errorf("invalid key %q", item)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
