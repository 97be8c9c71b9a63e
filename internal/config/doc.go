// Package config provides configuration loading and validation for the twothree CLI.
//
// # Overview
//
// The config package handles loading and validating CLI configuration from
// YAML files and environment variables. It supports:
//
//   - YAML configuration files
//   - ${VAR} and ${VAR:-default} substitution inside files
//   - Environment variable overrides
//   - Default values for all settings
//
// # Loading Configuration
//
//	cfg, err := config.LoadConfig("twothree.yaml")
//	if err != nil {
//	    return err
//	}
//
// Or use defaults:
//
//	cfg := config.DefaultConfig()
//
// # Environment Variables
//
// Values can be overridden with variables named TWOTHREE_<SECTION>_<KEY>:
//
//	TWOTHREE_LOGGING_LEVEL=debug
//	TWOTHREE_OUTPUT_ORDERS=in,post
//	TWOTHREE_DEMO_KEYS=5,3,8
//
// # Example Configuration
//
//	logging:
//	  level: debug
//	  format: json
//
//	output:
//	  orders: [in]
//	  render: tree
//
//	demo:
//	  sequential: 10
//	  keys: [8, 4, 12, 2, 6, 10, 14]
package config
