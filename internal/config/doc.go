// Package config manages githelper user configuration.
//
// It handles:
//   - Locating the user configuration file
//   - Reading YAML configuration with defaults for missing values
//   - Writing configuration back to disk
package config
