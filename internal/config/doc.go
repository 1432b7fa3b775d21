// Package config handles configuration file parsing and validation for awsranges.
//
// This package reads TOML configuration files and provides strongly-typed
// structures for accessing configuration data. The configuration file is
// optional: commands fall back to built-in defaults when it does not exist.
//
// # Configuration Structure
//
// The configuration file defines:
//   - General settings (document URL, download directory, output template)
//   - Server settings for the HTTP API (listen address, refresh interval)
//   - Zone settings for the change-set generator (AXFR server, record TTL)
//
// # Example Usage
//
// Loading and validating a configuration file:
//
//	cfg, err := config.LoadConfig("/etc/awsranges/awsranges.conf")
//	if err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cfg.ValidateConfig(); err != nil {
//	    log.Fatalf("%v", err)
//	}
//
// Validation errors are collected into a ValidationErrors slice carrying
// the TOML field path of every offending field.
package config
