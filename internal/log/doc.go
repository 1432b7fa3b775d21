// Package log provides simple leveled logging for awsranges.
//
// This package implements a lightweight logging system with colored output
// and support for different log levels: DEBUG, INFO, WARN, and ERROR.
// It provides global logging functions that can be used throughout the application.
//
// # Log Levels
//
//   - DEBUG: Detailed diagnostic information (only shown in verbose mode)
//   - INFO: General informational messages
//   - WARN: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures and exceptions
//
// # Example Usage
//
// Basic logging:
//
//	log.Infof("Loading IP ranges document")
//	log.Warnf("Configuration file not found at %s", path)
//	log.Errorf("Failed to fetch document: %v", err)
//
// Enabling verbose mode for debug output:
//
//	log.SetVerbose(true)
//	log.Debugf("Detailed trace: %+v", data)
//
// Commands that print results to stdout redirect diagnostics to stderr:
//
//	log.SetForceStdErr(true)
//
// The -quiet flag disables logging entirely via DisableLogs.
package log
