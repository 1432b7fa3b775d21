// Package commands implements the awsranges subcommands.
//
// Each subcommand implements the Runner interface: Init parses its flag set
// and loads configuration, Run executes the command. The main entry point
// dispatches on the first positional argument.
//
//   - filter:   load, consolidate, filter and print prefixes
//   - download: fetch the ranges document to the local cache directory
//   - serve:    run the HTTP API server
//   - zoneset:  convert zone-transfer records into a DNS change-set
package commands
