// Package config provides configuration loading, merging, and validation
// for openxrypt.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The entry points are [GetConfig] for the daemon and [GetPopupConfig] for
// the TUI client.
package config
