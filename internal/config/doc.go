// Package config provides configuration loading, merging, and validation
// facilities for the selector server and CLI.
//
// Configuration is assembled from multiple sources in the following priority
// order (an earlier source wins for every field it sets):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the command-line client.
package config
