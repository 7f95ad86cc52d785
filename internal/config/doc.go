// Package config provides configuration loading, merging, and validation
// for the copper-beam server.
//
// Configuration is assembled from multiple sources in the following order
// (the first source that sets a field wins, defaults fill what is left):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig].
package config
