// Package config loads the service runtime configuration (listen port, geocoding
// server URL, timeouts, rate limits, logging) from YAML files, environment
// variables and CLI flags with precedence: CLI flags > YAML config >
// Environment variables > Defaults. The map settings tree itself lives in
// package settings.
package config
