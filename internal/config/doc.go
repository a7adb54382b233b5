// Package config loads, normalizes, and validates the TOML configuration for
// the vocabulary pipeline.
//
// Loading follows a fixed sequence: start from repository defaults, overlay
// the config file when present, normalize (path expansion, environment
// fallbacks for credentials, trimming), then validate. Credentials are not
// required at load time; stages that need them report a configuration error
// when invoked without one.
package config
