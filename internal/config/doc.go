// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, an optional config file).
// It provides type-safe access to the relay's settings while keeping
// configuration details separate from request handling.
//
// The listen port is read from PORT for compatibility with common hosting
// platforms; every other key uses the MARKETMIND_ prefix, for example
// MARKETMIND_GENERATION_UPSTREAM_URL.
package config
