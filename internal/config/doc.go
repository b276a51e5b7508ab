// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides type-safe
// access to server and engine settings while keeping configuration details
// separate from the arithmetic itself.
package config
