package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Engine EngineConfig `mapstructure:"engine"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// EngineConfig controls how textual input is turned into digits.
type EngineConfig struct {
	// StrictConversion rejects numeric operands above 9 instead of clamping them to 9.
	StrictConversion bool `mapstructure:"strict_conversion"`
	// AllowSymbols accepts +, -, *, x and / as operator names.
	AllowSymbols bool `mapstructure:"allow_symbols"`
}
