package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets up environment variables for testing
func setupEnv(t *testing.T, envVars map[string]string) func() {
	// Save current environment values
	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	// Set new environment variables
	for name, value := range envVars {
		err := os.Setenv(name, value)
		require.NoError(t, err, "Failed to set environment variable %s", name)
	}

	// Return cleanup function
	return func() {
		// Restore original environment
		for name, value := range originalValues {
			if value == "" {
				os.Unsetenv(name)
			} else {
				os.Setenv(name, value)
			}
		}
	}
}

// TestLoadDefaults verifies that the Load function sets the expected default values
// when no environment variables are set.
func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"DIGITS_SERVER_PORT":              "",
		"DIGITS_SERVER_LOG_LEVEL":         "",
		"DIGITS_SERVER_SHUTDOWN_TIMEOUT":  "",
		"DIGITS_ENGINE_STRICT_CONVERSION": "",
		"DIGITS_ENGINE_ALLOW_SYMBOLS":     "",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with defaults only")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 8080, cfg.Server.Port, "Default port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.True(t, cfg.Engine.StrictConversion, "Strict conversion should be on by default")
	assert.True(t, cfg.Engine.AllowSymbols, "Operator symbols should be allowed by default")
}

// TestLoadFromEnv verifies that the Load function correctly reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"DIGITS_SERVER_PORT":              "9090",
		"DIGITS_SERVER_LOG_LEVEL":         "debug",
		"DIGITS_SERVER_SHUTDOWN_TIMEOUT":  "3s",
		"DIGITS_ENGINE_STRICT_CONVERSION": "false",
		"DIGITS_ENGINE_ALLOW_SYMBOLS":     "false",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 9090, cfg.Server.Port, "Server port should be loaded from environment variables")
	assert.Equal(t, "debug", cfg.Server.LogLevel, "Log level should be loaded from environment variables")
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.False(t, cfg.Engine.StrictConversion)
	assert.False(t, cfg.Engine.AllowSymbols)
}

// TestLoadFile verifies that values are read from an explicit YAML file and
// that environment variables still win over it.
func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "digits.yaml")
	content := []byte(`server:
  port: 7070
  log_level: warn
engine:
  strict_conversion: false
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cleanup := setupEnv(t, map[string]string{
		"DIGITS_SERVER_PORT":              "",
		"DIGITS_SERVER_LOG_LEVEL":         "error",
		"DIGITS_ENGINE_STRICT_CONVERSION": "",
	})
	defer cleanup()

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "error", cfg.Server.LogLevel, "Environment should override the file")
	assert.False(t, cfg.Engine.StrictConversion)
	assert.True(t, cfg.Engine.AllowSymbols)
}

// TestLoadFileMissing verifies that an explicit but missing file is an error.
func TestLoadFileMissing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

// TestLoadValidationErrors verifies that the Load function correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name           string
		envVars        map[string]string
		expectError    bool
		errorSubstring string
	}{
		{
			name: "Invalid port number",
			envVars: map[string]string{
				"DIGITS_SERVER_PORT":      "999999", // Port out of range
				"DIGITS_SERVER_LOG_LEVEL": "debug",
			},
			expectError:    true,
			errorSubstring: "validation failed",
		},
		{
			name: "Invalid log level",
			envVars: map[string]string{
				"DIGITS_SERVER_PORT":      "9090",
				"DIGITS_SERVER_LOG_LEVEL": "invalid-level",
			},
			expectError:    true,
			errorSubstring: "validation failed",
		},
		{
			name: "Negative shutdown timeout",
			envVars: map[string]string{
				"DIGITS_SERVER_SHUTDOWN_TIMEOUT": "-1s",
			},
			expectError:    true,
			errorSubstring: "validation failed",
		},
		{
			name: "Valid overrides",
			envVars: map[string]string{
				"DIGITS_SERVER_PORT":      "8181",
				"DIGITS_SERVER_LOG_LEVEL": "warn",
			},
			expectError: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cleanup := setupEnv(t, tc.envVars)
			defer cleanup()

			cfg, err := Load()

			if tc.expectError {
				assert.Error(t, err, "Load() should return an error with invalid configuration")
				if err != nil {
					assert.Contains(t, err.Error(), tc.errorSubstring, "Error message should contain expected substring")
				}
				assert.Nil(t, cfg, "Config should be nil when an error occurs")
			} else {
				assert.NoError(t, err, "Load() should not return an error with valid configuration")
				assert.NotNil(t, cfg, "Load() should return a non-nil config")
			}
		})
	}
}
