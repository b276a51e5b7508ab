package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/digits/internal/config"
)

// loadAppConfig loads the application configuration from environment variables or config file.
func loadAppConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	return cfg, nil
}
